package geolocation

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
)

type positionCache struct {
	cache *gocache.Cache
}

// NewPositionCache keeps each client's last fix for delivery.positionCacheTTL
func NewPositionCache(cfg *config.Config) service.PositionCache {
	return NewPositionCacheWithTTL(cfg.Delivery.PositionCacheTTL)
}

// NewPositionCacheWithTTL creates a cache with an explicit TTL
func NewPositionCacheWithTTL(ttl time.Duration) service.PositionCache {
	return &positionCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *positionCache) Get(clientID string) (entity.Coordinate, bool) {
	value, found := c.cache.Get(clientID)
	if !found {
		return entity.Coordinate{}, false
	}

	position, ok := value.(entity.Coordinate)

	return position, ok
}

func (c *positionCache) Set(clientID string, position entity.Coordinate) {
	c.cache.SetDefault(clientID, position)
}
