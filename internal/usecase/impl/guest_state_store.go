package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	gocache "github.com/patrickmn/go-cache"
)

// guestState is the in-memory copy of one client's guest collections
type guestState struct {
	lines    []entity.CartLine
	wishlist entity.GuestWishlist
}

type guestStateStore struct {
	store  repository.KeyValueStore
	hot    *gocache.Cache
	logger *slog.Logger

	// mu serializes every read-modify-write so mutations apply in call order
	mu sync.Mutex
}

// NewGuestStateStore creates the guest store. Loaded collections stay in memory
// for storage.cacheTTL after their last use.
func NewGuestStateStore(store repository.KeyValueStore, cfg *config.Config, logger *slog.Logger) usecase.GuestStateStore {
	ttl := cfg.Storage.CacheTTL

	return &guestStateStore{
		store:  store,
		hot:    gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (s *guestStateStore) AddLine(ctx context.Context, clientID, productID string, quantity int, weight string, snapshot *entity.ProductSnapshot) error {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	key := entity.NewLineKey(productID, weight)

	if i := findLine(state.lines, key); i >= 0 {
		state.lines[i].Quantity += quantity
		if state.lines[i].Product == nil {
			state.lines[i].Product = cloneSnapshot(snapshot)
		}
	} else {
		state.lines = append(state.lines, entity.CartLine{
			ProductID: productID,
			Weight:    key.Weight,
			Quantity:  quantity,
			Product:   cloneSnapshot(snapshot),
		})
	}

	return s.persistLines(ctx, clientID, state)
}

func (s *guestStateStore) RemoveLine(ctx context.Context, clientID, productID, weight string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	i := findLine(state.lines, entity.NewLineKey(productID, weight))
	if i < 0 {
		return nil
	}

	state.lines = append(state.lines[:i], state.lines[i+1:]...)

	return s.persistLines(ctx, clientID, state)
}

func (s *guestStateStore) SetQuantity(ctx context.Context, clientID, productID string, quantity int, weight string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	i := findLine(state.lines, entity.NewLineKey(productID, weight))
	if i < 0 {
		return nil
	}

	if quantity <= 0 {
		state.lines = append(state.lines[:i], state.lines[i+1:]...)
	} else {
		state.lines[i].Quantity = quantity
	}

	return s.persistLines(ctx, clientID, state)
}

// AdjustQuantity is SetQuantity(current+delta) as one step; the result is floored at zero
func (s *guestStateStore) AdjustQuantity(ctx context.Context, clientID, productID, weight string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	i := findLine(state.lines, entity.NewLineKey(productID, weight))
	if i < 0 {
		return nil
	}

	if quantity := state.lines[i].Quantity + delta; quantity > 0 {
		state.lines[i].Quantity = quantity
	} else {
		state.lines = append(state.lines[:i], state.lines[i+1:]...)
	}

	return s.persistLines(ctx, clientID, state)
}

func (s *guestStateStore) ReplaceAll(ctx context.Context, clientID string, lines []entity.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	state.lines = mergeLines(lines)

	return s.persistLines(ctx, clientID, state)
}

func (s *guestStateStore) Lines(ctx context.Context, clientID string) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.CloneLines(s.state(ctx, clientID).lines)
}

func (s *guestStateStore) AddWishlistItem(ctx context.Context, clientID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	if state.wishlist.Contains(productID) {
		return nil
	}

	state.wishlist = append(state.wishlist, productID)

	return s.persistWishlist(ctx, clientID, state)
}

func (s *guestStateStore) RemoveWishlistItem(ctx context.Context, clientID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	kept := make(entity.GuestWishlist, 0, len(state.wishlist))
	for _, id := range state.wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(state.wishlist) {
		return nil
	}

	state.wishlist = kept

	return s.persistWishlist(ctx, clientID, state)
}

func (s *guestStateStore) ReplaceWishlist(ctx context.Context, clientID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	state.wishlist = entity.Dedupe(ids)

	return s.persistWishlist(ctx, clientID, state)
}

func (s *guestStateStore) Wishlist(ctx context.Context, clientID string) entity.GuestWishlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishlist := s.state(ctx, clientID).wishlist

	return append(entity.GuestWishlist{}, wishlist...)
}

func (s *guestStateStore) ClearAll(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(ctx, clientID)
	state.lines = nil
	state.wishlist = nil

	return errors.Join(
		s.persistLines(ctx, clientID, state),
		s.persistWishlist(ctx, clientID, state),
	)
}

// state returns the hot copy for clientID, loading it on a miss. Callers hold s.mu.
func (s *guestStateStore) state(ctx context.Context, clientID string) *guestState {
	if cached, found := s.hot.Get(clientID); found {
		if state, ok := cached.(*guestState); ok {
			s.hot.SetDefault(clientID, state)

			return state
		}
	}

	state := &guestState{
		lines:    s.loadLines(ctx, clientID),
		wishlist: s.loadWishlist(ctx, clientID),
	}
	s.hot.SetDefault(clientID, state)

	return state
}

func (s *guestStateStore) loadLines(ctx context.Context, clientID string) []entity.CartLine {
	var lines []entity.CartLine
	if err := s.store.Load(ctx, repository.GuestCartKey(clientID), &lines); err != nil {
		s.logReadFailure(ctx, clientID, "cart", err)

		return nil
	}

	return mergeLines(lines)
}

func (s *guestStateStore) loadWishlist(ctx context.Context, clientID string) entity.GuestWishlist {
	var ids []string
	if err := s.store.Load(ctx, repository.GuestWishlistKey(clientID), &ids); err != nil {
		s.logReadFailure(ctx, clientID, "wishlist", err)

		return nil
	}

	return entity.Dedupe(ids)
}

func (s *guestStateStore) logReadFailure(ctx context.Context, clientID, collection string, err error) {
	if errors.Is(err, repository.ErrKeyNotFound) {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Guest state unreadable, starting empty",
		slog.String("client_id", clientID),
		slog.String("collection", collection),
		slog.Any("error", err),
	)
}

func (s *guestStateStore) persistLines(ctx context.Context, clientID string, state *guestState) error {
	if err := s.store.Save(ctx, repository.GuestCartKey(clientID), entity.CloneLines(state.lines)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to persist guest cart",
			slog.String("client_id", clientID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to persist guest cart")
	}

	return nil
}

func (s *guestStateStore) persistWishlist(ctx context.Context, clientID string, state *guestState) error {
	ids := append(entity.GuestWishlist{}, state.wishlist...)
	if err := s.store.Save(ctx, repository.GuestWishlistKey(clientID), ids); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to persist guest wishlist",
			slog.String("client_id", clientID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to persist guest wishlist")
	}

	return nil
}

func findLine(lines []entity.CartLine, key entity.LineKey) int {
	for i, line := range lines {
		if line.Key() == key {
			return i
		}
	}

	return -1
}

// mergeLines enforces one line per key, summing quantities and dropping empty lines
func mergeLines(lines []entity.CartLine) []entity.CartLine {
	merged := make([]entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.ProductID) == "" || line.Quantity <= 0 {
			continue
		}

		line.Weight = entity.NormalizeWeight(line.Weight)
		if i := findLine(merged, line.Key()); i >= 0 {
			merged[i].Quantity += line.Quantity
			if merged[i].Product == nil {
				merged[i].Product = cloneSnapshot(line.Product)
			}

			continue
		}

		line.Product = cloneSnapshot(line.Product)
		merged = append(merged, line)
	}

	return merged
}

func cloneSnapshot(snapshot *entity.ProductSnapshot) *entity.ProductSnapshot {
	if snapshot == nil {
		return nil
	}

	cloned := *snapshot

	return &cloned
}
