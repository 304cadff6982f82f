package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins lists the storefront origins allowed by CORS
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage configuration for the durable key-value store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Postgres is only required when storage.backend is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Cart configuration for the remote cart and wishlist service
	Cart *CartConfig `json:"cart" yaml:"cart"`

	// Places configuration for the geocoding provider
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Serviceability configuration for delivery availability checks
	Serviceability *ServiceabilityConfig `json:"serviceability" yaml:"serviceability"`

	// Delivery configuration for the delivery location flow
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	// RateLimit configuration for place search input
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for relaying events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key-value store backend
type StorageConfig struct {
	// Backend is "blob" (gocloud bucket URL) or "postgres"
	Backend string `json:"backend" yaml:"backend"`

	// BucketURL for the blob backend, e.g. mem://, file:///var/lib/storefront, s3://bucket?region=ap-south-1
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// KeyPrefix is prepended to every key
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// CacheTTL is how long an idle guest's collections stay in memory
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`

	// SlowQueryThreshold marks postgres key-value queries as slow in the logs
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// CartConfig defines the remote cart and wishlist service
type CartConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	AddPath            string `json:"addPath" yaml:"addPath"`
	GetPath            string `json:"getPath" yaml:"getPath"`
	UpdateQuantityPath string `json:"updateQuantityPath" yaml:"updateQuantityPath"`
	RemovePath         string `json:"removePath" yaml:"removePath"`
	ClearPath          string `json:"clearPath" yaml:"clearPath"`
	WishlistPath       string `json:"wishlistPath" yaml:"wishlistPath"`

	// MergeGuestOnSignIn pushes the guest cart and wishlist to the account on sign-in
	MergeGuestOnSignIn bool `json:"mergeGuestOnSignIn" yaml:"mergeGuestOnSignIn"`
}

// PlacesConfig defines the place autocomplete provider
type PlacesConfig struct {
	// APIKey for Google Maps Platform; predictions are disabled when empty
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Country  string `json:"country" yaml:"country"`
	Language string `json:"language" yaml:"language"`
}

// ServiceabilityConfig defines how delivery availability is checked
type ServiceabilityConfig struct {
	// Provider is "http" (delivery backend) or "zones" (local GeoJSON polygons)
	Provider string        `json:"provider" yaml:"provider"`
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Path     string        `json:"path" yaml:"path"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// ZonesFile is a GeoJSON FeatureCollection of delivery areas
	ZonesFile     string `json:"zonesFile" yaml:"zonesFile"`
	RejectMessage string `json:"rejectMessage" yaml:"rejectMessage"`
}

// DeliveryConfig defines the delivery location flow
type DeliveryConfig struct {
	Debounce           time.Duration `json:"debounce" yaml:"debounce"`
	GeolocationTimeout time.Duration `json:"geolocationTimeout" yaml:"geolocationTimeout"`
	PositionCacheTTL   time.Duration `json:"positionCacheTTL" yaml:"positionCacheTTL"`
	FlowIdleTTL        time.Duration `json:"flowIdleTTL" yaml:"flowIdleTTL"`
	DefaultLat         float64       `json:"defaultLat" yaml:"defaultLat"`
	DefaultLong        float64       `json:"defaultLong" yaml:"defaultLong"`
	FallbackLabel      string        `json:"fallbackLabel" yaml:"fallbackLabel"`
}

// RateLimitConfig defines per-client limits on place search
type RateLimitConfig struct {
	PerSecond     float64       `json:"perSecond" yaml:"perSecond"`
	Burst         int           `json:"burst" yaml:"burst"`
	CleanupPeriod time.Duration `json:"cleanupPeriod" yaml:"cleanupPeriod"`
	ClientTTL     time.Duration `json:"clientTTL" yaml:"clientTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event relaying
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// CredentialsFile is an optional service account key (for google provider)
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// QueueSize bounds relayed events waiting to be published
	QueueSize int `json:"queueSize" yaml:"queueSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	ApplyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset optional section and field.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "blob"
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.CacheTTL <= 0 {
		cfg.Storage.CacheTTL = 30 * time.Minute
	}
	if cfg.Storage.SlowQueryThreshold <= 0 {
		cfg.Storage.SlowQueryThreshold = 200 * time.Millisecond
	}

	if cfg.Cart == nil {
		cfg.Cart = &CartConfig{MergeGuestOnSignIn: true}
	}
	if cfg.Cart.Timeout <= 0 {
		cfg.Cart.Timeout = 10 * time.Second
	}
	setDefault(&cfg.Cart.AddPath, "/cart/add")
	setDefault(&cfg.Cart.GetPath, "/cart")
	setDefault(&cfg.Cart.UpdateQuantityPath, "/cart/update-quantity")
	setDefault(&cfg.Cart.RemovePath, "/cart")
	setDefault(&cfg.Cart.ClearPath, "/cart/clear")
	setDefault(&cfg.Cart.WishlistPath, "/wishlist")

	if cfg.Places == nil {
		cfg.Places = &PlacesConfig{}
	}
	setDefault(&cfg.Places.Country, "in")
	setDefault(&cfg.Places.Language, "en")

	if cfg.Serviceability == nil {
		cfg.Serviceability = &ServiceabilityConfig{}
	}
	setDefault(&cfg.Serviceability.Provider, "http")
	setDefault(&cfg.Serviceability.Path, "/delivery/check")
	setDefault(&cfg.Serviceability.RejectMessage, "Sorry, we do not deliver to this location yet")
	if cfg.Serviceability.Timeout <= 0 {
		cfg.Serviceability.Timeout = 10 * time.Second
	}

	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{}
	}
	if cfg.Delivery.Debounce <= 0 {
		cfg.Delivery.Debounce = 300 * time.Millisecond
	}
	if cfg.Delivery.GeolocationTimeout <= 0 {
		cfg.Delivery.GeolocationTimeout = 5 * time.Second
	}
	if cfg.Delivery.PositionCacheTTL <= 0 {
		cfg.Delivery.PositionCacheTTL = 5 * time.Minute
	}
	if cfg.Delivery.FlowIdleTTL <= 0 {
		cfg.Delivery.FlowIdleTTL = 30 * time.Minute
	}
	if cfg.Delivery.DefaultLat == 0 && cfg.Delivery.DefaultLong == 0 {
		cfg.Delivery.DefaultLat = 26.86957
		cfg.Delivery.DefaultLong = 81.00935
	}
	setDefault(&cfg.Delivery.FallbackLabel, "Selected location")

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.PerSecond <= 0 {
		cfg.RateLimit.PerSecond = 5
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.RateLimit.CleanupPeriod <= 0 {
		cfg.RateLimit.CleanupPeriod = time.Minute
	}
	if cfg.RateLimit.ClientTTL <= 0 {
		cfg.RateLimit.ClientTTL = 3 * time.Minute
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
