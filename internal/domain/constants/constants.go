// Package constants holds names shared between configuration and infrastructure.
package constants

import "time"

// Deployment environments.
const (
	EnvLocal = "local"
)

// Storage backends for the key-value store.
const (
	StorageBackendBlob     = "blob"
	StorageBackendPostgres = "postgres"
)

// Pub/Sub providers for the event relay.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Serviceability providers.
const (
	ServiceabilityProviderHTTP  = "http"
	ServiceabilityProviderZones = "zones"
)

// Storage key suffixes. Keys are namespaced by client id.
const (
	KeyGuestCart     = "guest_cart"
	KeyGuestWishlist = "guest_wishlist"
	KeyLocation      = "location"
)

// Delivery check flow defaults.
const (
	DefaultFallbackLabel  = "Selected location"
	DefaultCheckFailure   = "Unable to verify delivery availability. Please try again."
	DefaultResolveFailure = "Unable to fetch details for this address. Please try another."
	DefaultSaveFailure    = "Unable to save this location. Please try again."
	MinSearchLength       = 3
)

// Server-sent events stream settings.
const (
	EventStreamHeartbeat  = 15 * time.Second
	EventStreamBufferSize = 32
)

// SharedReadTimeout bounds a remote read shared by concurrent callers.
const SharedReadTimeout = 15 * time.Second
