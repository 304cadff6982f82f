package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// DeliveryCheckFlow drives the delivery location dialog of one client
type DeliveryCheckFlow interface {
	// Open shows the dialog and clears any previous rejection message
	Open()

	// Close hides the dialog, stops pending searches and returns to idle
	Close()

	// Input records the latest search text; predictions are fetched after the debounce window
	Input(text string)

	// SelectCandidate resolves a prediction and checks whether it is serviceable
	SelectCandidate(ctx context.Context, placeID string) (entity.CheckOutcome, error)

	// UseCurrentLocation checks the device position, falling back to the default coordinate
	UseCurrentLocation(ctx context.Context, source service.Geolocator) (entity.CheckOutcome, error)

	// Snapshot returns the current view of the flow
	Snapshot() entity.FlowSnapshot
}

// DeliveryUsecase hands out the flow of each client and reads the confirmed location
type DeliveryUsecase interface {
	Flow(clientID string) DeliveryCheckFlow
	CurrentLocation(ctx context.Context, clientID string) (entity.StoredLocation, error)
	Shutdown()
}
