package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
)

const predictionTimeout = 10 * time.Second

// flowSettings are the tunables shared by every flow
type flowSettings struct {
	debounce           time.Duration
	geolocationTimeout time.Duration
	fallback           entity.Coordinate
	fallbackLabel      string
	rejectMessage      string
}

// flowDeps are the collaborators shared by every flow
type flowDeps struct {
	resolver  service.PlaceResolver
	checker   service.ServiceabilityChecker
	cache     repository.LocationCache
	positions service.PositionCache
	bus       service.EventBus
	logger    *slog.Logger
}

type deliveryCheckFlow struct {
	clientID string
	deps     flowDeps
	settings flowSettings

	mu         sync.Mutex
	state      entity.FlowState
	open       bool
	query      string
	candidates []entity.PlaceCandidate
	message    string

	// generation invalidates pending debounce timers and late predictions
	generation uint64
	// attempt invalidates serviceability checks overtaken by a newer selection or a close
	attempt  uint64
	timer    *time.Timer
	cancelFn context.CancelFunc
}

func newDeliveryCheckFlow(clientID string, deps flowDeps, settings flowSettings) *deliveryCheckFlow {
	return &deliveryCheckFlow{
		clientID:   clientID,
		deps:       deps,
		settings:   settings,
		state:      entity.FlowStateIdle,
		candidates: []entity.PlaceCandidate{},
	}
}

func (f *deliveryCheckFlow) Open() {
	f.mu.Lock()
	f.open = true
	f.message = ""
	if f.state == entity.FlowStateRejected || f.state == entity.FlowStateResolved {
		f.state = entity.FlowStateIdle
	}
	state := f.state
	f.mu.Unlock()

	f.publishState(state)
}

func (f *deliveryCheckFlow) Close() {
	f.mu.Lock()
	f.resetLocked()
	f.mu.Unlock()

	f.publishState(entity.FlowStateIdle)
}

func (f *deliveryCheckFlow) Input(text string) {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()

		return
	}

	f.stopSearchLocked()
	f.query = text
	f.message = ""

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < constants.MinSearchLength {
		f.candidates = []entity.PlaceCandidate{}
		f.state = entity.FlowStateIdle
		if trimmed != "" {
			f.state = entity.FlowStateSearching
		}
		state := f.state
		f.mu.Unlock()

		f.publishState(state)

		return
	}

	f.state = entity.FlowStateSearching
	generation := f.generation
	f.timer = time.AfterFunc(f.settings.debounce, func() {
		f.runPrediction(generation, trimmed)
	})
	f.mu.Unlock()

	f.publishState(entity.FlowStateSearching)
}

func (f *deliveryCheckFlow) runPrediction(generation uint64, text string) {
	f.mu.Lock()
	if generation != f.generation || !f.open {
		f.mu.Unlock()

		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), predictionTimeout)
	f.cancelFn = cancel
	f.mu.Unlock()

	candidates := f.deps.resolver.Predict(ctx, text)
	cancel()
	if candidates == nil {
		candidates = []entity.PlaceCandidate{}
	}

	f.mu.Lock()
	if generation != f.generation {
		f.mu.Unlock()

		return
	}
	f.candidates = candidates
	f.cancelFn = nil
	state := f.state
	f.mu.Unlock()

	f.publishState(state)
}

func (f *deliveryCheckFlow) SelectCandidate(ctx context.Context, placeID string) (entity.CheckOutcome, error) {
	attempt, err := f.beginAttempt(entity.FlowStatePlaceSelected)
	if err != nil {
		return entity.CheckOutcome{}, err
	}

	place, err := f.deps.resolver.Resolve(ctx, placeID)
	if err != nil {
		f.deps.logger.Warn("Failed to resolve place",
			slog.String("client_id", f.clientID),
			slog.String("place_id", placeID),
			slog.Any("error", err),
		)

		return f.reject(attempt, constants.DefaultResolveFailure), nil
	}

	return f.check(ctx, attempt, entity.StoredLocation{
		Lat:   place.Lat,
		Long:  place.Long,
		Label: place.Address,
	}), nil
}

func (f *deliveryCheckFlow) UseCurrentLocation(ctx context.Context, source service.Geolocator) (entity.CheckOutcome, error) {
	attempt, err := f.beginAttempt(entity.FlowStateUsingCurrentLocation)
	if err != nil {
		return entity.CheckOutcome{}, err
	}

	position := f.locate(ctx, source)

	return f.check(ctx, attempt, entity.StoredLocation{
		Lat:   position.Lat,
		Long:  position.Long,
		Label: f.reverseLabel(ctx, position),
	}), nil
}

func (f *deliveryCheckFlow) Snapshot() entity.FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return entity.FlowSnapshot{
		State:      f.state,
		Open:       f.open,
		Query:      f.query,
		Candidates: append([]entity.PlaceCandidate{}, f.candidates...),
		Message:    f.message,
	}
}

// beginAttempt starts a new serviceability attempt and stops any pending search
func (f *deliveryCheckFlow) beginAttempt(state entity.FlowState) (uint64, error) {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()

		return 0, domainerrors.ErrFlowNotOpen
	}

	f.stopSearchLocked()
	f.attempt++
	attempt := f.attempt
	f.state = state
	f.message = ""
	f.mu.Unlock()

	f.publishState(state)

	return attempt, nil
}

// locate waits at most geolocationTimeout for a fix and falls back to the default coordinate
func (f *deliveryCheckFlow) locate(ctx context.Context, source service.Geolocator) entity.Coordinate {
	if position, ok := f.deps.positions.Get(f.clientID); ok {
		return position
	}

	type fix struct {
		position entity.Coordinate
		err      error
	}

	geoCtx, cancel := context.WithTimeout(ctx, f.settings.geolocationTimeout)
	defer cancel()

	result := make(chan fix, 1)
	go func() {
		position, err := source.CurrentPosition(geoCtx)
		result <- fix{position: position, err: err}
	}()

	var got fix
	select {
	case got = <-result:
	case <-geoCtx.Done():
		got.err = geoCtx.Err()
	}

	if got.err != nil {
		f.deps.logger.Info("Geolocation unavailable, using default coordinate",
			slog.String("client_id", f.clientID),
			slog.Any("error", got.err),
		)

		return f.settings.fallback
	}

	f.deps.positions.Set(f.clientID, got.position)

	return got.position
}

func (f *deliveryCheckFlow) reverseLabel(ctx context.Context, position entity.Coordinate) string {
	label, err := f.deps.resolver.ReverseGeocode(ctx, position.Lat, position.Long)
	if err != nil {
		f.deps.logger.Debug("Reverse geocode failed",
			slog.String("client_id", f.clientID),
			slog.Any("error", err),
		)
	}

	if strings.TrimSpace(label) == "" {
		return f.settings.fallbackLabel
	}

	return label
}

func (f *deliveryCheckFlow) check(ctx context.Context, attempt uint64, location entity.StoredLocation) entity.CheckOutcome {
	if !f.setAttemptState(attempt, entity.FlowStateCheckingServiceability) {
		return f.superseded()
	}
	f.publishState(entity.FlowStateCheckingServiceability)

	result, err := f.deps.checker.Check(ctx, location.Lat, location.Long)
	if err != nil {
		f.deps.logger.Warn("Serviceability check failed",
			slog.String("client_id", f.clientID),
			slog.Any("error", err),
		)
		result = entity.ServiceabilityResult{Success: false, Message: constants.DefaultCheckFailure}
	}

	if !result.Success {
		message := result.Message
		if strings.TrimSpace(message) == "" {
			message = f.settings.rejectMessage
		}

		return f.reject(attempt, message)
	}

	return f.resolve(ctx, attempt, location)
}

func (f *deliveryCheckFlow) reject(attempt uint64, message string) entity.CheckOutcome {
	f.mu.Lock()
	if attempt != f.attempt || !f.open {
		f.mu.Unlock()

		return f.superseded()
	}
	f.state = entity.FlowStateRejected
	f.message = message
	f.mu.Unlock()

	f.publishState(entity.FlowStateRejected)

	return entity.CheckOutcome{State: entity.FlowStateRejected, Message: message}
}

// resolve persists the location before announcing it. A failed save rejects the attempt.
// A location saved after the attempt was superseded is still announced, but the flow is left alone.
func (f *deliveryCheckFlow) resolve(ctx context.Context, attempt uint64, location entity.StoredLocation) entity.CheckOutcome {
	if !f.isCurrent(attempt) {
		return f.superseded()
	}

	if err := f.deps.cache.Save(ctx, f.clientID, location); err != nil {
		f.deps.logger.Error("Failed to save delivery location",
			slog.String("client_id", f.clientID),
			slog.Any("error", err),
		)

		return f.reject(attempt, constants.DefaultSaveFailure)
	}

	f.mu.Lock()
	current := attempt == f.attempt && f.open
	if current {
		f.resetLocked()
	}
	f.mu.Unlock()

	f.deps.bus.Publish(ctx, entity.Event{
		Topic:    entity.TopicLocationUpdated,
		ClientID: f.clientID,
		Payload: entity.LocationUpdatedPayload{
			Lat:   location.Lat,
			Long:  location.Long,
			Label: location.Label,
		},
	})

	if !current {
		return f.superseded()
	}
	f.publishState(entity.FlowStateResolved)

	return entity.CheckOutcome{State: entity.FlowStateResolved, Location: &location}
}

func (f *deliveryCheckFlow) isCurrent(attempt uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return attempt == f.attempt && f.open
}

func (f *deliveryCheckFlow) setAttemptState(attempt uint64, state entity.FlowState) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if attempt != f.attempt || !f.open {
		return false
	}
	f.state = state

	return true
}

// superseded is returned by an attempt that lost to a newer attempt or a close
func (f *deliveryCheckFlow) superseded() entity.CheckOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()

	return entity.CheckOutcome{State: f.state, Message: f.message}
}

// resetLocked returns the flow to a closed idle state. Callers hold f.mu.
func (f *deliveryCheckFlow) resetLocked() {
	f.stopSearchLocked()
	f.attempt++
	f.open = false
	f.state = entity.FlowStateIdle
	f.query = ""
	f.candidates = []entity.PlaceCandidate{}
	f.message = ""
}

// stopSearchLocked cancels the debounce timer and any prediction in flight. Callers hold f.mu.
func (f *deliveryCheckFlow) stopSearchLocked() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if f.cancelFn != nil {
		f.cancelFn()
		f.cancelFn = nil
	}
}

func (f *deliveryCheckFlow) publishState(state entity.FlowState) {
	f.deps.bus.Publish(context.Background(), entity.Event{
		Topic:    entity.TopicDeliveryFlowChanged,
		ClientID: f.clientID,
		Payload:  entity.DeliveryFlowChangedPayload{State: state},
	})
}
