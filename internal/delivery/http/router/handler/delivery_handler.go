package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/infra/geolocation"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler drives the delivery location dialog of one client
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// InputRequest is the search text typed so far
type InputRequest struct {
	Text string `json:"text" validate:"max=200"`
}

// SelectRequest names the chosen autocomplete candidate
type SelectRequest struct {
	PlaceID string `json:"placeId" validate:"required"`
}

// CurrentLocationRequest is the device fix obtained by the browser.
// Denied is set when the user refused the permission prompt.
type CurrentLocationRequest struct {
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Long   *float64 `json:"long" validate:"omitempty,longitude"`
	Denied bool     `json:"denied"`
}

// Snapshot returns the dialog's current state
func (h *DeliveryHandler) Snapshot(c echo.Context) error {
	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)

	return response.Success(c, http.StatusOK, flow.Snapshot(), "")
}

// Open shows the dialog
func (h *DeliveryHandler) Open(c echo.Context) error {
	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)
	flow.Open()

	return response.Success(c, http.StatusOK, flow.Snapshot(), "")
}

// Close dismisses the dialog and abandons any pending work
func (h *DeliveryHandler) Close(c echo.Context) error {
	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)
	flow.Close()

	return response.Success(c, http.StatusOK, flow.Snapshot(), "")
}

// Input feeds search text; predictions arrive later over the event stream
func (h *DeliveryHandler) Input(c echo.Context) error {
	var req InputRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)
	flow.Input(req.Text)

	return response.Success(c, http.StatusAccepted, flow.Snapshot(), "")
}

// Select checks the chosen candidate
func (h *DeliveryHandler) Select(c echo.Context) error {
	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid place selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)

	outcome, err := flow.SelectCandidate(c.Request().Context(), req.PlaceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome, outcome.Message)
}

// CurrentLocation checks the device position, or the fallback when none was reported
func (h *DeliveryHandler) CurrentLocation(c echo.Context) error {
	var req CurrentLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid position")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flow := h.deliveryUC.Flow(deliverycontext.GetSession(c).ClientID)
	source := geolocation.NewReportedGeolocator(geolocation.Report{
		Lat:    req.Lat,
		Long:   req.Long,
		Denied: req.Denied,
	})

	outcome, err := flow.UseCurrentLocation(c.Request().Context(), source)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome, outcome.Message)
}
