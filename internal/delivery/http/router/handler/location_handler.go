package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the confirmed delivery location shown in the header
type LocationHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// LocationResponse is the stored location with its compact label
type LocationResponse struct {
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
	Label      string  `json:"label"`
	ShortLabel string  `json:"shortLabel"`
}

// GetLocation returns the stored location, or the default coordinate when none is confirmed
func (h *LocationHandler) GetLocation(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	loc, err := h.deliveryUC.CurrentLocation(c.Request().Context(), session.ClientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LocationResponse{
		Lat:        loc.Lat,
		Long:       loc.Long,
		Label:      loc.Label,
		ShortLabel: loc.ShortLabel(),
	}, "")
}
