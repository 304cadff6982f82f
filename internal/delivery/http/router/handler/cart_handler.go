package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of guests and signed-in users alike
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// CartResponse is the cart as rendered by the storefront
type CartResponse struct {
	Items         []entity.CartLine `json:"items"`
	TotalQuantity int               `json:"totalQuantity"`
}

// CountResponse carries a badge count
type CountResponse struct {
	Count int `json:"count"`
}

// GetCart returns every line and the total quantity
func (h *CartHandler) GetCart(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	lines, err := h.cartUC.GetItems(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return response.Success(c, http.StatusOK, CartResponse{
		Items:         lines,
		TotalQuantity: entity.TotalQuantity(lines),
	}, "")
}

// Count returns the total quantity across all lines
func (h *CartHandler) Count(c echo.Context) error {
	count, err := h.cartUC.Count(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CountResponse{Count: count}, "")
}

// AddItem adds a product, merging with an existing line of the same weight
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.cartUC.AddItem(c.Request().Context(), deliverycontext.GetSession(c), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

// IncreaseQuantity adds one to a line
func (h *CartHandler) IncreaseQuantity(c echo.Context) error {
	return h.step(c, h.cartUC.IncreaseQuantity)
}

// DecreaseQuantity removes one from a line; a line reaching zero is deleted
func (h *CartHandler) DecreaseQuantity(c echo.Context) error {
	return h.step(c, h.cartUC.DecreaseQuantity)
}

func (h *CartHandler) step(
	c echo.Context,
	op func(ctx context.Context, session entity.SessionContext, productID, weight string) error,
) error {
	var req usecase.QuantityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity update")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := op(c.Request().Context(), deliverycontext.GetSession(c), req.ProductID, req.Weight); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.GetCart(c)
}

// RemoveItem deletes the line of :productId with the weight given in the query
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.cartUC.RemoveItem(ctx, deliverycontext.GetSession(c), c.Param("productId"), c.QueryParam("weight")); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.GetCart(c)
}

// Clear empties the cart
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartUC.Clear(c.Request().Context(), deliverycontext.GetSession(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{Items: []entity.CartLine{}}, "Cart cleared")
}
