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

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves the wishlist
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// WishlistRequest names the product to add
type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// WishlistResponse lists the wishlisted product ids
type WishlistResponse struct {
	ProductIDs []string `json:"productIds"`
	Count      int      `json:"count"`
}

// ContainsResponse reports whether a product is wishlisted
type ContainsResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
}

// List returns the wishlisted ids
func (h *WishlistHandler) List(c echo.Context) error {
	ids, err := h.wishlistUC.Items(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}

	return response.Success(c, http.StatusOK, WishlistResponse{ProductIDs: ids, Count: len(ids)}, "")
}

// Add puts a product on the wishlist
func (h *WishlistHandler) Add(c echo.Context) error {
	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid wishlist item")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.wishlistUC.Add(c.Request().Context(), deliverycontext.GetSession(c), req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ContainsResponse{ProductID: req.ProductID, Wishlisted: true}, "Added to wishlist")
}

// Remove takes :productId off the wishlist
func (h *WishlistHandler) Remove(c echo.Context) error {
	productID := c.Param("productId")
	if err := h.wishlistUC.Remove(c.Request().Context(), deliverycontext.GetSession(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ContainsResponse{ProductID: productID}, "Removed from wishlist")
}

// Contains reports whether :productId is wishlisted
func (h *WishlistHandler) Contains(c echo.Context) error {
	productID := c.Param("productId")
	ok, err := h.wishlistUC.Contains(c.Request().Context(), deliverycontext.GetSession(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ContainsResponse{ProductID: productID, Wishlisted: ok}, "")
}
