package handlers

import (
	"errors"
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// MenuHandlers serves the client-facing menu screen: the dish catalog,
// the per-client cart and checkout.
type MenuHandlers struct {
	dishService services.DishService
	cartService services.CartService
}

func NewMenuHandlers(dishService services.DishService, cartService services.CartService) *MenuHandlers {
	return &MenuHandlers{
		dishService: dishService,
		cartService: cartService,
	}
}

// Catalog returns the cached dish catalog
func (h *MenuHandlers) Catalog(c echo.Context) error {
	ctx := c.Request().Context()

	dishes, err := h.dishService.Catalog(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to load catalog")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"dishes": dishes,
	})
}

// GetCart returns the caller's cart with live prices and line totals
func (h *MenuHandlers) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, ok := common.GetClientIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	view, err := h.cartService.View(ctx, clientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load cart")
	}
	return c.JSON(http.StatusOK, view)
}

// CartItemRequest represents a quantity delta for one dish. A negative
// quantity removes; an entry reaching zero disappears from the cart.
type CartItemRequest struct {
	DishID   string `json:"dish_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
}

// AddCartItem applies a quantity delta to the caller's cart
func (h *MenuHandlers) AddCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, ok := common.GetClientIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if _, err := common.ValidateUUID(req.DishID, "dish ID"); err != nil {
		return common.SendValidationError(c, "dish_id", err.Error())
	}
	if req.Quantity == 0 {
		return common.SendValidationError(c, "quantity", "quantity cannot be zero")
	}

	cart, err := h.cartService.AddItem(ctx, clientID, req.DishID, req.Quantity)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Cart updated", cart.Items())
}

// ClearCart empties the caller's cart
func (h *MenuHandlers) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, ok := common.GetClientIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	if err := h.cartService.Clear(ctx, clientID); err != nil {
		return common.SendServerError(c, "Failed to clear cart")
	}
	return common.SendEnvelope(c, http.StatusOK, "Cart cleared", nil)
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	TableID     string  `json:"table_id" validate:"required"`
	WaiterID    string  `json:"waiter_id" validate:"required"`
	Description *string `json:"description"`
}

// Checkout submits the caller's cart as an order. The cart must be
// non-empty and a table and waiter must be selected; the cart is
// cleared only after the order is persisted.
func (h *MenuHandlers) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, ok := common.GetClientIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tableID, err := common.ValidateUUID(req.TableID, "table ID")
	if err != nil {
		return common.SendValidationError(c, "table_id", err.Error())
	}
	waiterID, err := common.ValidateUUID(req.WaiterID, "waiter ID")
	if err != nil {
		return common.SendValidationError(c, "waiter_id", err.Error())
	}

	order, err := h.cartService.Checkout(ctx, &services.CheckoutRequest{
		ClientID:    clientID,
		TableID:     tableID,
		WaiterID:    waiterID,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrTableRequired),
			errors.Is(err, services.ErrWaiterRequired):
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Order placed successfully", order)
}
