package handlers

import (
	"errors"
	"net/http"
	"time"

	"ukitchen/internal/common"
	"ukitchen/internal/middleware"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles order lifecycle HTTP requests
type OrderHandlers struct {
	orderService services.OrderServiceInterface
	billService  services.BillServiceInterface
}

func NewOrderHandlers(orderService services.OrderServiceInterface, billService services.BillServiceInterface) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
		billService:  billService,
	}
}

func sendOrderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return common.SendNotFoundError(c, "Order")
	case errors.Is(err, services.ErrInvalidTransition):
		return common.SendConflictError(c, err.Error())
	case errors.Is(err, services.ErrOrderItemsRequired):
		return common.SendClientError(c, err.Error())
	case errors.Is(err, services.ErrOrderNotDelivered):
		return common.SendConflictError(c, err.Error())
	}
	return common.SendServerError(c, err.Error())
}

// ListOrdersRequest represents query parameters for listing orders
type ListOrdersRequest struct {
	Status   string `query:"status"`
	ClientID string `query:"client_id"`
	TableID  string `query:"table_id"`
	From     string `query:"from"`
	To       string `query:"to"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

// ListOrders handles getting a list of orders. Clients only see their
// own orders; staff see everything.
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListOrdersRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.OrderSearchFilter{Limit: limit, Offset: offset}
	if req.Status != "" {
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			return common.SendValidationError(c, "status", err.Error())
		}
		filter.Status = &status
	}
	if req.ClientID != "" {
		clientID, err := common.ValidateUUID(req.ClientID, "client ID")
		if err != nil {
			return common.SendValidationError(c, "client_id", err.Error())
		}
		filter.ClientID = &clientID
	}
	if req.TableID != "" {
		tableID, err := common.ValidateUUID(req.TableID, "table ID")
		if err != nil {
			return common.SendValidationError(c, "table_id", err.Error())
		}
		filter.TableID = &tableID
	}
	if req.From != "" {
		from, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return common.SendValidationError(c, "from", "from must be RFC3339")
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return common.SendValidationError(c, "to", "to must be RFC3339")
		}
		filter.To = &to
	}

	// A client token is always scoped to its own orders
	if role, _ := common.GetRoleFromContext(ctx); role == middleware.RoleClient {
		clientID, ok := common.GetClientIDFromContext(ctx)
		if !ok {
			return common.SendUnauthorizedError(c)
		}
		filter.ClientID = &clientID
	}

	orders, err := h.orderService.ListOrders(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list orders")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateOrderItemRequest is one requested line of a manually created order
type CreateOrderItemRequest struct {
	DishID    string  `json:"dish_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required"`
}

// CreateOrderRequest represents the order creation request payload.
// Most orders are created through checkout; this endpoint lets staff
// register one directly.
type CreateOrderRequest struct {
	Description *string                  `json:"description"`
	ClientID    string                   `json:"client_id" validate:"required"`
	TableID     *string                  `json:"table_id"`
	WaiterID    *string                  `json:"waiter_id"`
	Items       []CreateOrderItemRequest `json:"items" validate:"required"`
}

// CreateOrder handles creating a new order
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	clientID, err := common.ValidateUUID(req.ClientID, "client ID")
	if err != nil {
		return common.SendValidationError(c, "client_id", err.Error())
	}

	order := &models.Order{
		Description: req.Description,
		ClientID:    clientID,
	}
	if req.TableID != nil && *req.TableID != "" {
		tableID, err := common.ValidateUUID(*req.TableID, "table ID")
		if err != nil {
			return common.SendValidationError(c, "table_id", err.Error())
		}
		order.TableID = &tableID
	}
	if req.WaiterID != nil && *req.WaiterID != "" {
		waiterID, err := common.ValidateUUID(*req.WaiterID, "waiter ID")
		if err != nil {
			return common.SendValidationError(c, "waiter_id", err.Error())
		}
		order.WaiterID = &waiterID
	}
	for _, item := range req.Items {
		dishID, err := common.ValidateUUID(item.DishID, "dish ID")
		if err != nil {
			return common.SendValidationError(c, "items", err.Error())
		}
		if err := common.ValidatePositiveInteger(item.Quantity, "quantity", 1000); err != nil {
			return common.SendValidationError(c, "items", err.Error())
		}
		order.Items = append(order.Items, models.OrderItem{
			DishID:    dishID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := h.orderService.CreateOrder(ctx, order); err != nil {
		return sendOrderError(c, err)
	}
	return common.SendEnvelope(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrder handles getting order details by ID
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	order, err := h.orderService.GetOrderByID(ctx, orderID)
	if err != nil {
		return common.SendServerError(c, "Failed to load order")
	}
	if order == nil {
		return common.SendNotFoundError(c, "Order")
	}

	// A client token only sees its own orders; respond as if foreign
	// orders do not exist.
	if role, _ := common.GetRoleFromContext(ctx); role == middleware.RoleClient {
		clientID, ok := common.GetClientIDFromContext(ctx)
		if !ok || order.ClientID != clientID {
			return common.SendNotFoundError(c, "Order")
		}
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateOrderRequest represents the order update request payload
type UpdateOrderRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	TableID     *string `json:"table_id"`
	WaiterID    *string `json:"waiter_id"`
}

// UpdateOrder handles updating order details. A status change is only
// accepted when it is a legal transition from the current status.
func (h *OrderHandlers) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.orderService.GetOrderByID(ctx, orderID)
	if err != nil {
		return common.SendServerError(c, "Failed to load order")
	}
	if order == nil {
		return common.SendNotFoundError(c, "Order")
	}

	if req.Description != nil {
		order.Description = req.Description
	}
	if req.Status != nil {
		status, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return common.SendValidationError(c, "status", err.Error())
		}
		order.Status = status
	}
	if req.TableID != nil {
		if *req.TableID == "" {
			order.TableID = nil
		} else {
			tableID, err := common.ValidateUUID(*req.TableID, "table ID")
			if err != nil {
				return common.SendValidationError(c, "table_id", err.Error())
			}
			order.TableID = &tableID
		}
	}
	if req.WaiterID != nil {
		if *req.WaiterID == "" {
			order.WaiterID = nil
		} else {
			waiterID, err := common.ValidateUUID(*req.WaiterID, "waiter ID")
			if err != nil {
				return common.SendValidationError(c, "waiter_id", err.Error())
			}
			order.WaiterID = &waiterID
		}
	}

	if err := h.orderService.UpdateOrder(ctx, order); err != nil {
		return sendOrderError(c, err)
	}
	return common.SendEnvelope(c, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder handles deleting an order
func (h *OrderHandlers) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.orderService.DeleteOrder(ctx, orderID); err != nil {
		return sendOrderError(c, err)
	}
	return common.SendEnvelope(c, http.StatusOK, "Order deleted successfully", nil)
}

func (h *OrderHandlers) transition(c echo.Context, do func(echo.Context) (*models.Order, error), message string) error {
	order, err := do(c)
	if err != nil {
		return sendOrderError(c, err)
	}
	return common.SendEnvelope(c, http.StatusOK, message, order)
}

// PrepareOrder moves a pending order into preparation
func (h *OrderHandlers) PrepareOrder(c echo.Context) error {
	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.transition(c, func(c echo.Context) (*models.Order, error) {
		return h.orderService.PrepareOrder(c.Request().Context(), orderID)
	}, "Order moved to preparation")
}

// ReadyOrder marks an order in preparation as ready
func (h *OrderHandlers) ReadyOrder(c echo.Context) error {
	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.transition(c, func(c echo.Context) (*models.Order, error) {
		return h.orderService.ReadyOrder(c.Request().Context(), orderID)
	}, "Order marked as ready")
}

// DeliverOrder marks a ready order as delivered
func (h *OrderHandlers) DeliverOrder(c echo.Context) error {
	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.transition(c, func(c echo.Context) (*models.Order, error) {
		return h.orderService.DeliverOrder(c.Request().Context(), orderID)
	}, "Order delivered")
}

// CancelOrder cancels a non-terminal order
func (h *OrderHandlers) CancelOrder(c echo.Context) error {
	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.transition(c, func(c echo.Context) (*models.Order, error) {
		return h.orderService.CancelOrder(c.Request().Context(), orderID)
	}, "Order cancelled")
}

// NextActions returns the legal next statuses for an order
func (h *OrderHandlers) NextActions(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	actions, err := h.orderService.NextActions(ctx, orderID)
	if err != nil {
		return sendOrderError(c, err)
	}
	if actions == nil {
		actions = []models.OrderStatus{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"next_statuses": actions,
	})
}

// CreateBillRequest represents the bill creation payload
type CreateBillRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// CreateBill issues the bill for a delivered order
func (h *OrderHandlers) CreateBill(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req CreateBillRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.PaymentMethod == "" {
		return common.SendValidationError(c, "payment_method", "payment_method is required")
	}

	bill, err := h.billService.CreateBill(ctx, orderID, req.PaymentMethod)
	if err != nil {
		return sendOrderError(c, err)
	}
	return common.SendEnvelope(c, http.StatusCreated, "Bill created successfully", bill)
}

// GetBill returns the bill for an order
func (h *OrderHandlers) GetBill(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	bill, err := h.billService.GetBillByOrder(ctx, orderID)
	if err != nil {
		return common.SendServerError(c, "Failed to load bill")
	}
	if bill == nil {
		return common.SendNotFoundError(c, "Bill")
	}
	return c.JSON(http.StatusOK, bill)
}

// GetBillPDF returns a presigned download URL for the bill PDF
func (h *OrderHandlers) GetBillPDF(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "order ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	url, err := h.billService.BillPDFURL(ctx, orderID)
	if err != nil {
		return common.SendNotFoundError(c, "Bill PDF")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
