package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrOrderItemsRequired = errors.New("order must contain at least one item")
)

// OrderServiceInterface defines the interface for order service operations
type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, filter *models.OrderSearchFilter) ([]*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	NextActions(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatus, error)

	PrepareOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ReadyOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	DeliverOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	tableRepo repositories.TableRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repositories.OrderRepository, tableRepo repositories.TableRepository) OrderServiceInterface {
	return &orderService{
		orderRepo: orderRepo,
		tableRepo: tableRepo,
	}
}

// CreateOrder persists a new order in status pendiente. The subtotal must
// already reflect the item prices at creation time; it is never recomputed
// afterwards even if dish prices change.
func (s *orderService) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ClientID == uuid.Nil {
		return errors.New("order client is required")
	}
	if len(order.Items) == 0 {
		return ErrOrderItemsRequired
	}
	for i := range order.Items {
		if order.Items[i].Quantity <= 0 {
			return fmt.Errorf("order item quantity must be positive")
		}
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.StartTime.IsZero() {
		order.StartTime = time.Now()
	}
	if order.Status == "" {
		order.Status = models.StatusPendiente
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if order.TableID != nil {
		if err := s.tableRepo.SetOccupied(ctx, *order.TableID, true); err != nil {
			log.Printf("Failed to mark table %s occupied: %v", order.TableID, err)
		}
	}
	return nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, filter *models.OrderSearchFilter) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

// UpdateOrder applies a full-record update. A status change carried in the
// record goes through the same transition check as the action endpoints.
func (s *orderService) UpdateOrder(ctx context.Context, order *models.Order) error {
	existing, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrOrderNotFound
	}

	if order.Status != existing.Status {
		if !existing.Status.CanTransition(order.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, order.Status)
		}
	}

	// Items and subtotal are fixed at creation time
	order.Subtotal = existing.Subtotal
	order.ClientID = existing.ClientID
	order.StartTime = existing.StartTime

	return s.orderRepo.Update(ctx, order)
}

// UpdateStatus moves an order to the requested status if the transition is
// legal. On failure the stored order is left unchanged.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	order.Status = next
	if next.IsTerminal() {
		now := time.Now()
		order.EndTime = &now
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	// The table is released only once the terminal status is persisted
	if next.IsTerminal() {
		s.freeTable(ctx, order)
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.orderRepo.Delete(ctx, orderID)
}

// NextActions returns the legal next statuses for an order, used by the UI
// to decide which action buttons to offer.
func (s *orderService) NextActions(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatus, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order.Status.NextStatuses(), nil
}

// PrepareOrder moves pendiente -> en_preparacion
func (s *orderService) PrepareOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.StatusEnPreparacion)
}

// ReadyOrder moves en_preparacion -> listo
func (s *orderService) ReadyOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.StatusListo)
}

// DeliverOrder moves listo -> entregado and stamps the end time
func (s *orderService) DeliverOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.StatusEntregado)
}

// CancelOrder moves any non-terminal order to cancelado
func (s *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.StatusCancelado)
}

func (s *orderService) freeTable(ctx context.Context, order *models.Order) {
	if order.TableID == nil {
		return
	}
	if err := s.tableRepo.SetOccupied(ctx, *order.TableID, false); err != nil {
		log.Printf("Failed to free table %s: %v", order.TableID, err)
	}
}
