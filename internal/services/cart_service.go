package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ukitchen/internal/caching"
	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrTableRequired  = errors.New("a table must be selected")
	ErrWaiterRequired = errors.New("a waiter must be selected")
)

// CheckoutRequest carries everything the menu screen collects for
// submitting an order.
type CheckoutRequest struct {
	ClientID    uuid.UUID
	TableID     uuid.UUID
	WaiterID    uuid.UUID
	Description *string
}

// CartLine is one rendered cart entry. Entries whose dish has vanished
// from the catalog are skipped, not errored.
type CartLine struct {
	DishID    string  `json:"dish_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Lines      []CartLine `json:"lines"`
	GrandTotal float64    `json:"grand_total"`
}

type CartService interface {
	AddItem(ctx context.Context, clientID uuid.UUID, dishID string, delta int) (models.Cart, error)
	View(ctx context.Context, clientID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, clientID uuid.UUID) error
	Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error)
}

type cartService struct {
	cacheSvc     caching.CacheService
	dishSvc      DishService
	orderSvc     OrderServiceInterface
	tableRepo    repositories.TableRepository
	employeeRepo repositories.EmployeeRepository
	prepTime     time.Duration
	cartTTL      time.Duration
}

func NewCartService(cacheSvc caching.CacheService, dishSvc DishService, orderSvc OrderServiceInterface,
	tableRepo repositories.TableRepository, employeeRepo repositories.EmployeeRepository,
	prepTime, cartTTL time.Duration) CartService {
	return &cartService{
		cacheSvc:     cacheSvc,
		dishSvc:      dishSvc,
		orderSvc:     orderSvc,
		tableRepo:    tableRepo,
		employeeRepo: employeeRepo,
		prepTime:     prepTime,
		cartTTL:      cartTTL,
	}
}

// AddItem applies a quantity delta to the client's cart. A delta that
// brings an entry to zero or below removes it.
func (s *cartService) AddItem(ctx context.Context, clientID uuid.UUID, dishID string, delta int) (models.Cart, error) {
	if delta > 0 {
		id, err := uuid.Parse(dishID)
		if err != nil {
			return nil, fmt.Errorf("invalid dish ID: %w", err)
		}
		dish, err := s.dishSvc.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if dish == nil {
			return nil, errors.New("dish not found")
		}
	}

	cart, err := s.cacheSvc.GetCart(ctx, clientID)
	if err != nil {
		return nil, err
	}

	cart.Add(dishID, delta)

	if len(cart) == 0 {
		if err := s.cacheSvc.DeleteCart(ctx, clientID); err != nil {
			return nil, err
		}
		return cart, nil
	}
	if err := s.cacheSvc.SetCart(ctx, clientID, cart, s.cartTTL); err != nil {
		return nil, err
	}
	return cart, nil
}

// View renders the cart against live catalog prices
func (s *cartService) View(ctx context.Context, clientID uuid.UUID) (*CartView, error) {
	cart, err := s.cacheSvc.GetCart(ctx, clientID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogByID(ctx)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: []CartLine{}}
	for _, item := range cart.Items() {
		dish, ok := catalog[item.DishID]
		if !ok {
			continue // dish removed from catalog mid-session
		}
		line := CartLine{
			DishID:    item.DishID,
			Name:      dish.Name,
			Quantity:  item.Quantity,
			UnitPrice: dish.Price,
			LineTotal: float64(item.Quantity) * dish.Price,
		}
		view.Lines = append(view.Lines, line)
		view.GrandTotal += line.LineTotal
	}
	return view, nil
}

func (s *cartService) Clear(ctx context.Context, clientID uuid.UUID) error {
	return s.cacheSvc.DeleteCart(ctx, clientID)
}

// Checkout turns the client's cart into a pendiente order. Preconditions:
// non-empty cart, table and waiter selected. On success the cart is
// cleared; on any failure it is left untouched.
func (s *cartService) Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error) {
	if req.TableID == uuid.Nil {
		return nil, ErrTableRequired
	}
	if req.WaiterID == uuid.Nil {
		return nil, ErrWaiterRequired
	}

	cart, err := s.cacheSvc.GetCart(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	table, err := s.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.New("table not found")
	}

	waiter, err := s.employeeRepo.GetByID(ctx, req.WaiterID)
	if err != nil {
		return nil, err
	}
	if waiter == nil || waiter.Role != models.EmployeeRoleWaiter {
		return nil, errors.New("selected employee is not a waiter")
	}

	catalog, err := s.catalogByID(ctx)
	if err != nil {
		return nil, err
	}
	lookup := func(dishID string) (float64, bool) {
		dish, ok := catalog[dishID]
		if !ok {
			return 0, false
		}
		return dish.Price, true
	}

	now := time.Now()
	order := &models.Order{
		ID:               uuid.New(),
		Description:      req.Description,
		Status:           models.StatusPendiente,
		StartTime:        now,
		EstimatedEndTime: now.Add(s.prepTime),
		Subtotal:         cart.GrandTotal(lookup),
		ClientID:         req.ClientID,
		TableID:          &req.TableID,
		WaiterID:         &req.WaiterID,
	}
	for _, item := range cart.Items() {
		dish, ok := catalog[item.DishID]
		if !ok {
			continue // vanished dish contributes nothing
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			DishID:    dish.ID,
			Quantity:  item.Quantity,
			UnitPrice: dish.Price,
		})
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.orderSvc.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	// Cart clearing happens only after the order is safely persisted
	if err := s.cacheSvc.DeleteCart(ctx, req.ClientID); err != nil {
		return order, fmt.Errorf("order %s created but cart not cleared: %w", order.ID, err)
	}
	return order, nil
}

func (s *cartService) catalogByID(ctx context.Context) (map[string]*models.Dish, error) {
	dishes, err := s.dishSvc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Dish, len(dishes))
	for _, dish := range dishes {
		byID[dish.ID.String()] = dish
	}
	return byID, nil
}
