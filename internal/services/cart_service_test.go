package services

import (
	"context"
	"testing"
	"time"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	mockCache    *MockCacheService
	mockDishSvc  *MockDishService
	mockOrderSvc *MockOrderRepository
	mockTables   *MockTableRepository
	mockStaff    *MockEmployeeRepository
	service      CartService
	ctx          context.Context
	clientID     uuid.UUID
	dish         *models.Dish
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.mockCache = &MockCacheService{}
	suite.mockDishSvc = &MockDishService{}
	suite.mockOrderSvc = &MockOrderRepository{}
	suite.mockTables = &MockTableRepository{}
	suite.mockStaff = &MockEmployeeRepository{}

	orderSvc := NewOrderService(suite.mockOrderSvc, suite.mockTables)
	suite.service = NewCartService(suite.mockCache, suite.mockDishSvc, orderSvc,
		suite.mockTables, suite.mockStaff, 30*time.Minute, 2*time.Hour)

	suite.ctx = context.Background()
	suite.clientID = uuid.New()
	suite.dish = &models.Dish{
		ID:    uuid.New(),
		Cod:   "D-001",
		Name:  "Milanesa napolitana",
		Price: 18.5,
	}
}

func (suite *CartServiceTestSuite) TearDownTest() {
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockDishSvc.AssertExpectations(suite.T())
	suite.mockOrderSvc.AssertExpectations(suite.T())
	suite.mockTables.AssertExpectations(suite.T())
	suite.mockStaff.AssertExpectations(suite.T())
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (suite *CartServiceTestSuite) TestAddItem() {
	dishKey := suite.dish.ID.String()

	suite.mockDishSvc.On("GetByID", suite.ctx, suite.dish.ID).Return(suite.dish, nil)
	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{}, nil)
	suite.mockCache.On("SetCart", suite.ctx, suite.clientID, models.Cart{dishKey: 2}, 2*time.Hour).Return(nil)

	cart, err := suite.service.AddItem(suite.ctx, suite.clientID, dishKey, 2)

	suite.NoError(err)
	suite.Equal(2, cart[dishKey])
}

func (suite *CartServiceTestSuite) TestAddItem_UnknownDishRejected() {
	dishID := uuid.New()

	suite.mockDishSvc.On("GetByID", suite.ctx, dishID).Return(nil, nil)

	_, err := suite.service.AddItem(suite.ctx, suite.clientID, dishID.String(), 1)

	suite.Error(err)
	suite.mockCache.AssertNotCalled(suite.T(), "SetCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestAddItem_RemovingLastItemDeletesCart() {
	dishKey := suite.dish.ID.String()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{dishKey: 1}, nil)
	suite.mockCache.On("DeleteCart", suite.ctx, suite.clientID).Return(nil)

	cart, err := suite.service.AddItem(suite.ctx, suite.clientID, dishKey, -1)

	suite.NoError(err)
	suite.Empty(cart)
}

func (suite *CartServiceTestSuite) TestView_SkipsVanishedDishes() {
	dishKey := suite.dish.ID.String()
	ghostKey := uuid.NewString()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{dishKey: 2, ghostKey: 5}, nil)
	suite.mockDishSvc.On("Catalog", suite.ctx).Return([]*models.Dish{suite.dish}, nil)

	view, err := suite.service.View(suite.ctx, suite.clientID)

	suite.NoError(err)
	suite.Len(view.Lines, 1)
	suite.Equal(dishKey, view.Lines[0].DishID)
	suite.Equal(2, view.Lines[0].Quantity)
	suite.Equal(18.5, view.Lines[0].UnitPrice)
	suite.Equal(37.0, view.Lines[0].LineTotal)
	suite.Equal(37.0, view.GrandTotal)
}

func (suite *CartServiceTestSuite) checkoutRequest() (*CheckoutRequest, *models.Table, *models.Employee) {
	table := &models.Table{ID: uuid.New(), Cod: "M1", Capacity: 4}
	waiter := &models.Employee{ID: uuid.New(), Role: models.EmployeeRoleWaiter}
	req := &CheckoutRequest{
		ClientID: suite.clientID,
		TableID:  table.ID,
		WaiterID: waiter.ID,
	}
	return req, table, waiter
}

func (suite *CartServiceTestSuite) TestCheckout() {
	req, table, waiter := suite.checkoutRequest()
	dishKey := suite.dish.ID.String()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{dishKey: 3}, nil)
	suite.mockTables.On("GetByID", suite.ctx, table.ID).Return(table, nil)
	suite.mockStaff.On("GetByID", suite.ctx, waiter.ID).Return(waiter, nil)
	suite.mockDishSvc.On("Catalog", suite.ctx).Return([]*models.Dish{suite.dish}, nil)
	suite.mockOrderSvc.On("Create", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)
	suite.mockTables.On("SetOccupied", suite.ctx, table.ID, true).Return(nil)
	suite.mockCache.On("DeleteCart", suite.ctx, suite.clientID).Return(nil)

	before := time.Now()
	order, err := suite.service.Checkout(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(models.StatusPendiente, order.Status)
	suite.Equal(suite.clientID, order.ClientID)
	suite.Equal(table.ID, *order.TableID)
	suite.Equal(waiter.ID, *order.WaiterID)
	suite.Equal(55.5, order.Subtotal)
	suite.Len(order.Items, 1)
	suite.Equal(suite.dish.ID, order.Items[0].DishID)
	suite.Equal(3, order.Items[0].Quantity)
	suite.Equal(18.5, order.Items[0].UnitPrice)

	// The estimate is the creation instant plus the configured prep time
	suite.WithinDuration(before.Add(30*time.Minute), order.EstimatedEndTime, 2*time.Second)
}

func (suite *CartServiceTestSuite) TestCheckout_EmptyCart() {
	req, _, _ := suite.checkoutRequest()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{}, nil)

	_, err := suite.service.Checkout(suite.ctx, req)

	suite.ErrorIs(err, ErrEmptyCart)
}

func (suite *CartServiceTestSuite) TestCheckout_TableRequired() {
	req, _, _ := suite.checkoutRequest()
	req.TableID = uuid.Nil

	_, err := suite.service.Checkout(suite.ctx, req)

	suite.ErrorIs(err, ErrTableRequired)
}

func (suite *CartServiceTestSuite) TestCheckout_WaiterRequired() {
	req, _, _ := suite.checkoutRequest()
	req.WaiterID = uuid.Nil

	_, err := suite.service.Checkout(suite.ctx, req)

	suite.ErrorIs(err, ErrWaiterRequired)
}

func (suite *CartServiceTestSuite) TestCheckout_NonWaiterRejected() {
	req, table, waiter := suite.checkoutRequest()
	waiter.Role = models.EmployeeRoleChef
	dishKey := suite.dish.ID.String()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{dishKey: 1}, nil)
	suite.mockTables.On("GetByID", suite.ctx, table.ID).Return(table, nil)
	suite.mockStaff.On("GetByID", suite.ctx, waiter.ID).Return(waiter, nil)

	_, err := suite.service.Checkout(suite.ctx, req)

	suite.Error(err)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestCheckout_CartKeptWhenOrderFails() {
	req, table, waiter := suite.checkoutRequest()
	dishKey := suite.dish.ID.String()

	suite.mockCache.On("GetCart", suite.ctx, suite.clientID).Return(models.Cart{dishKey: 1}, nil)
	suite.mockTables.On("GetByID", suite.ctx, table.ID).Return(table, nil)
	suite.mockStaff.On("GetByID", suite.ctx, waiter.ID).Return(waiter, nil)
	suite.mockDishSvc.On("Catalog", suite.ctx).Return([]*models.Dish{suite.dish}, nil)
	suite.mockOrderSvc.On("Create", suite.ctx, mock.AnythingOfType("*models.Order")).Return(context.DeadlineExceeded)

	_, err := suite.service.Checkout(suite.ctx, req)

	suite.Error(err)
	suite.mockCache.AssertNotCalled(suite.T(), "DeleteCart", mock.Anything, mock.Anything)
}
