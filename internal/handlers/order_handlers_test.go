package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ukitchen/internal/common"
	"ukitchen/internal/middleware"
	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlersTestSuite struct {
	suite.Suite
	mockOrderService *MockOrderService
	mockBillService  *MockBillService
	handlers         *OrderHandlers
	echo             *echo.Echo
}

func (suite *OrderHandlersTestSuite) SetupTest() {
	suite.mockOrderService = new(MockOrderService)
	suite.mockBillService = new(MockBillService)
	suite.handlers = NewOrderHandlers(suite.mockOrderService, suite.mockBillService)
	suite.echo = echo.New()
}

func (suite *OrderHandlersTestSuite) TearDownTest() {
	suite.mockOrderService.AssertExpectations(suite.T())
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *OrderHandlersTestSuite) storedOrder() *models.Order {
	return &models.Order{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		Status:    models.StatusPendiente,
		StartTime: time.Now(),
		Subtotal:  42.0,
	}
}

// getOrderContext builds an echo context for GET /orders/:id with the
// given identity values in the request context, the way the JWT
// middleware populates them.
func (suite *OrderHandlersTestSuite) getOrderContext(orderID uuid.UUID, role string, clientID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := req.Context()
	if role != "" {
		ctx = context.WithValue(ctx, common.RoleKey, role)
	}
	if clientID != nil {
		ctx = context.WithValue(ctx, common.ClientIDKey, *clientID)
	}
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	return c, rec
}

func (suite *OrderHandlersTestSuite) TestGetOrder_ClientCannotSeeForeignOrder() {
	order := suite.storedOrder()
	suite.mockOrderService.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	otherClient := uuid.New()
	c, rec := suite.getOrderContext(order.ID, middleware.RoleClient, &otherClient)

	err := suite.handlers.GetOrder(c)

	suite.NoError(err)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.NotContains(rec.Body.String(), order.ClientID.String())
}

func (suite *OrderHandlersTestSuite) TestGetOrder_ClientSeesOwnOrder() {
	order := suite.storedOrder()
	suite.mockOrderService.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	c, rec := suite.getOrderContext(order.ID, middleware.RoleClient, &order.ClientID)

	err := suite.handlers.GetOrder(c)

	suite.NoError(err)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), order.ID.String())
}

func (suite *OrderHandlersTestSuite) TestGetOrder_ClientWithoutClientIDGetsNotFound() {
	order := suite.storedOrder()
	suite.mockOrderService.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	c, rec := suite.getOrderContext(order.ID, middleware.RoleClient, nil)

	err := suite.handlers.GetOrder(c)

	suite.NoError(err)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *OrderHandlersTestSuite) TestGetOrder_StaffSeesAnyOrder() {
	order := suite.storedOrder()
	suite.mockOrderService.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil)

	c, rec := suite.getOrderContext(order.ID, middleware.RoleEmployee, nil)

	err := suite.handlers.GetOrder(c)

	suite.NoError(err)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), order.ID.String())
}

func (suite *OrderHandlersTestSuite) TestGetOrder_InvalidIDRejected() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := suite.handlers.GetOrder(c)

	suite.NoError(err)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "GetOrderByID")
}

func TestOrderHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlersTestSuite))
}
