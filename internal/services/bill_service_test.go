package services

import (
	"context"
	"errors"
	"testing"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo  *MockBillRepository
	mockOrderRepo *MockOrderRepository
	mockDishRepo  *MockDishRepository
	mockMinio     *MockMinioService
	service       BillServiceInterface
	ctx           context.Context
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = &MockBillRepository{}
	suite.mockOrderRepo = &MockOrderRepository{}
	suite.mockDishRepo = &MockDishRepository{}
	suite.mockMinio = &MockMinioService{}
	suite.service = NewBillService(suite.mockBillRepo, suite.mockOrderRepo,
		suite.mockDishRepo, suite.mockMinio, "ukitchen")
	suite.ctx = context.Background()
}

func (suite *BillServiceTestSuite) TearDownTest() {
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockDishRepo.AssertExpectations(suite.T())
	suite.mockMinio.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}

func (suite *BillServiceTestSuite) deliveredOrder() *models.Order {
	return &models.Order{
		ID:       uuid.New(),
		Status:   models.StatusEntregado,
		Subtotal: 55.5,
		ClientID: uuid.New(),
		Items: []models.OrderItem{
			{ID: uuid.New(), DishID: uuid.New(), Quantity: 3, UnitPrice: 18.5},
		},
	}
}

func (suite *BillServiceTestSuite) TestCreateBill_RequiresDeliveredOrder() {
	order := suite.deliveredOrder()
	order.Status = models.StatusListo

	suite.mockOrderRepo.On("GetByID", suite.ctx, order.ID).Return(order, nil)

	_, err := suite.service.CreateBill(suite.ctx, order.ID, "cash")

	suite.ErrorIs(err, ErrOrderNotDelivered)
}

func (suite *BillServiceTestSuite) TestCreateBill_DuplicateRejected() {
	order := suite.deliveredOrder()
	existing := &models.Bill{ID: uuid.New(), OrderID: order.ID}

	suite.mockOrderRepo.On("GetByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockBillRepo.On("GetByOrderID", suite.ctx, order.ID).Return(existing, nil)

	_, err := suite.service.CreateBill(suite.ctx, order.ID, "cash")

	suite.Error(err)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_DuplicateCheckErrorPropagates() {
	order := suite.deliveredOrder()

	suite.mockOrderRepo.On("GetByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockBillRepo.On("GetByOrderID", suite.ctx, order.ID).
		Return(nil, errors.New("connection reset"))

	_, err := suite.service.CreateBill(suite.ctx, order.ID, "cash")

	suite.Error(err)
	suite.Contains(err.Error(), "connection reset")
	suite.mockBillRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_RendersAndStoresPDF() {
	order := suite.deliveredOrder()

	suite.mockOrderRepo.On("GetByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockBillRepo.On("GetByOrderID", suite.ctx, order.ID).Return(nil, nil)
	suite.mockBillRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Bill")).Return(nil)
	suite.mockDishRepo.On("GetByID", suite.ctx, order.Items[0].DishID).
		Return(&models.Dish{ID: order.Items[0].DishID, Name: "Milanesa"}, nil)
	suite.mockMinio.On("UploadObject", suite.ctx, "ukitchen", mock.AnythingOfType("string"),
		"application/pdf", mock.Anything, mock.AnythingOfType("int64")).Return(nil)
	suite.mockBillRepo.On("SetPDFObject", suite.ctx, mock.AnythingOfType("uuid.UUID"),
		mock.AnythingOfType("string")).Return(nil)

	bill, err := suite.service.CreateBill(suite.ctx, order.ID, "card")

	suite.NoError(err)
	suite.Equal(order.ID, bill.OrderID)
	suite.Equal(order.Subtotal, bill.Total)
	suite.NotNil(bill.PDFObject)
}
