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

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  EmployeeService
	ctx      context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockEmployeeRepository{}
	suite.service = NewEmployeeService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func validEmployee() *models.Employee {
	return &models.Employee{
		TaxID:       "20-30123456-7",
		Role:        models.EmployeeRoleWaiter,
		Shift:       models.ShiftTarde,
		WorkedHours: 120,
		PriceHour:   9.5,
	}
}

func (suite *EmployeeServiceTestSuite) TestCreate_DerivesSalary() {
	employee := validEmployee()
	employee.Salary = 999999 // whatever the request carried is discarded

	suite.mockRepo.On("Create", suite.ctx, employee).Return(nil)

	err := suite.service.Create(suite.ctx, employee)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)
	suite.Equal(1140.0, employee.Salary)
}

func (suite *EmployeeServiceTestSuite) TestCreate_RejectsInvalidRole() {
	employee := validEmployee()
	employee.Role = "manager"

	err := suite.service.Create(suite.ctx, employee)

	suite.Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreate_RejectsInvalidShift() {
	employee := validEmployee()
	employee.Shift = "madrugada"

	err := suite.service.Create(suite.ctx, employee)

	suite.Error(err)
}

func (suite *EmployeeServiceTestSuite) TestCreate_RejectsNegativeHours() {
	employee := validEmployee()
	employee.WorkedHours = -1

	err := suite.service.Create(suite.ctx, employee)

	suite.Error(err)
}

func (suite *EmployeeServiceTestSuite) TestUpdate_RecomputesSalaryAndPinsCreatedAt() {
	createdAt := time.Now().Add(-48 * time.Hour)
	employee := validEmployee()
	employee.ID = uuid.New()
	employee.WorkedHours = 80
	employee.PriceHour = 12
	employee.Salary = 1 // stale value from the request body

	existing := validEmployee()
	existing.ID = employee.ID
	existing.CreatedAt = createdAt

	suite.mockRepo.On("GetByID", suite.ctx, employee.ID).Return(existing, nil)
	suite.mockRepo.On("Update", suite.ctx, employee).Return(nil)

	err := suite.service.Update(suite.ctx, employee)

	suite.NoError(err)
	suite.Equal(960.0, employee.Salary)
	suite.Equal(createdAt, employee.CreatedAt)
}

func (suite *EmployeeServiceTestSuite) TestUpdate_NotFound() {
	employee := validEmployee()
	employee.ID = uuid.New()

	suite.mockRepo.On("GetByID", suite.ctx, employee.ID).Return(nil, nil)

	err := suite.service.Update(suite.ctx, employee)

	suite.Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestListWaiters() {
	waiters := []*models.Employee{validEmployee()}

	suite.mockRepo.On("List", suite.ctx, mock.MatchedBy(func(filter *models.EmployeeSearchFilter) bool {
		return filter.Role != nil && *filter.Role == models.EmployeeRoleWaiter
	})).Return(waiters, nil)

	result, err := suite.service.ListWaiters(suite.ctx)

	suite.NoError(err)
	suite.Equal(waiters, result)
}
