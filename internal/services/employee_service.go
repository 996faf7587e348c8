package services

import (
	"context"
	"errors"

	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

type EmployeeService interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.EmployeeSearchFilter) ([]*models.Employee, error)
	ListWaiters(ctx context.Context) ([]*models.Employee, error)
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
	}
}

func validateEmployee(employee *models.Employee) error {
	if employee.TaxID == "" {
		return errors.New("employee tax ID is required")
	}
	if employee.Role != models.EmployeeRoleChef && employee.Role != models.EmployeeRoleWaiter {
		return errors.New("employee role must be chef or waiter")
	}
	switch employee.Shift {
	case models.ShiftManana, models.ShiftTarde, models.ShiftNoche:
	default:
		return errors.New("invalid employee shift")
	}
	if employee.WorkedHours < 0 {
		return errors.New("worked hours cannot be negative")
	}
	if employee.PriceHour < 0 {
		return errors.New("price per hour cannot be negative")
	}
	return nil
}

func (s *employeeService) Create(ctx context.Context, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	employee.ID = uuid.New()
	// Stored salary is always derived, never taken from the request
	employee.Salary = models.Salary(employee.WorkedHours, employee.PriceHour)

	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) Update(ctx context.Context, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	existing, err := s.employeeRepo.GetByID(ctx, employee.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("employee not found")
	}

	employee.CreatedAt = existing.CreatedAt
	employee.Salary = models.Salary(employee.WorkedHours, employee.PriceHour)

	return s.employeeRepo.Update(ctx, employee)
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeService) List(ctx context.Context, filter *models.EmployeeSearchFilter) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, filter)
}

// ListWaiters feeds the order-assignment selector
func (s *employeeService) ListWaiters(ctx context.Context) ([]*models.Employee, error) {
	role := models.EmployeeRoleWaiter
	return s.employeeRepo.List(ctx, &models.EmployeeSearchFilter{Role: &role, Limit: 200})
}
