package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// EmployeeHandlers handles employee-related HTTP requests
type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

// ListEmployeesRequest represents query parameters for listing employees
type ListEmployeesRequest struct {
	Role   string `query:"role"`
	Shift  string `query:"shift"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// ListEmployees handles getting a list of employees, optionally filtered
// by role (chef, waiter) and shift
func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.EmployeeSearchFilter{Limit: limit, Offset: offset}
	if req.Role != "" {
		if req.Role != models.EmployeeRoleChef && req.Role != models.EmployeeRoleWaiter {
			return common.SendValidationError(c, "role", "role must be chef or waiter")
		}
		filter.Role = &req.Role
	}
	if req.Shift != "" {
		filter.Shift = &req.Shift
	}

	employees, err := h.employeeService.List(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list employees")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": employees,
		"limit":     limit,
		"offset":    offset,
	})
}

// CreateEmployeeRequest represents the employee creation request payload.
// Salary is derived from worked hours and hourly rate and cannot be set
// directly.
type CreateEmployeeRequest struct {
	TaxID        string   `json:"tax_id" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Shift        string   `json:"shift" validate:"required"`
	WorkedHours  float64  `json:"worked_hours"`
	PriceHour    float64  `json:"price_hour"`
	Hierarchy    *string  `json:"hierarchy"`
	Tag          *string  `json:"tag"`
	Calification *float64 `json:"calification"`
	Sector       *string  `json:"sector"`
}

// CreateEmployee handles creating a new employee
func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	employee := &models.Employee{
		TaxID:        req.TaxID,
		Role:         req.Role,
		Shift:        req.Shift,
		WorkedHours:  req.WorkedHours,
		PriceHour:    req.PriceHour,
		Hierarchy:    req.Hierarchy,
		Tag:          req.Tag,
		Calification: req.Calification,
		Sector:       req.Sector,
	}
	if err := h.employeeService.Create(ctx, employee); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Employee created successfully", employee)
}

// GetEmployee handles getting employee details by ID
func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return common.SendServerError(c, "Failed to load employee")
	}
	if employee == nil {
		return common.SendNotFoundError(c, "Employee")
	}
	return c.JSON(http.StatusOK, employee)
}

// UpdateEmployeeRequest represents the employee update request payload
type UpdateEmployeeRequest struct {
	TaxID        *string  `json:"tax_id"`
	Shift        *string  `json:"shift"`
	WorkedHours  *float64 `json:"worked_hours"`
	PriceHour    *float64 `json:"price_hour"`
	Hierarchy    *string  `json:"hierarchy"`
	Tag          *string  `json:"tag"`
	Calification *float64 `json:"calification"`
	Sector       *string  `json:"sector"`
}

// UpdateEmployee handles updating employee details. The stored salary is
// recomputed whenever worked hours or the hourly rate change.
func (h *EmployeeHandlers) UpdateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	employee, err := h.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return common.SendServerError(c, "Failed to load employee")
	}
	if employee == nil {
		return common.SendNotFoundError(c, "Employee")
	}

	if req.TaxID != nil {
		employee.TaxID = *req.TaxID
	}
	if req.Shift != nil {
		employee.Shift = *req.Shift
	}
	if req.WorkedHours != nil {
		employee.WorkedHours = *req.WorkedHours
	}
	if req.PriceHour != nil {
		employee.PriceHour = *req.PriceHour
	}
	if req.Hierarchy != nil {
		employee.Hierarchy = req.Hierarchy
	}
	if req.Tag != nil {
		employee.Tag = req.Tag
	}
	if req.Calification != nil {
		employee.Calification = req.Calification
	}
	if req.Sector != nil {
		employee.Sector = req.Sector
	}

	if err := h.employeeService.Update(ctx, employee); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee handles deleting an employee
func (h *EmployeeHandlers) DeleteEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	employeeID, err := common.ValidateUUID(c.Param("id"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return common.SendServerError(c, "Failed to load employee")
	}
	if employee == nil {
		return common.SendNotFoundError(c, "Employee")
	}

	if err := h.employeeService.Delete(ctx, employeeID); err != nil {
		return common.SendServerError(c, "Failed to delete employee")
	}
	return common.SendEnvelope(c, http.StatusOK, "Employee deleted successfully", nil)
}
