package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// UserHandlers handles account administration requests
type UserHandlers struct {
	userRepo repositories.UserRepository
}

func NewUserHandlers(userRepo repositories.UserRepository) *UserHandlers {
	return &UserHandlers{userRepo: userRepo}
}

// ListUsersRequest represents query parameters for listing users
type ListUsersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListUsers handles getting a list of user accounts
func (h *UserHandlers) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	users, err := h.userRepo.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list users")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users":  users,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateUserRequest represents the account creation payload. Admins use
// this to provision staff accounts linked to an employee record.
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	FullName    string  `json:"full_name" validate:"required"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	ClientID    *string `json:"client_id"`
	EmployeeID  *string `json:"employee_id"`
}

// CreateUser handles creating a new user account
func (h *UserHandlers) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return common.SendClientError(c, "Email, password and full name are required")
	}
	if req.Role == "" {
		req.Role = models.UserRoleUser
	}
	if req.Role != models.UserRoleAdmin && req.Role != models.UserRoleUser {
		return common.SendValidationError(c, "role", "role must be admin or user")
	}

	existing, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return common.SendConflictError(c, "User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return common.SendServerError(c, "Failed to hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hashedPassword),
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
	}
	if req.ClientID != nil && *req.ClientID != "" {
		clientID, err := common.ValidateUUID(*req.ClientID, "client ID")
		if err != nil {
			return common.SendValidationError(c, "client_id", err.Error())
		}
		user.ClientID = &clientID
	}
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		employeeID, err := common.ValidateUUID(*req.EmployeeID, "employee ID")
		if err != nil {
			return common.SendValidationError(c, "employee_id", err.Error())
		}
		user.EmployeeID = &employeeID
	}

	if err := h.userRepo.Create(ctx, user); err != nil {
		return common.SendServerError(c, "Failed to create user")
	}
	return common.SendEnvelope(c, http.StatusCreated, "User created successfully", user)
}

// GetUser handles getting user account details by ID
func (h *UserHandlers) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ValidateUUID(c.Param("id"), "user ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return common.SendServerError(c, "Failed to load user")
	}
	if user == nil {
		return common.SendNotFoundError(c, "User")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUserRequest represents the account update payload
type UpdateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role"`
}

// UpdateUser handles updating a user account
func (h *UserHandlers) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ValidateUUID(c.Param("id"), "user ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return common.SendServerError(c, "Failed to load user")
	}
	if user == nil {
		return common.SendNotFoundError(c, "User")
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return common.SendServerError(c, "Failed to hash password")
		}
		user.PasswordHash = string(hashedPassword)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		if *req.Role != models.UserRoleAdmin && *req.Role != models.UserRoleUser {
			return common.SendValidationError(c, "role", "role must be admin or user")
		}
		user.Role = *req.Role
	}

	if err := h.userRepo.Update(ctx, user); err != nil {
		return common.SendServerError(c, "Failed to update user")
	}
	return common.SendEnvelope(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles deleting a user account
func (h *UserHandlers) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ValidateUUID(c.Param("id"), "user ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return common.SendServerError(c, "Failed to load user")
	}
	if user == nil {
		return common.SendNotFoundError(c, "User")
	}

	if err := h.userRepo.Delete(ctx, userID); err != nil {
		return common.SendServerError(c, "Failed to delete user")
	}
	return common.SendEnvelope(c, http.StatusOK, "User deleted successfully", nil)
}
