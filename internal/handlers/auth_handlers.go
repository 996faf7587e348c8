package handlers

import (
	"net/http"
	"time"

	"ukitchen/internal/common"
	"ukitchen/internal/middleware"
	"ukitchen/internal/models"
	"ukitchen/internal/repositories"
	"ukitchen/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
	clientRepo  repositories.ClientRepository
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository, clientRepo repositories.ClientRepository) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		userRepo:    userRepo,
		clientRepo:  clientRepo,
	}
}

// EffectiveRole maps an account to the role carried in its tokens: the
// admin account role wins, otherwise the linked record decides.
func EffectiveRole(user *models.User) string {
	if user.Role == models.UserRoleAdmin {
		return middleware.RoleAdmin
	}
	if user.EmployeeID != nil {
		return middleware.RoleEmployee
	}
	return middleware.RoleClient
}

// LoginResponse represents the login response
type LoginResponse struct {
	models.TokenResponse
	User *models.User `json:"user"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login handles user login with email and password
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	tokenResponse, err := h.authService.GenerateTokens(ctx, user, EffectiveRole(user))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		TokenResponse: *tokenResponse,
		User:          user,
	})
}

// SignupRequest represents the signup request payload. Signup always
// creates a client account; staff accounts are provisioned by an admin.
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	DNI         int64  `json:"dni" validate:"required"`
}

// Signup handles client registration
func (h *AuthHandlers) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email, password and full name are required")
	}
	if req.DNI <= 0 {
		return common.SendValidationError(c, "dni", "dni must be a positive number")
	}

	existingUser, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return echo.NewHTTPError(http.StatusConflict, "User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	client := &models.Client{
		ID:      uuid.New(),
		DNI:     req.DNI,
		Penalty: 0,
	}
	if err := h.clientRepo.Create(ctx, client); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create client record")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hashedPassword),
		PhoneNumber:  req.PhoneNumber,
		Role:         models.UserRoleUser,
		ClientID:     &client.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := h.userRepo.Create(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	tokenResponse, err := h.authService.GenerateTokens(ctx, user, EffectiveRole(user))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusCreated, LoginResponse{
		TokenResponse: *tokenResponse,
		User:          user,
	})
}

// RefreshRequest represents the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh exchanges a valid refresh token for a new token pair
func (h *AuthHandlers) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Refresh token is required")
	}

	userID, err := h.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	tokenResponse, err := h.authService.GenerateTokens(ctx, user, EffectiveRole(user))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, tokenResponse)
}

// Logout revokes the presented refresh token
func (h *AuthHandlers) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Refresh token is required")
	}

	if err := h.authService.RevokeToken(ctx, req.RefreshToken); err != nil {
		return common.SendServerError(c, "Failed to revoke token")
	}
	return common.SendEnvelope(c, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated user's account
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
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
