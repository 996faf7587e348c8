package middleware

import (
	"context"
	"net/http"

	"ukitchen/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWTConfig returns the echo-jwt configuration for protected routes.
// On success the caller's identity (user id, role and the optional
// client/employee links) is loaded into the request context.
func JWTConfig(jwtSecret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(jwtSecret),
		SuccessHandler: func(c echo.Context) {
			populateIdentity(c)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}
}

// populateIdentity copies the validated token claims into the request
// context. Claims that fail to parse are dropped; RequireRoles rejects
// requests whose role never made it in.
func populateIdentity(c echo.Context) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	ctx := c.Request().Context()

	if sub, ok := claims["sub"].(string); ok {
		if userID, err := uuid.Parse(sub); err == nil {
			ctx = context.WithValue(ctx, common.UserIDKey, userID)
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		ctx = context.WithValue(ctx, common.RoleKey, role)
	}
	if clientClaim, ok := claims["client_id"].(string); ok {
		if clientID, err := uuid.Parse(clientClaim); err == nil {
			ctx = context.WithValue(ctx, common.ClientIDKey, clientID)
		}
	}
	if employeeClaim, ok := claims["employee_id"].(string); ok {
		if employeeID, err := uuid.Parse(employeeClaim); err == nil {
			ctx = context.WithValue(ctx, common.EmployeeIDKey, employeeID)
		}
	}

	c.SetRequest(c.Request().WithContext(ctx))
}
