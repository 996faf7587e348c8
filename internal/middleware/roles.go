package middleware

import (
	"net/http"

	"ukitchen/internal/common"

	"github.com/labstack/echo/v4"
)

// Effective roles carried in the access token. An account with the
// admin role maps to RoleAdmin; a user account maps to RoleClient or
// RoleEmployee depending on which record it is linked to.
const (
	RoleAdmin    = "admin"
	RoleClient   = "client"
	RoleEmployee = "employee"
)

// MenuItem is one entry of the navigation menu, visible to the listed
// roles only.
type MenuItem struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Roles []string `json:"-"`
}

// Menu is the full navigation table. /v1/navigation filters it by the
// caller's role.
var Menu = []MenuItem{
	{Name: "Inicio", Path: "/home", Roles: []string{RoleAdmin, RoleClient, RoleEmployee}},
	{Name: "Menu", Path: "/menu", Roles: []string{RoleAdmin, RoleClient, RoleEmployee}},
	{Name: "Pedidos", Path: "/orders", Roles: []string{RoleAdmin, RoleClient, RoleEmployee}},
	{Name: "Clientes", Path: "/clients", Roles: []string{RoleAdmin}},
	{Name: "Empleados", Path: "/employees", Roles: []string{RoleAdmin}},
	{Name: "Mesas", Path: "/tables", Roles: []string{RoleAdmin, RoleEmployee}},
	{Name: "Ingredientes", Path: "/ingredients", Roles: []string{RoleAdmin, RoleEmployee}},
	{Name: "Platos", Path: "/dishes", Roles: []string{RoleAdmin, RoleEmployee}},
	{Name: "Proveedores", Path: "/suppliers", Roles: []string{RoleAdmin}},
	{Name: "Usuarios", Path: "/users", Roles: []string{RoleAdmin}},
}

// MenuForRole returns the menu entries visible to the given role.
func MenuForRole(role string) []MenuItem {
	items := make([]MenuItem, 0, len(Menu))
	for _, item := range Menu {
		for _, r := range item.Roles {
			if r == role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// RequireRoles rejects requests whose token role is not in the allowed
// set. It must run after JWTMiddleware.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
