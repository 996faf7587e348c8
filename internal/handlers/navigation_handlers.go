package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/middleware"

	"github.com/labstack/echo/v4"
)

// NavigationHandlers serves the role-filtered navigation menu
type NavigationHandlers struct{}

func NewNavigationHandlers() *NavigationHandlers {
	return &NavigationHandlers{}
}

type navigationItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// GetNavigation returns the menu entries visible to the caller's role
func (h *NavigationHandlers) GetNavigation(c echo.Context) error {
	role, ok := common.GetRoleFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	visible := middleware.MenuForRole(role)
	items := make([]navigationItem, 0, len(visible))
	for _, item := range visible {
		items = append(items, navigationItem{Name: item.Name, Path: item.Path})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
	})
}
