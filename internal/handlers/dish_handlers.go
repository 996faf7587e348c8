package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// DishHandlers handles dish-related HTTP requests
type DishHandlers struct {
	dishService services.DishService
}

func NewDishHandlers(dishService services.DishService) *DishHandlers {
	return &DishHandlers{dishService: dishService}
}

// ListDishesRequest represents query parameters for listing dishes
type ListDishesRequest struct {
	Tag             string   `query:"tag"`
	MinPrice        *float64 `query:"min_price"`
	MaxPrice        *float64 `query:"max_price"`
	MinCalification *float64 `query:"min_calification"`
	Limit           int      `query:"limit"`
	Offset          int      `query:"offset"`
}

// ListDishes handles getting a list of dishes
func (h *DishHandlers) ListDishes(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListDishesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.DishSearchFilter{
		MinPrice:        req.MinPrice,
		MaxPrice:        req.MaxPrice,
		MinCalification: req.MinCalification,
		Limit:           limit,
		Offset:          offset,
	}
	if req.Tag != "" {
		filter.Tag = &req.Tag
	}

	dishes, err := h.dishService.List(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list dishes")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"dishes": dishes,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateDishRequest represents the dish creation request payload
type CreateDishRequest struct {
	Cod           string   `json:"cod" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price" validate:"required"`
	Tag           string   `json:"tag"`
	ChefID        *string  `json:"chef_id"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// CreateDish handles creating a new dish
func (h *DishHandlers) CreateDish(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateDishRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidatePositiveFloat(req.Price, "price", 1_000_000); err != nil {
		return common.SendValidationError(c, "price", err.Error())
	}

	dish := &models.Dish{
		Cod:         req.Cod,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tag:         req.Tag,
	}
	if req.ChefID != nil && *req.ChefID != "" {
		chefID, err := common.ValidateUUID(*req.ChefID, "chef ID")
		if err != nil {
			return common.SendValidationError(c, "chef_id", err.Error())
		}
		dish.ChefID = &chefID
	}
	for _, raw := range req.IngredientIDs {
		ingredientID, err := common.ValidateUUID(raw, "ingredient ID")
		if err != nil {
			return common.SendValidationError(c, "ingredient_ids", err.Error())
		}
		dish.IngredientIDs = append(dish.IngredientIDs, ingredientID)
	}

	if err := h.dishService.Create(ctx, dish); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Dish created successfully", dish)
}

// GetDish handles getting dish details by ID
func (h *DishHandlers) GetDish(c echo.Context) error {
	ctx := c.Request().Context()

	dishID, err := common.ValidateUUID(c.Param("id"), "dish ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	dish, err := h.dishService.GetByID(ctx, dishID)
	if err != nil {
		return common.SendServerError(c, "Failed to load dish")
	}
	if dish == nil {
		return common.SendNotFoundError(c, "Dish")
	}
	return c.JSON(http.StatusOK, dish)
}

// UpdateDishRequest represents the dish update request payload
type UpdateDishRequest struct {
	Cod           *string   `json:"cod"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	Calification  *float64  `json:"calification"`
	Tag           *string   `json:"tag"`
	ChefID        *string   `json:"chef_id"`
	IngredientIDs *[]string `json:"ingredient_ids"`
}

// UpdateDish handles updating dish details
func (h *DishHandlers) UpdateDish(c echo.Context) error {
	ctx := c.Request().Context()

	dishID, err := common.ValidateUUID(c.Param("id"), "dish ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateDishRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	dish, err := h.dishService.GetByID(ctx, dishID)
	if err != nil {
		return common.SendServerError(c, "Failed to load dish")
	}
	if dish == nil {
		return common.SendNotFoundError(c, "Dish")
	}

	if req.Cod != nil {
		dish.Cod = *req.Cod
	}
	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = req.Description
	}
	if req.Price != nil {
		if err := common.ValidatePositiveFloat(*req.Price, "price", 1_000_000); err != nil {
			return common.SendValidationError(c, "price", err.Error())
		}
		dish.Price = *req.Price
	}
	if req.Calification != nil {
		dish.Calification = req.Calification
	}
	if req.Tag != nil {
		dish.Tag = *req.Tag
	}
	if req.ChefID != nil {
		if *req.ChefID == "" {
			dish.ChefID = nil
		} else {
			chefID, err := common.ValidateUUID(*req.ChefID, "chef ID")
			if err != nil {
				return common.SendValidationError(c, "chef_id", err.Error())
			}
			dish.ChefID = &chefID
		}
	}
	if req.IngredientIDs != nil {
		dish.IngredientIDs = dish.IngredientIDs[:0]
		for _, raw := range *req.IngredientIDs {
			ingredientID, err := common.ValidateUUID(raw, "ingredient ID")
			if err != nil {
				return common.SendValidationError(c, "ingredient_ids", err.Error())
			}
			dish.IngredientIDs = append(dish.IngredientIDs, ingredientID)
		}
	}

	if err := h.dishService.Update(ctx, dish); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Dish updated successfully", dish)
}

// DeleteDish handles deleting a dish
func (h *DishHandlers) DeleteDish(c echo.Context) error {
	ctx := c.Request().Context()

	dishID, err := common.ValidateUUID(c.Param("id"), "dish ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	dish, err := h.dishService.GetByID(ctx, dishID)
	if err != nil {
		return common.SendServerError(c, "Failed to load dish")
	}
	if dish == nil {
		return common.SendNotFoundError(c, "Dish")
	}

	if err := h.dishService.Delete(ctx, dishID); err != nil {
		return common.SendServerError(c, "Failed to delete dish")
	}
	return common.SendEnvelope(c, http.StatusOK, "Dish deleted successfully", nil)
}

// UploadPicture handles uploading a dish picture via multipart form
func (h *DishHandlers) UploadPicture(c echo.Context) error {
	ctx := c.Request().Context()

	dishID, err := common.ValidateUUID(c.Param("id"), "dish ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return common.SendClientError(c, "A picture file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := h.dishService.UploadPicture(ctx, dishID, contentType, file, fileHeader.Size)
	if err != nil {
		return common.SendServerError(c, "Failed to store picture")
	}
	return common.SendEnvelope(c, http.StatusOK, "Picture uploaded successfully", map[string]string{
		"object_name": objectName,
	})
}

// GetPictureURL handles generating a presigned URL for a dish picture
func (h *DishHandlers) GetPictureURL(c echo.Context) error {
	ctx := c.Request().Context()

	dishID, err := common.ValidateUUID(c.Param("id"), "dish ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	url, err := h.dishService.PictureURL(ctx, dishID)
	if err != nil {
		return common.SendNotFoundError(c, "Dish picture")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
