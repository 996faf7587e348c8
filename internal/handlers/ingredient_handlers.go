package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IngredientHandlers handles ingredient-related HTTP requests
type IngredientHandlers struct {
	ingredientService services.IngredientService
}

func NewIngredientHandlers(ingredientService services.IngredientService) *IngredientHandlers {
	return &IngredientHandlers{ingredientService: ingredientService}
}

// ingredientResponse decorates an ingredient with its low stock flag
type ingredientResponse struct {
	*models.Ingredient
	LowStock bool `json:"low_stock"`
}

func toIngredientResponse(ingredient *models.Ingredient) ingredientResponse {
	return ingredientResponse{Ingredient: ingredient, LowStock: ingredient.LowStock()}
}

// ListIngredientsRequest represents query parameters for listing ingredients
type ListIngredientsRequest struct {
	LowStock      *bool  `query:"low_stock"`
	SupplierID    string `query:"supplier_id"`
	UnitOfMeasure string `query:"unit_of_measure"`
	Limit         int    `query:"limit"`
	Offset        int    `query:"offset"`
}

// ListIngredients handles getting a list of ingredients
func (h *IngredientHandlers) ListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListIngredientsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.IngredientSearchFilter{
		LowStock: req.LowStock,
		Limit:    limit,
		Offset:   offset,
	}
	if req.SupplierID != "" {
		supplierID, err := common.ValidateUUID(req.SupplierID, "supplier ID")
		if err != nil {
			return common.SendValidationError(c, "supplier_id", err.Error())
		}
		filter.SupplierID = &supplierID
	}
	if req.UnitOfMeasure != "" {
		filter.UnitOfMeasure = &req.UnitOfMeasure
	}

	ingredients, err := h.ingredientService.List(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list ingredients")
	}

	resp := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		resp = append(resp, toIngredientResponse(ingredient))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ingredients": resp,
		"limit":       limit,
		"offset":      offset,
	})
}

// ListLowStock handles getting ingredients at or below their stock limit
func (h *IngredientHandlers) ListLowStock(c echo.Context) error {
	ctx := c.Request().Context()

	ingredients, err := h.ingredientService.ListLowStock(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list low stock ingredients")
	}

	resp := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		resp = append(resp, toIngredientResponse(ingredient))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ingredients": resp,
	})
}

// CreateIngredientRequest represents the ingredient creation request payload
type CreateIngredientRequest struct {
	Cod           string   `json:"cod" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	Stock         int      `json:"stock"`
	UnitOfMeasure string   `json:"unit_of_measure" validate:"required"`
	Origin        string   `json:"origin"`
	StockLimit    int      `json:"stock_limit"`
	SupplierIDs   []string `json:"supplier_ids"`
}

func parseSupplierIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := common.ValidateUUID(s, "supplier ID")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreateIngredient handles creating a new ingredient
func (h *IngredientHandlers) CreateIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateIngredientRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if !models.ValidUnitOfMeasure(req.UnitOfMeasure) {
		return common.SendValidationError(c, "unit_of_measure", "unknown unit of measure")
	}
	if req.Stock < 0 {
		return common.SendValidationError(c, "stock", "stock cannot be negative")
	}
	if req.StockLimit < 0 {
		return common.SendValidationError(c, "stock_limit", "stock_limit cannot be negative")
	}

	supplierIDs, err := parseSupplierIDs(req.SupplierIDs)
	if err != nil {
		return common.SendValidationError(c, "supplier_ids", err.Error())
	}

	ingredient := &models.Ingredient{
		Cod:           req.Cod,
		Name:          req.Name,
		Description:   req.Description,
		Stock:         req.Stock,
		UnitOfMeasure: req.UnitOfMeasure,
		Origin:        req.Origin,
		StockLimit:    req.StockLimit,
		SupplierIDs:   supplierIDs,
	}
	if err := h.ingredientService.Create(ctx, ingredient); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Ingredient created successfully", toIngredientResponse(ingredient))
}

// GetIngredient handles getting ingredient details by ID
func (h *IngredientHandlers) GetIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	ingredientID, err := common.ValidateUUID(c.Param("id"), "ingredient ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	ingredient, err := h.ingredientService.GetByID(ctx, ingredientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load ingredient")
	}
	if ingredient == nil {
		return common.SendNotFoundError(c, "Ingredient")
	}
	return c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

// UpdateIngredientRequest represents the ingredient update request payload
type UpdateIngredientRequest struct {
	Cod           *string   `json:"cod"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Stock         *int      `json:"stock"`
	UnitOfMeasure *string   `json:"unit_of_measure"`
	Origin        *string   `json:"origin"`
	StockLimit    *int      `json:"stock_limit"`
	SupplierIDs   *[]string `json:"supplier_ids"`
}

// UpdateIngredient handles updating ingredient details
func (h *IngredientHandlers) UpdateIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	ingredientID, err := common.ValidateUUID(c.Param("id"), "ingredient ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateIngredientRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	ingredient, err := h.ingredientService.GetByID(ctx, ingredientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load ingredient")
	}
	if ingredient == nil {
		return common.SendNotFoundError(c, "Ingredient")
	}

	if req.Cod != nil {
		ingredient.Cod = *req.Cod
	}
	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Description != nil {
		ingredient.Description = req.Description
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return common.SendValidationError(c, "stock", "stock cannot be negative")
		}
		ingredient.Stock = *req.Stock
	}
	if req.UnitOfMeasure != nil {
		if !models.ValidUnitOfMeasure(*req.UnitOfMeasure) {
			return common.SendValidationError(c, "unit_of_measure", "unknown unit of measure")
		}
		ingredient.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.Origin != nil {
		ingredient.Origin = *req.Origin
	}
	if req.StockLimit != nil {
		if *req.StockLimit < 0 {
			return common.SendValidationError(c, "stock_limit", "stock_limit cannot be negative")
		}
		ingredient.StockLimit = *req.StockLimit
	}
	if req.SupplierIDs != nil {
		supplierIDs, err := parseSupplierIDs(*req.SupplierIDs)
		if err != nil {
			return common.SendValidationError(c, "supplier_ids", err.Error())
		}
		ingredient.SupplierIDs = supplierIDs
	}

	if err := h.ingredientService.Update(ctx, ingredient); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Ingredient updated successfully", toIngredientResponse(ingredient))
}

// UpdateStockRequest represents the stock adjustment payload
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// UpdateStock handles adjusting an ingredient's stock level
func (h *IngredientHandlers) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()

	ingredientID, err := common.ValidateUUID(c.Param("id"), "ingredient ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Stock < 0 {
		return common.SendValidationError(c, "stock", "stock cannot be negative")
	}

	ingredient, err := h.ingredientService.UpdateStock(ctx, ingredientID, req.Stock)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}
	if ingredient == nil {
		return common.SendNotFoundError(c, "Ingredient")
	}
	return common.SendEnvelope(c, http.StatusOK, "Stock updated successfully", toIngredientResponse(ingredient))
}

// DeleteIngredient handles deleting an ingredient
func (h *IngredientHandlers) DeleteIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	ingredientID, err := common.ValidateUUID(c.Param("id"), "ingredient ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	ingredient, err := h.ingredientService.GetByID(ctx, ingredientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load ingredient")
	}
	if ingredient == nil {
		return common.SendNotFoundError(c, "Ingredient")
	}

	if err := h.ingredientService.Delete(ctx, ingredientID); err != nil {
		return common.SendServerError(c, "Failed to delete ingredient")
	}
	return common.SendEnvelope(c, http.StatusOK, "Ingredient deleted successfully", nil)
}
