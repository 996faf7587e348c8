package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// SupplierHandlers handles supplier-related HTTP requests
type SupplierHandlers struct {
	supplierService services.SupplierService
}

func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{supplierService: supplierService}
}

// ListSuppliersRequest represents query parameters for listing suppliers
type ListSuppliersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListSuppliers handles getting a list of suppliers
func (h *SupplierHandlers) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListSuppliersRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	suppliers, err := h.supplierService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list suppliers")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"suppliers": suppliers,
		"limit":     limit,
		"offset":    offset,
	})
}

// CreateSupplierRequest represents the supplier creation request payload
type CreateSupplierRequest struct {
	CompanyName    string `json:"company_name" validate:"required"`
	TaxID          string `json:"tax_id" validate:"required"`
	Mail           string `json:"mail"`
	PhoneNumber    string `json:"phone_number"`
	TypeIngredient string `json:"type_ingredient"`
	FullName       string `json:"full_name"`
	BusinessName   string `json:"business_name"`
}

// CreateSupplier handles creating a new supplier
func (h *SupplierHandlers) CreateSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	supplier := &models.Supplier{
		CompanyName:    req.CompanyName,
		TaxID:          req.TaxID,
		Mail:           req.Mail,
		PhoneNumber:    req.PhoneNumber,
		TypeIngredient: req.TypeIngredient,
		FullName:       req.FullName,
		BusinessName:   req.BusinessName,
	}
	if err := h.supplierService.Create(ctx, supplier); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Supplier created successfully", supplier)
}

// GetSupplier handles getting supplier details by ID
func (h *SupplierHandlers) GetSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	supplier, err := h.supplierService.GetByID(ctx, supplierID)
	if err != nil {
		return common.SendServerError(c, "Failed to load supplier")
	}
	if supplier == nil {
		return common.SendNotFoundError(c, "Supplier")
	}
	return c.JSON(http.StatusOK, supplier)
}

// UpdateSupplierRequest represents the supplier update request payload
type UpdateSupplierRequest struct {
	CompanyName    *string `json:"company_name"`
	TaxID          *string `json:"tax_id"`
	Mail           *string `json:"mail"`
	PhoneNumber    *string `json:"phone_number"`
	TypeIngredient *string `json:"type_ingredient"`
	FullName       *string `json:"full_name"`
	BusinessName   *string `json:"business_name"`
}

// UpdateSupplier handles updating supplier details
func (h *SupplierHandlers) UpdateSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	supplier, err := h.supplierService.GetByID(ctx, supplierID)
	if err != nil {
		return common.SendServerError(c, "Failed to load supplier")
	}
	if supplier == nil {
		return common.SendNotFoundError(c, "Supplier")
	}

	if req.CompanyName != nil {
		supplier.CompanyName = *req.CompanyName
	}
	if req.TaxID != nil {
		supplier.TaxID = *req.TaxID
	}
	if req.Mail != nil {
		supplier.Mail = *req.Mail
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
	}
	if req.TypeIngredient != nil {
		supplier.TypeIngredient = *req.TypeIngredient
	}
	if req.FullName != nil {
		supplier.FullName = *req.FullName
	}
	if req.BusinessName != nil {
		supplier.BusinessName = *req.BusinessName
	}

	if err := h.supplierService.Update(ctx, supplier); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Supplier updated successfully", supplier)
}

// DeleteSupplier handles deleting a supplier
func (h *SupplierHandlers) DeleteSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	supplier, err := h.supplierService.GetByID(ctx, supplierID)
	if err != nil {
		return common.SendServerError(c, "Failed to load supplier")
	}
	if supplier == nil {
		return common.SendNotFoundError(c, "Supplier")
	}

	if err := h.supplierService.Delete(ctx, supplierID); err != nil {
		return common.SendServerError(c, "Failed to delete supplier")
	}
	return common.SendEnvelope(c, http.StatusOK, "Supplier deleted successfully", nil)
}
