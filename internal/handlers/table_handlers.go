package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// TableHandlers handles table-related HTTP requests
type TableHandlers struct {
	tableService services.TableService
}

func NewTableHandlers(tableService services.TableService) *TableHandlers {
	return &TableHandlers{tableService: tableService}
}

// tableResponse decorates a table with its display label
type tableResponse struct {
	*models.Table
	Label string `json:"label"`
}

func toTableResponse(table *models.Table) tableResponse {
	return tableResponse{Table: table, Label: table.Label()}
}

// ListTablesRequest represents query parameters for listing tables
type ListTablesRequest struct {
	Occupied *bool  `query:"occupied"`
	Sector   string `query:"sector"`
	Capacity *int   `query:"capacity"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

// ListTables handles getting a list of tables
func (h *TableHandlers) ListTables(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListTablesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.TableSearchFilter{
		Occupied: req.Occupied,
		Capacity: req.Capacity,
		Limit:    limit,
		Offset:   offset,
	}
	if req.Sector != "" {
		filter.Sector = &req.Sector
	}

	tables, err := h.tableService.List(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list tables")
	}

	resp := make([]tableResponse, 0, len(tables))
	for _, table := range tables {
		resp = append(resp, toTableResponse(table))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tables": resp,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateTableRequest represents the table creation request payload
type CreateTableRequest struct {
	Cod         string  `json:"cod" validate:"required"`
	Capacity    int     `json:"capacity" validate:"required"`
	Description *string `json:"description"`
	Sector      string  `json:"sector"`
}

// CreateTable handles creating a new table
func (h *TableHandlers) CreateTable(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidatePositiveInteger(req.Capacity, "capacity", 100); err != nil {
		return common.SendValidationError(c, "capacity", err.Error())
	}

	table := &models.Table{
		Cod:         req.Cod,
		Capacity:    req.Capacity,
		Description: req.Description,
		Sector:      req.Sector,
	}
	if err := h.tableService.Create(ctx, table); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Table created successfully", toTableResponse(table))
}

// GetTable handles getting table details by ID
func (h *TableHandlers) GetTable(c echo.Context) error {
	ctx := c.Request().Context()

	tableID, err := common.ValidateUUID(c.Param("id"), "table ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	table, err := h.tableService.GetByID(ctx, tableID)
	if err != nil {
		return common.SendServerError(c, "Failed to load table")
	}
	if table == nil {
		return common.SendNotFoundError(c, "Table")
	}
	return c.JSON(http.StatusOK, toTableResponse(table))
}

// UpdateTableRequest represents the table update request payload
type UpdateTableRequest struct {
	Cod         *string `json:"cod"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
	Occupied    *bool   `json:"occupied"`
	Sector      *string `json:"sector"`
}

// UpdateTable handles updating table details
func (h *TableHandlers) UpdateTable(c echo.Context) error {
	ctx := c.Request().Context()

	tableID, err := common.ValidateUUID(c.Param("id"), "table ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateTableRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	table, err := h.tableService.GetByID(ctx, tableID)
	if err != nil {
		return common.SendServerError(c, "Failed to load table")
	}
	if table == nil {
		return common.SendNotFoundError(c, "Table")
	}

	if req.Cod != nil {
		table.Cod = *req.Cod
	}
	if req.Capacity != nil {
		if err := common.ValidatePositiveInteger(*req.Capacity, "capacity", 100); err != nil {
			return common.SendValidationError(c, "capacity", err.Error())
		}
		table.Capacity = *req.Capacity
	}
	if req.Description != nil {
		table.Description = req.Description
	}
	if req.Occupied != nil {
		table.Occupied = *req.Occupied
	}
	if req.Sector != nil {
		table.Sector = *req.Sector
	}

	if err := h.tableService.Update(ctx, table); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Table updated successfully", toTableResponse(table))
}

// DeleteTable handles deleting a table
func (h *TableHandlers) DeleteTable(c echo.Context) error {
	ctx := c.Request().Context()

	tableID, err := common.ValidateUUID(c.Param("id"), "table ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	table, err := h.tableService.GetByID(ctx, tableID)
	if err != nil {
		return common.SendServerError(c, "Failed to load table")
	}
	if table == nil {
		return common.SendNotFoundError(c, "Table")
	}

	if err := h.tableService.Delete(ctx, tableID); err != nil {
		return common.SendServerError(c, "Failed to delete table")
	}
	return common.SendEnvelope(c, http.StatusOK, "Table deleted successfully", nil)
}
