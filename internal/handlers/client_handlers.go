package handlers

import (
	"net/http"

	"ukitchen/internal/common"
	"ukitchen/internal/models"
	"ukitchen/internal/services"

	"github.com/labstack/echo/v4"
)

// ClientHandlers handles client-related HTTP requests
type ClientHandlers struct {
	clientService services.ClientService
}

func NewClientHandlers(clientService services.ClientService) *ClientHandlers {
	return &ClientHandlers{clientService: clientService}
}

// clientResponse decorates a client with its derived penalty tier
type clientResponse struct {
	*models.Client
	PenaltyTier models.PenaltyTier `json:"penalty_tier"`
}

func toClientResponse(client *models.Client) clientResponse {
	return clientResponse{Client: client, PenaltyTier: client.Tier()}
}

// ListClientsRequest represents query parameters for listing clients
type ListClientsRequest struct {
	Tier   string `query:"tier"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// ListClients handles getting a list of clients, optionally filtered by
// penalty tier
func (h *ClientHandlers) ListClients(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	limit, offset, err := common.ValidatePaginationParams(req.Limit, req.Offset)
	if err != nil {
		return common.SendValidationError(c, "offset", err.Error())
	}

	filter := &models.ClientSearchFilter{Limit: limit, Offset: offset}
	if req.Tier != "" {
		tier := models.PenaltyTier(req.Tier)
		switch tier {
		case models.PenaltyNone, models.PenaltyLow, models.PenaltyMedium, models.PenaltyHigh:
			filter.Tier = &tier
		default:
			return common.SendValidationError(c, "tier", "tier must be one of none, low, medium, high")
		}
	}

	clients, err := h.clientService.List(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to list clients")
	}

	resp := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, toClientResponse(client))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"clients": resp,
		"limit":   limit,
		"offset":  offset,
	})
}

// CreateClientRequest represents the client creation request payload
type CreateClientRequest struct {
	DNI     int64   `json:"dni" validate:"required"`
	Penalty float64 `json:"penalty"`
}

// CreateClient handles creating a new client
func (h *ClientHandlers) CreateClient(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.DNI <= 0 {
		return common.SendValidationError(c, "dni", "dni must be a positive number")
	}
	if req.Penalty < 0 {
		return common.SendValidationError(c, "penalty", "penalty cannot be negative")
	}

	client := &models.Client{
		DNI:     req.DNI,
		Penalty: req.Penalty,
	}
	if err := h.clientService.Create(ctx, client); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusCreated, "Client created successfully", toClientResponse(client))
}

// GetClient handles getting client details by ID
func (h *ClientHandlers) GetClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := common.ValidateUUID(c.Param("id"), "client ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	client, err := h.clientService.GetByID(ctx, clientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load client")
	}
	if client == nil {
		return common.SendNotFoundError(c, "Client")
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// UpdateClientRequest represents the client update request payload
type UpdateClientRequest struct {
	DNI     *int64   `json:"dni"`
	Penalty *float64 `json:"penalty"`
}

// UpdateClient handles updating client details
func (h *ClientHandlers) UpdateClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := common.ValidateUUID(c.Param("id"), "client ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	client, err := h.clientService.GetByID(ctx, clientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load client")
	}
	if client == nil {
		return common.SendNotFoundError(c, "Client")
	}

	if req.DNI != nil {
		if *req.DNI <= 0 {
			return common.SendValidationError(c, "dni", "dni must be a positive number")
		}
		client.DNI = *req.DNI
	}
	if req.Penalty != nil {
		if *req.Penalty < 0 {
			return common.SendValidationError(c, "penalty", "penalty cannot be negative")
		}
		client.Penalty = *req.Penalty
	}

	if err := h.clientService.Update(ctx, client); err != nil {
		return common.SendServerError(c, err.Error())
	}
	return common.SendEnvelope(c, http.StatusOK, "Client updated successfully", toClientResponse(client))
}

// DeleteClient handles deleting a client
func (h *ClientHandlers) DeleteClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := common.ValidateUUID(c.Param("id"), "client ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	client, err := h.clientService.GetByID(ctx, clientID)
	if err != nil {
		return common.SendServerError(c, "Failed to load client")
	}
	if client == nil {
		return common.SendNotFoundError(c, "Client")
	}

	if err := h.clientService.Delete(ctx, clientID); err != nil {
		return common.SendServerError(c, "Failed to delete client")
	}
	return common.SendEnvelope(c, http.StatusOK, "Client deleted successfully", nil)
}
