package handlers

import (
	"errors"
	"net/http"

	"bloodbank_backend/internal/services"
	"bloodbank_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// SearchInventory handles filtered blood inventory searches.
func (h *InventoryHandler) SearchInventory(c *gin.Context) {
	var req services.SearchInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SearchInventory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Blood type is required"))
		return
	}

	results, err := h.inventoryService.SearchInventory(req)
	if err != nil {
		if errors.Is(err, services.ErrSearchValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Blood type is required"))
			return
		}
		utils.LogError(err, "SearchInventory: Error from inventoryService.SearchInventory")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to search inventory"))
		return
	}
	c.JSON(http.StatusOK, results)
}
