package handlers

import (
	"errors"
	"net/http"

	"bloodbank_backend/internal/services"
	"bloodbank_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RecipientHandler holds the recipient service.
type RecipientHandler struct {
	recipientService services.RecipientService
}

// NewRecipientHandler creates a new RecipientHandler.
func NewRecipientHandler(rs services.RecipientService) *RecipientHandler {
	return &RecipientHandler{recipientService: rs}
}

// CreateRecipient handles the creation of a new recipient.
func (h *RecipientHandler) CreateRecipient(c *gin.Context) {
	var req services.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateRecipient: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Required fields missing"))
		return
	}

	id, err := h.recipientService.CreateRecipient(req)
	if err != nil {
		if errors.Is(err, services.ErrRecipientValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Required fields missing"))
			return
		}
		if errors.Is(err, services.ErrInvalidBloodType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid blood type"))
			return
		}
		utils.LogError(err, "CreateRecipient: Error from recipientService.CreateRecipient")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to create recipient"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipient created successfully", "id": id})
}

// GetRecipients handles fetching all recipients.
func (h *RecipientHandler) GetRecipients(c *gin.Context) {
	recipients, err := h.recipientService.GetRecipients()
	if err != nil {
		utils.LogError(err, "GetRecipients: Error from recipientService.GetRecipients")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch recipients"))
		return
	}
	c.JSON(http.StatusOK, recipients)
}

// GetRecipientByID handles fetching a single recipient by ID.
func (h *RecipientHandler) GetRecipientByID(c *gin.Context) {
	recipientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid recipient ID format"))
		return
	}

	recipient, err := h.recipientService.GetRecipientByID(recipientID)
	if err != nil {
		if errors.Is(err, services.ErrRecipientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Recipient not found"))
			return
		}
		utils.LogError(err, "GetRecipientByID: Error from recipientService.GetRecipientByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch recipient"))
		return
	}
	c.JSON(http.StatusOK, recipient)
}

// UpdateRecipient handles updating a recipient.
func (h *RecipientHandler) UpdateRecipient(c *gin.Context) {
	recipientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid recipient ID format"))
		return
	}

	var req services.UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateRecipient: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if err := h.recipientService.UpdateRecipient(recipientID, req); err != nil {
		if errors.Is(err, services.ErrRecipientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Recipient not found"))
			return
		}
		if errors.Is(err, services.ErrInvalidBloodType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid blood type"))
			return
		}
		utils.LogError(err, "UpdateRecipient: Error from recipientService.UpdateRecipient")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to update recipient"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipient updated successfully"})
}

// DeleteRecipient handles deleting a recipient.
func (h *RecipientHandler) DeleteRecipient(c *gin.Context) {
	recipientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid recipient ID format"))
		return
	}

	if err := h.recipientService.DeleteRecipient(recipientID); err != nil {
		if errors.Is(err, services.ErrRecipientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Recipient not found"))
			return
		}
		utils.LogError(err, "DeleteRecipient: Error from recipientService.DeleteRecipient")
		if errors.Is(err, services.ErrRecipientInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to delete recipient. May have related records."))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to delete recipient"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipient deleted successfully"})
}
