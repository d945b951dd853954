package handlers

import (
	"errors"
	"net/http"

	"bloodbank_backend/internal/services"
	"bloodbank_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DonationHandler holds the donation service.
type DonationHandler struct {
	donationService services.DonationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(ds services.DonationService) *DonationHandler {
	return &DonationHandler{donationService: ds}
}

// RecordDonation handles registering a new blood unit from a donor into a
// blood bank's inventory.
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	var req services.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordDonation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "All fields are required"))
		return
	}

	bloodID, err := h.donationService.RecordDonation(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonationValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "All fields are required"))
		case errors.Is(err, services.ErrInvalidBloodType):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid blood type"))
		case errors.Is(err, services.ErrDonorNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Donor not found"))
		case errors.Is(err, services.ErrBloodBankNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Blood bank not found"))
		default:
			utils.LogError(err, "RecordDonation: Error from donationService.RecordDonation")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to record donation"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation recorded successfully", "blood_id": bloodID})
}
