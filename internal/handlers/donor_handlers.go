package handlers

import (
	"errors"
	"net/http"

	"bloodbank_backend/internal/services"
	"bloodbank_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DonorHandler holds the donor service.
type DonorHandler struct {
	donorService services.DonorService
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(ds services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: ds}
}

// CreateDonor handles the creation of a new donor.
func (h *DonorHandler) CreateDonor(c *gin.Context) {
	var req services.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateDonor: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Required fields missing"))
		return
	}

	id, err := h.donorService.CreateDonor(req)
	if err != nil {
		if errors.Is(err, services.ErrDonorValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Required fields missing"))
			return
		}
		if errors.Is(err, services.ErrInvalidBloodType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid blood type"))
			return
		}
		utils.LogError(err, "CreateDonor: Error from donorService.CreateDonor")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to create donor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donor created successfully", "id": id})
}

// GetDonors handles fetching all donors.
func (h *DonorHandler) GetDonors(c *gin.Context) {
	donors, err := h.donorService.GetDonors()
	if err != nil {
		utils.LogError(err, "GetDonors: Error from donorService.GetDonors")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch donors"))
		return
	}
	c.JSON(http.StatusOK, donors)
}

// GetDonorByID handles fetching a single donor by ID.
func (h *DonorHandler) GetDonorByID(c *gin.Context) {
	donorID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid donor ID format"))
		return
	}

	donor, err := h.donorService.GetDonorByID(donorID)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Donor not found"))
			return
		}
		utils.LogError(err, "GetDonorByID: Error from donorService.GetDonorByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch donor"))
		return
	}
	c.JSON(http.StatusOK, donor)
}

// UpdateDonor handles updating a donor.
func (h *DonorHandler) UpdateDonor(c *gin.Context) {
	donorID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid donor ID format"))
		return
	}

	var req services.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateDonor: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if err := h.donorService.UpdateDonor(donorID, req); err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Donor not found"))
			return
		}
		utils.LogError(err, "UpdateDonor: Error from donorService.UpdateDonor")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to update donor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donor updated successfully"})
}

// DeleteDonor handles deleting a donor.
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	donorID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid donor ID format"))
		return
	}

	if err := h.donorService.DeleteDonor(donorID); err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Donor not found"))
			return
		}
		utils.LogError(err, "DeleteDonor: Error from donorService.DeleteDonor")
		if errors.Is(err, services.ErrDonorInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to delete donor. May have related records."))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to delete donor"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donor deleted successfully"})
}
