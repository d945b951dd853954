package handlers

import (
	"errors"
	"net/http"

	"bloodbank_backend/internal/services"
	"bloodbank_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InstitutionHandler holds the institution service.
type InstitutionHandler struct {
	institutionService services.InstitutionService
}

// NewInstitutionHandler creates a new InstitutionHandler.
func NewInstitutionHandler(is services.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutionService: is}
}

// CreateInstitution handles the creation of a blood bank or hospital.
func (h *InstitutionHandler) CreateInstitution(c *gin.Context) {
	var req services.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateInstitution: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Institution type and name are required"))
		return
	}

	id, err := h.institutionService.CreateInstitution(req)
	if err != nil {
		if errors.Is(err, services.ErrInstitutionValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Institution type and name are required"))
			return
		}
		if errors.Is(err, services.ErrInvalidInstitutionType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid institution type"))
			return
		}
		utils.LogError(err, "CreateInstitution: Error from institutionService.CreateInstitution")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to create institution"))
		return
	}

	message := "Blood Bank created successfully"
	if req.InstitutionType == services.InstitutionTypeHospital {
		message = "Hospital created successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
}

// GetBloodBanks handles fetching all blood banks.
func (h *InstitutionHandler) GetBloodBanks(c *gin.Context) {
	banks, err := h.institutionService.GetBloodBanks()
	if err != nil {
		utils.LogError(err, "GetBloodBanks: Error from institutionService.GetBloodBanks")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch blood banks"))
		return
	}
	c.JSON(http.StatusOK, banks)
}

// GetHospitals handles fetching all hospitals.
func (h *InstitutionHandler) GetHospitals(c *gin.Context) {
	hospitals, err := h.institutionService.GetHospitals()
	if err != nil {
		utils.LogError(err, "GetHospitals: Error from institutionService.GetHospitals")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Failed to fetch hospitals"))
		return
	}
	c.JSON(http.StatusOK, hospitals)
}
