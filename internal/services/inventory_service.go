package services

import (
	"errors"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/pkg/utils"
)

// --- Custom Service Errors for Inventory Search ---
var (
	ErrSearchValidation = errors.New("blood type is required")
)

// --- Inventory DTOs ---
type SearchInventoryRequest struct {
	BloodType       string  `json:"blood_type"`
	BloodBankID     *int64  `json:"bloodbank_id"`
	ExpirationStart *string `json:"expiration_start"` // Format YYYY-MM-DD, inclusive
	ExpirationEnd   *string `json:"expiration_end"`   // Format YYYY-MM-DD, inclusive
}

// --- InventoryService Interface ---
type InventoryService interface {
	SearchInventory(req SearchInventoryRequest) ([]models.BloodSearchResult, error)
}

// --- inventoryService Implementation ---
type inventoryService struct {
	bloodRepo repositories.BloodRepository
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(repo repositories.BloodRepository) InventoryService {
	return &inventoryService{bloodRepo: repo}
}

// SearchInventory returns blood units matching the required blood type and
// any supplied optional filters, soonest-expiring first. Expired stock is
// not filtered out; its days-until-expiration comes back negative.
func (s *inventoryService) SearchInventory(req SearchInventoryRequest) ([]models.BloodSearchResult, error) {
	if utils.IsEmpty(req.BloodType) {
		return nil, ErrSearchValidation
	}

	filters := models.BloodSearchFilters{
		BloodType:       req.BloodType,
		BloodBankID:     req.BloodBankID,
		ExpirationStart: req.ExpirationStart,
		ExpirationEnd:   req.ExpirationEnd,
	}
	return s.bloodRepo.SearchInventory(filters)
}
