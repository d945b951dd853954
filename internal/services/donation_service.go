package services

import (
	"database/sql"
	"errors"
	"fmt"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/pkg/utils"
)

// --- Custom Service Errors for Donations ---
var (
	ErrDonationValidation = errors.New("all fields are required")
	ErrBloodBankNotFound  = errors.New("blood bank not found")
)

// --- Donation DTOs ---
type RecordDonationRequest struct {
	DonorID         int64  `json:"donor_id"`
	BloodType       string `json:"blood_type"`
	ExpirationDate  string `json:"expiration_date"` // Format YYYY-MM-DD
	QuantityDonated int    `json:"quantity_donated"`
	BloodBankID     int64  `json:"bloodbank_id"`
}

// --- DonationService Interface ---
type DonationService interface {
	RecordDonation(req RecordDonationRequest) (int64, error)
}

// --- donationService Implementation ---
type donationService struct {
	donorRepo       repositories.DonorRepository
	institutionRepo repositories.InstitutionRepository
	bloodRepo       repositories.BloodRepository
	db              *sql.DB // For managing transactions
}

// NewDonationService creates a new instance of DonationService.
func NewDonationService(
	dr repositories.DonorRepository,
	ir repositories.InstitutionRepository,
	br repositories.BloodRepository,
	db *sql.DB,
) DonationService {
	return &donationService{
		donorRepo:       dr,
		institutionRepo: ir,
		bloodRepo:       br,
		db:              db,
	}
}

// RecordDonation registers a new blood unit from an existing donor into an
// existing blood bank's inventory and advances the donor's last donation
// date. The insert of the blood record, its storage link and the donor
// update run in a single transaction; none of them is visible unless all
// three succeed.
//
// The existence checks do not lock the donor or blood bank rows, so a
// concurrent delete between check and insert is caught by the foreign key
// constraints rather than here.
func (s *donationService) RecordDonation(req RecordDonationRequest) (int64, error) {
	if req.DonorID == 0 || utils.IsEmpty(req.BloodType) ||
		utils.IsEmpty(req.ExpirationDate) || req.QuantityDonated == 0 ||
		req.BloodBankID == 0 {
		return 0, ErrDonationValidation
	}
	if !models.IsValidBloodType(req.BloodType) {
		return 0, ErrInvalidBloodType
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	donorExists, err := s.donorRepo.DonorExists(tx, req.DonorID)
	if err != nil {
		return 0, err
	}
	if !donorExists {
		return 0, ErrDonorNotFound
	}

	bankExists, err := s.institutionRepo.BloodBankExists(tx, req.BloodBankID)
	if err != nil {
		return 0, err
	}
	if !bankExists {
		return 0, ErrBloodBankNotFound
	}

	blood := &models.Blood{
		BloodType:       req.BloodType,
		ExpirationDate:  req.ExpirationDate,
		QuantityDonated: req.QuantityDonated,
		DonorID:         req.DonorID,
	}
	bloodID, err := s.bloodRepo.CreateBlood(tx, blood)
	if err != nil {
		return 0, err
	}

	if err := s.bloodRepo.LinkToBloodBank(tx, bloodID, req.BloodBankID); err != nil {
		return 0, err
	}

	if err := s.donorRepo.UpdateLastDonationDate(tx, req.DonorID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit donation transaction: %w", err)
	}
	return bloodID, nil
}
