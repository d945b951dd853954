package services

import (
	"database/sql"
	"errors"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/pkg/utils"
)

// --- Custom Service Errors for Donors ---
var (
	ErrDonorNotFound   = errors.New("donor not found")
	ErrDonorValidation = errors.New("required fields missing")
	ErrDonorInUse      = errors.New("donor cannot be deleted as they are referenced in other records")
)

// --- Donor DTOs ---
type CreateDonorRequest struct {
	FirstName        string  `json:"f_name"`
	MiddleInitial    *string `json:"m_initial"`
	LastName         string  `json:"l_name"`
	DateOfBirth      string  `json:"date_of_birth"` // Format YYYY-MM-DD
	PhoneNumber      string  `json:"phone_number"`
	LastDonationDate *string `json:"last_donation_date"`
	Gender           *string `json:"gender"`
	BloodType        string  `json:"blood_type"`
	BloodBankID      *int64  `json:"bb_id"`
}

type UpdateDonorRequest struct {
	FirstName        string  `json:"f_name"`
	MiddleInitial    *string `json:"m_initial"`
	LastName         string  `json:"l_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	PhoneNumber      string  `json:"phone_number"`
	LastDonationDate *string `json:"last_donation_date"`
	Gender           *string `json:"gender"`
	BloodBankID      *int64  `json:"bb_id"`
}

// --- DonorService Interface ---
type DonorService interface {
	CreateDonor(req CreateDonorRequest) (int64, error)
	GetDonors() ([]models.Donor, error)
	GetDonorByID(donorID int64) (*models.Donor, error)
	UpdateDonor(donorID int64, req UpdateDonorRequest) error
	DeleteDonor(donorID int64) error
}

// --- donorService Implementation ---
type donorService struct {
	donorRepo repositories.DonorRepository
	db        *sql.DB
}

// NewDonorService creates a new instance of DonorService.
func NewDonorService(repo repositories.DonorRepository, db *sql.DB) DonorService {
	return &donorService{
		donorRepo: repo,
		db:        db,
	}
}

// CreateDonor validates and registers a new donor. The blood type is
// checked against the canonical set but lives on the donated units, not
// the donor row.
func (s *donorService) CreateDonor(req CreateDonorRequest) (int64, error) {
	if utils.IsEmpty(req.FirstName) || utils.IsEmpty(req.LastName) ||
		utils.IsEmpty(req.DateOfBirth) || utils.IsEmpty(req.PhoneNumber) ||
		utils.IsEmpty(req.BloodType) {
		return 0, ErrDonorValidation
	}
	if !models.IsValidBloodType(req.BloodType) {
		return 0, ErrInvalidBloodType
	}

	donor := &models.Donor{
		FirstName:        req.FirstName,
		MiddleInitial:    req.MiddleInitial,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		PhoneNumber:      req.PhoneNumber,
		LastDonationDate: req.LastDonationDate,
		Gender:           req.Gender,
		BloodBankID:      req.BloodBankID,
	}
	return s.donorRepo.CreateDonor(s.db, donor)
}

// GetDonors returns all donors, newest first, with joined blood bank names.
func (s *donorService) GetDonors() ([]models.Donor, error) {
	return s.donorRepo.GetDonors()
}

// GetDonorByID returns a single donor.
func (s *donorService) GetDonorByID(donorID int64) (*models.Donor, error) {
	donor, err := s.donorRepo.GetDonorByID(donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	return donor, nil
}

// UpdateDonor overwrites all mutable fields of an existing donor. The last
// donation date is deliberately overwritable here to allow manual
// corrections outside the donation-recording path.
func (s *donorService) UpdateDonor(donorID int64, req UpdateDonorRequest) error {
	donor := &models.Donor{
		ID:               donorID,
		FirstName:        req.FirstName,
		MiddleInitial:    req.MiddleInitial,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		PhoneNumber:      req.PhoneNumber,
		LastDonationDate: req.LastDonationDate,
		Gender:           req.Gender,
		BloodBankID:      req.BloodBankID,
	}

	err := s.donorRepo.UpdateDonor(s.db, donor)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDonorNotFound
		}
		return err
	}
	return nil
}

// DeleteDonor removes a donor unless blood records still reference them.
func (s *donorService) DeleteDonor(donorID int64) error {
	err := s.donorRepo.DeleteDonor(s.db, donorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDonorNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrDonorInUse
		}
		return err
	}
	return nil
}
