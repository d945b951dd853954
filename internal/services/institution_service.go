package services

import (
	"database/sql"
	"errors"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/pkg/utils"
)

// --- Custom Service Errors for Institutions ---
var (
	ErrInstitutionValidation  = errors.New("institution type and name are required")
	ErrInvalidInstitutionType = errors.New("invalid institution type")
)

// Institution type discriminators accepted by CreateInstitution.
const (
	InstitutionTypeBloodBank = "bloodbank"
	InstitutionTypeHospital  = "hospital"
)

// --- Institution DTOs ---
type CreateInstitutionRequest struct {
	InstitutionType string  `json:"institution_type"`
	InstitutionName string  `json:"institution_name"`
	Location        *string `json:"location"`
	PhoneNumber     *string `json:"phone_number"`
}

// --- InstitutionService Interface ---
type InstitutionService interface {
	CreateInstitution(req CreateInstitutionRequest) (int64, error)
	GetBloodBanks() ([]models.BloodBank, error)
	GetHospitals() ([]models.Hospital, error)
}

// --- institutionService Implementation ---
type institutionService struct {
	institutionRepo repositories.InstitutionRepository
	db              *sql.DB
}

// NewInstitutionService creates a new instance of InstitutionService.
func NewInstitutionService(repo repositories.InstitutionRepository, db *sql.DB) InstitutionService {
	return &institutionService{
		institutionRepo: repo,
		db:              db,
	}
}

// CreateInstitution registers a new blood bank or hospital depending on the
// request's institution type and returns the generated ID.
func (s *institutionService) CreateInstitution(req CreateInstitutionRequest) (int64, error) {
	if utils.IsEmpty(req.InstitutionType) || utils.IsEmpty(req.InstitutionName) {
		return 0, ErrInstitutionValidation
	}

	switch req.InstitutionType {
	case InstitutionTypeBloodBank:
		bank := &models.BloodBank{
			Name:        req.InstitutionName,
			Location:    req.Location,
			PhoneNumber: req.PhoneNumber,
		}
		return s.institutionRepo.CreateBloodBank(s.db, bank)
	case InstitutionTypeHospital:
		hospital := &models.Hospital{
			Name:        req.InstitutionName,
			Location:    req.Location,
			PhoneNumber: req.PhoneNumber,
		}
		return s.institutionRepo.CreateHospital(s.db, hospital)
	default:
		return 0, ErrInvalidInstitutionType
	}
}

// GetBloodBanks returns all blood banks ordered by name.
func (s *institutionService) GetBloodBanks() ([]models.BloodBank, error) {
	return s.institutionRepo.GetBloodBanks()
}

// GetHospitals returns all hospitals ordered by name.
func (s *institutionService) GetHospitals() ([]models.Hospital, error) {
	return s.institutionRepo.GetHospitals()
}
