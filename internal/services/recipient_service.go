package services

import (
	"database/sql"
	"errors"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/pkg/utils"
)

// --- Custom Service Errors for Recipients ---
var (
	ErrRecipientNotFound   = errors.New("recipient not found")
	ErrRecipientValidation = errors.New("required fields missing")
	ErrRecipientInUse      = errors.New("recipient cannot be deleted as they are referenced in other records")
)

// --- Recipient DTOs ---
type CreateRecipientRequest struct {
	FirstName     string  `json:"f_name"`
	MiddleInitial *string `json:"m_initial"`
	LastName      string  `json:"l_name"`
	DateOfBirth   string  `json:"date_of_birth"` // Format YYYY-MM-DD
	Gender        *string `json:"gender"`
	BloodType     string  `json:"blood_type"`
	PhoneNumber   string  `json:"phone_number"`
}

type UpdateRecipientRequest struct {
	FirstName     string  `json:"f_name"`
	MiddleInitial *string `json:"m_initial"`
	LastName      string  `json:"l_name"`
	DateOfBirth   string  `json:"date_of_birth"`
	Gender        *string `json:"gender"`
	BloodType     string  `json:"blood_type"`
	PhoneNumber   string  `json:"phone_number"`
}

// --- RecipientService Interface ---
type RecipientService interface {
	CreateRecipient(req CreateRecipientRequest) (int64, error)
	GetRecipients() ([]models.Recipient, error)
	GetRecipientByID(recipientID int64) (*models.Recipient, error)
	UpdateRecipient(recipientID int64, req UpdateRecipientRequest) error
	DeleteRecipient(recipientID int64) error
}

// --- recipientService Implementation ---
type recipientService struct {
	recipientRepo repositories.RecipientRepository
	db            *sql.DB
}

// NewRecipientService creates a new instance of RecipientService.
func NewRecipientService(repo repositories.RecipientRepository, db *sql.DB) RecipientService {
	return &recipientService{
		recipientRepo: repo,
		db:            db,
	}
}

// CreateRecipient validates and registers a new recipient.
func (s *recipientService) CreateRecipient(req CreateRecipientRequest) (int64, error) {
	if utils.IsEmpty(req.FirstName) || utils.IsEmpty(req.LastName) ||
		utils.IsEmpty(req.DateOfBirth) || utils.IsEmpty(req.BloodType) ||
		utils.IsEmpty(req.PhoneNumber) {
		return 0, ErrRecipientValidation
	}
	if !models.IsValidBloodType(req.BloodType) {
		return 0, ErrInvalidBloodType
	}

	recipient := &models.Recipient{
		FirstName:     req.FirstName,
		MiddleInitial: req.MiddleInitial,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		BloodType:     req.BloodType,
		PhoneNumber:   req.PhoneNumber,
	}
	return s.recipientRepo.CreateRecipient(s.db, recipient)
}

// GetRecipients returns all recipients, newest first.
func (s *recipientService) GetRecipients() ([]models.Recipient, error) {
	return s.recipientRepo.GetRecipients()
}

// GetRecipientByID returns a single recipient.
func (s *recipientService) GetRecipientByID(recipientID int64) (*models.Recipient, error) {
	recipient, err := s.recipientRepo.GetRecipientByID(recipientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return recipient, nil
}

// UpdateRecipient overwrites all mutable fields of an existing recipient.
// The blood type is re-validated only when a value is supplied.
func (s *recipientService) UpdateRecipient(recipientID int64, req UpdateRecipientRequest) error {
	if req.BloodType != "" && !models.IsValidBloodType(req.BloodType) {
		return ErrInvalidBloodType
	}

	recipient := &models.Recipient{
		ID:            recipientID,
		FirstName:     req.FirstName,
		MiddleInitial: req.MiddleInitial,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		BloodType:     req.BloodType,
		PhoneNumber:   req.PhoneNumber,
	}

	err := s.recipientRepo.UpdateRecipient(s.db, recipient)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecipientNotFound
		}
		return err
	}
	return nil
}

// DeleteRecipient removes a recipient unless other records reference them.
func (s *recipientService) DeleteRecipient(recipientID int64) error {
	err := s.recipientRepo.DeleteRecipient(s.db, recipientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecipientNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrRecipientInUse
		}
		return err
	}
	return nil
}
