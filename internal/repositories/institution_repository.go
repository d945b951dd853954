package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bloodbank_backend/internal/models"
)

// InstitutionRepository defines the interface for blood bank and hospital
// database operations.
type InstitutionRepository interface {
	CreateBloodBank(executor SQLExecutor, bank *models.BloodBank) (int64, error)
	CreateHospital(executor SQLExecutor, hospital *models.Hospital) (int64, error)
	GetBloodBanks() ([]models.BloodBank, error)
	GetHospitals() ([]models.Hospital, error)
	BloodBankExists(executor SQLExecutor, id int64) (bool, error)
}

type institutionRepository struct {
	db *sql.DB
}

// NewInstitutionRepository creates a new instance of InstitutionRepository.
func NewInstitutionRepository(db *sql.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

// CreateBloodBank inserts a new blood bank and returns its generated ID.
func (r *institutionRepository) CreateBloodBank(executor SQLExecutor, bank *models.BloodBank) (int64, error) {
	query := `INSERT INTO BloodBank (BloodBank_name, Location, Phone_Number)
	          VALUES ($1, $2, $3)
	          RETURNING BloodBank_ID`

	err := executor.QueryRow(query, bank.Name, bank.Location, bank.PhoneNumber).Scan(&bank.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating blood bank: %v", ErrDatabaseError, err)
	}
	return bank.ID, nil
}

// CreateHospital inserts a new hospital and returns its generated ID.
func (r *institutionRepository) CreateHospital(executor SQLExecutor, hospital *models.Hospital) (int64, error) {
	query := `INSERT INTO Hospital (Hospital_Name, Location, Phone_Number)
	          VALUES ($1, $2, $3)
	          RETURNING Hospital_ID`

	err := executor.QueryRow(query, hospital.Name, hospital.Location, hospital.PhoneNumber).Scan(&hospital.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating hospital: %v", ErrDatabaseError, err)
	}
	return hospital.ID, nil
}

// GetBloodBanks retrieves all blood banks ordered by name.
func (r *institutionRepository) GetBloodBanks() ([]models.BloodBank, error) {
	query := `SELECT BloodBank_ID, BloodBank_name, Location, Phone_Number
	          FROM BloodBank ORDER BY BloodBank_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying blood banks: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	banks := []models.BloodBank{}
	for rows.Next() {
		var bank models.BloodBank
		if err := rows.Scan(&bank.ID, &bank.Name, &bank.Location, &bank.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%w: scanning blood bank: %v", ErrDatabaseError, err)
		}
		banks = append(banks, bank)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating blood bank rows: %v", ErrDatabaseError, err)
	}
	return banks, nil
}

// GetHospitals retrieves all hospitals ordered by name.
func (r *institutionRepository) GetHospitals() ([]models.Hospital, error) {
	query := `SELECT Hospital_ID, Hospital_Name, Location, Phone_Number
	          FROM Hospital ORDER BY Hospital_Name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying hospitals: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	hospitals := []models.Hospital{}
	for rows.Next() {
		var hospital models.Hospital
		if err := rows.Scan(&hospital.ID, &hospital.Name, &hospital.Location, &hospital.PhoneNumber); err != nil {
			return nil, fmt.Errorf("%w: scanning hospital: %v", ErrDatabaseError, err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating hospital rows: %v", ErrDatabaseError, err)
	}
	return hospitals, nil
}

// BloodBankExists reports whether a blood bank row with the given ID exists.
func (r *institutionRepository) BloodBankExists(executor SQLExecutor, id int64) (bool, error) {
	var found int64
	err := executor.QueryRow(`SELECT BloodBank_ID FROM BloodBank WHERE BloodBank_ID = $1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: checking blood bank ID %d: %v", ErrDatabaseError, id, err)
	}
	return true, nil
}
