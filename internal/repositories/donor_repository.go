package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bloodbank_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// DonorRepository defines the interface for donor-related database
// operations.
type DonorRepository interface {
	CreateDonor(executor SQLExecutor, donor *models.Donor) (int64, error)
	GetDonorByID(id int64) (*models.Donor, error)
	GetDonors() ([]models.Donor, error)
	UpdateDonor(executor SQLExecutor, donor *models.Donor) error
	DeleteDonor(executor SQLExecutor, id int64) error
	DonorExists(executor SQLExecutor, id int64) (bool, error)
	UpdateLastDonationDate(executor SQLExecutor, id int64) error
}

type donorRepository struct {
	db *sql.DB
}

// NewDonorRepository creates a new instance of DonorRepository.
func NewDonorRepository(db *sql.DB) DonorRepository {
	return &donorRepository{db: db}
}

// CreateDonor inserts a new donor into the database.
func (r *donorRepository) CreateDonor(executor SQLExecutor, donor *models.Donor) (int64, error) {
	query := `INSERT INTO Donor (f_name, m_initial, l_name, Date_Of_Birth, Phone_Number, Last_Day_Of_Donation, Gender, BB_ID)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING Donor_ID`

	err := executor.QueryRow(query,
		donor.FirstName, donor.MiddleInitial, donor.LastName, donor.DateOfBirth,
		donor.PhoneNumber, donor.LastDonationDate, donor.Gender, donor.BloodBankID,
	).Scan(&donor.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return 0, fmt.Errorf("%w: donor references blood bank ID that does not exist (constraint: %s)", ErrForeignKeyViolation, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating donor: %v", ErrDatabaseError, err)
	}
	return donor.ID, nil
}

// GetDonorByID retrieves a single donor by their ID.
func (r *donorRepository) GetDonorByID(id int64) (*models.Donor, error) {
	donor := &models.Donor{}
	query := `SELECT Donor_ID, f_name, m_initial, l_name, Date_Of_Birth, Phone_Number, Last_Day_Of_Donation, Gender, BB_ID
	          FROM Donor WHERE Donor_ID = $1`

	var dob, lastDonation sql.NullTime
	err := r.db.QueryRow(query, id).Scan(
		&donor.ID, &donor.FirstName, &donor.MiddleInitial, &donor.LastName,
		&dob, &donor.PhoneNumber, &lastDonation, &donor.Gender, &donor.BloodBankID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting donor by ID %d: %v", ErrDatabaseError, id, err)
	}
	if dob.Valid {
		donor.DateOfBirth = formatDate(dob.Time)
	}
	donor.LastDonationDate = formatNullDate(lastDonation)
	return donor, nil
}

// GetDonors retrieves all donors, newest first, with the name of each
// donor's home blood bank joined in.
func (r *donorRepository) GetDonors() ([]models.Donor, error) {
	query := `SELECT d.Donor_ID, d.f_name, d.m_initial, d.l_name, d.Date_Of_Birth, d.Phone_Number,
	                 d.Last_Day_Of_Donation, d.Gender, d.BB_ID, b.BloodBank_name
	          FROM Donor d
	          LEFT JOIN BloodBank b ON d.BB_ID = b.BloodBank_ID
	          ORDER BY d.Donor_ID DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying donors: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	donors := []models.Donor{}
	for rows.Next() {
		var donor models.Donor
		var dob, lastDonation sql.NullTime
		if err := rows.Scan(
			&donor.ID, &donor.FirstName, &donor.MiddleInitial, &donor.LastName,
			&dob, &donor.PhoneNumber, &lastDonation, &donor.Gender, &donor.BloodBankID,
			&donor.BloodBankName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning donor: %v", ErrDatabaseError, err)
		}
		if dob.Valid {
			donor.DateOfBirth = formatDate(dob.Time)
		}
		donor.LastDonationDate = formatNullDate(lastDonation)
		donors = append(donors, donor)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating donor rows: %v", ErrDatabaseError, err)
	}
	return donors, nil
}

// UpdateDonor overwrites all mutable fields of an existing donor.
func (r *donorRepository) UpdateDonor(executor SQLExecutor, donor *models.Donor) error {
	query := `UPDATE Donor SET
	            f_name = $1, m_initial = $2, l_name = $3, Date_Of_Birth = $4,
	            Phone_Number = $5, Last_Day_Of_Donation = $6, Gender = $7, BB_ID = $8
	          WHERE Donor_ID = $9`

	result, err := executor.Exec(query,
		donor.FirstName, donor.MiddleInitial, donor.LastName, donor.DateOfBirth,
		donor.PhoneNumber, donor.LastDonationDate, donor.Gender, donor.BloodBankID,
		donor.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: donor references blood bank ID that does not exist (constraint: %s)", ErrForeignKeyViolation, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating donor ID %d: %v", ErrDatabaseError, donor.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating donor ID %d: %v", ErrDatabaseError, donor.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDonor removes a donor. The delete fails when blood records still
// reference the donor.
func (r *donorRepository) DeleteDonor(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM Donor WHERE Donor_ID = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: donor ID %d is referenced by blood records (constraint: %s)", ErrForeignKeyViolation, id, pqErr.Constraint)
		}
		return fmt.Errorf("%w: deleting donor ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting donor ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DonorExists reports whether a donor row with the given ID exists.
func (r *donorRepository) DonorExists(executor SQLExecutor, id int64) (bool, error) {
	var found int64
	err := executor.QueryRow(`SELECT Donor_ID FROM Donor WHERE Donor_ID = $1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: checking donor ID %d: %v", ErrDatabaseError, id, err)
	}
	return true, nil
}

// UpdateLastDonationDate sets the donor's last donation date to today.
func (r *donorRepository) UpdateLastDonationDate(executor SQLExecutor, id int64) error {
	_, err := executor.Exec(`UPDATE Donor SET Last_Day_Of_Donation = CURRENT_DATE WHERE Donor_ID = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: updating last donation date for donor ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}
