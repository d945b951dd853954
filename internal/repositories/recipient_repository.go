package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bloodbank_backend/internal/models"

	"github.com/lib/pq"
)

// RecipientRepository defines the interface for recipient-related database
// operations.
type RecipientRepository interface {
	CreateRecipient(executor SQLExecutor, recipient *models.Recipient) (int64, error)
	GetRecipientByID(id int64) (*models.Recipient, error)
	GetRecipients() ([]models.Recipient, error)
	UpdateRecipient(executor SQLExecutor, recipient *models.Recipient) error
	DeleteRecipient(executor SQLExecutor, id int64) error
}

type recipientRepository struct {
	db *sql.DB
}

// NewRecipientRepository creates a new instance of RecipientRepository.
func NewRecipientRepository(db *sql.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

// CreateRecipient inserts a new recipient into the database.
func (r *recipientRepository) CreateRecipient(executor SQLExecutor, recipient *models.Recipient) (int64, error) {
	query := `INSERT INTO Recipient (f_name, m_initial, l_name, Date_Of_Birth, Gender, Blood_Type, Phone_Number)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING Recipient_ID`

	err := executor.QueryRow(query,
		recipient.FirstName, recipient.MiddleInitial, recipient.LastName,
		recipient.DateOfBirth, recipient.Gender, recipient.BloodType, recipient.PhoneNumber,
	).Scan(&recipient.ID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating recipient: %v", ErrDatabaseError, err)
	}
	return recipient.ID, nil
}

// GetRecipientByID retrieves a single recipient by their ID.
func (r *recipientRepository) GetRecipientByID(id int64) (*models.Recipient, error) {
	recipient := &models.Recipient{}
	query := `SELECT Recipient_ID, f_name, m_initial, l_name, Date_Of_Birth, Gender, Blood_Type, Phone_Number
	          FROM Recipient WHERE Recipient_ID = $1`

	var dob sql.NullTime
	err := r.db.QueryRow(query, id).Scan(
		&recipient.ID, &recipient.FirstName, &recipient.MiddleInitial, &recipient.LastName,
		&dob, &recipient.Gender, &recipient.BloodType, &recipient.PhoneNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting recipient by ID %d: %v", ErrDatabaseError, id, err)
	}
	if dob.Valid {
		recipient.DateOfBirth = formatDate(dob.Time)
	}
	return recipient, nil
}

// GetRecipients retrieves all recipients, newest first.
func (r *recipientRepository) GetRecipients() ([]models.Recipient, error) {
	query := `SELECT Recipient_ID, f_name, m_initial, l_name, Date_Of_Birth, Gender, Blood_Type, Phone_Number
	          FROM Recipient ORDER BY Recipient_ID DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying recipients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	recipients := []models.Recipient{}
	for rows.Next() {
		var recipient models.Recipient
		var dob sql.NullTime
		if err := rows.Scan(
			&recipient.ID, &recipient.FirstName, &recipient.MiddleInitial, &recipient.LastName,
			&dob, &recipient.Gender, &recipient.BloodType, &recipient.PhoneNumber,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning recipient: %v", ErrDatabaseError, err)
		}
		if dob.Valid {
			recipient.DateOfBirth = formatDate(dob.Time)
		}
		recipients = append(recipients, recipient)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating recipient rows: %v", ErrDatabaseError, err)
	}
	return recipients, nil
}

// UpdateRecipient overwrites all mutable fields of an existing recipient.
func (r *recipientRepository) UpdateRecipient(executor SQLExecutor, recipient *models.Recipient) error {
	query := `UPDATE Recipient SET
	            f_name = $1, m_initial = $2, l_name = $3, Date_Of_Birth = $4,
	            Gender = $5, Blood_Type = $6, Phone_Number = $7
	          WHERE Recipient_ID = $8`

	result, err := executor.Exec(query,
		recipient.FirstName, recipient.MiddleInitial, recipient.LastName,
		recipient.DateOfBirth, recipient.Gender, recipient.BloodType, recipient.PhoneNumber,
		recipient.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating recipient ID %d: %v", ErrDatabaseError, recipient.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating recipient ID %d: %v", ErrDatabaseError, recipient.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRecipient removes a recipient.
func (r *recipientRepository) DeleteRecipient(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM Recipient WHERE Recipient_ID = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: recipient ID %d is referenced by other records (constraint: %s)", ErrForeignKeyViolation, id, pqErr.Constraint)
		}
		return fmt.Errorf("%w: deleting recipient ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting recipient ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
