package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"bloodbank_backend/internal/models"
)

// BloodRepository defines the interface for blood unit and storage-link
// database operations.
type BloodRepository interface {
	CreateBlood(executor SQLExecutor, blood *models.Blood) (int64, error)
	LinkToBloodBank(executor SQLExecutor, bloodID, bloodBankID int64) error
	SearchInventory(filters models.BloodSearchFilters) ([]models.BloodSearchResult, error)
}

type bloodRepository struct {
	db *sql.DB
}

// NewBloodRepository creates a new instance of BloodRepository.
func NewBloodRepository(db *sql.DB) BloodRepository {
	return &bloodRepository{db: db}
}

// CreateBlood inserts a new blood unit and returns its generated ID.
func (r *bloodRepository) CreateBlood(executor SQLExecutor, blood *models.Blood) (int64, error) {
	query := `INSERT INTO Blood (Blood_Type, Expiration_Date, Quantity_Donated, Donor_ID)
	          VALUES ($1, $2, $3, $4)
	          RETURNING Blood_ID`

	err := executor.QueryRow(query,
		blood.BloodType, blood.ExpirationDate, blood.QuantityDonated, blood.DonorID,
	).Scan(&blood.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating blood record: %v", ErrDatabaseError, err)
	}
	return blood.ID, nil
}

// LinkToBloodBank records the storage location of a blood unit.
func (r *bloodRepository) LinkToBloodBank(executor SQLExecutor, bloodID, bloodBankID int64) error {
	_, err := executor.Exec(`INSERT INTO Stored_To (Blood_ID, BloodBank_ID) VALUES ($1, $2)`, bloodID, bloodBankID)
	if err != nil {
		return fmt.Errorf("%w: linking blood ID %d to blood bank ID %d: %v", ErrDatabaseError, bloodID, bloodBankID, err)
	}
	return nil
}

// SearchInventory returns blood units of the required type joined with
// their storing bank, soonest-expiring first. Optional filters are
// appended to the base clause as parameterized predicates; caller values
// never enter the query text.
func (r *bloodRepository) SearchInventory(filters models.BloodSearchFilters) ([]models.BloodSearchResult, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT b.Blood_ID, b.Blood_Type, b.Expiration_Date, b.Quantity_Donated,
	       bb.BloodBank_ID, bb.BloodBank_name, bb.Location,
	       (b.Expiration_Date - CURRENT_DATE) AS Days_Until_Expiration
	FROM Blood b
	INNER JOIN Stored_To st ON b.Blood_ID = st.Blood_ID
	INNER JOIN BloodBank bb ON st.BloodBank_ID = bb.BloodBank_ID
	WHERE b.Blood_Type = $1`)

	args := []interface{}{filters.BloodType}
	argCount := 1

	if filters.BloodBankID != nil {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND bb.BloodBank_ID = $%d", argCount))
		args = append(args, *filters.BloodBankID)
	}
	if filters.ExpirationStart != nil {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND b.Expiration_Date >= $%d", argCount))
		args = append(args, *filters.ExpirationStart)
	}
	if filters.ExpirationEnd != nil {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND b.Expiration_Date <= $%d", argCount))
		args = append(args, *filters.ExpirationEnd)
	}

	queryBuilder.WriteString(" ORDER BY b.Expiration_Date")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: searching blood inventory: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	results := []models.BloodSearchResult{}
	for rows.Next() {
		var result models.BloodSearchResult
		var expiration sql.NullTime
		if err := rows.Scan(
			&result.BloodID, &result.BloodType, &expiration, &result.QuantityDonated,
			&result.BloodBankID, &result.BloodBankName, &result.Location,
			&result.DaysUntilExpiration,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning blood search result: %v", ErrDatabaseError, err)
		}
		if expiration.Valid {
			result.ExpirationDate = formatDate(expiration.Time)
		}
		results = append(results, result)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating blood search rows: %v", ErrDatabaseError, err)
	}
	return results, nil
}
