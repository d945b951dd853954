package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodbank_backend/internal/models"
)

func newDonorRepo(t *testing.T) (DonorRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDonorRepository(db), mock
}

func TestCreateDonorReturnsGeneratedID(t *testing.T) {
	repo, mock := newDonorRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO Donor`)).
		WithArgs("Jane", nil, "Doe", "1990-04-12", "555-0142", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"donor_id"}).AddRow(5))

	donor := &models.Donor{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		PhoneNumber: "555-0142",
	}
	db := mockExecutor(repo)
	id, err := repo.CreateDonor(db, donor)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, int64(5), donor.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonorByIDFormatsDates(t *testing.T) {
	repo, mock := newDonorRepo(t)

	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	lastDonation := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM Donor WHERE Donor_ID = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"donor_id", "f_name", "m_initial", "l_name", "date_of_birth",
			"phone_number", "last_day_of_donation", "gender", "bb_id",
		}).AddRow(5, "Jane", nil, "Doe", dob, "555-0142", lastDonation, "F", 1))

	donor, err := repo.GetDonorByID(5)
	require.NoError(t, err)
	assert.Equal(t, "1990-04-12", donor.DateOfBirth)
	require.NotNil(t, donor.LastDonationDate)
	assert.Equal(t, "2025-08-01", *donor.LastDonationDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonorByIDNotFound(t *testing.T) {
	repo, mock := newDonorRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM Donor WHERE Donor_ID = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"donor_id", "f_name", "m_initial", "l_name", "date_of_birth",
			"phone_number", "last_day_of_donation", "gender", "bb_id",
		}))

	_, err := repo.GetDonorByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDonorNoRowsMatched(t *testing.T) {
	repo, mock := newDonorRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Donor SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDonor(mockExecutor(repo), &models.Donor{
		ID:          99,
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		PhoneNumber: "555-0142",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDonorForeignKeyViolation(t *testing.T) {
	repo, mock := newDonorRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Donor WHERE Donor_ID = $1`)).
		WithArgs(int64(5)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "blood_donor_id_fkey"})

	err := repo.DeleteDonor(mockExecutor(repo), 5)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestDeleteDonorNotFound(t *testing.T) {
	repo, mock := newDonorRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Donor WHERE Donor_ID = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDonor(mockExecutor(repo), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

// mockExecutor exposes the repository's own db handle as the executor so
// tests exercise the same pool the sqlmock expectations are registered on.
func mockExecutor(repo DonorRepository) SQLExecutor {
	return repo.(*donorRepository).db
}
