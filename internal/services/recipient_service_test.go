package services

import (
	"testing"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecipientRepo is an in-memory RecipientRepository for service tests.
type fakeRecipientRepo struct {
	recipients map[int64]*models.Recipient
	nextID     int64
	deleteErr  error
}

func newFakeRecipientRepo() *fakeRecipientRepo {
	return &fakeRecipientRepo{recipients: map[int64]*models.Recipient{}, nextID: 1}
}

func (f *fakeRecipientRepo) CreateRecipient(_ repositories.SQLExecutor, recipient *models.Recipient) (int64, error) {
	recipient.ID = f.nextID
	f.nextID++
	copied := *recipient
	f.recipients[recipient.ID] = &copied
	return recipient.ID, nil
}

func (f *fakeRecipientRepo) GetRecipientByID(id int64) (*models.Recipient, error) {
	recipient, ok := f.recipients[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return recipient, nil
}

func (f *fakeRecipientRepo) GetRecipients() ([]models.Recipient, error) {
	recipients := []models.Recipient{}
	for id := f.nextID - 1; id >= 1; id-- {
		if recipient, ok := f.recipients[id]; ok {
			recipients = append(recipients, *recipient)
		}
	}
	return recipients, nil
}

func (f *fakeRecipientRepo) UpdateRecipient(_ repositories.SQLExecutor, recipient *models.Recipient) error {
	if _, ok := f.recipients[recipient.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *recipient
	f.recipients[recipient.ID] = &copied
	return nil
}

func (f *fakeRecipientRepo) DeleteRecipient(_ repositories.SQLExecutor, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.recipients[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.recipients, id)
	return nil
}

func validCreateRecipientRequest() CreateRecipientRequest {
	return CreateRecipientRequest{
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: "1985-09-30",
		BloodType:   "AB+",
		PhoneNumber: "555-0199",
	}
}

func TestCreateRecipient(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo, nil)

	id, err := svc.CreateRecipient(validCreateRecipientRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestCreateRecipientMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRecipientRequest)
	}{
		{"missing first name", func(r *CreateRecipientRequest) { r.FirstName = "" }},
		{"missing last name", func(r *CreateRecipientRequest) { r.LastName = "" }},
		{"missing date of birth", func(r *CreateRecipientRequest) { r.DateOfBirth = "" }},
		{"missing blood type", func(r *CreateRecipientRequest) { r.BloodType = "" }},
		{"missing phone number", func(r *CreateRecipientRequest) { r.PhoneNumber = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRecipientRepo()
			svc := NewRecipientService(repo, nil)

			req := validCreateRecipientRequest()
			tc.mutate(&req)

			_, err := svc.CreateRecipient(req)
			assert.ErrorIs(t, err, ErrRecipientValidation)
			assert.Empty(t, repo.recipients)
		})
	}
}

func TestCreateRecipientInvalidBloodType(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo, nil)

	req := validCreateRecipientRequest()
	req.BloodType = "O"

	_, err := svc.CreateRecipient(req)
	assert.ErrorIs(t, err, ErrInvalidBloodType)
	assert.Empty(t, repo.recipients)
}

func TestUpdateRecipientValidatesBloodTypeOnlyWhenSupplied(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo, nil)

	id, err := svc.CreateRecipient(validCreateRecipientRequest())
	require.NoError(t, err)

	// Invalid supplied blood type is rejected.
	err = svc.UpdateRecipient(id, UpdateRecipientRequest{
		FirstName: "John", LastName: "Smith", BloodType: "XYZ",
	})
	assert.ErrorIs(t, err, ErrInvalidBloodType)

	// Empty blood type skips the check.
	err = svc.UpdateRecipient(id, UpdateRecipientRequest{
		FirstName: "John", LastName: "Smith", BloodType: "",
	})
	assert.NoError(t, err)
}

func TestUpdateRecipientNotFound(t *testing.T) {
	svc := NewRecipientService(newFakeRecipientRepo(), nil)

	err := svc.UpdateRecipient(7, UpdateRecipientRequest{FirstName: "John"})
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestDeleteRecipientNotFound(t *testing.T) {
	svc := NewRecipientService(newFakeRecipientRepo(), nil)

	err := svc.DeleteRecipient(7)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestDeleteRecipientBlockedByRelatedRecords(t *testing.T) {
	repo := newFakeRecipientRepo()
	svc := NewRecipientService(repo, nil)

	id, err := svc.CreateRecipient(validCreateRecipientRequest())
	require.NoError(t, err)

	repo.deleteErr = repositories.ErrForeignKeyViolation
	err = svc.DeleteRecipient(id)
	assert.ErrorIs(t, err, ErrRecipientInUse)
}
