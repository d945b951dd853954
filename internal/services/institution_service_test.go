package services

import (
	"testing"

	"bloodbank_backend/internal/models"
	"bloodbank_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInstitutionRepo is an in-memory InstitutionRepository for service
// tests.
type fakeInstitutionRepo struct {
	banks     map[int64]*models.BloodBank
	hospitals map[int64]*models.Hospital
	nextID    int64
}

func newFakeInstitutionRepo() *fakeInstitutionRepo {
	return &fakeInstitutionRepo{
		banks:     map[int64]*models.BloodBank{},
		hospitals: map[int64]*models.Hospital{},
		nextID:    1,
	}
}

func (f *fakeInstitutionRepo) CreateBloodBank(_ repositories.SQLExecutor, bank *models.BloodBank) (int64, error) {
	bank.ID = f.nextID
	f.nextID++
	copied := *bank
	f.banks[bank.ID] = &copied
	return bank.ID, nil
}

func (f *fakeInstitutionRepo) CreateHospital(_ repositories.SQLExecutor, hospital *models.Hospital) (int64, error) {
	hospital.ID = f.nextID
	f.nextID++
	copied := *hospital
	f.hospitals[hospital.ID] = &copied
	return hospital.ID, nil
}

func (f *fakeInstitutionRepo) GetBloodBanks() ([]models.BloodBank, error) {
	banks := []models.BloodBank{}
	for _, bank := range f.banks {
		banks = append(banks, *bank)
	}
	return banks, nil
}

func (f *fakeInstitutionRepo) GetHospitals() ([]models.Hospital, error) {
	hospitals := []models.Hospital{}
	for _, hospital := range f.hospitals {
		hospitals = append(hospitals, *hospital)
	}
	return hospitals, nil
}

func (f *fakeInstitutionRepo) BloodBankExists(_ repositories.SQLExecutor, id int64) (bool, error) {
	_, ok := f.banks[id]
	return ok, nil
}

func TestCreateInstitutionBloodBank(t *testing.T) {
	repo := newFakeInstitutionRepo()
	svc := NewInstitutionService(repo, nil)

	id, err := svc.CreateInstitution(CreateInstitutionRequest{
		InstitutionType: "bloodbank",
		InstitutionName: "Red Cross Central",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Len(t, repo.banks, 1)
	assert.Empty(t, repo.hospitals)
}

func TestCreateInstitutionHospital(t *testing.T) {
	repo := newFakeInstitutionRepo()
	svc := NewInstitutionService(repo, nil)

	id, err := svc.CreateInstitution(CreateInstitutionRequest{
		InstitutionType: "hospital",
		InstitutionName: "General Hospital",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Len(t, repo.hospitals, 1)
	assert.Empty(t, repo.banks)
}

func TestCreateInstitutionMissingFields(t *testing.T) {
	svc := NewInstitutionService(newFakeInstitutionRepo(), nil)

	_, err := svc.CreateInstitution(CreateInstitutionRequest{InstitutionType: "bloodbank"})
	assert.ErrorIs(t, err, ErrInstitutionValidation)

	_, err = svc.CreateInstitution(CreateInstitutionRequest{InstitutionName: "Red Cross Central"})
	assert.ErrorIs(t, err, ErrInstitutionValidation)
}

func TestCreateInstitutionInvalidType(t *testing.T) {
	repo := newFakeInstitutionRepo()
	svc := NewInstitutionService(repo, nil)

	_, err := svc.CreateInstitution(CreateInstitutionRequest{
		InstitutionType: "clinic",
		InstitutionName: "Walk-In Clinic",
	})
	assert.ErrorIs(t, err, ErrInvalidInstitutionType)
	assert.Empty(t, repo.banks)
	assert.Empty(t, repo.hospitals)
}
