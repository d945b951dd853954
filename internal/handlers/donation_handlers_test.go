package handlers

import (
	"net/http"
	"testing"

	"bloodbank_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDonationService returns a canned result or error.
type fakeDonationService struct {
	bloodID int64
	err     error
	lastReq *services.RecordDonationRequest
}

func (f *fakeDonationService) RecordDonation(req services.RecordDonationRequest) (int64, error) {
	f.lastReq = &req
	if f.err != nil {
		return 0, f.err
	}
	return f.bloodID, nil
}

func newDonationRouter(svc services.DonationService) *gin.Engine {
	router := gin.New()
	handler := NewDonationHandler(svc)
	router.POST("/api/donations", handler.RecordDonation)
	return router
}

func TestRecordDonationHandler(t *testing.T) {
	svc := &fakeDonationService{bloodID: 7}
	router := newDonationRouter(svc)

	rec := performRequest(router, http.MethodPost, "/api/donations", map[string]interface{}{
		"donor_id":         1,
		"blood_type":       "O-",
		"expiration_date":  "2026-01-01",
		"quantity_donated": 1,
		"bloodbank_id":     2,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Donation recorded successfully", body["message"])
	assert.Equal(t, float64(7), body["blood_id"])

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, int64(1), svc.lastReq.DonorID)
	assert.Equal(t, "O-", svc.lastReq.BloodType)
}

func TestRecordDonationHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{"validation", services.ErrDonationValidation, http.StatusBadRequest, "All fields are required"},
		{"invalid blood type", services.ErrInvalidBloodType, http.StatusBadRequest, "Invalid blood type"},
		{"donor missing", services.ErrDonorNotFound, http.StatusNotFound, "Donor not found"},
		{"blood bank missing", services.ErrBloodBankNotFound, http.StatusNotFound, "Blood bank not found"},
		{"storage failure", assert.AnError, http.StatusInternalServerError, "Failed to record donation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newDonationRouter(&fakeDonationService{err: tc.svcErr})

			rec := performRequest(router, http.MethodPost, "/api/donations", map[string]interface{}{
				"donor_id": 1,
			})

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}
