package booking

import (
	"errors"
	"testing"

	"broheal/models"
	"broheal/services/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *models.BookingRequest {
	return &models.BookingRequest{
		TherapistID: "507f1f77bcf86cd799439011",
		ServiceID:   "507f1f77bcf86cd799439012",
		Date:        "2026-09-01",
		SlotTime:    "10:00",
		Address: models.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			ZipCode: "560001",
		},
	}
}

func TestBookingWizardAcceptsValidRequest(t *testing.T) {
	assert.NoError(t, NewBookingWizard().Complete(validRequest()))
}

func TestBookingWizardRejectsMalformedTherapistID(t *testing.T) {
	req := validRequest()
	req.TherapistID = "abc"

	err := NewBookingWizard().Complete(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTherapistID)

	var stepErr *wizard.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepService, stepErr.StepID)
}

func TestBookingWizardRejectsMalformedServiceID(t *testing.T) {
	req := validRequest()
	req.ServiceID = "not-hex"

	err := NewBookingWizard().Complete(req)
	assert.ErrorIs(t, err, ErrInvalidServiceID)
}

func TestBookingWizardRejectsMissingSchedule(t *testing.T) {
	req := validRequest()
	req.SlotTime = ""

	err := NewBookingWizard().Complete(req)
	require.Error(t, err)

	var stepErr *wizard.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepSchedule, stepErr.StepID)
}

func TestBookingWizardRejectsBadClock(t *testing.T) {
	req := validRequest()
	req.SlotTime = "25:99"
	assert.Error(t, NewBookingWizard().Complete(req))
}

func TestBookingWizardRejectsIncompleteAddress(t *testing.T) {
	req := validRequest()
	req.Address.City = ""

	err := NewBookingWizard().Complete(req)
	require.Error(t, err)

	var stepErr *wizard.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepAddress, stepErr.StepID)
}

func TestBookingWizardAddonsOptional(t *testing.T) {
	req := validRequest()
	req.Addons = nil
	assert.NoError(t, NewBookingWizard().Complete(req))
}
