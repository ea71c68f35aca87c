package kyc

import (
	"errors"
	"testing"

	"broheal/models"
	"broheal/services/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() *models.KYCSubmission {
	return &models.KYCSubmission{
		TherapistID: "507f1f77bcf86cd799439011",
		PersonalInfo: models.KYCPersonalInfo{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Mobile:   "9876543210",
		},
		Identity: models.KYCIdentity{
			IDType:      "aadhaar",
			IDNumber:    "1234-5678-9012",
			FrontDocURL: "https://res.example.com/kyc/front.jpg",
		},
		Address: models.KYCAddress{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		Reference: models.KYCReference{
			Name:   "Dr. Mehta",
			Mobile: "9812345678",
		},
	}
}

func stepOf(t *testing.T, err error) string {
	t.Helper()
	var stepErr *wizard.StepError
	require.True(t, errors.As(err, &stepErr), "expected a step error, got %v", err)
	return stepErr.StepID
}

func TestKYCWizardAcceptsValidSubmission(t *testing.T) {
	assert.NoError(t, NewKYCWizard().Complete(validSubmission()))
}

func TestKYCWizardRejectsEmptyMobile(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.Mobile = ""

	err := NewKYCWizard().Complete(sub)
	require.Error(t, err)
	assert.Equal(t, StepPersonalInfo, stepOf(t, err))
}

func TestKYCWizardRejectsNonTenDigitMobile(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.Mobile = "12345"
	assert.Equal(t, StepPersonalInfo, stepOf(t, NewKYCWizard().Complete(sub)))
}

func TestKYCWizardRejectsMissingFrontDoc(t *testing.T) {
	sub := validSubmission()
	sub.Identity.FrontDocURL = ""
	assert.Equal(t, StepIdentity, stepOf(t, NewKYCWizard().Complete(sub)))
}

func TestKYCWizardRejectsBadPincode(t *testing.T) {
	sub := validSubmission()
	sub.Address.Pincode = "56001"
	assert.Equal(t, StepAddress, stepOf(t, NewKYCWizard().Complete(sub)))
}

func TestKYCWizardRejectsMissingReference(t *testing.T) {
	sub := validSubmission()
	sub.Reference.Name = ""
	assert.Equal(t, StepReference, stepOf(t, NewKYCWizard().Complete(sub)))
}

func TestKYCWizardRejectsDetachedSubmission(t *testing.T) {
	sub := validSubmission()
	sub.TherapistID = ""
	assert.Equal(t, StepReview, stepOf(t, NewKYCWizard().Complete(sub)))
}
