package kyc

import (
	"errors"

	"broheal/models"
	"broheal/services/wizard"
	"broheal/utils"
)

// KYC flow step IDs, in order.
const (
	StepPersonalInfo = "personal_info"
	StepIdentity     = "identity"
	StepAddress      = "address"
	StepReference    = "reference"
	StepReview       = "review"
)

// NewKYCWizard builds the five-step validation run over a submission. The
// review step re-checks nothing on its own; reaching it means every earlier
// step passed, so it only confirms the aggregate is present.
func NewKYCWizard() *wizard.Wizard {
	return wizard.New(
		wizard.Step{ID: StepPersonalInfo, Validate: validatePersonalInfo},
		wizard.Step{ID: StepIdentity, Validate: validateIdentity},
		wizard.Step{ID: StepAddress, Validate: validateAddress},
		wizard.Step{ID: StepReference, Validate: validateReference},
		wizard.Step{ID: StepReview, Validate: validateReview},
	)
}

func submission(state any) (*models.KYCSubmission, error) {
	sub, ok := state.(*models.KYCSubmission)
	if !ok {
		return nil, errors.New("unexpected state type")
	}
	return sub, nil
}

func validatePersonalInfo(state any) error {
	sub, err := submission(state)
	if err != nil {
		return err
	}
	info := sub.PersonalInfo
	if info.FullName == "" {
		return errors.New("full name is required")
	}
	if info.Email == "" {
		return errors.New("email is required")
	}
	if !utils.IsValidPhone(info.Mobile) {
		return errors.New("mobile must be a valid 10-digit number")
	}
	return nil
}

func validateIdentity(state any) error {
	sub, err := submission(state)
	if err != nil {
		return err
	}
	id := sub.Identity
	if id.IDType == "" || id.IDNumber == "" {
		return errors.New("id type and number are required")
	}
	if id.FrontDocURL == "" {
		return errors.New("front document upload is required")
	}
	return nil
}

func validateAddress(state any) error {
	sub, err := submission(state)
	if err != nil {
		return err
	}
	addr := sub.Address
	if addr.Street == "" || addr.City == "" || addr.State == "" {
		return errors.New("street, city and state are required")
	}
	if !utils.IsValidPincode(addr.Pincode) {
		return errors.New("pincode must be 6 digits")
	}
	return nil
}

func validateReference(state any) error {
	sub, err := submission(state)
	if err != nil {
		return err
	}
	ref := sub.Reference
	if ref.Name == "" {
		return errors.New("reference name is required")
	}
	if !utils.IsValidPhone(ref.Mobile) {
		return errors.New("reference mobile must be a valid 10-digit number")
	}
	return nil
}

func validateReview(state any) error {
	sub, err := submission(state)
	if err != nil {
		return err
	}
	if sub.TherapistID == "" {
		return errors.New("submission is not attached to a therapist")
	}
	return nil
}
