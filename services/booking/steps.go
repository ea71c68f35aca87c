package booking

import (
	"errors"
	"fmt"

	"broheal/models"
	"broheal/services/wizard"
	"broheal/utils"
)

// Booking flow step IDs, in order: service, schedule, addons, address.
const (
	StepService  = "service"
	StepSchedule = "schedule"
	StepAddons   = "addons"
	StepAddress  = "address"
)

// NewBookingWizard builds the four-step validation the submit endpoint runs
// over the accumulated request. The addon step has no requirement; it exists
// so the flow's shape matches the client wizard.
func NewBookingWizard() *wizard.Wizard {
	return wizard.New(
		wizard.Step{ID: StepService, Validate: validateServiceStep},
		wizard.Step{ID: StepSchedule, Validate: validateScheduleStep},
		wizard.Step{ID: StepAddons, Validate: nil},
		wizard.Step{ID: StepAddress, Validate: validateAddressStep},
	)
}

func validateServiceStep(state any) error {
	req, ok := state.(*models.BookingRequest)
	if !ok {
		return errors.New("unexpected state type")
	}
	if !utils.IsValidObjectID(req.ServiceID) {
		return ErrInvalidServiceID
	}
	if !utils.IsValidObjectID(req.TherapistID) {
		return ErrInvalidTherapistID
	}
	return nil
}

func validateScheduleStep(state any) error {
	req, ok := state.(*models.BookingRequest)
	if !ok {
		return errors.New("unexpected state type")
	}
	if req.Date == "" {
		return errors.New("date is required")
	}
	if req.SlotTime == "" {
		return errors.New("slot time is required")
	}
	if _, ok := parseClock(req.SlotTime); !ok {
		return fmt.Errorf("slot time %q is not a valid HH:MM clock", req.SlotTime)
	}
	return nil
}

func validateAddressStep(state any) error {
	req, ok := state.(*models.BookingRequest)
	if !ok {
		return errors.New("unexpected state type")
	}
	addr := req.Address
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" {
		return errors.New("street, city, state and zipCode are required")
	}
	return nil
}
