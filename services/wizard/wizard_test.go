package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flowState struct {
	A string
	B string
}

func twoStep() *Wizard {
	return New(
		Step{ID: "first", Validate: func(state any) error {
			if state.(*flowState).A == "" {
				return errors.New("A required")
			}
			return nil
		}},
		Step{ID: "second", Validate: func(state any) error {
			if state.(*flowState).B == "" {
				return errors.New("B required")
			}
			return nil
		}},
	)
}

func TestWizardAdvancesOnValidState(t *testing.T) {
	w := twoStep()
	state := &flowState{A: "x", B: "y"}

	require.NoError(t, w.Next(state))
	assert.Equal(t, 1, w.Current())
	require.NoError(t, w.Next(state))
	assert.True(t, w.Done())
}

func TestWizardStaysPutOnFailure(t *testing.T) {
	w := twoStep()
	state := &flowState{}

	err := w.Next(state)
	require.Error(t, err)
	assert.Equal(t, 0, w.Current())

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "first", stepErr.StepID)
}

func TestWizardCompleteNamesRejectingStep(t *testing.T) {
	w := twoStep()
	err := w.Complete(&flowState{A: "x"})
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "second", stepErr.StepID)
}

func TestWizardStepWithoutValidatorPasses(t *testing.T) {
	w := New(Step{ID: "free"})
	assert.NoError(t, w.Complete(nil))
	assert.True(t, w.Done())
}

func TestStepErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &StepError{StepID: "s", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `step "s"`)
}
