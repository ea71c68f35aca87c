// Package wizard provides the shared multi-step validation used by the
// booking and KYC submission flows: an ordered list of steps, each with a
// validator, where advancing past a step requires its validator to accept the
// accumulated state.
package wizard

import "fmt"

// Step is one stage of a flow. Validate inspects the flow's accumulated state
// and returns an error describing what is missing or malformed.
type Step struct {
	ID       string
	Validate func(state any) error
}

// StepError reports which step rejected the state.
type StepError struct {
	StepID string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.StepID, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Wizard walks an ordered list of steps.
type Wizard struct {
	steps   []Step
	current int
}

// New builds a wizard positioned at the first step.
func New(steps ...Step) *Wizard {
	return &Wizard{steps: steps}
}

// Current returns the index (0-based) of the step the wizard is on.
func (w *Wizard) Current() int { return w.current }

// CurrentStep returns the step the wizard is on.
func (w *Wizard) CurrentStep() Step { return w.steps[w.current] }

// Done reports whether every step has been passed.
func (w *Wizard) Done() bool { return w.current >= len(w.steps) }

// Next validates the current step against state and advances on success. On
// failure the wizard stays put and the StepError names the rejecting step.
func (w *Wizard) Next(state any) error {
	if w.Done() {
		return nil
	}
	step := w.steps[w.current]
	if step.Validate != nil {
		if err := step.Validate(state); err != nil {
			return &StepError{StepID: step.ID, Err: err}
		}
	}
	w.current++
	return nil
}

// Complete runs every remaining step in order. It is what a single-shot
// submission uses: the whole accumulated state must satisfy every step's
// validator before the flow is accepted.
func (w *Wizard) Complete(state any) error {
	for !w.Done() {
		if err := w.Next(state); err != nil {
			return err
		}
	}
	return nil
}
