package screen

import "sync"

// Step is a wizard position. Both create and edit flows walk the same three
// linear steps.
type Step int

const (
	StepInfo   Step = iota + 1 // title/metadata form
	StepItems                  // sub-item collection
	StepReview                 // read-only summary, submit lives here
)

func (s Step) String() string {
	switch s {
	case StepInfo:
		return "info"
	case StepItems:
		return "items"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Wizard is the step machine plus the single-flight submit latch shared by the
// create and edit flows of every resource.
type Wizard struct {
	mu     sync.Mutex
	step   Step
	saving bool
}

// NewWizard starts at the info step.
func NewWizard() *Wizard {
	return &Wizard{step: StepInfo}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next advances one step, stopping at review.
func (w *Wizard) Next() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepReview {
		w.step++
	}
	return w.step
}

// Back steps backwards. The second return is false when the wizard was
// already on the first step: that press exits to the list instead.
func (w *Wizard) Back() (Step, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepInfo {
		return w.step, false
	}
	w.step--
	return w.step, true
}

// BeginSubmit claims the submit slot. Returns false if a submission is
// already in flight; the caller disables the control rather than queueing.
func (w *Wizard) BeginSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.saving {
		return false
	}
	w.saving = true
	return true
}

// EndSubmit releases the submit slot once the network call settles.
func (w *Wizard) EndSubmit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.saving = false
}

// Saving reports whether a submission is in flight.
func (w *Wizard) Saving() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saving
}
