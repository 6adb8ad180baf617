package screen

import "testing"

func TestWizardSteps(t *testing.T) {
	w := NewWizard()
	if w.Step() != StepInfo {
		t.Fatalf("initial step = %v, want info", w.Step())
	}

	if got := w.Next(); got != StepItems {
		t.Errorf("Next = %v, want items", got)
	}
	if got := w.Next(); got != StepReview {
		t.Errorf("Next = %v, want review", got)
	}
	// review is the last step
	if got := w.Next(); got != StepReview {
		t.Errorf("Next past review = %v, want review", got)
	}

	if got, ok := w.Back(); !ok || got != StepItems {
		t.Errorf("Back = (%v, %v), want (items, true)", got, ok)
	}
	if got, ok := w.Back(); !ok || got != StepInfo {
		t.Errorf("Back = (%v, %v), want (info, true)", got, ok)
	}
}

func TestWizardBackFromFirstStepExits(t *testing.T) {
	w := NewWizard()

	step, moved := w.Back()
	if moved {
		t.Error("Back on the first step reported movement; it should signal exit")
	}
	if step != StepInfo {
		t.Errorf("step = %v, want info", step)
	}
}

func TestWizardSubmitSingleFlight(t *testing.T) {
	w := NewWizard()

	if !w.BeginSubmit() {
		t.Fatal("first BeginSubmit refused")
	}
	if w.BeginSubmit() {
		t.Error("second BeginSubmit claimed the slot while a save was in flight")
	}
	if !w.Saving() {
		t.Error("Saving = false during a submit")
	}

	w.EndSubmit()
	if w.Saving() {
		t.Error("Saving = true after EndSubmit")
	}
	if !w.BeginSubmit() {
		t.Error("BeginSubmit refused after the previous save settled")
	}
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepInfo, "info"},
		{StepItems, "items"},
		{StepReview, "review"},
		{Step(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("Step(%d).String() = %q, want %q", tt.step, got, tt.want)
		}
	}
}
