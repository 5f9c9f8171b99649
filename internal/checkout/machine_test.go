package checkout

import "testing"

func validForm() Form {
	return Form{ShippingAddress: validShipping(), PaymentInfo: validPayment()}
}

func TestTransitionShippingGate(t *testing.T) {
	form := validForm()
	form.ZipCode = "1234"
	next, errs := Transition(StepShipping, ActionNext, form)
	if next != StepShipping {
		t.Fatalf("expected to stay on shipping, got %v", next)
	}
	if errs[FieldZipCode] == "" {
		t.Fatalf("expected zip error to surface, got %v", errs)
	}

	form.ZipCode = "12345-6789"
	next, errs = Transition(StepShipping, ActionNext, form)
	if next != StepPayment || len(errs) != 0 {
		t.Fatalf("expected advance to payment, got %v %v", next, errs)
	}
}

func TestTransitionPaymentGate(t *testing.T) {
	form := validForm()
	form.CardNumber = "123"
	next, errs := Transition(StepPayment, ActionNext, form)
	if next != StepPayment || errs[FieldCardNumber] == "" {
		t.Fatalf("expected rejection with card error, got %v %v", next, errs)
	}

	form.CardNumber = "4242424242424242"
	next, errs = Transition(StepPayment, ActionNext, form)
	if next != StepReview || len(errs) != 0 {
		t.Fatalf("expected advance to review, got %v %v", next, errs)
	}
}

func TestTransitionBackIsUnconditional(t *testing.T) {
	// Back never re-runs validation, even on a completely empty draft.
	if next, errs := Transition(StepPayment, ActionBack, Form{}); next != StepShipping || errs != nil {
		t.Fatalf("expected payment->shipping, got %v %v", next, errs)
	}
	if next, _ := Transition(StepReview, ActionBack, Form{}); next != StepPayment {
		t.Fatalf("expected review->payment, got %v", next)
	}
	if next, _ := Transition(StepShipping, ActionBack, Form{}); next != StepShipping {
		t.Fatalf("expected back on shipping to be a no-op, got %v", next)
	}
}

func TestTransitionNoForwardSkip(t *testing.T) {
	// A valid draft still only moves one step per action.
	form := validForm()
	next, _ := Transition(StepShipping, ActionNext, form)
	if next != StepPayment {
		t.Fatalf("expected exactly one step forward, got %v", next)
	}
	// Submit is not a shortcut from earlier steps.
	if next, _ := Transition(StepShipping, ActionSubmit, form); next != StepShipping {
		t.Fatalf("submit from shipping should not move, got %v", next)
	}
	if next, _ := Transition(StepPayment, ActionSubmit, form); next != StepPayment {
		t.Fatalf("submit from payment should not move, got %v", next)
	}
}

func TestTransitionSubmitRevalidatesEverything(t *testing.T) {
	// Both per-step gates may have passed earlier against a since-mutated
	// draft; the final gate must catch it.
	form := validForm()
	form.Email = "tampered"
	next, errs := Transition(StepReview, ActionSubmit, form)
	if next != StepReview {
		t.Fatalf("expected submit rejection, got %v", next)
	}
	if errs[FieldEmail] != "Enter a valid email" {
		t.Fatalf("expected combined-schema email error, got %v", errs)
	}

	form.Email = "jane@example.com"
	next, errs = Transition(StepReview, ActionSubmit, form)
	if next != StepSubmitting || len(errs) != 0 {
		t.Fatalf("expected transition to submitting, got %v %v", next, errs)
	}
}

func TestTransitionSubmittingResolution(t *testing.T) {
	if next, _ := Transition(StepSubmitting, ActionSubmitSucceeded, Form{}); next != StepCompleted {
		t.Fatalf("expected completed, got %v", next)
	}
	// A failed submission returns to review with the draft intact for retry.
	if next, _ := Transition(StepSubmitting, ActionSubmitFailed, Form{}); next != StepReview {
		t.Fatalf("expected failed submission to return to review, got %v", next)
	}
	// While in flight every user action is absorbed.
	for _, a := range []Action{ActionNext, ActionBack, ActionSubmit} {
		if next, _ := Transition(StepSubmitting, a, validForm()); next != StepSubmitting {
			t.Fatalf("action %v should not leave submitting, got %v", a, next)
		}
	}
}

func TestTransitionCompletedIsTerminal(t *testing.T) {
	for _, a := range []Action{ActionNext, ActionBack, ActionSubmit, ActionSubmitSucceeded, ActionSubmitFailed} {
		if next, _ := Transition(StepCompleted, a, validForm()); next != StepCompleted {
			t.Fatalf("action %v escaped completed: %v", a, next)
		}
	}
}

func TestCanAdvance(t *testing.T) {
	form := validForm()
	if !CanAdvance(StepShipping, form) || !CanAdvance(StepPayment, form) || !CanAdvance(StepReview, form) {
		t.Fatalf("expected valid form to enable forward controls")
	}
	form.CardCvv = "12"
	if CanAdvance(StepPayment, form) {
		t.Fatalf("expected invalid cvv to disable payment advance")
	}
	if CanAdvance(StepShipping, form) != true {
		t.Fatalf("payment fields must not gate the shipping step")
	}
	if CanAdvance(StepSubmitting, form) || CanAdvance(StepCompleted, form) {
		t.Fatalf("no forward control in terminal or in-flight states")
	}
}
