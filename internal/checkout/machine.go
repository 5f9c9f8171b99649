package checkout

// Step is the explicit checkout state. Submitting and Completed exist so
// an in-flight or finished checkout is a distinct state rather than a
// flag next to an index.
type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepReview
	StepSubmitting
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "Shipping Information"
	case StepPayment:
		return "Payment Details"
	case StepReview:
		return "Review Order"
	case StepSubmitting:
		return "Submitting"
	case StepCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Action is a user- or flow-triggered event fed to Transition.
type Action int

const (
	// ActionNext advances one step, gated on the current step's fields.
	ActionNext Action = iota
	// ActionBack returns one step unconditionally; the draft is untouched.
	ActionBack
	// ActionSubmit begins submission from Review, gated on the combined
	// schema.
	ActionSubmit
	// ActionSubmitSucceeded and ActionSubmitFailed resolve an in-flight
	// submission.
	ActionSubmitSucceeded
	ActionSubmitFailed
)

// Transition is the single transition function of the checkout machine.
// It returns the next step and, when a forward gate rejects, the full
// error map for the fields that blocked it (so every invalid field can
// be highlighted at once). Any action not listed for a state leaves the
// state unchanged: there are no skips, no forward path out of Completed,
// and Submitting absorbs everything except its own resolution.
func Transition(step Step, action Action, form Form) (Step, Errors) {
	switch step {
	case StepShipping:
		if action == ActionNext {
			if errs := ValidateShipping(form.ShippingAddress); len(errs) > 0 {
				return StepShipping, errs
			}
			return StepPayment, nil
		}
	case StepPayment:
		switch action {
		case ActionNext:
			if errs := ValidatePayment(form.PaymentInfo); len(errs) > 0 {
				return StepPayment, errs
			}
			return StepReview, nil
		case ActionBack:
			return StepShipping, nil
		}
	case StepReview:
		switch action {
		case ActionSubmit:
			// The final gate revalidates everything; per-step gates
			// already passed are not trusted.
			if errs := Validate(form); len(errs) > 0 {
				return StepReview, errs
			}
			return StepSubmitting, nil
		case ActionBack:
			return StepPayment, nil
		}
	case StepSubmitting:
		switch action {
		case ActionSubmitSucceeded:
			return StepCompleted, nil
		case ActionSubmitFailed:
			return StepReview, nil
		}
	case StepCompleted:
		// Terminal. A fresh checkout requires a fresh cart.
	}
	return step, nil
}

// CanAdvance reports whether the forward control should be enabled for
// the current step, mirroring the gate Transition would apply.
func CanAdvance(step Step, form Form) bool {
	switch step {
	case StepShipping:
		return len(ValidateShipping(form.ShippingAddress)) == 0
	case StepPayment:
		return len(ValidatePayment(form.PaymentInfo)) == 0
	case StepReview:
		return len(Validate(form)) == 0
	default:
		return false
	}
}
