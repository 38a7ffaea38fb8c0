// Package wizard implements the linear three-step flow shared by the booking and
// custom-commission forms: select a slot, enter details, review and submit.
package wizard

type Step int

const (
	StepSelectSlot   Step = 1
	StepEnterDetails Step = 2
	StepReview       Step = 3

	FirstStep = StepSelectSlot
	LastStep  = StepReview
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepSelectSlot:
		return "select_slot"
	case StepEnterDetails:
		return "enter_details"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Clamp forces s into [FirstStep, LastStep].
func Clamp(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

// Guard decides whether the flow may move forward from the given step.
// A non-nil error blocks the transition and is returned to the caller unchanged.
type Guard func(from Step) error

// Next advances one step when guard allows it. At the last step it is a no-op.
func Next(current Step, guard Guard) (Step, error) {
	current = Clamp(current)
	if current == LastStep {
		return current, nil
	}
	if guard != nil {
		if err := guard(current); err != nil {
			return current, err
		}
	}
	return current + 1, nil
}

// Previous retreats one step. At the first step it is a no-op.
func Previous(current Step) Step {
	current = Clamp(current)
	if current == FirstStep {
		return current
	}
	return current - 1
}

// Marker is one dot of the progress indicator.
type Marker struct {
	Step   Step
	Active bool
}

// Progress marks every step reached so far as active.
func Progress(current Step) []Marker {
	current = Clamp(current)
	out := make([]Marker, 0, int(LastStep))
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, Marker{Step: s, Active: current >= s})
	}
	return out
}
