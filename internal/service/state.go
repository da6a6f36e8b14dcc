package service

// State is the alert schedule status derived from the Task Scheduler.
type State int

const (
	// StateUnknown is the state before the first query.
	StateUnknown State = iota
	StateDisabled
	StateEnabled
	StateError
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateEnabled:
		return "Enabled"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// DisableOutcome tells a successful Disable apart from a no-op one.
type DisableOutcome int

const (
	// TurnedOff means at least one job was deleted.
	TurnedOff DisableOutcome = iota + 1
	// AlreadyOff means neither job existed.
	AlreadyOff
)

// Message is the notice shown to the user for o.
func (o DisableOutcome) Message() string {
	switch o {
	case TurnedOff:
		return "Alerts are now OFF."
	case AlreadyOff:
		return "Alerts already seemed to be off."
	default:
		return ""
	}
}

func (o DisableOutcome) String() string {
	switch o {
	case TurnedOff:
		return "turned off"
	case AlreadyOff:
		return "already off"
	default:
		return "none"
	}
}
