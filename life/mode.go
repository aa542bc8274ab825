package life

// Mode is the simulation run state
type Mode uint8

const (
	Paused Mode = iota
	// StepOnce is a one-shot request: the next generation runs, then the mode reverts to Paused
	StepOnce
	Continuous
)

func (m Mode) String() string {
	switch m {
	case Paused:
		return "Paused"
	case StepOnce:
		return "StepOnce"
	case Continuous:
		return "Continuous"
	}
	return "Unknown"
}

// Label is the status bar text; only Paused is distinguished from running modes
func (m Mode) Label() string {
	if m == Paused {
		return "Paused"
	}
	return "Continue"
}

// Outcome reports what applying a key event did
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeReset
	OutcomeSaved
	OutcomeLoaded
	OutcomeToggled
	OutcomeMoved
	OutcomeModeChanged
)

var outcomeNames = [...]string{
	OutcomeNone:        "none",
	OutcomeQuit:        "quit",
	OutcomeReset:       "reset",
	OutcomeSaved:       "saved",
	OutcomeLoaded:      "loaded",
	OutcomeToggled:     "toggled",
	OutcomeMoved:       "moved",
	OutcomeModeChanged: "mode_changed",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Direction is a cursor movement
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)
