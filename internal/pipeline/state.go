package pipeline

// StateKind is the presentation state of a list screen.
type StateKind uint8

const (
	// StateInitialLoad is shown before the first collection arrives.
	StateInitialLoad StateKind = iota
	// StateEmpty is shown when the filtered collection has no items.
	StateEmpty
	// StateError is shown when the last run failed.
	StateError
	// StateReady is shown when there are items to display.
	StateReady
)

func (k StateKind) String() string {
	switch k {
	case StateInitialLoad:
		return "initial-load"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is one presentation state, with the error message when the
// kind is StateError.
type State struct {
	Kind    StateKind
	Message string
}

// Conditions are the inputs to the state transition function.
type Conditions struct {
	RawEmpty      bool
	EverLoaded    bool
	FilteredEmpty bool
	ErrorMessage  string
}

// Transition derives the presentation state from the conditions. The
// function is total: every combination of inputs yields exactly one
// state, and there is no terminal state — it is re-evaluated on every
// fetch, filter change and mutation completion.
func Transition(c Conditions) State {
	switch {
	case c.ErrorMessage != "":
		return State{Kind: StateError, Message: c.ErrorMessage}
	case c.FilteredEmpty && c.RawEmpty && !c.EverLoaded:
		return State{Kind: StateInitialLoad}
	case c.FilteredEmpty:
		return State{Kind: StateEmpty}
	default:
		return State{Kind: StateReady}
	}
}
