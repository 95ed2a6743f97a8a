package domain

// StepLimitMarker is appended to a run's ID trace when the step limit cuts the
// run short. Its presence distinguishes a forced halt from a normal one.
const StepLimitMarker = ">>> step limit reached, possible infinite loop"

// RunResult is the outcome of executing a machine against one input string.
type RunResult struct {
	// Input is the original input string.
	Input string `json:"input"`

	// Accepted is true when the final state is an accept state, regardless
	// of how the run halted.
	Accepted bool `json:"accepted"`

	// FinalState is the state the machine halted in.
	FinalState string `json:"final_state"`

	// FinalTape is the stored cell range rendered as a string, blanks
	// outside the used range omitted. Empty when no cells remain.
	FinalTape string `json:"final_tape"`

	// IDs is the chronological sequence of instantaneous descriptions, one
	// per configuration visited, starting with the initial configuration.
	// A forced halt appends StepLimitMarker as the last entry.
	IDs []string `json:"ids"`

	// Steps is the number of transitions applied.
	Steps int `json:"steps"`
}

// Verdict renders the acceptance flag as a report word.
func (r *RunResult) Verdict() string {
	if r.Accepted {
		return "ACCEPTED"
	}
	return "REJECTED"
}

// LifecycleHooks allows callers to observe run execution without coupling the
// engine to any metrics or logging backend. Nil fields are skipped.
type LifecycleHooks struct {
	OnRunStart    func(input string)
	OnRunComplete func(result *RunResult)
}
