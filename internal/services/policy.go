package services

// ErrorPolicy decides what a workflow does with a per-item failure. It is
// threaded through the walker, the orchestrators, and the process clients so
// the continue-on-error decision lives in exactly one place.
type ErrorPolicy int

const (
	// Halt propagates the first per-item failure and unwinds the run.
	Halt ErrorPolicy = iota
	// ContinueAndRecord logs the failure and moves on to the next item.
	ContinueAndRecord
)

// Continues reports whether the policy swallows per-item failures.
func (p ErrorPolicy) Continues() bool {
	return p == ContinueAndRecord
}

func (p ErrorPolicy) String() string {
	if p == ContinueAndRecord {
		return "continue"
	}
	return "halt"
}
