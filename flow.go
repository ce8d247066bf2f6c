package revet

// FlowState is the lifecycle state of one submit/result cycle.
type FlowState int

// Flow lifecycle states.
const (
	FlowIdle FlowState = iota
	FlowSubmitting
	FlowSucceeded
	FlowFailed
)

// String returns the state name for status displays.
func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowSubmitting:
		return "submitting"
	case FlowSucceeded:
		return "succeeded"
	case FlowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Flow is the lifecycle state machine for one submission flow. Each flow
// (single review, CSV batch) owns an independent Flow; the two may be
// submitting concurrently without interference. Within one flow, at most one
// request is in flight: Submit refuses while submitting, and surfaces keep
// the trigger control disabled for the same duration. Requests are never
// retried or cancelled by the flow itself.
type Flow struct {
	state  FlowState
	errMsg string
}

// State returns the current lifecycle state.
func (f *Flow) State() FlowState {
	return f.state
}

// Submitting reports whether a request is in flight.
func (f *Flow) Submitting() bool {
	return f.state == FlowSubmitting
}

// ControlEnabled reports whether the trigger control should accept input.
func (f *Flow) ControlEnabled() bool {
	return f.state != FlowSubmitting
}

// Err returns the current error message, empty unless the flow failed.
func (f *Flow) Err() string {
	return f.errMsg
}

// Caption picks the control caption for the current state.
func (f *Flow) Caption(idle, busy string) string {
	if f.state == FlowSubmitting {
		return busy
	}
	return idle
}

// Submit transitions to Submitting, clearing any prior error or result
// state. It reports false if a request is already in flight; a new
// submission always supersedes a finished one.
func (f *Flow) Submit() bool {
	if f.state == FlowSubmitting {
		return false
	}
	f.state = FlowSubmitting
	f.errMsg = ""
	return true
}

// Succeed records a successful response. Only meaningful while submitting.
func (f *Flow) Succeed() {
	if f.state != FlowSubmitting {
		return
	}
	f.state = FlowSucceeded
	f.errMsg = ""
}

// Fail records a failed response with its user-facing message. Only
// meaningful while submitting.
func (f *Flow) Fail(msg string) {
	if f.state != FlowSubmitting {
		return
	}
	f.state = FlowFailed
	f.errMsg = msg
}

// Reset returns the flow to Idle, dropping any error. Used when a surface
// unmounts its result view.
func (f *Flow) Reset() {
	f.state = FlowIdle
	f.errMsg = ""
}
