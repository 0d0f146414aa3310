// Package trace records the sequence of tool invocations made during one
// orchestration run, with inputs, outputs, timing and outcome. The resulting
// call list is attached to every agent response for audit and display.
package trace

import (
	"fmt"
	"time"
)

// Call statuses.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusError   = "error"
)

// ToolCall is a single recorded tool invocation.
type ToolCall struct {
	Tool       string                 `json:"tool"`
	Inputs     map[string]interface{} `json:"inputs"`
	Output     interface{}            `json:"output,omitempty"`
	Status     string                 `json:"status"`
	StartedAt  time.Time              `json:"started_at"`
	DurationMS float64                `json:"duration_ms"`
	Error      string                 `json:"error,omitempty"`
}

// Trace is an append-only sequence of tool calls owned by one orchestration
// run. It is not safe for concurrent use; each run owns exactly one Trace.
type Trace struct {
	calls []ToolCall
	now   func() time.Time
}

// New creates an empty trace.
func New() *Trace {
	return &Trace{now: time.Now}
}

// Start appends a pending call and returns its handle for finalization.
// The inputs map is copied so later mutation by the caller cannot alter
// the recorded call.
func (t *Trace) Start(tool string, inputs map[string]interface{}) int {
	copied := make(map[string]interface{}, len(inputs))
	for k, v := range inputs {
		copied[k] = v
	}
	t.calls = append(t.calls, ToolCall{
		Tool:      tool,
		Inputs:    copied,
		Status:    StatusPending,
		StartedAt: t.now(),
	})
	return len(t.calls) - 1
}

// Finish finalizes the call at handle with its output, or with an error
// message when errMsg is non-empty. Finalizing an unknown or already
// finalized handle is a programming error.
func (t *Trace) Finish(handle int, output interface{}, errMsg string) error {
	if handle < 0 || handle >= len(t.calls) {
		return fmt.Errorf("trace: handle %d out of range (have %d calls)", handle, len(t.calls))
	}
	call := &t.calls[handle]
	if call.Status != StatusPending {
		return fmt.Errorf("trace: call %d (%s) already finalized as %s", handle, call.Tool, call.Status)
	}

	call.Output = output
	call.DurationMS = float64(t.now().Sub(call.StartedAt)) / float64(time.Millisecond)
	if call.DurationMS < 0 {
		call.DurationMS = 0
	}
	if errMsg != "" {
		call.Status = StatusError
		call.Error = errMsg
	} else {
		call.Status = StatusSuccess
	}
	return nil
}

// Calls returns all recorded calls in start order.
func (t *Trace) Calls() []ToolCall {
	out := make([]ToolCall, len(t.calls))
	copy(out, t.calls)
	return out
}

// Len returns the number of recorded calls.
func (t *Trace) Len() int {
	return len(t.calls)
}

// Reset clears all recorded calls.
func (t *Trace) Reset() {
	t.calls = nil
}
