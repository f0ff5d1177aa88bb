// Package trace records the decision log of a single agent run.
//
// A Recorder is owned by exactly one run: it is created when the run starts,
// appended to by the workflow steps, and handed back to the caller as part of
// the run result. Nothing is shared across runs.
package trace

// Step identifies which workflow phase produced an entry.
type Step string

const (
	StepPlan    Step = "PLAN"
	StepAnalyze Step = "ANALYZE"
	StepAct     Step = "ACT"
	StepTest    Step = "TEST"
	StepReflect Step = "REFLECT"
)

// Entry is a single trace record.
type Entry struct {
	Step    Step   `json:"step"`
	Message string `json:"message"`
}

// Sink is the write side of a trace. The detector and fixer log their
// path decisions (offline mode, fallbacks) through this.
type Sink interface {
	Append(step Step, message string)
}

// Recorder is an append-only in-memory trace.
type Recorder struct {
	entries []Entry
}

// Append adds one entry. Entries are never modified or removed.
func (r *Recorder) Append(step Step, message string) {
	r.entries = append(r.entries, Entry{Step: step, Message: message})
}

// Entries returns a copy of the recorded entries in append order.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
