// Package scan defines the Finding type shared by the detector, the fix
// proposer, and the risk assessor.
package scan

// Severity values produced by the built-in heuristics. Model-sourced findings
// may carry anything; unrecognized severities simply contribute no risk
// deduction downstream.
const (
	SeverityLow     = "Low"
	SeverityMedium  = "Medium"
	SeverityHigh    = "High"
	SeverityUnknown = "Unknown"
)

// Kinds produced by the built-in heuristics. Kind is deliberately an open
// string, not a closed enum: model-sourced findings may introduce new kinds.
const (
	KindCodeQuality     = "Code Quality"
	KindReliability     = "Reliability"
	KindMaintainability = "Maintainability"

	// KindIssue is the default when a model-sourced finding omits its kind.
	KindIssue = "Issue"
)

// Finding is a single issue detected in a snippet. Immutable once created.
type Finding struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
