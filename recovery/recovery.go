// Package recovery expresses recoverable-error handling as explicit result
// values (design note §9) instead of exceptions: a Strategy decides what
// Action a recoverable condition gets, and a caller switches on the result
// rather than catching a thrown error. The layout packages of this module
// do not consult a Strategy; they report recoverable conditions through
// diag.Sink, and "doesn't fit" is carried by block.Outcome.
package recovery

import "context"

// Location anchors a recoverable condition to a place in the source tree or
// area tree, for diagnostics.
type Location struct {
	NodeID    string // source.Node.ID, when known
	Page      int    // 1-based page number, when known
	Component string // "property-resolver", "line-breaker", "page-breaker", ...
}

// Strategy decides how a recoverable condition should be handled.
type Strategy interface {
	OnError(ctx context.Context, err error, location Location) Action
}

// Action is what a Strategy decides to do about a recoverable condition.
type Action int

const (
	// ActionFail escalates the condition to a fatal layout.Error.
	ActionFail Action = iota
	// ActionSkip drops the offending element entirely.
	ActionSkip
	// ActionFix substitutes the documented spec default and continues.
	ActionFix
	// ActionWarn is like ActionFix but also records a diagnostic.
	ActionWarn
)
