// Package diag implements the diagnostics sink collaborator (spec §6, §7):
// recoverable layout conditions are reported here instead of aborting the
// run. It is a thin adapter over observability.Logger (teacher package
// "observability") that also keeps a structured, queryable record of every
// warning so a caller can assert "this run had zero warnings" without
// scraping log output.
package diag

import (
	"fmt"

	"github.com/wudi/foliate/observability"
)

// Warning is one recoverable condition recorded during a layout run.
type Warning struct {
	Code     string // e.g. "unknown-unit", "unresolved-font", "image-decode-error"
	Message  string
	Location string // node id, "page N", or similar human-readable anchor
}

// Sink collects warnings and forwards them to a Logger. The zero value is
// usable (NopLogger, no warnings recorded until Warn is called).
type Sink struct {
	Logger   observability.Logger
	warnings []Warning
}

// NewSink returns a Sink that logs through logger. A nil logger is replaced
// with observability.NopLogger{}.
func NewSink(logger observability.Logger) *Sink {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Sink{Logger: logger}
}

// Warn records a recoverable condition and logs it at Warn level.
func (s *Sink) Warn(code, message, location string) {
	if s == nil {
		return
	}
	s.warnings = append(s.warnings, Warning{Code: code, Message: message, Location: location})
	if s.Logger == nil {
		return
	}
	s.Logger.Warn(message,
		observability.String("code", code),
		observability.String("location", location),
	)
}

// Warnings returns every warning recorded so far, in emission order.
func (s *Sink) Warnings() []Warning {
	if s == nil {
		return nil
	}
	return s.warnings
}

// Warningf is a convenience wrapper that formats message like fmt.Sprintf.
func (s *Sink) Warningf(code, location, format string, args ...interface{}) {
	s.Warn(code, fmt.Sprintf(format, args...), location)
}
