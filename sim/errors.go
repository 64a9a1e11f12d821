// Error taxonomy for the simulation core. The four categories map to how the
// transport collaborator should react: validation and range errors are caller
// mistakes, blocked errors are expected control flow, parse errors are fatal
// for the operation. The core never retries internally.

package sim

import "fmt"

// ValidationError reports malformed caller input: unknown scenario names,
// unknown decision ids or choices, and budget allocations that break the
// sum/boundary rules.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation: " + e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// RangeError reports a cursor outside the recorded turn range.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return "range: " + e.Msg }

// Rangef builds a RangeError from a format string.
func Rangef(format string, args ...any) error {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

// BlockedError signals that an advance cannot proceed yet: a decision is
// pending, or the cursor already sits at the furthest simulated turn. It is
// expected control flow, not a fault.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string { return "blocked: " + e.Reason }

// Blockedf builds a BlockedError from a format string.
func Blockedf(format string, args ...any) error {
	return &BlockedError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError reports a malformed log or meta record. The operation that hit
// it fails outright; the core does not attempt partial recovery.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse: %s: %v", e.Msg, e.Err)
	}
	return "parse: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parsef builds a ParseError wrapping cause.
func Parsef(cause error, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Err: cause}
}
