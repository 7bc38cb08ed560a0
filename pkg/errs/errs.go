// Package errs defines the failure kinds of the preprocessing pipeline.
//
// Every failure is reported as an *Error carrying its Kind, the stage and
// column it happened in, and the underlying cause. Callers match kinds with
// errors.Is:
//
//	if errors.Is(err, errs.UnknownCategory) { ... }
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// SchemaMismatch indicates an expected column is absent or has the wrong type.
	SchemaMismatch Kind = "schema-mismatch"
	// UnknownCategory indicates a categorical value outside its fixed vocabulary.
	UnknownCategory Kind = "unknown-category"
	// NotFitted indicates transform was called before fit.
	NotFitted Kind = "not-fitted"
	// AlreadyFitted indicates fit was called on a fitted transformer.
	AlreadyFitted Kind = "already-fitted"
	// EmptyInput indicates there is nothing to learn statistics from.
	EmptyInput Kind = "empty-input"
	// SerializationFailure indicates an artifact could not be written, read or decoded.
	SerializationFailure Kind = "serialization-failure"
)

// Error implements error so a Kind can be used directly as an errors.Is target.
func (k Kind) Error() string { return string(k) }

// Error is a pipeline failure with context.
type Error struct {
	Kind   Kind
	Stage  string
	Column string
	Err    error
}

// New returns an *Error of kind k with a formatted cause.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Err: fmt.Errorf(format, args...)}
}

// Wrap returns an *Error of kind k around err. Wrap(nil) is nil.
func Wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Err: err}
}

// At returns a copy of e annotated with a stage and column.
func (e *Error) At(stage, column string) *Error {
	c := *e
	if stage != "" {
		c.Stage = stage
	}
	if column != "" {
		c.Column = column
	}
	return &c
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Stage != "" {
		b.WriteString(" [stage ")
		b.WriteString(e.Stage)
		b.WriteString("]")
	}
	if e.Column != "" {
		b.WriteString(" [column ")
		b.WriteString(e.Column)
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
