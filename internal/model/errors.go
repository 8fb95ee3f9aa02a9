package model

import (
	"errors"
	"fmt"
)

// Kind classifies errors so the transport layer can map them to responses.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindInvalidReference Kind = "invalid_reference"
)

// Error is a classified error carrying a human-readable message.
type Error struct {
	Op   string
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing message of err.
// Errors outside the taxonomy return their plain text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}

// Validation returns a validation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound returns a not-found error for op.
func NotFound(op, msg string) error {
	return &Error{Op: op, Kind: KindNotFound, Msg: msg}
}

// Conflict returns a uniqueness violation error for op.
func Conflict(op, msg string) error {
	return &Error{Op: op, Kind: KindConflict, Msg: msg}
}

// InvalidReference reports a foreign key that resolves to nothing.
func InvalidReference(op, msg string) error {
	return &Error{Op: op, Kind: KindInvalidReference, Msg: msg}
}
