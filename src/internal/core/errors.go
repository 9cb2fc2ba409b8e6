// FILE: logtint/src/internal/core/errors.go
package core

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against a pipeline failure
var (
	ErrDecode    = errors.New("decode error")
	ErrField     = errors.New("field error")
	ErrTimestamp = errors.New("timestamp parse error")
	ErrRead      = errors.New("read error")
	ErrWrite     = errors.New("write error")
)

// ErrorKind classifies a fatal pipeline failure
type ErrorKind int

const (
	KindDecode ErrorKind = iota + 1
	KindField
	KindTimestamp
	KindRead
	KindWrite
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindField:
		return "field"
	case KindTimestamp:
		return "timestamp"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindDecode:
		return ErrDecode
	case KindField:
		return ErrField
	case KindTimestamp:
		return ErrTimestamp
	case KindRead:
		return ErrRead
	case KindWrite:
		return ErrWrite
	default:
		return nil
	}
}

// Error is the terminal result of a failed run. Record is the 1-based index of
// the non-blank record being processed, zero when the failure is not tied to one.
type Error struct {
	Kind   ErrorKind
	Record uint64
	Field  string
	Err    error
}

// NewError tags err with a kind and, optionally, the field it concerns
func NewError(kind ErrorKind, field string, err error) *Error {
	return &Error{Kind: kind, Field: field, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Record > 0 {
		msg = fmt.Sprintf("%s in record %d", msg, e.Record)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %q)", msg, e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel so callers need not unwrap to *Error
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf reports the kind of a pipeline error, or zero if err is not one
func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}
