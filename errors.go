package ods

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tsawler/ods/value"
)

// Kind classifies an error by its failure domain.
type Kind int

const (
	// KindFormat indicates document content that violates the ODS structure
	// rules (missing value attributes, unknown value types, ...).
	KindFormat Kind = iota
	// KindIO indicates a filesystem failure.
	KindIO
	// KindContainer indicates a failure of the ZIP package layer.
	KindContainer
	// KindXML indicates malformed XML in a document member.
	KindXML
	// KindNumeric indicates an unparseable numeric attribute.
	KindNumeric
	// KindDateTime indicates an unparseable date or timestamp attribute.
	KindDateTime
	// KindDuration indicates an unparseable or out-of-range duration.
	KindDuration
	// KindClock indicates the system clock was unusable while stamping
	// document metadata.
	KindClock
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindIO:
		return "io"
	case KindContainer:
		return "container"
	case KindXML:
		return "xml"
	case KindNumeric:
		return "numeric"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Error is the error type reported by Read and Write. Every failure carries
// exactly one Kind; the wrapped cause, if any, is available via Unwrap.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ods: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("ods: %s: %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// classifyValue maps a cell-value conversion failure to its kind. Numeric,
// date-time, and duration causes keep their native wrapped errors; anything
// else is a structural format violation.
func classifyValue(err error) Kind {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return KindNumeric
	}
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return KindDateTime
	}
	if errors.Is(err, value.ErrDurationRange) {
		return KindDuration
	}
	return KindFormat
}
