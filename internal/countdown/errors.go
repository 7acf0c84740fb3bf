package countdown

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidClockField = errors.New("invalid clock field")
	ErrOverflow          = errors.New("value does not fit in 32 bits of seconds")
	ErrTimeOverflow      = errors.New("end instant is not representable")
	ErrInvalidStep       = errors.New("step out of range")
)

// ParseErrorKind classifies why a time expression was rejected.
type ParseErrorKind int

const (
	InvalidNumber ParseErrorKind = iota + 1
	InvalidClockField
	Overflow
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidClockField:
		return "InvalidClockField"
	case Overflow:
		return "Overflow"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case InvalidNumber:
		return ErrInvalidNumber
	case InvalidClockField:
		return ErrInvalidClockField
	case Overflow:
		return ErrOverflow
	}
	return nil
}

// ParseError reports the offending field of a time expression.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.sentinel().Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %s: %v", e.Input, msg, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Input, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is match a ParseError against the sentinel of its kind.
func (e *ParseError) Is(target error) bool {
	return e != nil && target == e.Kind.sentinel()
}

func newParseError(kind ParseErrorKind, input, field string, err error) error {
	return &ParseError{Kind: kind, Input: input, Field: field, Err: err}
}
