package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a reconstruction failure.
type Kind int

const (
	Unknown Kind = iota

	// decoder
	InvalidBase
	InvalidDigit
	EmptyInput

	// interpolator
	InsufficientPoints
	DuplicateX
	NonIntegralResult
	InvalidThreshold
	InvalidModulus
	NonInvertible

	// document loader
	MissingField
)

var kindNames = map[Kind]string{
	Unknown:            "Unknown",
	InvalidBase:        "InvalidBase",
	InvalidDigit:       "InvalidDigit",
	EmptyInput:         "EmptyInput",
	InsufficientPoints: "InsufficientPoints",
	DuplicateX:         "DuplicateX",
	NonIntegralResult:  "NonIntegralResult",
	InvalidThreshold:   "InvalidThreshold",
	InvalidModulus:     "InvalidModulus",
	NonInvertible:      "NonInvertible",
	MissingField:       "MissingField",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrInvalidBase        = &Error{Kind: InvalidBase, Index: -1}
	ErrInvalidDigit       = &Error{Kind: InvalidDigit, Index: -1}
	ErrEmptyInput         = &Error{Kind: EmptyInput, Index: -1}
	ErrInsufficientPoints = &Error{Kind: InsufficientPoints, Index: -1}
	ErrDuplicateX         = &Error{Kind: DuplicateX, Index: -1}
	ErrNonIntegralResult  = &Error{Kind: NonIntegralResult, Index: -1}
	ErrInvalidThreshold   = &Error{Kind: InvalidThreshold, Index: -1}
	ErrInvalidModulus     = &Error{Kind: InvalidModulus, Index: -1}
	ErrNonInvertible      = &Error{Kind: NonInvertible, Index: -1}
	ErrMissingField       = &Error{Kind: MissingField, Index: -1}
)

// Error is a structured reconstruction error. Key names the offending share
// key, document field or x value; Index is a digit offset or point position,
// or -1 when it does not apply.
type Error struct {
	Kind  Kind
	Key   string
	Index int
	Msg   string
	Err   error
}

// New returns an error of the given kind without key or index.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Index: -1, Msg: msg}
}

// WithKey returns an error of the given kind bound to key.
func WithKey(kind Kind, key string, msg string) *Error {
	return &Error{Kind: kind, Key: key, Index: -1, Msg: msg}
}

// WithIndex returns an error of the given kind bound to key and index.
func WithIndex(kind Kind, key string, index int, msg string) *Error {
	return &Error{Kind: kind, Key: key, Index: index, Msg: msg}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Key != "" {
		fmt.Fprintf(&sb, " [key %q]", e.Key)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " [index %d]", e.Index)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target without
// a key matches any key, which lets the package sentinels match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}

// Rekey returns a copy of err bound to key when err is an *Error without a
// key. Other errors are returned unchanged.
func Rekey(err error, key string) error {
	var e *Error
	if !errors.As(err, &e) || e.Key != "" {
		return err
	}
	c := *e
	c.Key = key
	return &c
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsNumeric reports whether err signals a mathematical inconsistency of
// otherwise well-formed input.
func IsNumeric(err error) bool {
	switch KindOf(err) {
	case DuplicateX, NonIntegralResult, NonInvertible:
		return true
	}
	return false
}
