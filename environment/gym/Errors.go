package gym

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failures an Env can report. Kinds are kept
// distinct so that callers can recover differently, for example by
// treating construction failures as fatal but restarting an episode
// after an external call failure.
type Kind int

const (
	// Construction indicates the environment could not be created,
	// seeded, or introspected
	Construction Kind = iota

	// Conversion indicates a value returned by the runtime could not
	// be converted to the expected type
	Conversion

	// ExternalCall indicates the runtime itself reported a failure
	ExternalCall
)

func (k Kind) String() string {
	switch k {
	case Construction:
		return "construction error"
	case Conversion:
		return "conversion error"
	case ExternalCall:
		return "external call error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors that match any *Error of the same Kind with
// errors.Is
var (
	ErrConstruction = &Error{Kind: Construction}
	ErrConversion   = &Error{Kind: Conversion}
	ErrExternalCall = &Error{Kind: ExternalCall}
)

// Error is the error type returned by all Env operations
type Error struct {
	Kind Kind

	// Op is the operation which failed, e.g. "step"
	Op  string
	Err error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%v: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, so that errors.Cause from
// github.com/pkg/errors reaches the runtime's original failure
func (e *Error) Cause() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind returns whether err is or wraps an *Error of the given Kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
