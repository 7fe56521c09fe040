package resolve

import (
	"fmt"
	"strings"
)

// ErrorKind tags the failure carried by an Error.
type ErrorKind int

const (
	TypeNotFound ErrorKind = iota + 1
	NoMatchingMember
	NoSuchField
	InvalidAssignment
	InvocationFailure
)

func (k ErrorKind) String() string {
	switch k {
	case TypeNotFound:
		return "type not found"
	case NoMatchingMember:
		return "no matching member"
	case NoSuchField:
		return "no such field"
	case InvalidAssignment:
		return "invalid assignment"
	case InvocationFailure:
		return "invocation failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type reported by resolution, field access and
// invocation.
type Error struct {
	Kind      ErrorKind
	Type      string // type the operation started from
	Member    string // member or type name involved
	Signature string // argument-type signature, e.g. "(lang.String, null)"
	Err       error  // underlying cause, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Member != "" || e.Type != "" {
		b.WriteString(": ")
		if e.Type != "" && e.Kind != TypeNotFound {
			b.WriteString(e.Type)
			if e.Member != "" {
				b.WriteByte('.')
			}
		}
		b.WriteString(e.Member)
		b.WriteString(e.Signature)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNoSuchField)
// works regardless of the details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrTypeNotFound      = &Error{Kind: TypeNotFound}
	ErrNoMatchingMember  = &Error{Kind: NoMatchingMember}
	ErrNoSuchField       = &Error{Kind: NoSuchField}
	ErrInvalidAssignment = &Error{Kind: InvalidAssignment}
	ErrInvocationFailure = &Error{Kind: InvocationFailure}
)

// KindOf returns the kind of err if it wraps an *Error, or zero.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}
