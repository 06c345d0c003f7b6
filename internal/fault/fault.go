// Package fault defines the tagged error taxonomy shared by all action
// handlers: validation (bad input, no collaborator touched), auth (no
// resolvable identity), remote (a collaborator call failed, message passed
// through) and configuration (programmer error, fail fast).
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

const (
	// KindValidation: caller input rejected before any remote call.
	KindValidation Kind = iota
	// KindAuth: no authenticated identity resolvable from the context.
	KindAuth
	// KindRemote: a collaborator (store, storage, auth backend) failed.
	KindRemote
	// KindConfiguration: misuse of the API by the programmer. Not a
	// runtime condition; callers are expected to fail fast on it.
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindRemote:
		return "remote"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error is a tagged fault. Message is safe to surface to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error // original cause, for logs only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a validation fault with a caller-facing message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Auth builds an auth fault.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Remote builds a remote fault. The collaborator's message is passed
// through verbatim so the UI can show it.
func Remote(msg string) *Error {
	return &Error{Kind: KindRemote, Message: msg}
}

// RemoteWrap builds a remote fault from a collaborator error, surfacing
// its message and keeping the cause for logs.
func RemoteWrap(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindRemote, Message: err.Error(), Err: err}
}

// Configuration builds a configuration fault. Used with panic for
// programmer-error guards.
func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// As extracts a *Error from err, or nil.
func As(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// IsKind reports whether err is a fault of the given kind.
func IsKind(err error, k Kind) bool {
	if fe := As(err); fe != nil {
		return fe.Kind == k
	}
	return false
}

func IsValidation(err error) bool { return IsKind(err, KindValidation) }

func IsAuth(err error) bool { return IsKind(err, KindAuth) }

func IsRemote(err error) bool { return IsKind(err, KindRemote) }
