package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound          = errors.New("Your requested Item is not found")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
)

// ErrorKind is the machine readable code returned to API callers
type ErrorKind string

const (
	KindMissingParam       ErrorKind = "MISSING_PARAM"
	KindInvalidParam       ErrorKind = "INVALID_PARAM"
	KindUnsupportedNetwork ErrorKind = "UNSUPPORTED_NETWORK"
	KindUnauthorized       ErrorKind = "UNAUTHORIZED"
	KindSessionExpired     ErrorKind = "SESSION_EXPIRED"
	KindSessionBusy        ErrorKind = "SESSION_BUSY"
	KindSessionCorrupted   ErrorKind = "SESSION_CORRUPTED"
	KindCommitmentNotFound ErrorKind = "COMMITMENT_NOT_FOUND"
	KindCommitmentTooNew   ErrorKind = "COMMITMENT_TOO_NEW"
	KindCommitmentExpired  ErrorKind = "COMMITMENT_EXPIRED"
	KindCommitmentMismatch ErrorKind = "COMMITMENT_MISMATCH"
	KindSimulationFailed   ErrorKind = "SIMULATION_FAILED"
	KindNotOwner           ErrorKind = "NOT_OWNER"
	KindTokenNotFound      ErrorKind = "TOKEN_NOT_FOUND"
	KindNotRegistered      ErrorKind = "NOT_REGISTERED"
	KindNoPrimaryName      ErrorKind = "NO_PRIMARY_NAME"
	KindInternal           ErrorKind = "INTERNAL_ERROR"
)

// Error is a failure scoped to one request. errors.Is matches two Errors by Kind,
// so the sentinels below can be used as targets.
type Error struct {
	Kind    ErrorKind
	Message string
	// RemainingSeconds is set for KindCommitmentTooNew
	RemainingSeconds int64
	Debug            map[string]interface{}
	Err              error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDebug returns a copy of e carrying debug context
func (e *Error) WithDebug(debug map[string]interface{}) *Error {
	cp := *e
	cp.Debug = debug
	return &cp
}

// NewError builds an Error of kind with a formatted message
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error of kind that keeps err as its cause
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, KindInternal for anything that is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrMissingParam       = &Error{Kind: KindMissingParam}
	ErrInvalidParam       = &Error{Kind: KindInvalidParam}
	ErrUnsupportedNetwork = &Error{Kind: KindUnsupportedNetwork}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrSessionExpired     = &Error{Kind: KindSessionExpired}
	ErrSessionBusy        = &Error{Kind: KindSessionBusy}
	ErrSessionCorrupted   = &Error{Kind: KindSessionCorrupted}
	ErrCommitmentNotFound = &Error{Kind: KindCommitmentNotFound}
	ErrCommitmentTooNew   = &Error{Kind: KindCommitmentTooNew}
	ErrCommitmentExpired  = &Error{Kind: KindCommitmentExpired}
	ErrCommitmentMismatch = &Error{Kind: KindCommitmentMismatch}
	ErrSimulationFailed   = &Error{Kind: KindSimulationFailed}
	ErrNotOwner           = &Error{Kind: KindNotOwner}
	ErrTokenNotFound      = &Error{Kind: KindTokenNotFound}
	ErrNotRegistered      = &Error{Kind: KindNotRegistered}
	ErrNoPrimaryName      = &Error{Kind: KindNoPrimaryName}
)
