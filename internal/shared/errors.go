package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated indicates a missing or unverifiable token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates the caller lacks a required role.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateActivity indicates an activity name collision.
	ErrDuplicateActivity = errors.New("duplicate activity")
	// ErrInvalidMembershipType indicates an unrecognized membership type label.
	ErrInvalidMembershipType = errors.New("invalid membership type")
)

// Record kinds used in NotFoundError.
const (
	KindGrade      = "grade"
	KindMembership = "membership"
	KindActivity   = "activity"
	KindStudent    = "student"
	KindIdentity   = "identity"
)

// NotFoundError reports an unresolved record reference.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps an underlying storage failure so callers never see
// driver detail.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UserSafeMessage returns a message suitable for callers, hiding storage
// internals behind a generic description.
func UserSafeMessage(err error) string {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return "a storage error occurred"
	}
	return err.Error()
}
