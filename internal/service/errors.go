package service

import "fmt"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Kind string
	Ref  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Kind, e.Ref)
}

func notFound(kind string, ref any) error {
	return &NotFoundError{Kind: kind, Ref: ref}
}

// InvalidStateError reports a precondition violation on a state machine:
// the entity exists but is not in a state that permits the operation.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return e.Msg }

func invalidState(format string, args ...any) error {
	return &InvalidStateError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports that a concurrent writer invalidated this
// operation (optimistic version mismatch or a duplicate unique key). The
// caller may retry from scratch after reloading state.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// ForbiddenError reports that the caller is not allowed to perform the
// operation on this resource.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }

func forbidden(format string, args ...any) error {
	return &ForbiddenError{Msg: fmt.Sprintf(format, args...)}
}
