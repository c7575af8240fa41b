package model

import "errors"

// Domain-level rejections. Kept distinct from store failures so callers
// can render specific messages.
var (
	// ErrDuplicateRegistration indicates a (user, event) pair already has
	// a registration row.
	ErrDuplicateRegistration = errors.New("registration already exists for this user and event")

	// ErrInvalidTransition indicates an attempt to move a registration out
	// of a terminal state. Only pending registrations may transition.
	ErrInvalidTransition = errors.New("registration is not pending")

	// ErrRegistrationNotFound indicates a transition was requested for an
	// unknown registration id.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrEmailTaken indicates a signup collided with an existing account.
	ErrEmailTaken = errors.New("email already registered")
)
