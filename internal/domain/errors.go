package domain

import "errors"

var (
	// ErrSessionLocked indicates the planning session has been confirmed
	// and the draft schedule can no longer be mutated.
	ErrSessionLocked = errors.New("session is locked")

	// ErrCreditCapExceeded indicates an add would push the draft past
	// the credit cap. The conflict checker normally rejects such adds
	// before the draft ever sees them.
	ErrCreditCapExceeded = errors.New("credit cap exceeded")
)
