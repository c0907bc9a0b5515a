package errs

import "errors"

// Error kinds surfaced to the UI layer. Callers classify with errs.Is.
var (
	// Form or draft rejected, locally or by a 400/422 from the data service
	ErrValidation = errors.New("validation failed")

	// 401 from the data service
	ErrUnauthenticated = errors.New("not authenticated")

	// 409 from the data service
	ErrConflict = errors.New("conflict")

	// Any other data service or transport failure
	ErrTransient = errors.New("transient failure")

	// Same operation already running for the session
	ErrInFlight = errors.New("operation already in progress")

	ErrSessionNotFound = errors.New("session not found")
)
