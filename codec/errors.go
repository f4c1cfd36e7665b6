package codec

import "errors"

var (
	// ErrFrontEndNotFound is returned when no front-end is registered for an architecture
	ErrFrontEndNotFound = errors.New("entropy front-end not found")

	// ErrInvalidFrontEnd is returned when registering a front-end without a factory
	ErrInvalidFrontEnd = errors.New("invalid entropy front-end")
)
