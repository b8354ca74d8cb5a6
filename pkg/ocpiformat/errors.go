package ocpiformat

import "errors"

var (
	// ErrInvalidDateTime is returned when a string is not a valid OCPI DateTime.
	ErrInvalidDateTime = errors.New("invalid OCPI DateTime")

	// ErrInvalidTimeOfDay is returned when a string is not a valid HH:MM time.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
