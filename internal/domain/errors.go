package domain

import "errors"

var (
	// ErrInvalidMission marks a missing or malformed mission, config or drone record.
	ErrInvalidMission = errors.New("invalid mission")
	// ErrDivisionByZero marks a zero horizontal or vertical speed.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNumericDomain marks a non-finite value or a haversine term outside [0, 1].
	ErrNumericDomain = errors.New("numeric domain error")
	// ErrNotFound is returned by loaders when a record does not exist.
	ErrNotFound = errors.New("not found")
)
