package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the HTTP layer. Not-found conditions map to
// 404, duplicates to 409, everything else here to 400.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("resource not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrTripAlreadyEnded   = errors.New("trip has already ended")
	ErrUserReferenced     = errors.New("user is referenced by other records")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateVIN      = errors.New("a vehicle with this VIN already exists")
	ErrDuplicatePlate    = errors.New("a vehicle with this license plate already exists")
	ErrDuplicateSKU      = errors.New("a part with this SKU already exists")
)

// validationError wraps a message so handlers can match it with
// errors.Is(err, ErrValidation).
func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
