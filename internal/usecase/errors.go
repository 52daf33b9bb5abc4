package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMasterNotFound        = errors.New("master booking not found")
	ErrMirrorMissing         = errors.New("mirror missing")
	ErrCrewNotFound          = errors.New("crew not found")
	ErrPreconditionViolation = errors.New("precondition violation")
	ErrPartialSyncFailure    = errors.New("partial sync failure")

	ErrInvalidBookingID  = errors.New("invalid booking_id")
	ErrInvalidCustomerID = errors.New("invalid customer_id")
	ErrInvalidCrewID     = errors.New("invalid crew_id")
	ErrInvalidStatus     = errors.New("invalid assigned status")
	ErrInvalidBooking    = errors.New("invalid booking")
)

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolation, fmt.Sprintf(format, args...))
}

func partialf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPartialSyncFailure, fmt.Sprintf(format, args...))
}

// warningsFrom flattens a (possibly joined) error into warning strings.
func warningsFrom(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, warningsFrom(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func trimID(raw string, invalid error) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || strings.Contains(id, "/") {
		return "", invalid
	}
	return id, nil
}
