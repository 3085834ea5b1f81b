package clock

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by updates and accessors called before Initialize
	ErrNotInitialized = errors.New("clock not initialized")

	// ErrInvalidStepRate is returned by UpdateFixed for non-positive or non-finite rates
	ErrInvalidStepRate = errors.New("steps per second must be positive and finite")
)

func opError(op string, err error) error {
	return fmt.Errorf("clock: %s: %w", op, err)
}
