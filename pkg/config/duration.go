package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration reports an error unless d is greater than
// zero. Used for timeouts, intervals, and rate-limit windows.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
