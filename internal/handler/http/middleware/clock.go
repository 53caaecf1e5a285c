package middleware

import "time"

// Clock abstracts time access so rate-limit windows can be tested
// deterministically. Production code uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real wall-clock time.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
