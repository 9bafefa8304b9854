package shamir

import "errors"

var (
	// ErrThresholdTooSmall is returned when a session is requested with a threshold below 2.
	ErrThresholdTooSmall = errors.New("shamir: threshold must be at least 2")

	// ErrInvalidPrime is returned when a caller-supplied modulus is nil or not greater than 2.
	ErrInvalidPrime = errors.New("shamir: modulus must be greater than 2")

	// ErrLeadingCoefficient is returned when no non-zero leading coefficient
	// could be drawn within the configured number of attempts.
	ErrLeadingCoefficient = errors.New("shamir: failed to draw a non-zero leading coefficient")

	// ErrDuplicateShare is returned by the Aggregator for a repeated x-coordinate.
	ErrDuplicateShare = errors.New("shamir: duplicate share x-coordinate")
)
