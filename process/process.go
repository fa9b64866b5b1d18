// Package process holds the parsed representation of a /proc/[pid]/stat record
// and the orderings used to sort a process listing.
package process

import "errors"

var (
	// ErrSourceUnavailable is returned when the base directory or a stat file
	// cannot be listed, opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedRecord is returned when a stat record does not contain the
	// expected fields in the expected order.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyReport is returned when asked to print an empty listing.
	ErrEmptyReport = errors.New("attempted to print nothing")
)
