// Package clock supplies the timestamps stamped on sessions and requested tracks.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/biltubhaiff-blip/Discord-music/internal/common/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// New returns the wall clock
func New() Clock {
	return System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
