package kernel

import (
	"fmt"
	"time"
	_ "time/tzdata" // pickup zone must resolve on hosts without zoneinfo
)

// PickupTimeZone is the civil time zone pickup confirmations are stamped in,
// independent of the server locale.
const PickupTimeZone = "Europe/Madrid"

// Clock returns the current instant. Use cases receive a Clock instead of calling
// time.Now so that tests can pin the time.
type Clock func() time.Time

// NewZonedClock returns a Clock reporting wall-clock time in the named location.
//
// Example:
//
//	clock, err := kernel.NewZonedClock(kernel.PickupTimeZone)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(clock().Location()) // Europe/Madrid
func NewZonedClock(name string) (Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return func() time.Time {
		return time.Now().In(loc)
	}, nil
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
