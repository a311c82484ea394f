// Package timeleft breaks the distance to a target moment into whole
// days plus residual hours, minutes and seconds. It is a plain duration
// split, not a calendar-aware (month/year) breakdown.
package timeleft

import "time"

// Breakdown is the remaining time to a target, floored to whole units.
type Breakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether no time remains.
func (b Breakdown) IsZero() bool {
	return b.Days == 0 && b.Hours == 0 && b.Minutes == 0 && b.Seconds == 0
}

// Remaining computes the time left until target. A target at or before
// now yields an all-zero breakdown, never negative components.
func Remaining(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Breakdown{}
	}

	return Breakdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff/time.Hour) % 24,
		Minutes: int(diff/time.Minute) % 60,
		Seconds: int(diff/time.Second) % 60,
	}
}
