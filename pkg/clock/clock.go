// Package clock provides the timestamp source injected into every write
// path, so tests can pin time. The whole process runs on one fixed JST
// offset; DST never applies.
package clock

import "time"

// JST is UTC+9, fixed offset.
var JST = time.FixedZone("JST", 9*60*60)

type Clock interface {
	// Now returns the current time in JST.
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().In(JST) }

// System returns the real wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t (converted to JST).
func Fixed(t time.Time) Clock { return fixedClock{t.In(JST)} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }
