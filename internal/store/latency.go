// Package store implements the task and list stores on top of an
// injected persistence adapter. Business rules (ID assignment,
// validation, completion semantics, derived counts) live here; the
// adapters only move records.
package store

import "time"

// Latency models the simulated backend cost of each operation.
// A zero value disables the simulation entirely.
type Latency struct {
	GetAll      time.Duration
	GetByID     time.Duration
	GetByListID time.Duration
	Create      time.Duration
	Update      time.Duration
	Delete      time.Duration
	Toggle      time.Duration
}

// DefaultLatency returns the standard per-operation durations.
func DefaultLatency() Latency {
	return Latency{
		GetAll:      300 * time.Millisecond,
		GetByID:     200 * time.Millisecond,
		GetByListID: 250 * time.Millisecond,
		Create:      400 * time.Millisecond,
		Update:      350 * time.Millisecond,
		Delete:      300 * time.Millisecond,
		Toggle:      200 * time.Millisecond,
	}
}

// Scale multiplies every duration by the given factor.
// A factor of 0 disables the simulation.
func (l Latency) Scale(factor float64) Latency {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return Latency{
		GetAll:      scale(l.GetAll),
		GetByID:     scale(l.GetByID),
		GetByListID: scale(l.GetByListID),
		Create:      scale(l.Create),
		Update:      scale(l.Update),
		Delete:      scale(l.Delete),
		Toggle:      scale(l.Toggle),
	}
}

// wait suspends the calling operation. Pending operations are not
// cancellable; the wait runs to completion regardless of context state.
func wait(d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	<-timer.C
}
