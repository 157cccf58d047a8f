// Package schedule defines the shared scheduled -> ready -> activated seam
// used by both deployment surfaces.
//
// Pending-deployment records and asset orders store their schedules
// differently, but both encode the same state machine: a point at which the
// item becomes ready, and a terminal state after which it must never activate
// again. Expressing that contract once keeps the timing rules in the clock
// package from being duplicated per surface.
package schedule

import "github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"

// Schedulable is anything that becomes ready at a clock point and may reach a
// terminal state.
type Schedulable interface {
	// ReadyAt returns the point at which the item becomes ready.
	ReadyAt() clock.Point
	// Terminal reports whether the item has already activated and must not
	// activate again.
	Terminal() bool
}

// Due reports whether the item should activate under the given clock.
// Terminal items are never due.
func Due(s Schedulable, c clock.Clock) bool {
	if s.Terminal() {
		return false
	}
	return clock.Ready(s.ReadyAt(), c)
}
