// Package clock models the campaign's turn/day logical time and the
// activation timing rules built on it.
//
// All functions are pure: they read a clock value and return new values, so
// write-path decisions stay deterministic regardless of when a caller holds
// its snapshot. The total ordering on (turn, day) points is the only ordering
// downstream scheduling code relies on.
package clock
