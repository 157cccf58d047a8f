package clock

import (
	"time"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
)

// DaysPerWeek is the length of a campaign week. Day-of-week values are 1-based.
const DaysPerWeek = 7

var (
	// ErrInvalidDay indicates a day-of-week outside the 1..7 range.
	ErrInvalidDay = apperrors.New(apperrors.CodeClockInvalidDay, "day of week must be between 1 and 7")
)

// Clock is the campaign's logical time: a turn number plus a day of week,
// with a special zero-turn planning phase before the first real turn.
type Clock struct {
	CurrentDate time.Time `json:"current_date"`
	DayOfWeek   int       `json:"day_of_week"`
	Turn        int       `json:"turn"`
	Planning    bool      `json:"planning"`
}

// Validate checks the clock's day-of-week invariant.
func (c Clock) Validate() error {
	if c.DayOfWeek < 1 || c.DayOfWeek > DaysPerWeek {
		return ErrInvalidDay
	}
	return nil
}

// Point is a (turn, day) pair in clock ordering.
type Point struct {
	Turn int `json:"turn"`
	Day  int `json:"day"`
}

// Compare orders two points: -1 when p is earlier than other, 0 when equal,
// +1 when later. Turn dominates; day breaks same-turn ties.
func (p Point) Compare(other Point) int {
	switch {
	case p.Turn < other.Turn:
		return -1
	case p.Turn > other.Turn:
		return 1
	case p.Day < other.Day:
		return -1
	case p.Day > other.Day:
		return 1
	default:
		return 0
	}
}

// Now returns the clock's current point.
func (c Clock) Now() Point {
	return Point{Turn: c.Turn, Day: c.DayOfWeek}
}

// ActivationAt computes the point at which something ordered now, with the
// given lead time in days, becomes active.
//
// During the planning phase the lead time is ignored: everything ordered while
// planning becomes available at the start of the first real turn, recorded as
// turn zero with the current day.
//
// Otherwise the clock is advanced one day at a time; whenever the day passes
// the end of the week it wraps to day 1 and the turn increments. This yields
// correct cross-week and multi-week wraparound.
func ActivationAt(c Clock, leadTimeDays int) Point {
	if c.Planning {
		return Point{Turn: 0, Day: c.DayOfWeek}
	}

	turn := c.Turn
	day := c.DayOfWeek
	for i := 0; i < leadTimeDays; i++ {
		day++
		if day > DaysPerWeek {
			day = 1
			turn++
		}
	}
	return Point{Turn: turn, Day: day}
}

// Ready reports whether a scheduled activation point has been reached.
//
// Everything is treated as already active during the planning phase. A point
// on the current turn is ready once its day is reached or passed; the
// same-day tie-break is inclusive.
func Ready(activatesAt Point, c Clock) bool {
	if c.Planning {
		return true
	}
	if activatesAt.Turn < c.Turn {
		return true
	}
	return activatesAt.Turn == c.Turn && activatesAt.Day <= c.DayOfWeek
}

// Advance moves the clock forward one day.
//
// Leaving the planning phase starts turn 1 on day 1. Past the end of a week
// the day wraps to 1 and the turn increments. The calendar date always moves
// forward by one day.
func Advance(c Clock) Clock {
	next := c
	next.CurrentDate = c.CurrentDate.AddDate(0, 0, 1)
	if c.Planning {
		next.Planning = false
		next.Turn = 1
		next.DayOfWeek = 1
		return next
	}
	next.DayOfWeek++
	if next.DayOfWeek > DaysPerWeek {
		next.DayOfWeek = 1
		next.Turn++
	}
	return next
}
