package clock

import (
	"errors"
	"testing"
	"time"
)

func TestActivationAt(t *testing.T) {
	tests := []struct {
		name     string
		turn     int
		day      int
		leadDays int
		want     Point
	}{
		{name: "same turn", turn: 1, day: 1, leadDays: 3, want: Point{Turn: 1, Day: 4}},
		{name: "cross week", turn: 1, day: 5, leadDays: 4, want: Point{Turn: 2, Day: 2}},
		{name: "two full weeks", turn: 1, day: 1, leadDays: 14, want: Point{Turn: 3, Day: 1}},
		{name: "zero lead time", turn: 1, day: 3, leadDays: 0, want: Point{Turn: 1, Day: 3}},
		{name: "exactly one week", turn: 1, day: 1, leadDays: 7, want: Point{Turn: 2, Day: 1}},
		{name: "end of week start", turn: 2, day: 7, leadDays: 1, want: Point{Turn: 3, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Clock{Turn: tt.turn, DayOfWeek: tt.day}
			got := ActivationAt(c, tt.leadDays)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestActivationAtPlanningIgnoresLeadTime(t *testing.T) {
	c := Clock{Turn: 0, DayOfWeek: 4, Planning: true}

	for _, leadDays := range []int{0, 1, 7, 30} {
		got := ActivationAt(c, leadDays)
		if got != (Point{Turn: 0, Day: 4}) {
			t.Fatalf("lead time %d: expected {0 4}, got %+v", leadDays, got)
		}
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name        string
		activatesAt Point
		clock       Clock
		want        bool
	}{
		{name: "past turn", activatesAt: Point{Turn: 1, Day: 6}, clock: Clock{Turn: 2, DayOfWeek: 1}, want: true},
		{name: "same turn earlier day", activatesAt: Point{Turn: 2, Day: 1}, clock: Clock{Turn: 2, DayOfWeek: 3}, want: true},
		{name: "same turn same day", activatesAt: Point{Turn: 2, Day: 3}, clock: Clock{Turn: 2, DayOfWeek: 3}, want: true},
		{name: "same turn later day", activatesAt: Point{Turn: 2, Day: 4}, clock: Clock{Turn: 2, DayOfWeek: 3}, want: false},
		{name: "future turn", activatesAt: Point{Turn: 3, Day: 1}, clock: Clock{Turn: 2, DayOfWeek: 7}, want: false},
		{name: "planning overrides future", activatesAt: Point{Turn: 9, Day: 7}, clock: Clock{Planning: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ready(tt.activatesAt, tt.clock); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestReadyMonotone verifies that once a point is ready it stays ready under
// every later clock.
func TestReadyMonotone(t *testing.T) {
	activatesAt := Point{Turn: 2, Day: 4}
	c := Clock{Turn: 2, DayOfWeek: 4}
	if !Ready(activatesAt, c) {
		t.Fatal("expected point to be ready at its own clock")
	}

	for i := 0; i < 3*DaysPerWeek; i++ {
		c = Advance(c)
		if !Ready(activatesAt, c) {
			t.Fatalf("point became un-ready at turn %d day %d", c.Turn, c.DayOfWeek)
		}
	}
}

func TestAdvance(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	c := Clock{CurrentDate: start, Turn: 1, DayOfWeek: 6}
	c = Advance(c)
	if c.Turn != 1 || c.DayOfWeek != 7 {
		t.Fatalf("expected turn 1 day 7, got turn %d day %d", c.Turn, c.DayOfWeek)
	}
	c = Advance(c)
	if c.Turn != 2 || c.DayOfWeek != 1 {
		t.Fatalf("expected turn 2 day 1, got turn %d day %d", c.Turn, c.DayOfWeek)
	}
	if !c.CurrentDate.Equal(start.AddDate(0, 0, 2)) {
		t.Fatalf("expected calendar date to advance two days, got %v", c.CurrentDate)
	}
}

func TestAdvanceLeavesPlanning(t *testing.T) {
	c := Clock{Turn: 0, DayOfWeek: 5, Planning: true}
	c = Advance(c)
	if c.Planning {
		t.Fatal("expected planning phase to end")
	}
	if c.Turn != 1 || c.DayOfWeek != 1 {
		t.Fatalf("expected turn 1 day 1, got turn %d day %d", c.Turn, c.DayOfWeek)
	}
}

func TestValidate(t *testing.T) {
	if err := (Clock{Turn: 1, DayOfWeek: 7}).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, day := range []int{0, 8, -1} {
		err := (Clock{Turn: 1, DayOfWeek: day}).Validate()
		if !errors.Is(err, ErrInvalidDay) {
			t.Fatalf("day %d: expected ErrInvalidDay, got %v", day, err)
		}
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{name: "earlier turn", a: Point{Turn: 1, Day: 7}, b: Point{Turn: 2, Day: 1}, want: -1},
		{name: "later turn", a: Point{Turn: 3, Day: 1}, b: Point{Turn: 2, Day: 7}, want: 1},
		{name: "same turn earlier day", a: Point{Turn: 2, Day: 1}, b: Point{Turn: 2, Day: 5}, want: -1},
		{name: "equal", a: Point{Turn: 2, Day: 5}, b: Point{Turn: 2, Day: 5}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
