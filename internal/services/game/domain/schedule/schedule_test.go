package schedule

import (
	"testing"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
)

type fakeSchedulable struct {
	readyAt  clock.Point
	terminal bool
}

func (f fakeSchedulable) ReadyAt() clock.Point { return f.readyAt }
func (f fakeSchedulable) Terminal() bool       { return f.terminal }

func TestDue(t *testing.T) {
	tests := []struct {
		name  string
		item  fakeSchedulable
		clock clock.Clock
		want  bool
	}{
		{name: "ready now", item: fakeSchedulable{readyAt: clock.Point{Turn: 2, Day: 3}}, clock: clock.Clock{Turn: 2, DayOfWeek: 3}, want: true},
		{name: "not ready yet", item: fakeSchedulable{readyAt: clock.Point{Turn: 2, Day: 4}}, clock: clock.Clock{Turn: 2, DayOfWeek: 3}, want: false},
		{name: "terminal never due", item: fakeSchedulable{readyAt: clock.Point{Turn: 1, Day: 1}, terminal: true}, clock: clock.Clock{Turn: 5, DayOfWeek: 5}, want: false},
		{name: "planning is due", item: fakeSchedulable{readyAt: clock.Point{Turn: 9, Day: 9}}, clock: clock.Clock{Planning: true}, want: true},
		{name: "planning terminal stays terminal", item: fakeSchedulable{terminal: true}, clock: clock.Clock{Planning: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Due(tt.item, tt.clock); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
