package deployment

import (
	"testing"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
)

func testWorld() World {
	return World{
		Units: []forces.Unit{
			{ID: "u-blue", Faction: forces.FactionBlue, TaskForceID: "tf-blue", DamagePoints: 2, PendingDeployment: true},
			{ID: "u-red", Faction: forces.FactionRed, TaskForceID: "tf-red", DamagePoints: 2, PendingDeployment: true},
		},
		TaskForces: []forces.TaskForce{
			{ID: "tf-blue", Name: "TF Kearsarge", Faction: forces.FactionBlue, PendingDeployment: true},
			{ID: "tf-red", Name: "TF Kirov", Faction: forces.FactionRed, PendingDeployment: true},
		},
		Areas: []forces.OperationalArea{
			{ID: "oa1", Name: "Norwegian Sea"},
		},
		Cards: []forces.Card{
			{ID: "c1", Name: "Convoy Escort", Faction: forces.FactionBlue},
			{ID: "c2", Name: "Wolfpack", Faction: forces.FactionRed},
		},
	}
}

func readySchedule(faction forces.Faction) Schedule {
	return Schedule{
		Faction:     faction,
		ScheduledAt: clock.Point{Turn: 1, Day: 1},
		ActivatesAt: clock.Point{Turn: 1, Day: 3},
	}
}

func TestCollectReturnsReadyRecords(t *testing.T) {
	world := testWorld()
	pending := Pending{
		Cards: []CardRecord{
			{Schedule: readySchedule(forces.FactionBlue), CardID: "c1", CardInstanceID: "c1-i1", AreaID: "oa1"},
			{Schedule: Schedule{Faction: forces.FactionBlue, ActivatesAt: clock.Point{Turn: 2, Day: 1}}, CardID: "c1", CardInstanceID: "c1-i2", AreaID: "oa1"},
		},
		Units:      []UnitRecord{{Schedule: readySchedule(forces.FactionBlue), UnitID: "u-blue", TaskForceID: "tf-blue"}},
		TaskForces: []TaskForceRecord{{Schedule: readySchedule(forces.FactionBlue), TaskForceID: "tf-blue"}},
	}

	c := clock.Clock{Turn: 1, DayOfWeek: 3}
	arrivals := Collect(pending, c, forces.FactionBlue, world)

	if len(arrivals.Cards) != 1 || arrivals.Cards[0].Record.CardInstanceID != "c1-i1" {
		t.Fatalf("expected one ready card arrival, got %v", arrivals.Cards)
	}
	if arrivals.Cards[0].Card.Name != "Convoy Escort" {
		t.Fatalf("expected resolved card, got %v", arrivals.Cards[0].Card)
	}
	if len(arrivals.Units) != 1 || arrivals.Units[0].Unit.ID != "u-blue" {
		t.Fatalf("expected one unit arrival, got %v", arrivals.Units)
	}
	if len(arrivals.TaskForces) != 1 || arrivals.TaskForces[0].TaskForce.Name != "TF Kearsarge" {
		t.Fatalf("expected one task force arrival, got %v", arrivals.TaskForces)
	}
}

// TestCollectFogOfWar verifies that collecting for one faction never returns
// the other side's records, for all record kinds.
func TestCollectFogOfWar(t *testing.T) {
	world := testWorld()
	pending := Pending{
		Cards: []CardRecord{
			{Schedule: readySchedule(forces.FactionBlue), CardID: "c1", CardInstanceID: "c1-i1", AreaID: "oa1"},
			{Schedule: readySchedule(forces.FactionRed), CardID: "c2", CardInstanceID: "c2-i1", AreaID: "oa1"},
		},
		Units: []UnitRecord{
			{Schedule: readySchedule(forces.FactionBlue), UnitID: "u-blue", TaskForceID: "tf-blue"},
			{Schedule: readySchedule(forces.FactionRed), UnitID: "u-red", TaskForceID: "tf-red"},
		},
		TaskForces: []TaskForceRecord{
			{Schedule: readySchedule(forces.FactionBlue), TaskForceID: "tf-blue"},
			{Schedule: readySchedule(forces.FactionRed), TaskForceID: "tf-red"},
		},
	}
	c := clock.Clock{Turn: 1, DayOfWeek: 3}

	arrivals := Collect(pending, c, forces.FactionRed, world)

	for _, card := range arrivals.Cards {
		if card.Record.Faction != forces.FactionRed {
			t.Fatalf("collected foreign card record %+v", card.Record)
		}
	}
	for _, unit := range arrivals.Units {
		if unit.Record.Faction != forces.FactionRed {
			t.Fatalf("collected foreign unit record %+v", unit.Record)
		}
	}
	for _, tf := range arrivals.TaskForces {
		if tf.Record.Faction != forces.FactionRed {
			t.Fatalf("collected foreign task force record %+v", tf.Record)
		}
	}
	if len(arrivals.Cards) != 1 || len(arrivals.Units) != 1 || len(arrivals.TaskForces) != 1 {
		t.Fatalf("expected exactly the red records, got %+v", arrivals)
	}
}

// TestCollectExcludesDanglingReferences verifies that ready records pointing
// at entities missing from the snapshot are silently skipped, not collected.
func TestCollectExcludesDanglingReferences(t *testing.T) {
	world := testWorld()
	pending := Pending{
		Cards:      []CardRecord{{Schedule: readySchedule(forces.FactionBlue), CardID: "c-gone", CardInstanceID: "x", AreaID: "oa1"}},
		Units:      []UnitRecord{{Schedule: readySchedule(forces.FactionBlue), UnitID: "u-gone", TaskForceID: "tf-blue"}},
		TaskForces: []TaskForceRecord{{Schedule: readySchedule(forces.FactionBlue), TaskForceID: "tf-gone"}},
	}
	c := clock.Clock{Turn: 1, DayOfWeek: 3}

	arrivals := Collect(pending, c, forces.FactionBlue, world)
	if !arrivals.Empty() {
		t.Fatalf("expected no arrivals for dangling references, got %+v", arrivals)
	}
}

func TestCollectPlanningPhaseActivatesEverything(t *testing.T) {
	world := testWorld()
	pending := Pending{
		Units: []UnitRecord{{Schedule: Schedule{Faction: forces.FactionBlue, ActivatesAt: clock.Point{Turn: 0, Day: 5}}, UnitID: "u-blue", TaskForceID: "tf-blue"}},
	}
	c := clock.Clock{Planning: true, DayOfWeek: 5}

	arrivals := Collect(pending, c, forces.FactionBlue, world)
	if len(arrivals.Units) != 1 {
		t.Fatalf("expected planning-phase record to collect, got %+v", arrivals)
	}
}
