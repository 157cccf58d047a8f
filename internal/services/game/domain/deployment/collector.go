package deployment

import (
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/schedule"
)

// World is the snapshot of entity collections the engine reads and rewrites.
type World struct {
	Units      []forces.Unit            `json:"units"`
	TaskForces []forces.TaskForce       `json:"task_forces"`
	Areas      []forces.OperationalArea `json:"areas"`
	Cards      []forces.Card            `json:"cards"`
}

// CardArrival pairs an activated card with its source record.
type CardArrival struct {
	Card   forces.Card
	Record CardRecord
}

// UnitArrival pairs an activated unit with its source record.
type UnitArrival struct {
	Unit   forces.Unit
	Record UnitRecord
}

// TaskForceArrival pairs an activated task force with its source record.
type TaskForceArrival struct {
	TaskForce forces.TaskForce
	Record    TaskForceRecord
}

// Arrivals groups the per-kind activation results of one collection pass.
type Arrivals struct {
	Faction    forces.Faction
	Cards      []CardArrival
	Units      []UnitArrival
	TaskForces []TaskForceArrival
}

// Empty reports whether the pass found nothing to activate.
func (a Arrivals) Empty() bool {
	return len(a.Cards) == 0 && len(a.Units) == 0 && len(a.TaskForces) == 0
}

// Collect scans the pending lists and returns the records that have become
// active for the requesting faction, paired with their resolved entities.
//
// Only records whose faction matches the caller are ever returned, so each
// client sees exclusively its own arrivals. A record whose referenced entity
// no longer resolves in the snapshot is silently excluded; it stays on the
// pending list for the janitor to prune, or activates later if the entity
// reappears first.
func Collect(pending Pending, c clock.Clock, faction forces.Faction, world World) Arrivals {
	arrivals := Arrivals{Faction: faction}

	for _, record := range pending.Cards {
		if record.Faction != faction || !schedule.Due(record, c) {
			continue
		}
		card, ok := forces.CardByID(world.Cards, record.CardID)
		if !ok {
			continue
		}
		arrivals.Cards = append(arrivals.Cards, CardArrival{Card: card, Record: record})
	}

	for _, record := range pending.Units {
		if record.Faction != faction || !schedule.Due(record, c) {
			continue
		}
		unit, ok := forces.UnitByID(world.Units, record.UnitID)
		if !ok {
			continue
		}
		arrivals.Units = append(arrivals.Units, UnitArrival{Unit: unit, Record: record})
	}

	for _, record := range pending.TaskForces {
		if record.Faction != faction || !schedule.Due(record, c) {
			continue
		}
		taskForce, ok := forces.TaskForceByID(world.TaskForces, record.TaskForceID)
		if !ok {
			continue
		}
		arrivals.TaskForces = append(arrivals.TaskForces, TaskForceArrival{TaskForce: taskForce, Record: record})
	}

	return arrivals
}
