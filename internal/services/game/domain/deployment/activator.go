package deployment

import (
	"slices"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/schedule"
)

// Activate applies collected arrivals to the owning collections and strips
// consumed records from the pending lists, returning rewritten copies.
//
// Card arrivals append the record's card instance id to the destination
// area's assigned list and restore the record's embarked-unit manifest onto
// the card. Unit and task-force arrivals clear the pending-deployment flag
// and nothing else.
//
// Removal is global: every record the readiness predicate now judges active
// is stripped, regardless of which faction's collection pass consumed it, as
// long as its references still resolve. A ready record with a dangling
// reference survives unresolved until the janitor prunes it or its target
// reappears. Because removal covers everything ready, running activation
// twice under the same clock is a no-op the second time.
func Activate(pending Pending, c clock.Clock, world World, arrivals ...Arrivals) (World, Pending) {
	updated := World{
		Units:      slices.Clone(world.Units),
		TaskForces: slices.Clone(world.TaskForces),
		Areas:      slices.Clone(world.Areas),
		Cards:      slices.Clone(world.Cards),
	}

	for _, pass := range arrivals {
		for _, arrival := range pass.Cards {
			applyCardArrival(&updated, arrival.Record)
		}
		for _, arrival := range pass.Units {
			clearUnitPending(updated.Units, arrival.Record.UnitID)
		}
		for _, arrival := range pass.TaskForces {
			clearTaskForcePending(updated.TaskForces, arrival.Record.TaskForceID)
		}
	}

	remaining := Pending{}
	for _, record := range pending.Cards {
		if cardRecordConsumed(record, c, updated) {
			continue
		}
		remaining.Cards = append(remaining.Cards, record)
	}
	for _, record := range pending.Units {
		if unitRecordConsumed(record, c, updated) {
			continue
		}
		remaining.Units = append(remaining.Units, record)
	}
	for _, record := range pending.TaskForces {
		if taskForceRecordConsumed(record, c, updated) {
			continue
		}
		remaining.TaskForces = append(remaining.TaskForces, record)
	}

	return updated, remaining
}

func applyCardArrival(world *World, record CardRecord) {
	for i := range world.Areas {
		if world.Areas[i].ID != record.AreaID {
			continue
		}
		assigned := slices.Clone(world.Areas[i].AssignedCards)
		world.Areas[i].AssignedCards = append(assigned, record.CardInstanceID)
		break
	}
	if len(record.EmbarkedUnits) == 0 {
		return
	}
	for i := range world.Cards {
		if world.Cards[i].ID == record.CardID {
			world.Cards[i].EmbarkedUnits = slices.Clone(record.EmbarkedUnits)
			break
		}
	}
}

func clearUnitPending(units []forces.Unit, unitID string) {
	for i := range units {
		if units[i].ID == unitID {
			units[i].PendingDeployment = false
		}
	}
}

func clearTaskForcePending(taskForces []forces.TaskForce, taskForceID string) {
	for i := range taskForces {
		if taskForces[i].ID == taskForceID {
			taskForces[i].PendingDeployment = false
		}
	}
}

func cardRecordConsumed(record CardRecord, c clock.Clock, world World) bool {
	if !schedule.Due(record, c) {
		return false
	}
	if _, ok := forces.CardByID(world.Cards, record.CardID); !ok {
		return false
	}
	_, ok := forces.AreaByID(world.Areas, record.AreaID)
	return ok
}

func unitRecordConsumed(record UnitRecord, c clock.Clock, world World) bool {
	if !schedule.Due(record, c) {
		return false
	}
	_, ok := forces.UnitByID(world.Units, record.UnitID)
	return ok
}

func taskForceRecordConsumed(record TaskForceRecord, c clock.Clock, world World) bool {
	if !schedule.Due(record, c) {
		return false
	}
	_, ok := forces.TaskForceByID(world.TaskForces, record.TaskForceID)
	return ok
}
