package deployment

import (
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
)

// Sweep runs the three pruning passes in their required order: destroyed
// entities, then deleted areas, then deleted task forces. Later passes assume
// the earlier passes already ran.
//
// Each pass is a pure filter over the pending lists; sweeping an already
// swept input changes nothing. Entities themselves are never touched.
func Sweep(pending Pending, world World) Pending {
	pending = PruneDestroyed(pending, world.Units)
	pending = PruneDeletedAreas(pending, world.Areas)
	pending = PruneDeletedTaskForces(pending, world.TaskForces)
	return pending
}

// PruneDestroyed removes unit records whose unit is destroyed and task-force
// records whose task force has at least one member unit and every member is
// destroyed. A task force with zero member units is not destroyed.
func PruneDestroyed(pending Pending, units []forces.Unit) Pending {
	destroyed := destruction.DestroyedSet(units)

	pruned := Pending{Cards: pending.Cards}
	for _, record := range pending.Units {
		if destroyed[record.UnitID] {
			continue
		}
		pruned.Units = append(pruned.Units, record)
	}
	for _, record := range pending.TaskForces {
		if destruction.IsTaskForceDestroyed(units, record.TaskForceID) {
			continue
		}
		pruned.TaskForces = append(pruned.TaskForces, record)
	}
	return pruned
}

// PruneDeletedAreas removes card records whose destination area no longer
// exists.
func PruneDeletedAreas(pending Pending, areas []forces.OperationalArea) Pending {
	pruned := Pending{Units: pending.Units, TaskForces: pending.TaskForces}
	for _, record := range pending.Cards {
		if _, ok := forces.AreaByID(areas, record.AreaID); !ok {
			continue
		}
		pruned.Cards = append(pruned.Cards, record)
	}
	return pruned
}

// PruneDeletedTaskForces removes unit and task-force records whose task force
// no longer exists. A unit record with no task force reference carries nothing
// to check and is kept.
func PruneDeletedTaskForces(pending Pending, taskForces []forces.TaskForce) Pending {
	pruned := Pending{Cards: pending.Cards}
	for _, record := range pending.Units {
		if record.TaskForceID != "" {
			if _, ok := forces.TaskForceByID(taskForces, record.TaskForceID); !ok {
				continue
			}
		}
		pruned.Units = append(pruned.Units, record)
	}
	for _, record := range pending.TaskForces {
		if _, ok := forces.TaskForceByID(taskForces, record.TaskForceID); !ok {
			continue
		}
		pruned.TaskForces = append(pruned.TaskForces, record)
	}
	return pruned
}
