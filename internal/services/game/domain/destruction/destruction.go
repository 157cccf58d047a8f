package destruction

import (
	"time"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
)

// Entry records one currently-destroyed unit with the task force and
// operational area context it held when destruction was detected.
type Entry struct {
	UnitID              string         `json:"unit_id"`
	UnitName            string         `json:"unit_name"`
	UnitType            string         `json:"unit_type"`
	Faction             forces.Faction `json:"faction"`
	Timestamp           time.Time      `json:"timestamp"`
	TaskForceID         string         `json:"task_force_id,omitempty"`
	TaskForceName       string         `json:"task_force_name,omitempty"`
	OperationalAreaID   string         `json:"operational_area_id,omitempty"`
	OperationalAreaName string         `json:"operational_area_name,omitempty"`
}

// Delta is the result of reconciling the destruction log against current unit
// state. Changed is false when the log did not move, so callers can skip the
// persistence write entirely.
type Delta struct {
	Log       []Entry
	Changed   bool
	Destroyed []Entry
	Revived   []string
}

// DamageCount returns the number of marked damage boxes on a unit.
func DamageCount(u forces.Unit) int {
	count := 0
	for _, hit := range u.CurrentDamage {
		if hit {
			count++
		}
	}
	return count
}

// IsDestroyed reports whether a unit's taken damage has reached its capacity.
// The comparison is >= so trackers that overshoot capacity still register.
func IsDestroyed(u forces.Unit) bool {
	return u.DamagePoints > 0 && DamageCount(u) >= u.DamagePoints
}

// DestroyedSet returns the ids of every destroyed unit in the snapshot.
func DestroyedSet(units []forces.Unit) map[string]bool {
	destroyed := make(map[string]bool)
	for _, u := range units {
		if IsDestroyed(u) {
			destroyed[u.ID] = true
		}
	}
	return destroyed
}

// IsTaskForceDestroyed reports whether every member unit of a task force is
// destroyed. A task force with zero member units is not destroyed: absence of
// units is not annihilation.
func IsTaskForceDestroyed(units []forces.Unit, taskForceID string) bool {
	members := forces.UnitsOfTaskForce(units, taskForceID)
	if len(members) == 0 {
		return false
	}
	for _, u := range members {
		if !IsDestroyed(u) {
			return false
		}
	}
	return true
}

// Reconcile derives the destruction log from current unit state.
//
// A unit whose damage reached capacity and has no entry yet gains one,
// capturing its task force and operational area at detection time. A unit
// whose damage dropped back below capacity loses its entry; the log is a
// recomputable view, not an append-only ledger, so revival erases the
// destruction's history.
//
// Entries for unit ids that no longer resolve are left untouched: a deleted
// unit cannot rebut its own destruction.
func Reconcile(units []forces.Unit, taskForces []forces.TaskForce, areas []forces.OperationalArea, log []Entry, now time.Time) Delta {
	logged := make(map[string]bool, len(log))
	for _, entry := range log {
		logged[entry.UnitID] = true
	}

	revivedIDs := make(map[string]bool)
	delta := Delta{}

	for _, u := range units {
		destroyed := IsDestroyed(u)
		switch {
		case destroyed && !logged[u.ID]:
			entry := newEntry(u, taskForces, areas, now)
			delta.Destroyed = append(delta.Destroyed, entry)
		case !destroyed && logged[u.ID]:
			revivedIDs[u.ID] = true
			delta.Revived = append(delta.Revived, u.ID)
		}
	}

	for _, entry := range log {
		if revivedIDs[entry.UnitID] {
			continue
		}
		delta.Log = append(delta.Log, entry)
	}
	delta.Log = append(delta.Log, delta.Destroyed...)
	delta.Changed = len(delta.Destroyed) > 0 || len(delta.Revived) > 0
	return delta
}

// newEntry captures the destroyed unit's context by following
// unit -> task force -> operational area.
func newEntry(u forces.Unit, taskForces []forces.TaskForce, areas []forces.OperationalArea, now time.Time) Entry {
	entry := Entry{
		UnitID:    u.ID,
		UnitName:  u.Name,
		UnitType:  u.Type,
		Faction:   u.Faction,
		Timestamp: now,
	}
	tf, ok := forces.TaskForceByID(taskForces, u.TaskForceID)
	if !ok {
		return entry
	}
	entry.TaskForceID = tf.ID
	entry.TaskForceName = tf.Name
	area, ok := forces.AreaByID(areas, tf.OperationalAreaID)
	if !ok {
		return entry
	}
	entry.OperationalAreaID = area.ID
	entry.OperationalAreaName = area.Name
	return entry
}
