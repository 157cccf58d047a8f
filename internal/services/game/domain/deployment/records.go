package deployment

import (
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
)

// Schedule is the shared shape of every pending-deployment record: who
// ordered it, when, and when it activates. ActivatesAt is never earlier than
// ScheduledAt in clock ordering.
type Schedule struct {
	Faction     forces.Faction `json:"faction"`
	ScheduledAt clock.Point    `json:"scheduled_at"`
	ActivatesAt clock.Point    `json:"activates_at"`
}

// ReadyAt returns the activation point, satisfying schedule.Schedulable.
func (s Schedule) ReadyAt() clock.Point { return s.ActivatesAt }

// Terminal always reports false: a pending record is removed from its list on
// activation rather than carrying a terminal flag.
func (s Schedule) Terminal() bool { return false }

// CardRecord is a card purchase in transit to an operational area.
//
// EmbarkedUnits is the card's transport manifest, carried on the record while
// the card is in transit because the manifest is otherwise lost until arrival.
type CardRecord struct {
	Schedule
	CardID         string   `json:"card_id"`
	CardInstanceID string   `json:"card_instance_id"`
	AreaID         string   `json:"area_id"`
	EmbarkedUnits  []string `json:"embarked_units,omitempty"`
}

// UnitRecord is an ordered unit awaiting deployment into its task force.
type UnitRecord struct {
	Schedule
	UnitID      string `json:"unit_id"`
	TaskForceID string `json:"task_force_id"`
}

// TaskForceRecord is an ordered task force awaiting deployment.
type TaskForceRecord struct {
	Schedule
	TaskForceID string `json:"task_force_id"`
}

// Pending is the container of the three pending-deployment lists.
//
// Nothing deduplicates records per entity: two outstanding records for the
// same id flow through collection and activation independently.
type Pending struct {
	Cards      []CardRecord      `json:"cards"`
	Units      []UnitRecord      `json:"units"`
	TaskForces []TaskForceRecord `json:"task_forces"`
}

// Len returns the total number of pending records across all three lists.
func (p Pending) Len() int {
	return len(p.Cards) + len(p.Units) + len(p.TaskForces)
}

// Empty reports whether no records are pending.
func (p Pending) Empty() bool {
	return p.Len() == 0
}
