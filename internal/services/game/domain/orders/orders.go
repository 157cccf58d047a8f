package orders

import (
	"slices"
	"time"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/schedule"
)

// Type classifies an order.
type Type string

// TypeDeploy orders an asset deployed into an operational area.
const TypeDeploy Type = "deploy"

// Status is the order lifecycle state. The only transition is
// pending -> completed, exactly once, and completed is terminal.
type Status string

const (
	// StatusPending marks an order awaiting execution.
	StatusPending Status = "pending"
	// StatusCompleted marks an executed order.
	StatusCompleted Status = "completed"
)

// TargetTypeArea marks an order targeting an operational area.
const TargetTypeArea = "operational_area"

// Order is the command object tracking an asset-class deployment.
type Order struct {
	ID            string     `json:"id"`
	SubmarineID   string     `json:"submarine_id"`
	Type          Type       `json:"type"`
	Status        Status     `json:"status"`
	TargetID      string     `json:"target_id"`
	TargetType    string     `json:"target_type"`
	AssignedTurn  int        `json:"assigned_turn"`
	AssignedDate  time.Time  `json:"assigned_date"`
	ExecutionTurn int        `json:"execution_turn,omitempty"`
	ExecutionDate *time.Time `json:"execution_date,omitempty"`
}

// ReadyAt returns the order's assignment point, satisfying
// schedule.Schedulable. Orders carry no lead time: they are ready from the
// moment they were assigned.
func (o Order) ReadyAt() clock.Point {
	return clock.Point{Turn: o.AssignedTurn, Day: 1}
}

// Terminal reports whether the order already executed.
func (o Order) Terminal() bool {
	return o.Status == StatusCompleted
}

// Asset is an asset-class entity (deployable sensors, mine fields) whose
// deployment is tracked through an order object rather than a pending record.
type Asset struct {
	ID           string         `json:"id"`
	CardID       string         `json:"card_id"`
	Name         string         `json:"name"`
	Faction      forces.Faction `json:"faction"`
	Active       bool           `json:"active"`
	CurrentOrder *Order         `json:"current_order,omitempty"`
}

// InstanceID derives the deployed card instance id for an asset.
func (a Asset) InstanceID() string {
	return a.CardID + "_" + a.ID
}

// Deployment describes one asset placed into an area during a processing pass.
type Deployment struct {
	AssetID    string
	InstanceID string
	AreaID     string
}

// Result carries the rewritten collections of one processing pass plus the
// deployment events it produced. Changed is false when no order moved.
type Result struct {
	Assets   []Asset
	Areas    []forces.OperationalArea
	Deployed []Deployment
	Changed  bool
}

// ProcessDeployments executes every due deploy order attached to an active
// asset, returning rewritten copies of the asset and area collections.
// Eligibility runs through schedule.Due: completed orders are terminal and an
// order is ready from its assigned turn.
//
// An order whose target area resolves has the asset's instance id appended to
// that area's assigned list, unless it is already present: duplicates are
// skipped silently and produce no deployment event, but the order still
// completes, an intentional "already done" rather than a failure. Either way
// the order transitions to completed exactly once and is stamped with the
// execution turn and date.
//
// An order whose target area does not resolve is left pending and produces
// nothing; the next processing pass retries it indefinitely.
func ProcessDeployments(assets []Asset, areas []forces.OperationalArea, c clock.Clock) Result {
	result := Result{
		Assets: slices.Clone(assets),
		Areas:  slices.Clone(areas),
	}

	for i := range result.Assets {
		asset := &result.Assets[i]
		if !asset.Active || asset.CurrentOrder == nil {
			continue
		}
		order := *asset.CurrentOrder
		if order.Type != TypeDeploy || !schedule.Due(order, c) {
			continue
		}

		areaIdx := indexOfArea(result.Areas, order.TargetID)
		if areaIdx < 0 {
			// Silent, retryable miss: the target may reappear.
			continue
		}

		instanceID := asset.InstanceID()
		area := &result.Areas[areaIdx]
		if !slices.Contains(area.AssignedCards, instanceID) {
			area.AssignedCards = append(slices.Clone(area.AssignedCards), instanceID)
			result.Deployed = append(result.Deployed, Deployment{
				AssetID:    asset.ID,
				InstanceID: instanceID,
				AreaID:     area.ID,
			})
		}

		executed := c.CurrentDate
		order.Status = StatusCompleted
		order.ExecutionTurn = c.Turn
		order.ExecutionDate = &executed
		asset.CurrentOrder = &order
		result.Changed = true
	}

	return result
}

func indexOfArea(areas []forces.OperationalArea, id string) int {
	for i := range areas {
		if areas[i].ID == id {
			return i
		}
	}
	return -1
}
