package forces

import (
	"strings"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
)

// Faction identifies one of the two sides of a campaign.
type Faction string

const (
	// FactionBlue is the blue side.
	FactionBlue Faction = "BLUE"
	// FactionRed is the red side.
	FactionRed Faction = "RED"
)

// ErrInvalidFaction indicates a faction outside the two playable sides.
var ErrInvalidFaction = apperrors.New(apperrors.CodeFactionInvalid, "faction must be BLUE or RED")

// ParseFaction normalizes a faction label.
func ParseFaction(value string) (Faction, error) {
	switch Faction(strings.ToUpper(strings.TrimSpace(value))) {
	case FactionBlue:
		return FactionBlue, nil
	case FactionRed:
		return FactionRed, nil
	default:
		return "", ErrInvalidFaction
	}
}

// Unit is a single force element. CurrentDamage is a per-box damage tracker;
// a unit is considered destroyed once the number of marked boxes reaches
// DamagePoints (see the destruction package).
type Unit struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Faction           Faction `json:"faction"`
	TaskForceID       string  `json:"task_force_id,omitempty"`
	DamagePoints      int     `json:"damage_points"`
	CurrentDamage     []bool  `json:"current_damage"`
	PendingDeployment bool    `json:"pending_deployment,omitempty"`
}

// TaskForce is a named grouping of units belonging to one faction, optionally
// assigned to an operational area.
type TaskForce struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Faction           Faction `json:"faction"`
	OperationalAreaID string  `json:"operational_area_id,omitempty"`
	PendingDeployment bool    `json:"pending_deployment,omitempty"`
}

// OperationalArea is a territorial zone holding the active list of deployed
// card instances.
type OperationalArea struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AssignedCards []string `json:"assigned_cards"`
}

// Card is a catalog card. EmbarkedUnits is the card's transport manifest; it
// is carried on the pending record while the card is in transit and restored
// here on arrival.
type Card struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Faction       Faction  `json:"faction"`
	EmbarkedUnits []string `json:"embarked_units,omitempty"`
}

// UnitByID resolves a unit in a snapshot. The second return is false when the
// unit no longer exists.
func UnitByID(units []Unit, id string) (Unit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// TaskForceByID resolves a task force in a snapshot.
func TaskForceByID(taskForces []TaskForce, id string) (TaskForce, bool) {
	for _, tf := range taskForces {
		if tf.ID == id {
			return tf, true
		}
	}
	return TaskForce{}, false
}

// AreaByID resolves an operational area in a snapshot.
func AreaByID(areas []OperationalArea, id string) (OperationalArea, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return OperationalArea{}, false
}

// CardByID resolves a card in the catalog snapshot.
func CardByID(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// UnitsOfTaskForce returns the units assigned to a task force.
func UnitsOfTaskForce(units []Unit, taskForceID string) []Unit {
	var members []Unit
	for _, u := range units {
		if u.TaskForceID == taskForceID {
			members = append(members, u)
		}
	}
	return members
}
