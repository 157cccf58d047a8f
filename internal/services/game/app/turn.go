package app

import (
	"context"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/orders"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

// TurnReport summarizes everything one day advance did to the campaign.
type TurnReport struct {
	Clock     clock.Clock           `json:"clock"`
	Arrivals  []deployment.Arrivals `json:"arrivals,omitempty"`
	Destroyed []destruction.Entry   `json:"destroyed,omitempty"`
	Revived   []string              `json:"revived,omitempty"`
	Deployed  []orders.Deployment   `json:"deployed,omitempty"`
	Pruned    int                   `json:"pruned,omitempty"`
}

// AdvanceDay moves the campaign clock one day forward and runs the full
// activation pipeline against the new date: both factions' due records are
// collected and applied, consumed records are removed, stale records are
// swept, the destruction log is reconciled, and pending asset orders are
// executed.
func (s *Service) AdvanceDay(ctx context.Context, campaignID string) (TurnReport, error) {
	var report TurnReport
	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		report = TurnReport{}
		doc.Clock = clock.Advance(doc.Clock)

		blue := deployment.Collect(doc.Pending, doc.Clock, forces.FactionBlue, doc.World)
		red := deployment.Collect(doc.Pending, doc.Clock, forces.FactionRed, doc.World)
		doc.World, doc.Pending = deployment.Activate(doc.Pending, doc.Clock, doc.World, blue, red)
		if !blue.Empty() {
			report.Arrivals = append(report.Arrivals, blue)
		}
		if !red.Empty() {
			report.Arrivals = append(report.Arrivals, red)
		}

		before := doc.Pending.Len()
		doc.Pending = deployment.Sweep(doc.Pending, doc.World)
		report.Pruned = before - doc.Pending.Len()

		delta := destruction.Reconcile(doc.World.Units, doc.World.TaskForces, doc.World.Areas, doc.DestructionLog, s.now().UTC())
		if delta.Changed {
			doc.DestructionLog = delta.Log
			report.Destroyed = delta.Destroyed
			report.Revived = delta.Revived
		}

		result := orders.ProcessDeployments(doc.Assets, doc.World.Areas, doc.Clock)
		if result.Changed {
			doc.Assets = result.Assets
			doc.World.Areas = result.Areas
			report.Deployed = result.Deployed
		}

		report.Clock = doc.Clock
		return doc, true, nil
	})
	if err != nil {
		return TurnReport{}, err
	}

	_ = s.emitter.EmitEvent(ctx, "turn.advanced", telemetry.SeverityInfo, campaignID, map[string]any{
		"turn":      report.Clock.Turn,
		"day":       report.Clock.DayOfWeek,
		"arrivals":  len(report.Arrivals),
		"destroyed": len(report.Destroyed),
		"deployed":  len(report.Deployed),
		"pruned":    report.Pruned,
	})
	return report, nil
}
