package app

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

// SetUnitDamage replaces a unit's damage tracker and reconciles the
// destruction log against the new state. Destroyed units also have their
// stale pending records swept immediately rather than waiting for the next
// day advance.
func (s *Service) SetUnitDamage(ctx context.Context, campaignID, unitID string, damage []bool) (destruction.Delta, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return destruction.Delta{}, apperrors.New(apperrors.CodeUnitUnknown, "unit id is required")
	}

	var delta destruction.Delta
	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		found := false
		for i := range doc.World.Units {
			if doc.World.Units[i].ID == unitID {
				doc.World.Units[i].CurrentDamage = append([]bool(nil), damage...)
				found = true
			}
		}
		if !found {
			return doc, false, apperrors.WithMetadata(apperrors.CodeUnitUnknown, "unit does not exist", map[string]string{"unit_id": unitID})
		}

		delta = destruction.Reconcile(doc.World.Units, doc.World.TaskForces, doc.World.Areas, doc.DestructionLog, s.now().UTC())
		if delta.Changed {
			doc.DestructionLog = delta.Log
		}
		doc.Pending = deployment.Sweep(doc.Pending, doc.World)
		return doc, true, nil
	})
	if err != nil {
		return destruction.Delta{}, err
	}

	if delta.Changed {
		_ = s.emitter.EmitEvent(ctx, "destruction.reconciled", telemetry.SeverityWarn, campaignID, map[string]any{
			"unit_id":   unitID,
			"destroyed": len(delta.Destroyed),
			"revived":   len(delta.Revived),
		})
	}
	return delta, nil
}

// DestructionLog returns the campaign's current destruction entries.
func (s *Service) DestructionLog(ctx context.Context, campaignID string) ([]destruction.Entry, error) {
	doc, _, err := s.Document(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return doc.DestructionLog, nil
}
