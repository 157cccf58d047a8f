package app

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

func validateLeadTime(leadTimeDays int) error {
	if leadTimeDays < 0 {
		return apperrors.New(apperrors.CodeDeploymentLeadTimeNegative, "lead time must not be negative")
	}
	return nil
}

// ScheduleCard queues a card purchase for delivery to an operational area.
// The card's transport manifest is copied onto the record so it survives
// transit, and a fresh instance id is minted for the eventual arrival.
func (s *Service) ScheduleCard(ctx context.Context, campaignID string, faction forces.Faction, cardID, areaID string, leadTimeDays int) (deployment.CardRecord, error) {
	if _, err := forces.ParseFaction(string(faction)); err != nil {
		return deployment.CardRecord{}, err
	}
	if err := validateLeadTime(leadTimeDays); err != nil {
		return deployment.CardRecord{}, err
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return deployment.CardRecord{}, apperrors.New(apperrors.CodeDeploymentCardRequired, "card id is required")
	}
	areaID = strings.TrimSpace(areaID)
	if areaID == "" {
		return deployment.CardRecord{}, apperrors.New(apperrors.CodeDeploymentAreaRequired, "area id is required")
	}

	instanceSuffix, err := s.idGenerator()
	if err != nil {
		return deployment.CardRecord{}, fmt.Errorf("generate card instance id: %w", err)
	}

	var record deployment.CardRecord
	_, err = s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		record = deployment.CardRecord{
			Schedule:       newSchedule(doc.Clock, faction, leadTimeDays),
			CardID:         cardID,
			CardInstanceID: cardID + "_" + instanceSuffix,
			AreaID:         areaID,
		}
		if card, ok := forces.CardByID(doc.World.Cards, cardID); ok {
			record.EmbarkedUnits = append([]string(nil), card.EmbarkedUnits...)
		}
		doc.Pending.Cards = append(doc.Pending.Cards, record)
		return doc, true, nil
	})
	if err != nil {
		return deployment.CardRecord{}, err
	}

	_ = s.emitter.EmitEvent(ctx, "deployment.card_scheduled", telemetry.SeverityInfo, campaignID, map[string]any{
		"card_id":        record.CardID,
		"activates_at":   record.ActivatesAt,
		"lead_time_days": leadTimeDays,
	})
	return record, nil
}

// ScheduleUnit queues an existing unit for deployment into its task force.
// The unit is flagged pending until the record activates.
func (s *Service) ScheduleUnit(ctx context.Context, campaignID string, faction forces.Faction, unitID string, leadTimeDays int) (deployment.UnitRecord, error) {
	if _, err := forces.ParseFaction(string(faction)); err != nil {
		return deployment.UnitRecord{}, err
	}
	if err := validateLeadTime(leadTimeDays); err != nil {
		return deployment.UnitRecord{}, err
	}
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return deployment.UnitRecord{}, apperrors.New(apperrors.CodeDeploymentUnitRequired, "unit id is required")
	}

	var record deployment.UnitRecord
	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		unit, ok := forces.UnitByID(doc.World.Units, unitID)
		if !ok {
			return doc, false, apperrors.WithMetadata(apperrors.CodeDeploymentUnitUnknown, "unit does not exist", map[string]string{"unit_id": unitID})
		}
		record = deployment.UnitRecord{
			Schedule:    newSchedule(doc.Clock, faction, leadTimeDays),
			UnitID:      unitID,
			TaskForceID: unit.TaskForceID,
		}
		doc.Pending.Units = append(doc.Pending.Units, record)
		for i := range doc.World.Units {
			if doc.World.Units[i].ID == unitID {
				doc.World.Units[i].PendingDeployment = true
			}
		}
		return doc, true, nil
	})
	if err != nil {
		return deployment.UnitRecord{}, err
	}

	_ = s.emitter.EmitEvent(ctx, "deployment.unit_scheduled", telemetry.SeverityInfo, campaignID, map[string]any{
		"unit_id":      record.UnitID,
		"activates_at": record.ActivatesAt,
	})
	return record, nil
}

// ScheduleTaskForce queues an existing task force for deployment.
func (s *Service) ScheduleTaskForce(ctx context.Context, campaignID string, faction forces.Faction, taskForceID string, leadTimeDays int) (deployment.TaskForceRecord, error) {
	if _, err := forces.ParseFaction(string(faction)); err != nil {
		return deployment.TaskForceRecord{}, err
	}
	if err := validateLeadTime(leadTimeDays); err != nil {
		return deployment.TaskForceRecord{}, err
	}
	taskForceID = strings.TrimSpace(taskForceID)
	if taskForceID == "" {
		return deployment.TaskForceRecord{}, apperrors.New(apperrors.CodeDeploymentTaskForceUnknown, "task force id is required")
	}

	var record deployment.TaskForceRecord
	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		if _, ok := forces.TaskForceByID(doc.World.TaskForces, taskForceID); !ok {
			return doc, false, apperrors.WithMetadata(apperrors.CodeDeploymentTaskForceUnknown, "task force does not exist", map[string]string{"task_force_id": taskForceID})
		}
		record = deployment.TaskForceRecord{
			Schedule:    newSchedule(doc.Clock, faction, leadTimeDays),
			TaskForceID: taskForceID,
		}
		doc.Pending.TaskForces = append(doc.Pending.TaskForces, record)
		for i := range doc.World.TaskForces {
			if doc.World.TaskForces[i].ID == taskForceID {
				doc.World.TaskForces[i].PendingDeployment = true
			}
		}
		return doc, true, nil
	})
	if err != nil {
		return deployment.TaskForceRecord{}, err
	}

	_ = s.emitter.EmitEvent(ctx, "deployment.task_force_scheduled", telemetry.SeverityInfo, campaignID, map[string]any{
		"task_force_id": record.TaskForceID,
		"activates_at":  record.ActivatesAt,
	})
	return record, nil
}

// CollectArrivals returns the pending records that have become active for one
// faction without touching campaign state. Each faction sees only its own
// arrivals.
func (s *Service) CollectArrivals(ctx context.Context, campaignID string, faction forces.Faction) (deployment.Arrivals, error) {
	if _, err := forces.ParseFaction(string(faction)); err != nil {
		return deployment.Arrivals{}, err
	}
	doc, _, err := s.Document(ctx, campaignID)
	if err != nil {
		return deployment.Arrivals{}, err
	}
	return deployment.Collect(doc.Pending, doc.Clock, faction, doc.World), nil
}

// PendingDeployments returns the campaign's pending records for one faction.
func (s *Service) PendingDeployments(ctx context.Context, campaignID string, faction forces.Faction) (deployment.Pending, error) {
	if _, err := forces.ParseFaction(string(faction)); err != nil {
		return deployment.Pending{}, err
	}
	doc, _, err := s.Document(ctx, campaignID)
	if err != nil {
		return deployment.Pending{}, err
	}

	var scoped deployment.Pending
	for _, record := range doc.Pending.Cards {
		if record.Faction == faction {
			scoped.Cards = append(scoped.Cards, record)
		}
	}
	for _, record := range doc.Pending.Units {
		if record.Faction == faction {
			scoped.Units = append(scoped.Units, record)
		}
	}
	for _, record := range doc.Pending.TaskForces {
		if record.Faction == faction {
			scoped.TaskForces = append(scoped.TaskForces, record)
		}
	}
	return scoped, nil
}

func newSchedule(c clock.Clock, faction forces.Faction, leadTimeDays int) deployment.Schedule {
	return deployment.Schedule{
		Faction:     faction,
		ScheduledAt: c.Now(),
		ActivatesAt: clock.ActivationAt(c, leadTimeDays),
	}
}
