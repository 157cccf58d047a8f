package app

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/orders"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
)

// AddUnit adds a unit to the campaign roster. A missing id is generated and
// the damage tracker is sized to the unit's damage capacity.
func (s *Service) AddUnit(ctx context.Context, campaignID string, unit forces.Unit) (forces.Unit, error) {
	if _, err := forces.ParseFaction(string(unit.Faction)); err != nil {
		return forces.Unit{}, err
	}
	if strings.TrimSpace(unit.ID) == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return forces.Unit{}, fmt.Errorf("generate unit id: %w", err)
		}
		unit.ID = generated
	}
	if unit.CurrentDamage == nil && unit.DamagePoints > 0 {
		unit.CurrentDamage = make([]bool, unit.DamagePoints)
	}

	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		doc.World.Units = append(doc.World.Units, unit)
		return doc, true, nil
	})
	if err != nil {
		return forces.Unit{}, err
	}
	return unit, nil
}

// AddTaskForce adds a task force to the campaign roster.
func (s *Service) AddTaskForce(ctx context.Context, campaignID string, tf forces.TaskForce) (forces.TaskForce, error) {
	if _, err := forces.ParseFaction(string(tf.Faction)); err != nil {
		return forces.TaskForce{}, err
	}
	if strings.TrimSpace(tf.ID) == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return forces.TaskForce{}, fmt.Errorf("generate task force id: %w", err)
		}
		tf.ID = generated
	}

	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		doc.World.TaskForces = append(doc.World.TaskForces, tf)
		return doc, true, nil
	})
	if err != nil {
		return forces.TaskForce{}, err
	}
	return tf, nil
}

// AddArea adds an operational area to the campaign map.
func (s *Service) AddArea(ctx context.Context, campaignID string, area forces.OperationalArea) (forces.OperationalArea, error) {
	if strings.TrimSpace(area.ID) == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return forces.OperationalArea{}, fmt.Errorf("generate area id: %w", err)
		}
		area.ID = generated
	}

	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		doc.World.Areas = append(doc.World.Areas, area)
		return doc, true, nil
	})
	if err != nil {
		return forces.OperationalArea{}, err
	}
	return area, nil
}

// AddCard adds a catalog card to the campaign.
func (s *Service) AddCard(ctx context.Context, campaignID string, card forces.Card) (forces.Card, error) {
	if _, err := forces.ParseFaction(string(card.Faction)); err != nil {
		return forces.Card{}, err
	}
	if strings.TrimSpace(card.ID) == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return forces.Card{}, fmt.Errorf("generate card id: %w", err)
		}
		card.ID = generated
	}

	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		doc.World.Cards = append(doc.World.Cards, card)
		return doc, true, nil
	})
	if err != nil {
		return forces.Card{}, err
	}
	return card, nil
}

// AddAsset adds an asset-class entity whose deployment runs through orders.
func (s *Service) AddAsset(ctx context.Context, campaignID string, asset orders.Asset) (orders.Asset, error) {
	if _, err := forces.ParseFaction(string(asset.Faction)); err != nil {
		return orders.Asset{}, err
	}
	if strings.TrimSpace(asset.CardID) == "" {
		return orders.Asset{}, apperrors.New(apperrors.CodeDeploymentCardRequired, "asset card id is required")
	}
	if strings.TrimSpace(asset.ID) == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return orders.Asset{}, fmt.Errorf("generate asset id: %w", err)
		}
		asset.ID = generated
	}

	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		doc.Assets = append(doc.Assets, asset)
		return doc, true, nil
	})
	if err != nil {
		return orders.Asset{}, err
	}
	return asset, nil
}
