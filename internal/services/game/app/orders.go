package app

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/orders"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

// SubmitDeployOrder attaches a deploy order to an asset, targeting an
// operational area. An asset carries at most one unexecuted order at a time.
func (s *Service) SubmitDeployOrder(ctx context.Context, campaignID, assetID, targetAreaID string) (orders.Order, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return orders.Order{}, apperrors.New(apperrors.CodeOrderAssetRequired, "asset id is required")
	}
	targetAreaID = strings.TrimSpace(targetAreaID)
	if targetAreaID == "" {
		return orders.Order{}, apperrors.New(apperrors.CodeOrderTargetRequired, "target area id is required")
	}

	orderID, err := s.idGenerator()
	if err != nil {
		return orders.Order{}, fmt.Errorf("generate order id: %w", err)
	}

	var order orders.Order
	_, err = s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		idx := -1
		for i := range doc.Assets {
			if doc.Assets[i].ID == assetID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return doc, false, apperrors.WithMetadata(apperrors.CodeOrderAssetUnknown, "asset does not exist", map[string]string{"asset_id": assetID})
		}
		asset := doc.Assets[idx]
		if asset.CurrentOrder != nil && !asset.CurrentOrder.Terminal() {
			return doc, false, apperrors.WithMetadata(apperrors.CodeOrderAlreadyActive, "asset already has a pending order", map[string]string{"asset_id": assetID})
		}

		order = orders.Order{
			ID:           orderID,
			SubmarineID:  assetID,
			Type:         orders.TypeDeploy,
			Status:       orders.StatusPending,
			TargetID:     targetAreaID,
			TargetType:   orders.TargetTypeArea,
			AssignedTurn: doc.Clock.Turn,
			AssignedDate: doc.Clock.CurrentDate,
		}
		doc.Assets[idx].CurrentOrder = &order
		return doc, true, nil
	})
	if err != nil {
		return orders.Order{}, err
	}

	_ = s.emitter.EmitEvent(ctx, "order.submitted", telemetry.SeverityInfo, campaignID, map[string]any{
		"order_id": order.ID,
		"asset_id": assetID,
		"area_id":  targetAreaID,
	})
	return order, nil
}

// ProcessOrders executes every pending deploy order attached to an active
// asset, outside the daily advance. Orders whose targets are missing stay
// pending for a later pass.
func (s *Service) ProcessOrders(ctx context.Context, campaignID string) (orders.Result, error) {
	var result orders.Result
	_, err := s.mutate(ctx, campaignID, func(doc storage.Document) (storage.Document, bool, error) {
		result = orders.ProcessDeployments(doc.Assets, doc.World.Areas, doc.Clock)
		if !result.Changed {
			return doc, false, nil
		}
		doc.Assets = result.Assets
		doc.World.Areas = result.Areas
		return doc, true, nil
	})
	if err != nil {
		return orders.Result{}, err
	}

	if result.Changed {
		_ = s.emitter.EmitEvent(ctx, "orders.processed", telemetry.SeverityInfo, campaignID, map[string]any{
			"deployed": len(result.Deployed),
		})
	}
	return result, nil
}
