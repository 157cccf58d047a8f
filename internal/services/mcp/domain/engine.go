package domain

import (
	"context"
	"time"

	"github.com/louisbranch/flotilla.space/internal/services/game/app"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/orders"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
)

// Engine is the campaign service surface the MCP handlers call. It is
// satisfied by *app.Service and kept narrow so tests can substitute fakes.
type Engine interface {
	CreateCampaign(ctx context.Context, name string, startDate time.Time) (storage.CampaignRecord, error)
	GetCampaign(ctx context.Context, campaignID string) (storage.CampaignRecord, error)
	ListCampaigns(ctx context.Context) ([]storage.CampaignRecord, error)
	Document(ctx context.Context, campaignID string) (storage.Document, int64, error)

	ScheduleCard(ctx context.Context, campaignID string, faction forces.Faction, cardID, areaID string, leadTimeDays int) (deployment.CardRecord, error)
	ScheduleUnit(ctx context.Context, campaignID string, faction forces.Faction, unitID string, leadTimeDays int) (deployment.UnitRecord, error)
	ScheduleTaskForce(ctx context.Context, campaignID string, faction forces.Faction, taskForceID string, leadTimeDays int) (deployment.TaskForceRecord, error)
	CollectArrivals(ctx context.Context, campaignID string, faction forces.Faction) (deployment.Arrivals, error)
	PendingDeployments(ctx context.Context, campaignID string, faction forces.Faction) (deployment.Pending, error)

	AdvanceDay(ctx context.Context, campaignID string) (app.TurnReport, error)
	SetUnitDamage(ctx context.Context, campaignID, unitID string, damage []bool) (destruction.Delta, error)
	DestructionLog(ctx context.Context, campaignID string) ([]destruction.Entry, error)

	SubmitDeployOrder(ctx context.Context, campaignID, assetID, targetAreaID string) (orders.Order, error)
	ProcessOrders(ctx context.Context, campaignID string) (orders.Result, error)
}

var _ Engine = (*app.Service)(nil)
