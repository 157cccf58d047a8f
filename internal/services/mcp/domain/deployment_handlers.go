package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	kindCard      = "card"
	kindUnit      = "unit"
	kindTaskForce = "task_force"
)

// DeploymentScheduleHandler executes a deployment scheduling request.
func DeploymentScheduleHandler(engine Engine) mcp.ToolHandlerFor[DeploymentScheduleInput, DeploymentScheduleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeploymentScheduleInput) (*mcp.CallToolResult, DeploymentScheduleResult, error) {
		faction, err := forces.ParseFaction(input.Faction)
		if err != nil {
			return nil, DeploymentScheduleResult{}, fmt.Errorf("parse faction: %w", err)
		}

		var schedule deployment.Schedule
		result := DeploymentScheduleResult{Kind: input.Kind}
		switch input.Kind {
		case kindCard:
			record, err := engine.ScheduleCard(ctx, input.CampaignID, faction, input.CardID, input.AreaID, input.LeadTimeDays)
			if err != nil {
				return nil, DeploymentScheduleResult{}, fmt.Errorf("schedule card failed: %w", err)
			}
			schedule = record.Schedule
			result.CardInstanceID = record.CardInstanceID
		case kindUnit:
			record, err := engine.ScheduleUnit(ctx, input.CampaignID, faction, input.UnitID, input.LeadTimeDays)
			if err != nil {
				return nil, DeploymentScheduleResult{}, fmt.Errorf("schedule unit failed: %w", err)
			}
			schedule = record.Schedule
		case kindTaskForce:
			record, err := engine.ScheduleTaskForce(ctx, input.CampaignID, faction, input.TaskForceID, input.LeadTimeDays)
			if err != nil {
				return nil, DeploymentScheduleResult{}, fmt.Errorf("schedule task force failed: %w", err)
			}
			schedule = record.Schedule
		default:
			return nil, DeploymentScheduleResult{}, fmt.Errorf("kind must be card, unit, or task_force")
		}

		result.ScheduledTurn = schedule.ScheduledAt.Turn
		result.ScheduledDay = schedule.ScheduledAt.Day
		result.ActivatesTurn = schedule.ActivatesAt.Turn
		result.ActivatesDay = schedule.ActivatesAt.Day
		return nil, result, nil
	}
}

// ArrivalsCollectHandler executes an arrivals poll for one faction.
func ArrivalsCollectHandler(engine Engine) mcp.ToolHandlerFor[ArrivalsCollectInput, ArrivalsCollectResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArrivalsCollectInput) (*mcp.CallToolResult, ArrivalsCollectResult, error) {
		faction, err := forces.ParseFaction(input.Faction)
		if err != nil {
			return nil, ArrivalsCollectResult{}, fmt.Errorf("parse faction: %w", err)
		}

		arrivals, err := engine.CollectArrivals(ctx, input.CampaignID, faction)
		if err != nil {
			return nil, ArrivalsCollectResult{}, fmt.Errorf("arrivals collect failed: %w", err)
		}

		result := ArrivalsCollectResult{Faction: string(faction)}
		for _, arrival := range arrivals.Cards {
			result.Arrivals = append(result.Arrivals, ArrivalEntry{
				Kind:       kindCard,
				EntityID:   arrival.Card.ID,
				EntityName: arrival.Card.Name,
				AreaID:     arrival.Record.AreaID,
			})
		}
		for _, arrival := range arrivals.Units {
			result.Arrivals = append(result.Arrivals, ArrivalEntry{
				Kind:        kindUnit,
				EntityID:    arrival.Unit.ID,
				EntityName:  arrival.Unit.Name,
				TaskForceID: arrival.Record.TaskForceID,
			})
		}
		for _, arrival := range arrivals.TaskForces {
			result.Arrivals = append(result.Arrivals, ArrivalEntry{
				Kind:       kindTaskForce,
				EntityID:   arrival.TaskForce.ID,
				EntityName: arrival.TaskForce.Name,
			})
		}
		return nil, result, nil
	}
}
