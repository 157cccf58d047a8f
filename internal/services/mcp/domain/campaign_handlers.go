package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CampaignCreateHandler executes a campaign create request.
func CampaignCreateHandler(engine Engine) mcp.ToolHandlerFor[CampaignCreateInput, CampaignCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignCreateInput) (*mcp.CallToolResult, CampaignCreateResult, error) {
		var startDate time.Time
		if strings.TrimSpace(input.StartDate) != "" {
			parsed, err := time.Parse(time.RFC3339, input.StartDate)
			if err != nil {
				return nil, CampaignCreateResult{}, fmt.Errorf("parse start_date: %w", err)
			}
			startDate = parsed
		}

		campaign, err := engine.CreateCampaign(ctx, input.Name, startDate)
		if err != nil {
			return nil, CampaignCreateResult{}, fmt.Errorf("campaign create failed: %w", err)
		}
		doc, _, err := engine.Document(ctx, campaign.ID)
		if err != nil {
			return nil, CampaignCreateResult{}, fmt.Errorf("load campaign document: %w", err)
		}

		return nil, CampaignCreateResult{
			ID:        campaign.ID,
			Name:      campaign.Name,
			Turn:      doc.Clock.Turn,
			Day:       doc.Clock.DayOfWeek,
			Planning:  doc.Clock.Planning,
			CreatedAt: formatTime(campaign.CreatedAt),
		}, nil
	}
}

// CampaignGetHandler executes a campaign retrieval request.
func CampaignGetHandler(engine Engine) mcp.ToolHandlerFor[CampaignGetInput, CampaignGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignGetInput) (*mcp.CallToolResult, CampaignGetResult, error) {
		campaign, err := engine.GetCampaign(ctx, input.CampaignID)
		if err != nil {
			return nil, CampaignGetResult{}, fmt.Errorf("campaign get failed: %w", err)
		}
		doc, _, err := engine.Document(ctx, campaign.ID)
		if err != nil {
			return nil, CampaignGetResult{}, fmt.Errorf("load campaign document: %w", err)
		}

		return nil, CampaignGetResult{
			ID:             campaign.ID,
			Name:           campaign.Name,
			Turn:           doc.Clock.Turn,
			Day:            doc.Clock.DayOfWeek,
			Planning:       doc.Clock.Planning,
			CurrentDate:    formatTime(doc.Clock.CurrentDate),
			Units:          len(doc.World.Units),
			TaskForces:     len(doc.World.TaskForces),
			Areas:          len(doc.World.Areas),
			PendingRecords: doc.Pending.Len(),
			Destroyed:      len(doc.DestructionLog),
		}, nil
	}
}

// TurnAdvanceHandler executes a day advance request.
func TurnAdvanceHandler(engine Engine) mcp.ToolHandlerFor[TurnAdvanceInput, TurnAdvanceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TurnAdvanceInput) (*mcp.CallToolResult, TurnAdvanceResult, error) {
		report, err := engine.AdvanceDay(ctx, input.CampaignID)
		if err != nil {
			return nil, TurnAdvanceResult{}, fmt.Errorf("turn advance failed: %w", err)
		}

		result := TurnAdvanceResult{
			Turn:   report.Clock.Turn,
			Day:    report.Clock.DayOfWeek,
			Date:   formatTime(report.Clock.CurrentDate),
			Pruned: report.Pruned,
		}
		for _, arrivals := range report.Arrivals {
			result.Arrivals += len(arrivals.Cards) + len(arrivals.Units) + len(arrivals.TaskForces)
		}
		for _, entry := range report.Destroyed {
			result.Destroyed = append(result.Destroyed, entry.UnitID)
		}
		for _, deployed := range report.Deployed {
			result.Deployed = append(result.Deployed, deployed.InstanceID)
		}
		return nil, result, nil
	}
}
