package domain

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CampaignCreateInput represents the MCP tool input for campaign creation.
type CampaignCreateInput struct {
	Name      string `json:"name" jsonschema:"campaign name"`
	StartDate string `json:"start_date,omitempty" jsonschema:"RFC3339 campaign start date (defaults to today)"`
}

// CampaignCreateResult represents the MCP tool output for campaign creation.
type CampaignCreateResult struct {
	ID        string `json:"id" jsonschema:"campaign identifier"`
	Name      string `json:"name" jsonschema:"campaign name"`
	Turn      int    `json:"turn" jsonschema:"current turn (0 during planning)"`
	Day       int    `json:"day" jsonschema:"current day of week (1-7)"`
	Planning  bool   `json:"planning" jsonschema:"whether the campaign is in the planning phase"`
	CreatedAt string `json:"created_at" jsonschema:"RFC3339 timestamp when campaign was created"`
}

// CampaignGetInput represents the MCP tool input for campaign retrieval.
type CampaignGetInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
}

// CampaignGetResult represents the MCP tool output for campaign retrieval.
type CampaignGetResult struct {
	ID             string `json:"id" jsonschema:"campaign identifier"`
	Name           string `json:"name" jsonschema:"campaign name"`
	Turn           int    `json:"turn" jsonschema:"current turn"`
	Day            int    `json:"day" jsonschema:"current day of week"`
	Planning       bool   `json:"planning" jsonschema:"whether the campaign is in the planning phase"`
	CurrentDate    string `json:"current_date" jsonschema:"RFC3339 in-game date"`
	Units          int    `json:"units" jsonschema:"number of units"`
	TaskForces     int    `json:"task_forces" jsonschema:"number of task forces"`
	Areas          int    `json:"areas" jsonschema:"number of operational areas"`
	PendingRecords int    `json:"pending_records" jsonschema:"number of pending deployment records"`
	Destroyed      int    `json:"destroyed" jsonschema:"number of destruction log entries"`
}

// TurnAdvanceInput represents the MCP tool input for advancing the clock.
type TurnAdvanceInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
}

// TurnAdvanceResult represents the MCP tool output for advancing the clock.
type TurnAdvanceResult struct {
	Turn      int      `json:"turn" jsonschema:"turn after the advance"`
	Day       int      `json:"day" jsonschema:"day of week after the advance"`
	Date      string   `json:"date" jsonschema:"RFC3339 in-game date after the advance"`
	Arrivals  int      `json:"arrivals" jsonschema:"number of deployment records that activated"`
	Destroyed []string `json:"destroyed,omitempty" jsonschema:"unit ids destroyed during the advance"`
	Deployed  []string `json:"deployed,omitempty" jsonschema:"card instance ids deployed by asset orders"`
	Pruned    int      `json:"pruned,omitempty" jsonschema:"number of stale pending records removed"`
}

// CampaignCreateTool defines the MCP tool for campaign creation.
func CampaignCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_create",
		Description: "Creates a campaign starting in the planning phase at turn zero.",
	}
}

// CampaignGetTool defines the MCP tool for campaign retrieval.
func CampaignGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_get",
		Description: "Returns campaign metadata plus a summary of its current state.",
	}
}

// TurnAdvanceTool defines the MCP tool for advancing the campaign clock.
func TurnAdvanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_advance",
		Description: "Advances the campaign clock one day, activating due deployments, sweeping stale records, reconciling destruction, and executing asset orders.",
	}
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
