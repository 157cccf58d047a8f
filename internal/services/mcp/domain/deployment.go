package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// DeploymentScheduleInput represents the MCP tool input for queueing a
// deployment. Kind selects which id field is read.
type DeploymentScheduleInput struct {
	CampaignID   string `json:"campaign_id" jsonschema:"campaign identifier"`
	Faction      string `json:"faction" jsonschema:"ordering faction (BLUE, RED)"`
	Kind         string `json:"kind" jsonschema:"what is being deployed (card, unit, task_force)"`
	CardID       string `json:"card_id,omitempty" jsonschema:"card identifier (kind=card)"`
	AreaID       string `json:"area_id,omitempty" jsonschema:"destination operational area (kind=card)"`
	UnitID       string `json:"unit_id,omitempty" jsonschema:"unit identifier (kind=unit)"`
	TaskForceID  string `json:"task_force_id,omitempty" jsonschema:"task force identifier (kind=task_force)"`
	LeadTimeDays int    `json:"lead_time_days" jsonschema:"delivery lead time in days (0 or more)"`
}

// DeploymentScheduleResult represents the MCP tool output for queueing a
// deployment.
type DeploymentScheduleResult struct {
	Kind           string `json:"kind" jsonschema:"what was scheduled"`
	CardInstanceID string `json:"card_instance_id,omitempty" jsonschema:"minted card instance identifier (kind=card)"`
	ScheduledTurn  int    `json:"scheduled_turn" jsonschema:"turn the order was placed"`
	ScheduledDay   int    `json:"scheduled_day" jsonschema:"day the order was placed"`
	ActivatesTurn  int    `json:"activates_turn" jsonschema:"turn the deployment activates"`
	ActivatesDay   int    `json:"activates_day" jsonschema:"day the deployment activates"`
}

// ArrivalsCollectInput represents the MCP tool input for polling arrivals.
type ArrivalsCollectInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	Faction    string `json:"faction" jsonschema:"requesting faction (BLUE, RED)"`
}

// ArrivalEntry summarizes one activated deployment record.
type ArrivalEntry struct {
	Kind        string `json:"kind" jsonschema:"arrival kind (card, unit, task_force)"`
	EntityID    string `json:"entity_id" jsonschema:"arriving entity identifier"`
	EntityName  string `json:"entity_name,omitempty" jsonschema:"arriving entity name"`
	AreaID      string `json:"area_id,omitempty" jsonschema:"destination area (cards)"`
	TaskForceID string `json:"task_force_id,omitempty" jsonschema:"destination task force (units)"`
}

// ArrivalsCollectResult represents the MCP tool output for polling arrivals.
// Only the requesting faction's arrivals are ever returned.
type ArrivalsCollectResult struct {
	Faction  string         `json:"faction" jsonschema:"requesting faction"`
	Arrivals []ArrivalEntry `json:"arrivals,omitempty" jsonschema:"records active as of the current clock"`
}

// DeploymentScheduleTool defines the MCP tool for queueing deployments.
func DeploymentScheduleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "deployment_schedule",
		Description: "Queues a card, unit, or task force deployment with a delivery lead time. Orders placed during planning activate immediately.",
	}
}

// ArrivalsCollectTool defines the MCP tool for polling arrivals.
func ArrivalsCollectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "arrivals_collect",
		Description: "Returns the requesting faction's deployment records that are active as of the current clock. Read-only; records are consumed by turn_advance.",
	}
}
