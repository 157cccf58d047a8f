package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// UnitDamageSetInput represents the MCP tool input for updating a unit's
// damage tracker.
type UnitDamageSetInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	UnitID     string `json:"unit_id" jsonschema:"unit identifier"`
	Damage     []bool `json:"damage" jsonschema:"per-box damage tracker (true = hit)"`
}

// UnitDamageSetResult represents the MCP tool output for a damage update.
type UnitDamageSetResult struct {
	UnitID    string   `json:"unit_id" jsonschema:"unit identifier"`
	Destroyed []string `json:"destroyed,omitempty" jsonschema:"unit ids newly recorded as destroyed"`
	Revived   []string `json:"revived,omitempty" jsonschema:"unit ids removed from the destruction log"`
}

// OrderSubmitInput represents the MCP tool input for submitting an asset
// deploy order.
type OrderSubmitInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	AssetID    string `json:"asset_id" jsonschema:"asset identifier"`
	AreaID     string `json:"area_id" jsonschema:"target operational area"`
}

// OrderSubmitResult represents the MCP tool output for submitting an order.
type OrderSubmitResult struct {
	OrderID      string `json:"order_id" jsonschema:"order identifier"`
	AssetID      string `json:"asset_id" jsonschema:"asset identifier"`
	Status       string `json:"status" jsonschema:"order status"`
	AssignedTurn int    `json:"assigned_turn" jsonschema:"turn the order was assigned"`
}

// OrdersProcessInput represents the MCP tool input for executing pending
// asset orders.
type OrdersProcessInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
}

// OrdersProcessResult represents the MCP tool output for order execution.
type OrdersProcessResult struct {
	Deployed []string `json:"deployed,omitempty" jsonschema:"card instance ids placed into areas"`
}

// UnitDamageSetTool defines the MCP tool for updating unit damage.
func UnitDamageSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "unit_damage_set",
		Description: "Replaces a unit's damage tracker and reconciles the destruction log. A unit whose marked boxes reach capacity is recorded destroyed; repair below capacity revives it.",
	}
}

// OrderSubmitTool defines the MCP tool for submitting asset orders.
func OrderSubmitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "order_submit",
		Description: "Attaches a deploy order to an asset targeting an operational area. An asset carries at most one unexecuted order.",
	}
}

// OrdersProcessTool defines the MCP tool for executing pending asset orders.
func OrdersProcessTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "orders_process",
		Description: "Executes pending deploy orders on active assets. Orders whose target areas are missing stay pending and retry on a later pass.",
	}
}
