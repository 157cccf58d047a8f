package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UnitDamageSetHandler executes a unit damage update.
func UnitDamageSetHandler(engine Engine) mcp.ToolHandlerFor[UnitDamageSetInput, UnitDamageSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UnitDamageSetInput) (*mcp.CallToolResult, UnitDamageSetResult, error) {
		delta, err := engine.SetUnitDamage(ctx, input.CampaignID, input.UnitID, input.Damage)
		if err != nil {
			return nil, UnitDamageSetResult{}, fmt.Errorf("unit damage set failed: %w", err)
		}

		result := UnitDamageSetResult{UnitID: input.UnitID, Revived: delta.Revived}
		for _, entry := range delta.Destroyed {
			result.Destroyed = append(result.Destroyed, entry.UnitID)
		}
		return nil, result, nil
	}
}

// OrderSubmitHandler executes an asset order submission.
func OrderSubmitHandler(engine Engine) mcp.ToolHandlerFor[OrderSubmitInput, OrderSubmitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderSubmitInput) (*mcp.CallToolResult, OrderSubmitResult, error) {
		order, err := engine.SubmitDeployOrder(ctx, input.CampaignID, input.AssetID, input.AreaID)
		if err != nil {
			return nil, OrderSubmitResult{}, fmt.Errorf("order submit failed: %w", err)
		}
		return nil, OrderSubmitResult{
			OrderID:      order.ID,
			AssetID:      order.SubmarineID,
			Status:       string(order.Status),
			AssignedTurn: order.AssignedTurn,
		}, nil
	}
}

// OrdersProcessHandler executes pending asset orders.
func OrdersProcessHandler(engine Engine) mcp.ToolHandlerFor[OrdersProcessInput, OrdersProcessResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrdersProcessInput) (*mcp.CallToolResult, OrdersProcessResult, error) {
		processed, err := engine.ProcessOrders(ctx, input.CampaignID)
		if err != nil {
			return nil, OrdersProcessResult{}, fmt.Errorf("orders process failed: %w", err)
		}

		var result OrdersProcessResult
		for _, deployed := range processed.Deployed {
			result.Deployed = append(result.Deployed, deployed.InstanceID)
		}
		return nil, result, nil
	}
}
