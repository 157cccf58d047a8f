package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/flotilla.space/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "flotilla-space"
	serverVersion = "v0.1.0"
)

// Server hosts the MCP server over the campaign engine.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server binding tool and resource handlers to
// the campaign engine.
func New(engine domain.Engine) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.CampaignCreateTool(), domain.CampaignCreateHandler(engine))
	mcp.AddTool(mcpServer, domain.CampaignGetTool(), domain.CampaignGetHandler(engine))
	mcp.AddTool(mcpServer, domain.TurnAdvanceTool(), domain.TurnAdvanceHandler(engine))
	mcp.AddTool(mcpServer, domain.DeploymentScheduleTool(), domain.DeploymentScheduleHandler(engine))
	mcp.AddTool(mcpServer, domain.ArrivalsCollectTool(), domain.ArrivalsCollectHandler(engine))
	mcp.AddTool(mcpServer, domain.UnitDamageSetTool(), domain.UnitDamageSetHandler(engine))
	mcp.AddTool(mcpServer, domain.OrderSubmitTool(), domain.OrderSubmitHandler(engine))
	mcp.AddTool(mcpServer, domain.OrdersProcessTool(), domain.OrdersProcessHandler(engine))

	mcpServer.AddResource(domain.CampaignListResource(), domain.CampaignListResourceHandler(engine))
	mcpServer.AddResourceTemplate(domain.PendingDeploymentsResourceTemplate(), domain.PendingDeploymentsResourceHandler(engine))
	mcpServer.AddResourceTemplate(domain.DestructionLogResourceTemplate(), domain.DestructionLogResourceHandler(engine))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
