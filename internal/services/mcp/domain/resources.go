package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CampaignListEntry represents a readable campaign metadata entry.
type CampaignListEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CampaignListPayload represents the MCP resource payload for campaign
// listings.
type CampaignListPayload struct {
	Campaigns []CampaignListEntry `json:"campaigns"`
}

// PendingDeploymentEntry represents one queued deployment record.
type PendingDeploymentEntry struct {
	Kind          string `json:"kind"`
	EntityID      string `json:"entity_id"`
	AreaID        string `json:"area_id,omitempty"`
	ScheduledTurn int    `json:"scheduled_turn"`
	ScheduledDay  int    `json:"scheduled_day"`
	ActivatesTurn int    `json:"activates_turn"`
	ActivatesDay  int    `json:"activates_day"`
}

// PendingDeploymentsPayload represents the MCP resource payload for one
// faction's deployment queue.
type PendingDeploymentsPayload struct {
	Faction string                   `json:"faction"`
	Pending []PendingDeploymentEntry `json:"pending"`
}

// DestructionEntry represents one destruction log record.
type DestructionEntry struct {
	UnitID        string `json:"unit_id"`
	UnitName      string `json:"unit_name"`
	UnitType      string `json:"unit_type,omitempty"`
	Faction       string `json:"faction"`
	Timestamp     string `json:"timestamp"`
	TaskForceName string `json:"task_force_name,omitempty"`
	AreaName      string `json:"area_name,omitempty"`
}

// DestructionLogPayload represents the MCP resource payload for a campaign's
// destruction log.
type DestructionLogPayload struct {
	Destroyed []DestructionEntry `json:"destroyed"`
}

// CampaignListResource defines the readable campaign listing resource.
func CampaignListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "campaign_list",
		Title:       "Campaigns",
		Description: "Readable listing of all campaigns",
		MIMEType:    "application/json",
		URI:         "campaign://list",
	}
}

// PendingDeploymentsResourceTemplate defines the per-faction deployment queue
// resource.
func PendingDeploymentsResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pending_deployments",
		Title:       "Pending Deployments",
		Description: "One faction's queued deployment records",
		MIMEType:    "application/json",
		URITemplate: "campaign://{campaign_id}/deployments/{faction}",
	}
}

// DestructionLogResourceTemplate defines the per-campaign destruction log
// resource.
func DestructionLogResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "destruction_log",
		Title:       "Destruction Log",
		Description: "Units currently recorded as destroyed",
		MIMEType:    "application/json",
		URITemplate: "campaign://{campaign_id}/destruction",
	}
}

// CampaignListResourceHandler returns the readable campaign listing.
func CampaignListResourceHandler(engine Engine) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		campaigns, err := engine.ListCampaigns(ctx)
		if err != nil {
			return nil, fmt.Errorf("campaign list failed: %w", err)
		}

		payload := CampaignListPayload{}
		for _, campaign := range campaigns {
			payload.Campaigns = append(payload.Campaigns, CampaignListEntry{
				ID:        campaign.ID,
				Name:      campaign.Name,
				CreatedAt: formatTime(campaign.CreatedAt),
				UpdatedAt: formatTime(campaign.UpdatedAt),
			})
		}
		return marshalResourceResult(resourceURI(req, CampaignListResource().URI), payload)
	}
}

// PendingDeploymentsResourceHandler returns one faction's deployment queue.
func PendingDeploymentsResourceHandler(engine Engine) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := resourceURI(req, "")
		campaignID, rest, err := parseCampaignURI(uri)
		if err != nil {
			return nil, err
		}
		factionLabel, ok := strings.CutPrefix(rest, "deployments/")
		if !ok {
			return nil, fmt.Errorf("use URI format campaign://{campaign_id}/deployments/{faction}")
		}
		faction, err := forces.ParseFaction(factionLabel)
		if err != nil {
			return nil, fmt.Errorf("parse faction from URI: %w", err)
		}

		pending, err := engine.PendingDeployments(ctx, campaignID, faction)
		if err != nil {
			return nil, fmt.Errorf("pending deployments failed: %w", err)
		}

		payload := PendingDeploymentsPayload{Faction: string(faction)}
		for _, record := range pending.Cards {
			payload.Pending = append(payload.Pending, PendingDeploymentEntry{
				Kind:          kindCard,
				EntityID:      record.CardID,
				AreaID:        record.AreaID,
				ScheduledTurn: record.ScheduledAt.Turn,
				ScheduledDay:  record.ScheduledAt.Day,
				ActivatesTurn: record.ActivatesAt.Turn,
				ActivatesDay:  record.ActivatesAt.Day,
			})
		}
		for _, record := range pending.Units {
			payload.Pending = append(payload.Pending, PendingDeploymentEntry{
				Kind:          kindUnit,
				EntityID:      record.UnitID,
				ScheduledTurn: record.ScheduledAt.Turn,
				ScheduledDay:  record.ScheduledAt.Day,
				ActivatesTurn: record.ActivatesAt.Turn,
				ActivatesDay:  record.ActivatesAt.Day,
			})
		}
		for _, record := range pending.TaskForces {
			payload.Pending = append(payload.Pending, PendingDeploymentEntry{
				Kind:          kindTaskForce,
				EntityID:      record.TaskForceID,
				ScheduledTurn: record.ScheduledAt.Turn,
				ScheduledDay:  record.ScheduledAt.Day,
				ActivatesTurn: record.ActivatesAt.Turn,
				ActivatesDay:  record.ActivatesAt.Day,
			})
		}
		return marshalResourceResult(uri, payload)
	}
}

// DestructionLogResourceHandler returns a campaign's destruction log.
func DestructionLogResourceHandler(engine Engine) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := resourceURI(req, "")
		campaignID, rest, err := parseCampaignURI(uri)
		if err != nil {
			return nil, err
		}
		if rest != "destruction" {
			return nil, fmt.Errorf("use URI format campaign://{campaign_id}/destruction")
		}

		log, err := engine.DestructionLog(ctx, campaignID)
		if err != nil {
			return nil, fmt.Errorf("destruction log failed: %w", err)
		}

		payload := DestructionLogPayload{}
		for _, entry := range log {
			payload.Destroyed = append(payload.Destroyed, DestructionEntry{
				UnitID:        entry.UnitID,
				UnitName:      entry.UnitName,
				UnitType:      entry.UnitType,
				Faction:       string(entry.Faction),
				Timestamp:     formatTime(entry.Timestamp),
				TaskForceName: entry.TaskForceName,
				AreaName:      entry.OperationalAreaName,
			})
		}
		return marshalResourceResult(uri, payload)
	}
}

func resourceURI(req *mcp.ReadResourceRequest, fallback string) string {
	if req != nil && req.Params != nil && req.Params.URI != "" {
		return req.Params.URI
	}
	return fallback
}

// parseCampaignURI splits campaign://{campaign_id}/{rest} into its parts.
func parseCampaignURI(uri string) (campaignID, rest string, err error) {
	path, ok := strings.CutPrefix(uri, "campaign://")
	if !ok {
		return "", "", fmt.Errorf("unexpected resource URI %q", uri)
	}
	campaignID, rest, ok = strings.Cut(path, "/")
	if !ok || campaignID == "" {
		return "", "", fmt.Errorf("campaign ID is required in resource URI %q", uri)
	}
	return campaignID, rest, nil
}

func marshalResourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource payload: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
