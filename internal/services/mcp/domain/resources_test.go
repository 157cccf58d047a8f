package domain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func readResource(t *testing.T, handler mcp.ResourceHandler, uri string) string {
	t.Helper()
	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
	if err != nil {
		t.Fatalf("read resource %s: %v", uri, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents len = %d, want 1", len(result.Contents))
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Fatalf("mime type = %q", result.Contents[0].MIMEType)
	}
	return result.Contents[0].Text
}

func TestCampaignListResourceHandler(t *testing.T) {
	engine := &fakeEngine{
		campaigns: []storage.CampaignRecord{
			{ID: "camp-1", Name: "North Atlantic", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	text := readResource(t, CampaignListResourceHandler(engine), "campaign://list")
	if !strings.Contains(text, `"camp-1"`) || !strings.Contains(text, "North Atlantic") {
		t.Fatalf("payload = %s", text)
	}
}

func TestPendingDeploymentsResourceHandler(t *testing.T) {
	engine := &fakeEngine{
		pending: deployment.Pending{
			Cards: []deployment.CardRecord{{
				Schedule: deployment.Schedule{
					Faction:     forces.FactionBlue,
					ActivatesAt: clock.Point{Turn: 1, Day: 3},
				},
				CardID: "card-1",
				AreaID: "area-1",
			}},
		},
	}

	text := readResource(t, PendingDeploymentsResourceHandler(engine), "campaign://camp-1/deployments/BLUE")
	if !strings.Contains(text, `"card-1"`) || !strings.Contains(text, `"activates_turn": 1`) {
		t.Fatalf("payload = %s", text)
	}
}

func TestPendingDeploymentsResourceHandlerRejectsBadURI(t *testing.T) {
	handler := PendingDeploymentsResourceHandler(&fakeEngine{})

	_, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "campaign://camp-1/destruction"},
	})
	if err == nil {
		t.Fatal("expected error for wrong path")
	}
}

func TestDestructionLogResourceHandler(t *testing.T) {
	engine := &fakeEngine{
		log: []destruction.Entry{{
			UnitID:   "unit-1",
			UnitName: "Kirov",
			Faction:  forces.FactionRed,
		}},
	}

	text := readResource(t, DestructionLogResourceHandler(engine), "campaign://camp-1/destruction")
	if !strings.Contains(text, "Kirov") {
		t.Fatalf("payload = %s", text)
	}
}
