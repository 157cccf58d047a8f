package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/deployment"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/destruction"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/orders"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such entity"
// states and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrRevisionConflict indicates a document save lost the optimistic
// compare-and-swap: another writer persisted a newer revision after the
// caller read its snapshot. The caller should re-read and recompute.
var ErrRevisionConflict = apperrors.New(apperrors.CodeRevisionConflict, "document revision conflict")

// CampaignRecord captures campaign metadata that APIs read.
type CampaignRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document is the shared game-state document synchronized between the two
// faction clients. It is read and rewritten whole: the engine computes new
// value snapshots and the store persists them under a revision check.
type Document struct {
	Clock          clock.Clock         `json:"clock"`
	World          deployment.World    `json:"world"`
	Assets         []orders.Asset      `json:"assets"`
	Pending        deployment.Pending  `json:"pending"`
	DestructionLog []destruction.Entry `json:"destruction_log"`
}

// CampaignStore persists campaign metadata records.
type CampaignStore interface {
	PutCampaign(ctx context.Context, campaign CampaignRecord) error
	GetCampaign(ctx context.Context, id string) (CampaignRecord, error)
	ListCampaigns(ctx context.Context) ([]CampaignRecord, error)
}

// DocumentStore persists the per-campaign game-state document.
//
// SaveDocument enforces optimistic concurrency: expectedRevision must match
// the stored revision or the save fails with ErrRevisionConflict. Revision 0
// means "no document yet" and is the expected revision for the first save.
type DocumentStore interface {
	LoadDocument(ctx context.Context, campaignID string) (Document, int64, error)
	SaveDocument(ctx context.Context, campaignID string, doc Document, expectedRevision int64) (int64, error)
}

// DocumentWatcher registers observers for campaign document writes.
//
// The returned cancel function deregisters the observer. Notifications are
// best-effort signals that a newer revision exists; observers re-read the
// document rather than trusting any payload.
type DocumentWatcher interface {
	WatchCampaign(campaignID string, fn func(revision int64)) (cancel func())
}

// TelemetryEvent captures operational observations emitted during engine runs.
type TelemetryEvent struct {
	Timestamp      time.Time
	EventName      string
	Severity       string
	CampaignID     string
	Attributes     map[string]any
	AttributesJSON []byte
}

// TelemetryStore persists operational telemetry records for audits and
// incident analysis.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}

// Store aggregates every persistence interface the game service needs.
type Store interface {
	CampaignStore
	DocumentStore
	DocumentWatcher
	TelemetryStore
}
