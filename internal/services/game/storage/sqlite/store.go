package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	sqlitemigrate "github.com/louisbranch/flotilla.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists game state in SQLite.
type Store struct {
	sqlDB *sql.DB

	watchMu  sync.Mutex
	watchSeq int64
	watchers map[string]map[int64]func(revision int64)
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite game store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{
		sqlDB:    sqlDB,
		watchers: make(map[string]map[int64]func(revision int64)),
	}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCampaign upserts one campaign metadata record.
func (s *Store) PutCampaign(ctx context.Context, campaign storage.CampaignRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(campaign.ID)
	if id == "" {
		return fmt.Errorf("campaign id is required")
	}
	if strings.TrimSpace(campaign.Name) == "" {
		return fmt.Errorf("campaign name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO campaigns (id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   updated_at = excluded.updated_at`,
		id,
		campaign.Name,
		toMillis(campaign.CreatedAt),
		toMillis(campaign.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	return nil
}

// GetCampaign returns one campaign metadata record.
func (s *Store) GetCampaign(ctx context.Context, id string) (storage.CampaignRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.CampaignRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CampaignRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.CampaignRecord{}, fmt.Errorf("campaign id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, created_at, updated_at
		 FROM campaigns
		 WHERE id = ?`,
		id,
	)
	var campaign storage.CampaignRecord
	var createdAt int64
	var updatedAt int64
	err := row.Scan(&campaign.ID, &campaign.Name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CampaignRecord{}, storage.ErrNotFound
		}
		return storage.CampaignRecord{}, fmt.Errorf("get campaign: %w", err)
	}
	campaign.CreatedAt = fromMillis(createdAt)
	campaign.UpdatedAt = fromMillis(updatedAt)
	return campaign, nil
}

// ListCampaigns returns all campaign metadata records ordered by creation time.
func (s *Store) ListCampaigns(ctx context.Context) ([]storage.CampaignRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, created_at, updated_at
		 FROM campaigns
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []storage.CampaignRecord
	for rows.Next() {
		var (
			campaign  storage.CampaignRecord
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(&campaign.ID, &campaign.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("list campaigns: %w", err)
		}
		campaign.CreatedAt = fromMillis(createdAt)
		campaign.UpdatedAt = fromMillis(updatedAt)
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// LoadDocument returns the campaign state document and its current revision.
// A campaign with no document yet returns an empty document at revision 0.
func (s *Store) LoadDocument(ctx context.Context, campaignID string) (storage.Document, int64, error) {
	if err := ctx.Err(); err != nil {
		return storage.Document{}, 0, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Document{}, 0, fmt.Errorf("storage is not configured")
	}
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return storage.Document{}, 0, fmt.Errorf("campaign id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT revision, body
		 FROM campaign_documents
		 WHERE campaign_id = ?`,
		campaignID,
	)
	var revision int64
	var body string
	err := row.Scan(&revision, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Document{}, 0, nil
		}
		return storage.Document{}, 0, fmt.Errorf("load document: %w", err)
	}
	var doc storage.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return storage.Document{}, 0, fmt.Errorf("decode document: %w", err)
	}
	return doc, revision, nil
}

// SaveDocument persists the campaign state document under an optimistic
// revision check. expectedRevision 0 creates the first document.
func (s *Store) SaveDocument(ctx context.Context, campaignID string, doc storage.Document, expectedRevision int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return 0, fmt.Errorf("campaign id is required")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encode document: %w", err)
	}
	nextRevision := expectedRevision + 1
	now := toMillis(time.Now())

	var result sql.Result
	if expectedRevision == 0 {
		result, err = s.sqlDB.ExecContext(
			ctx,
			`INSERT INTO campaign_documents (campaign_id, revision, body, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(campaign_id) DO NOTHING`,
			campaignID,
			nextRevision,
			string(body),
			now,
		)
	} else {
		result, err = s.sqlDB.ExecContext(
			ctx,
			`UPDATE campaign_documents
			 SET revision = ?, body = ?, updated_at = ?
			 WHERE campaign_id = ? AND revision = ?`,
			nextRevision,
			string(body),
			now,
			campaignID,
			expectedRevision,
		)
	}
	if err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	if affected == 0 {
		return 0, storage.ErrRevisionConflict
	}

	s.notifyWatchers(campaignID, nextRevision)
	return nextRevision, nil
}

// WatchCampaign registers an in-process observer invoked after each
// successful document save for the campaign.
func (s *Store) WatchCampaign(campaignID string, fn func(revision int64)) (cancel func()) {
	if s == nil || fn == nil {
		return func() {}
	}
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return func() {}
	}

	s.watchMu.Lock()
	s.watchSeq++
	token := s.watchSeq
	if s.watchers[campaignID] == nil {
		s.watchers[campaignID] = make(map[int64]func(revision int64))
	}
	s.watchers[campaignID][token] = fn
	s.watchMu.Unlock()

	return func() {
		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		if observers, ok := s.watchers[campaignID]; ok {
			delete(observers, token)
			if len(observers) == 0 {
				delete(s.watchers, campaignID)
			}
		}
	}
}

func (s *Store) notifyWatchers(campaignID string, revision int64) {
	s.watchMu.Lock()
	observers := make([]func(revision int64), 0, len(s.watchers[campaignID]))
	for _, fn := range s.watchers[campaignID] {
		observers = append(observers, fn)
	}
	s.watchMu.Unlock()

	for _, fn := range observers {
		fn(revision)
	}
}

// AppendTelemetryEvent persists one operational telemetry record.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(evt.EventName) == "" {
		return fmt.Errorf("event name is required")
	}

	attributes := evt.AttributesJSON
	if len(attributes) == 0 {
		if evt.Attributes != nil {
			encoded, err := json.Marshal(evt.Attributes)
			if err != nil {
				return fmt.Errorf("encode telemetry attributes: %w", err)
			}
			attributes = encoded
		} else {
			attributes = []byte("{}")
		}
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (timestamp, event_name, severity, campaign_id, attributes)
		 VALUES (?, ?, ?, ?, ?)`,
		toMillis(evt.Timestamp),
		evt.EventName,
		evt.Severity,
		evt.CampaignID,
		string(attributes),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
