package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/flotilla.space/internal/errors"
	"github.com/louisbranch/flotilla.space/internal/platform/id"
	"github.com/louisbranch/flotilla.space/internal/services/game/domain/clock"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

// maxSaveAttempts bounds the optimistic-concurrency retry loop. Two faction
// clients writing the same campaign rarely collide more than once.
const maxSaveAttempts = 5

// Service implements the campaign engine operations over a storage backend.
type Service struct {
	store       storage.Store
	emitter     *telemetry.Emitter
	idGenerator func() (string, error)
	now         func() time.Time
}

// NewService creates a campaign engine service.
func NewService(store storage.Store, emitter *telemetry.Emitter) *Service {
	return &Service{
		store:       store,
		emitter:     emitter,
		idGenerator: id.NewID,
		now:         time.Now,
	}
}

// CreateCampaign registers a campaign and seeds its state document with a
// planning-phase clock at turn zero.
func (s *Service) CreateCampaign(ctx context.Context, name string, startDate time.Time) (storage.CampaignRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.CampaignRecord{}, apperrors.New(apperrors.CodeCampaignNameEmpty, "campaign name is required")
	}
	if startDate.IsZero() {
		startDate = s.now().UTC().Truncate(24 * time.Hour)
	}

	campaignID, err := s.idGenerator()
	if err != nil {
		return storage.CampaignRecord{}, fmt.Errorf("generate campaign id: %w", err)
	}
	now := s.now().UTC()
	campaign := storage.CampaignRecord{
		ID:        campaignID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutCampaign(ctx, campaign); err != nil {
		return storage.CampaignRecord{}, fmt.Errorf("create campaign: %w", err)
	}

	doc := storage.Document{
		Clock: clock.Clock{
			CurrentDate: startDate,
			DayOfWeek:   1,
			Turn:        0,
			Planning:    true,
		},
	}
	if _, err := s.store.SaveDocument(ctx, campaign.ID, doc, 0); err != nil {
		return storage.CampaignRecord{}, fmt.Errorf("seed campaign document: %w", err)
	}

	_ = s.emitter.EmitEvent(ctx, "campaign.created", telemetry.SeverityInfo, campaign.ID, map[string]any{
		"name": campaign.Name,
	})
	return campaign, nil
}

// GetCampaign returns campaign metadata.
func (s *Service) GetCampaign(ctx context.Context, campaignID string) (storage.CampaignRecord, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return storage.CampaignRecord{}, apperrors.New(apperrors.CodeCampaignIDEmpty, "campaign id is required")
	}
	return s.store.GetCampaign(ctx, campaignID)
}

// ListCampaigns returns all registered campaigns.
func (s *Service) ListCampaigns(ctx context.Context) ([]storage.CampaignRecord, error) {
	return s.store.ListCampaigns(ctx)
}

// Document returns the campaign state document and its revision.
func (s *Service) Document(ctx context.Context, campaignID string) (storage.Document, int64, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return storage.Document{}, 0, apperrors.New(apperrors.CodeCampaignIDEmpty, "campaign id is required")
	}
	if _, err := s.store.GetCampaign(ctx, campaignID); err != nil {
		return storage.Document{}, 0, err
	}
	return s.store.LoadDocument(ctx, campaignID)
}

// mutate loads the campaign document, applies fn, and saves the result under
// the revision read. A revision conflict reloads and reapplies fn against the
// fresh snapshot. fn returning changed=false skips the write.
func (s *Service) mutate(ctx context.Context, campaignID string, fn func(doc storage.Document) (storage.Document, bool, error)) (storage.Document, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return storage.Document{}, apperrors.New(apperrors.CodeCampaignIDEmpty, "campaign id is required")
	}
	if _, err := s.store.GetCampaign(ctx, campaignID); err != nil {
		return storage.Document{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		doc, revision, err := s.store.LoadDocument(ctx, campaignID)
		if err != nil {
			return storage.Document{}, err
		}
		if err := doc.Clock.Validate(); err != nil {
			return storage.Document{}, err
		}
		next, changed, err := fn(doc)
		if err != nil {
			return storage.Document{}, err
		}
		if !changed {
			return next, nil
		}
		if _, err := s.store.SaveDocument(ctx, campaignID, next, revision); err != nil {
			if errors.Is(err, storage.ErrRevisionConflict) {
				lastErr = err
				continue
			}
			return storage.Document{}, err
		}
		return next, nil
	}
	return storage.Document{}, fmt.Errorf("save campaign document: %w", lastErr)
}
