package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/cache"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/upcoming"
)

const (
	notesKeyFmt     = "dashboard:notes:%s"
	dismissedKeyFmt = "dashboard:dismissed:%s"
)

// Service assembles the dashboard: upcoming-event suggestions extracted from
// meeting summaries, plus the per-user quick notes and dismissed set held in
// the KV store.
type Service struct {
	summaryRepo repositories.SummaryRepository
	kv          cache.KV
	engine      *upcoming.Engine
	logger      *zap.Logger
}

// NewService creates a dashboard service.
func NewService(summaryRepo repositories.SummaryRepository, kv cache.KV, engine *upcoming.Engine, logger *zap.Logger) *Service {
	return &Service{
		summaryRepo: summaryRepo,
		kv:          kv,
		engine:      engine,
		logger:      logger,
	}
}

// Upcoming returns the user's upcoming-event suggestions across all their
// summarized meetings, minus anything they already dismissed.
func (s *Service) Upcoming(ctx context.Context, userID uuid.UUID) ([]upcoming.Candidate, error) {
	summaries, err := s.summaryRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}

	payloads := make([]upcoming.SummaryPayload, 0, len(summaries))
	for _, sum := range summaries {
		payloads = append(payloads, payloadFromSummary(sum, s.logger))
	}

	dismissed, err := s.dismissedSet(ctx, userID)
	if err != nil {
		// Dashboard still renders without the dismissed set.
		s.logger.Warn("failed to load dismissed set",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		dismissed = nil
	}

	return s.engine.ExtractUpcoming(payloads, dismissed, time.Now()), nil
}

// Consume marks one suggestion as handled so it never reappears. The key is
// the suggestion's local start timestamp.
func (s *Service) Consume(ctx context.Context, userID uuid.UUID, startISO string) error {
	if startISO == "" {
		return entities.ErrInvalidRequest
	}

	dismissed, err := s.dismissedSet(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load dismissed set: %w", err)
	}
	if dismissed == nil {
		dismissed = make(map[string]struct{})
	}
	if _, ok := dismissed[startISO]; ok {
		return nil
	}
	dismissed[startISO] = struct{}{}

	keys := make([]string, 0, len(dismissed))
	for k := range dismissed {
		keys = append(keys, k)
	}
	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal dismissed set: %w", err)
	}

	key := fmt.Sprintf(dismissedKeyFmt, userID)
	if err := s.kv.Set(ctx, key, string(data), 0); err != nil {
		return fmt.Errorf("failed to store dismissed set: %w", err)
	}
	return nil
}

// Notes returns the user's quick notes, empty string when none are stored.
func (s *Service) Notes(ctx context.Context, userID uuid.UUID) (string, error) {
	key := fmt.Sprintf(notesKeyFmt, userID)
	val, err := s.kv.Get(ctx, key)
	if err != nil {
		if err == cache.ErrKeyNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to load notes: %w", err)
	}
	return val, nil
}

// SaveNotes overwrites the user's quick notes. Last write wins; a blank note
// removes the entry.
func (s *Service) SaveNotes(ctx context.Context, userID uuid.UUID, notes string) error {
	if strings.TrimSpace(notes) == "" {
		return s.ClearNotes(ctx, userID)
	}
	key := fmt.Sprintf(notesKeyFmt, userID)
	if err := s.kv.Set(ctx, key, notes, 0); err != nil {
		return fmt.Errorf("failed to store notes: %w", err)
	}
	return nil
}

// ClearNotes removes the user's quick notes.
func (s *Service) ClearNotes(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf(notesKeyFmt, userID)
	if err := s.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	return nil
}

func (s *Service) dismissedSet(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	key := fmt.Sprintf(dismissedKeyFmt, userID)
	val, err := s.kv.Get(ctx, key)
	if err != nil {
		if err == cache.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var keys []string
	if err := json.Unmarshal([]byte(val), &keys); err != nil {
		// A corrupt entry is treated as empty rather than blocking the
		// dashboard.
		return nil, nil
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

// payloadFromSummary converts a stored summary row into the extraction
// payload. Malformed JSON blocks degrade to the plain summary text.
func payloadFromSummary(sum *entities.MeetingSummary, logger *zap.Logger) upcoming.SummaryPayload {
	p := upcoming.SummaryPayload{
		Summary:         sum.SummaryText,
		SummaryMarkdown: sum.SummaryMarkdown,
	}

	if len(sum.Decisions) > 0 {
		var decisions []string
		if err := json.Unmarshal(sum.Decisions, &decisions); err == nil {
			p.Decisions = decisions
		} else {
			logger.Debug("unparsable decisions block",
				zap.String("summary_id", sum.ID.String()),
			)
		}
	}

	if len(sum.Normalized) > 0 {
		var norm upcoming.NormalizedSummary
		if err := json.Unmarshal(sum.Normalized, &norm); err == nil {
			p.Normalized = &norm
		} else {
			logger.Debug("unparsable normalized summary",
				zap.String("summary_id", sum.ID.String()),
			)
		}
	}

	return p
}
