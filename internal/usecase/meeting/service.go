package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/storage"
)

// ObjectStore is the archive for raw transcript files and summary exports.
type ObjectStore interface {
	UploadText(ctx context.Context, objectName string, content string) error
	Delete(ctx context.Context, objectName string) error
}

// Service manages meetings, their transcripts and their summaries.
type Service struct {
	meetingRepo    repositories.MeetingRepository
	transcriptRepo repositories.TranscriptRepository
	summaryRepo    repositories.SummaryRepository
	store          ObjectStore
	logger         *zap.Logger
}

// NewService creates a meeting service.
func NewService(
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	summaryRepo repositories.SummaryRepository,
	store ObjectStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		summaryRepo:    summaryRepo,
		store:          store,
		logger:         logger,
	}
}

// Create stores a new meeting shell. The transcript arrives separately.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, title string, description *string, source entities.MeetingSource) (*entities.Meeting, error) {
	if strings.TrimSpace(title) == "" {
		return nil, entities.ErrInvalidRequest
	}
	if source == "" {
		source = entities.MeetingSourceUpload
	}

	m := entities.NewMeeting(userID, title, source)
	m.Description = description

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns one of the user's meetings.
func (s *Service) Get(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, entities.ErrForbidden
	}
	return m, nil
}

// List returns the user's meetings, most recent first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.meetingRepo.List(ctx, repositories.MeetingFilters{
		UserID:    &userID,
		Limit:     limit,
		Offset:    offset,
		SortBy:    "created_at",
		SortOrder: "desc",
	})
}

// Delete removes a meeting and its archived transcript.
func (s *Service) Delete(ctx context.Context, userID, meetingID uuid.UUID) error {
	m, err := s.Get(ctx, userID, meetingID)
	if err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, m.ID); err != nil {
		return err
	}

	// Archive cleanup is best-effort; the DB row is already gone.
	if err := s.store.Delete(ctx, storage.TranscriptObjectName(m.ID.String())); err != nil {
		s.logger.Warn("failed to delete archived transcript",
			zap.String("meeting_id", m.ID.String()),
			zap.Error(err),
		)
	}
	return nil
}

// AttachTranscript stores the transcript text for a meeting: the raw file is
// archived, the parsed row saved, and the meeting marked ready for
// summarization. Re-uploading replaces the previous transcript.
func (s *Service) AttachTranscript(ctx context.Context, userID, meetingID uuid.UUID, text string) (*entities.Transcript, error) {
	m, err := s.Get(ctx, userID, meetingID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, entities.ErrInvalidRequest
	}

	if err := s.store.UploadText(ctx, storage.TranscriptObjectName(m.ID.String()), text); err != nil {
		return nil, fmt.Errorf("failed to archive transcript: %w", err)
	}

	t := entities.NewTranscript(m.ID, text)
	t.WordCount = len(strings.Fields(text))
	if err := s.transcriptRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.UpdateStatus(ctx, m.ID, entities.MeetingStatusUploaded); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTranscript returns the transcript of one of the user's meetings.
func (s *Service) GetTranscript(ctx context.Context, userID, meetingID uuid.UUID) (*entities.Transcript, error) {
	if _, err := s.Get(ctx, userID, meetingID); err != nil {
		return nil, err
	}
	return s.transcriptRepo.FindByMeetingID(ctx, meetingID)
}

// SummaryInput is the payload the upstream summarizer pushes. The normalized
// block is stored verbatim as jsonb; the extraction engine interprets it.
type SummaryInput struct {
	SummaryText     string          `json:"summary_text" validate:"required"`
	SummaryMarkdown string          `json:"summary_markdown"`
	Decisions       []string        `json:"decisions"`
	ActionItems     []string        `json:"action_items"`
	Normalized      json.RawMessage `json:"normalized_summary"`
	ModelUsed       string          `json:"model_used"`
	ProcessingTime  int             `json:"processing_time"`
}

// IngestSummary stores the summarizer output for a meeting, replacing any
// previous summary, and marks the meeting summarized.
func (s *Service) IngestSummary(ctx context.Context, userID, meetingID uuid.UUID, in SummaryInput) (*entities.MeetingSummary, error) {
	m, err := s.Get(ctx, userID, meetingID)
	if err != nil {
		return nil, err
	}

	sum, err := s.summaryRepo.FindByMeetingID(ctx, m.ID)
	if err != nil {
		sum = entities.NewMeetingSummary(m.ID, in.SummaryText)
	} else {
		sum.SummaryText = in.SummaryText
		sum.UpdatedAt = time.Now()
	}
	sum.SummaryMarkdown = in.SummaryMarkdown
	sum.ModelUsed = in.ModelUsed
	sum.ProcessingTime = in.ProcessingTime

	if in.Decisions != nil {
		data, err := json.Marshal(in.Decisions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal decisions: %w", err)
		}
		sum.Decisions = datatypes.JSON(data)
	}
	if in.ActionItems != nil {
		data, err := json.Marshal(in.ActionItems)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal action items: %w", err)
		}
		sum.ActionItems = datatypes.JSON(data)
	}
	if len(in.Normalized) > 0 {
		if !json.Valid(in.Normalized) {
			return nil, entities.ErrInvalidRequest
		}
		sum.Normalized = datatypes.JSON(in.Normalized)
	}

	if err := s.summaryRepo.Save(ctx, sum); err != nil {
		return nil, err
	}
	if err := s.meetingRepo.UpdateStatus(ctx, m.ID, entities.MeetingStatusSummarized); err != nil {
		return nil, err
	}

	s.logger.Info("summary ingested",
		zap.String("meeting_id", m.ID.String()),
		zap.String("model", in.ModelUsed),
	)
	return sum, nil
}

// GetSummary returns the stored summary of one of the user's meetings.
func (s *Service) GetSummary(ctx context.Context, userID, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	if _, err := s.Get(ctx, userID, meetingID); err != nil {
		return nil, err
	}
	return s.summaryRepo.FindByMeetingID(ctx, meetingID)
}
