package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByDriveFileID retrieves a user's meeting created from a Drive file
	FindByDriveFileID(ctx context.Context, userID uuid.UUID, fileID string) (*entities.Meeting, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting along with its transcript and summary
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// UpdateStatus updates the meeting status
	UpdateStatus(ctx context.Context, meetingID uuid.UUID, status entities.MeetingStatus) error
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	UserID    *uuid.UUID
	Source    *entities.MeetingSource
	Status    *entities.MeetingStatus
	Search    string // Search in title, description
	Limit     int
	Offset    int
	SortBy    string // "created_at", "held_at", "title"
	SortOrder string // "asc", "desc"
}

// TranscriptRepository defines persistence operations for transcripts
type TranscriptRepository interface {
	// Save inserts or replaces the transcript of a meeting
	Save(ctx context.Context, t *entities.Transcript) error

	// FindByMeetingID retrieves the transcript of a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
}

// SummaryRepository defines persistence operations for meeting summaries
type SummaryRepository interface {
	// Save inserts or replaces the summary of a meeting
	Save(ctx context.Context, s *entities.MeetingSummary) error

	// FindByMeetingID retrieves the summary of a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)

	// FindByUserID retrieves all summaries across a user's meetings
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.MeetingSummary, error)
}
