package meeting

import (
	"encoding/json"
	"time"
)

// MeetingResponse represents meeting information in responses
type MeetingResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	DriveFileID *string    `json:"drive_file_id,omitempty"`
	HeldAt      *time.Time `json:"held_at,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MeetingListResponse represents a paginated meeting list
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// TranscriptResponse represents transcript information in responses
type TranscriptResponse struct {
	ID           string    `json:"id"`
	MeetingID    string    `json:"meeting_id"`
	Text         string    `json:"text"`
	Language     string    `json:"language,omitempty"`
	WordCount    int       `json:"word_count"`
	HasSpeakers  bool      `json:"has_speakers"`
	SpeakerCount int       `json:"speaker_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SummaryResponse represents a stored meeting summary
type SummaryResponse struct {
	ID              string          `json:"id"`
	MeetingID       string          `json:"meeting_id"`
	SummaryText     string          `json:"summary_text"`
	SummaryMarkdown string          `json:"summary_markdown,omitempty"`
	Decisions       []string        `json:"decisions,omitempty"`
	ActionItems     []string        `json:"action_items,omitempty"`
	Normalized      json.RawMessage `json:"normalized_summary,omitempty"`
	ModelUsed       string          `json:"model_used,omitempty"`
	ProcessingTime  int             `json:"processing_time,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
