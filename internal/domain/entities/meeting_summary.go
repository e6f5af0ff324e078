package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingSummary stores the summarizer output for one meeting. The free-form
// blocks keep whatever shape the summarizer produced; NormalizedSummary is
// the structured form the dashboard extraction consumes when present.
type MeetingSummary struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	SummaryText     string         `json:"summary_text" gorm:"type:text"`
	SummaryMarkdown string         `json:"summary_markdown,omitempty" gorm:"type:text"`
	Decisions       datatypes.JSON `json:"decisions,omitempty" gorm:"type:jsonb;default:'[]'"`
	ActionItems     datatypes.JSON `json:"action_items,omitempty" gorm:"type:jsonb;default:'[]'"`
	Normalized      datatypes.JSON `json:"normalized_summary,omitempty" gorm:"type:jsonb"`
	ModelUsed       string         `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	ProcessingTime  int            `json:"processing_time,omitempty"` // seconds
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}

// NewMeetingSummary creates a summary row for a meeting.
func NewMeetingSummary(meetingID uuid.UUID, summaryText string) *MeetingSummary {
	now := time.Now()
	return &MeetingSummary{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		SummaryText: summaryText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
