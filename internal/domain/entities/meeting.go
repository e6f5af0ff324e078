package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingSource tells where a meeting's transcript came from.
type MeetingSource string

const (
	MeetingSourceUpload MeetingSource = "upload"
	MeetingSourceDrive  MeetingSource = "drive"
	MeetingSourceManual MeetingSource = "manual"
)

// MeetingStatus represents the processing state of a meeting.
type MeetingStatus string

const (
	MeetingStatusUploaded   MeetingStatus = "uploaded"
	MeetingStatusProcessing MeetingStatus = "processing"
	MeetingStatusSummarized MeetingStatus = "summarized"
	MeetingStatusFailed     MeetingStatus = "failed"
)

// Meeting represents one summarized meeting owned by a user. The transcript
// and summary hang off it as separate rows.
type Meeting struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Source      MeetingSource  `gorm:"type:varchar(20);not null;default:'upload';index" json:"source"`
	Status      MeetingStatus  `gorm:"type:varchar(20);not null;default:'uploaded';index" json:"status"`
	DriveFileID *string        `gorm:"type:varchar(255);index" json:"drive_file_id,omitempty"`
	HeldAt      *time.Time     `gorm:"index" json:"held_at,omitempty"`
	Duration    *int           `json:"duration,omitempty"` // seconds
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting in its initial state.
func NewMeeting(userID uuid.UUID, title string, source MeetingSource) *Meeting {
	now := time.Now()
	return &Meeting{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Source:    source,
		Status:    MeetingStatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSummarized checks if the meeting has a finished summary
func (m *Meeting) IsSummarized() bool {
	return m.Status == MeetingStatusSummarized
}

// MarkProcessing flags the meeting while summarization runs.
func (m *Meeting) MarkProcessing() {
	m.Status = MeetingStatusProcessing
	m.UpdatedAt = time.Now()
}

// MarkSummarized flags the meeting once its summary is stored.
func (m *Meeting) MarkSummarized() {
	m.Status = MeetingStatusSummarized
	m.UpdatedAt = time.Now()
}

// MarkFailed flags the meeting after an unrecoverable summarization error.
func (m *Meeting) MarkFailed() {
	m.Status = MeetingStatusFailed
	m.UpdatedAt = time.Now()
}
