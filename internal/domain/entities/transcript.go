package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Segment represents a contiguous speech segment
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker"`
}

// Transcript is the stored transcript model
type Transcript struct {
	ID           uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID                                  `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	Text         string                                     `json:"text" gorm:"type:text"`
	Language     string                                     `json:"language,omitempty" gorm:"type:varchar(20)"`
	Segments     []Segment                                  `json:"segments,omitempty" gorm:"type:jsonb;serializer:json"`
	WordCount    int                                        `json:"word_count,omitempty"`
	HasSpeakers  bool                                       `json:"has_speakers" gorm:"default:false"`
	SpeakerCount int                                        `json:"speaker_count,omitempty"`
	RawData      datatypes.JSONType[map[string]interface{}] `json:"raw_data,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(meetingID uuid.UUID, text string) *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
