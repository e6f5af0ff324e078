package entities

import (
	"time"

	"github.com/google/uuid"
)

// EventSource tells how an offline event was created.
type EventSource string

const (
	EventSourceManual     EventSource = "manual"
	EventSourceSuggestion EventSource = "suggestion"
)

// Event is an offline calendar event owned by a user. It lives entirely in
// this system; pushing to Google Calendar is a separate, explicit action.
type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string      `json:"title" gorm:"type:varchar(255);not null"`
	Description *string     `json:"description,omitempty" gorm:"type:text"`
	Location    *string     `json:"location,omitempty" gorm:"type:varchar(255)"`
	StartTime   time.Time   `json:"start_time" gorm:"type:timestamp;not null;index"`
	EndTime     *time.Time  `json:"end_time,omitempty" gorm:"type:timestamp"`
	Source      EventSource `json:"source" gorm:"type:varchar(20);not null;default:'manual'"`
	NotifyEmail *string     `json:"notify_email,omitempty" gorm:"type:varchar(255)"`
	EmailSentAt *time.Time  `json:"email_sent_at,omitempty" gorm:"type:timestamp"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

// NewEvent creates a manual event.
func NewEvent(userID uuid.UUID, title string, start time.Time) *Event {
	now := time.Now()
	return &Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		StartTime: start,
		Source:    EventSourceManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkEmailSent records that the reminder email for this event went out.
func (e *Event) MarkEmailSent() {
	now := time.Now()
	e.EmailSentAt = &now
	e.UpdatedAt = now
}

// Validate validates event data
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrInvalidEventTitle
	}
	if e.StartTime.IsZero() {
		return ErrInvalidEventTime
	}
	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return ErrInvalidEventTime
	}
	return nil
}
