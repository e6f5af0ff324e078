package event

import "time"

// CreateEventRequest represents the request to create an offline event
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    string     `json:"location,omitempty" validate:"omitempty,max=500"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Source      string     `json:"source,omitempty" validate:"omitempty,oneof=manual suggestion"`
	NotifyEmail *string    `json:"notify_email,omitempty" validate:"omitempty,email"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=500"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	NotifyEmail *string    `json:"notify_email,omitempty" validate:"omitempty,email"`
}

// ListEventsRequest represents query parameters for listing events
type ListEventsRequest struct {
	From   string `query:"from" validate:"omitempty"`
	To     string `query:"to" validate:"omitempty"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}
