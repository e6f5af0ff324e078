package calendar

// CreateCalendarEventRequest represents the composer payload for a new
// Google Calendar event. Times are RFC3339 strings.
type CreateCalendarEventRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end,omitempty"`
}

// ListCalendarEventsRequest represents query parameters for the calendar panel
type ListCalendarEventsRequest struct {
	Days       int `query:"days" validate:"omitempty,min=1,max=365"`
	MaxResults int `query:"max_results" validate:"omitempty,min=1,max=100"`
}
