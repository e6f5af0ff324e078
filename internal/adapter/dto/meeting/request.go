package meeting

import "encoding/json"

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Source      string  `json:"source,omitempty" validate:"omitempty,oneof=upload drive manual"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// AttachTranscriptRequest represents the request to attach transcript text
type AttachTranscriptRequest struct {
	Text string `json:"text" validate:"required"`
}

// IngestSummaryRequest represents the summarizer output pushed for a meeting
type IngestSummaryRequest struct {
	SummaryText     string          `json:"summary_text" validate:"required"`
	SummaryMarkdown string          `json:"summary_markdown,omitempty"`
	Decisions       []string        `json:"decisions,omitempty"`
	ActionItems     []string        `json:"action_items,omitempty"`
	Normalized      json.RawMessage `json:"normalized_summary,omitempty"`
	ModelUsed       string          `json:"model_used,omitempty"`
	ProcessingTime  int             `json:"processing_time,omitempty"`
}
