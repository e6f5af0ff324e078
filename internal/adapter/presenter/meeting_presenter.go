package presenter

import (
	"encoding/json"

	meetingDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/meeting"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meetingDTO.MeetingResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Source:      string(m.Source),
		Status:      string(m.Status),
		DriveFileID: m.DriveFileID,
		HeldAt:      m.HeldAt,
		Duration:    m.Duration,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, limit, offset int) *meetingDTO.MeetingListResponse {
	responses := make([]*meetingDTO.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}

	return &meetingDTO.MeetingListResponse{
		Meetings: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
}

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse DTO
func ToTranscriptResponse(t *entities.Transcript) *meetingDTO.TranscriptResponse {
	if t == nil {
		return nil
	}

	return &meetingDTO.TranscriptResponse{
		ID:           t.ID.String(),
		MeetingID:    t.MeetingID.String(),
		Text:         t.Text,
		Language:     t.Language,
		WordCount:    t.WordCount,
		HasSpeakers:  t.HasSpeakers,
		SpeakerCount: t.SpeakerCount,
		CreatedAt:    t.CreatedAt,
	}
}

// ToSummaryResponse converts a MeetingSummary entity to SummaryResponse DTO
func ToSummaryResponse(s *entities.MeetingSummary) *meetingDTO.SummaryResponse {
	if s == nil {
		return nil
	}

	// Stored blocks are jsonb; decode failures leave the field empty.
	var decisions, actionItems []string
	if s.Decisions != nil {
		json.Unmarshal(s.Decisions, &decisions)
	}
	if s.ActionItems != nil {
		json.Unmarshal(s.ActionItems, &actionItems)
	}

	return &meetingDTO.SummaryResponse{
		ID:              s.ID.String(),
		MeetingID:       s.MeetingID.String(),
		SummaryText:     s.SummaryText,
		SummaryMarkdown: s.SummaryMarkdown,
		Decisions:       decisions,
		ActionItems:     actionItems,
		Normalized:      json.RawMessage(s.Normalized),
		ModelUsed:       s.ModelUsed,
		ProcessingTime:  s.ProcessingTime,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
