package presenter

import (
	eventDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/event"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
)

// ToEventResponse converts an Event entity to EventResponse DTO
func ToEventResponse(e *entities.Event) *eventDTO.EventResponse {
	if e == nil {
		return nil
	}

	return &eventDTO.EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Source:      string(e.Source),
		NotifyEmail: e.NotifyEmail,
		EmailSentAt: e.EmailSentAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEventListResponse converts a slice of Event entities to EventListResponse
func ToEventListResponse(events []*entities.Event, total int64, limit, offset int) *eventDTO.EventListResponse {
	responses := make([]*eventDTO.EventResponse, len(events))
	for i, e := range events {
		responses[i] = ToEventResponse(e)
	}

	return &eventDTO.EventListResponse{
		Events: responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
