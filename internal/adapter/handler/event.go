package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	eventDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/event"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/adapter/presenter"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/event"
)

// Event handles offline event HTTP requests
type Event struct {
	eventService *event.Service
	logger       *zap.Logger
}

// NewEvent creates a new event handler
func NewEvent(eventService *event.Service, logger *zap.Logger) *Event {
	return &Event{
		eventService: eventService,
		logger:       logger,
	}
}

// Create creates an offline event
// POST /v1/events
func (h *Event) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventDTO.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	in := event.CreateInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		NotifyEmail: req.NotifyEmail,
		Source:      entities.EventSource(req.Source),
	}
	if req.Description != "" {
		in.Description = &req.Description
	}
	if req.Location != "" {
		in.Location = &req.Location
	}

	ev, err := h.eventService.Create(ctx, userID, in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToEventResponse(ev))
}

// Get returns one event
// GET /v1/events/:id
func (h *Event) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid event ID"))
	}

	ev, err := h.eventService.Get(ctx, userID, eventID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEventResponse(ev))
}

// Update applies a partial update to an event
// PATCH /v1/events/:id
func (h *Event) Update(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid event ID"))
	}

	var req eventDTO.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ev, err := h.eventService.Update(ctx, userID, eventID, event.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		NotifyEmail: req.NotifyEmail,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEventResponse(ev))
}

// Delete removes an event
// DELETE /v1/events/:id
func (h *Event) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid event ID"))
	}

	if err := h.eventService.Delete(ctx, userID, eventID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Event deleted"})
}

// List returns the user's events, soonest first
// GET /v1/events
func (h *Event) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventDTO.ListEventsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid query parameters"))
	}

	from, err := parseTimeParam(req.From)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid from parameter"))
	}
	to, err := parseTimeParam(req.To)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid to parameter"))
	}

	events, total, err := h.eventService.List(ctx, userID, from, to, req.Limit, req.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEventListResponse(events, total, req.Limit, req.Offset))
}

// SendEmail re-sends the notification email for an event
// POST /v1/events/:id/send-email
func (h *Event) SendEmail(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid event ID"))
	}

	ev, err := h.eventService.SendEmail(ctx, userID, eventID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEventResponse(ev))
}

// parseTimeParam parses an optional RFC3339 query parameter
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
