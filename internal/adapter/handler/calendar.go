package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	calendarDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/calendar"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/calendar"
)

// Calendar handles Google Calendar HTTP requests
type Calendar struct {
	calendarService *calendar.Service
	logger          *zap.Logger
}

// NewCalendar creates a new calendar handler
func NewCalendar(calendarService *calendar.Service, logger *zap.Logger) *Calendar {
	return &Calendar{
		calendarService: calendarService,
		logger:          logger,
	}
}

// ListEvents returns the user's next Google Calendar events
// GET /v1/calendar/events
func (h *Calendar) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.ListCalendarEventsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid query parameters"))
	}

	events, err := h.calendarService.ListEvents(ctx, userID, req.Days, req.MaxResults)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, events)
}

// CreateEvent inserts an event into the user's primary Google Calendar
// POST /v1/calendar/events
func (h *Calendar) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req calendarDTO.CreateCalendarEventRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid start time"))
	}
	var end time.Time
	if req.End != "" {
		end, err = time.Parse(time.RFC3339, req.End)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid end time"))
		}
	}

	created, err := h.calendarService.CreateEvent(ctx, userID, calendar.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, created)
}
