package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dashboardDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/dashboard"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/dashboard"
)

// Dashboard handles schedule suggestion and notes HTTP requests
type Dashboard struct {
	dashboardService *dashboard.Service
	logger           *zap.Logger
}

// NewDashboard creates a new dashboard handler
func NewDashboard(dashboardService *dashboard.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Upcoming returns the extracted schedule suggestions for the user
// GET /v1/dashboard/upcoming
func (h *Dashboard) Upcoming(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	suggestions, err := h.dashboardService.Upcoming(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, suggestions)
}

// Consume dismisses one schedule suggestion by its start key
// POST /v1/dashboard/upcoming/consume
func (h *Dashboard) Consume(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dashboardDTO.ConsumeSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.dashboardService.Consume(ctx, userID, req.StartISO); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Suggestion dismissed"})
}

// Notes returns the user's scratchpad notes
// GET /v1/dashboard/notes
func (h *Dashboard) Notes(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	notes, err := h.dashboardService.Notes(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dashboardDTO.NotesResponse{Notes: notes})
}

// SaveNotes stores the user's scratchpad notes. A blank note clears them.
// PUT /v1/dashboard/notes
func (h *Dashboard) SaveNotes(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req dashboardDTO.SaveNotesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := h.dashboardService.SaveNotes(ctx, userID, req.Notes); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Notes saved"})
}
