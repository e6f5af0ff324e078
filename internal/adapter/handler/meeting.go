package handler

import (
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/meeting"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/adapter/presenter"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/meeting"
)

// maxTranscriptBytes caps uploaded transcript files at 10 MB.
const maxTranscriptBytes = 10 << 20

// Meeting handles meeting, transcript and summary HTTP requests
type Meeting struct {
	meetingService *meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Create creates a meeting shell
// POST /v1/meetings
func (h *Meeting) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, err := h.meetingService.Create(ctx, userID, req.Title, req.Description, entities.MeetingSource(req.Source))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// Get returns one meeting
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	m, err := h.meetingService.Get(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// List returns the user's meetings, most recent first
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid query parameters"))
	}

	meetings, total, err := h.meetingService.List(ctx, userID, req.Limit, req.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings, total, req.Limit, req.Offset))
}

// Delete removes a meeting
// DELETE /v1/meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	if err := h.meetingService.Delete(ctx, userID, meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Meeting deleted"})
}

// AttachTranscript stores transcript text for a meeting
// PUT /v1/meetings/:id/transcript
func (h *Meeting) AttachTranscript(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	text, err := h.transcriptText(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.meetingService.AttachTranscript(ctx, userID, meetingID, text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}

// transcriptText reads the transcript body from either a multipart "file"
// field or a JSON payload.
func (h *Meeting) transcriptText(c echo.Context) (string, error) {
	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > maxTranscriptBytes {
			return "", errors.ErrInvalidArgument("Transcript file too large")
		}
		f, err := fh.Open()
		if err != nil {
			return "", errors.ErrInvalidPayload()
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxTranscriptBytes))
		if err != nil {
			return "", errors.ErrInvalidPayload()
		}
		return string(data), nil
	}

	var req meetingDTO.AttachTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return "", errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return "", errors.ErrInvalidArgument(err.Error())
	}
	return req.Text, nil
}

// GetTranscript returns the transcript of a meeting
// GET /v1/meetings/:id/transcript
func (h *Meeting) GetTranscript(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	t, err := h.meetingService.GetTranscript(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}

// IngestSummary stores the summarizer output for a meeting
// PUT /v1/meetings/:id/summary
func (h *Meeting) IngestSummary(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	var req meetingDTO.IngestSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	sum, err := h.meetingService.IngestSummary(ctx, userID, meetingID, meeting.SummaryInput{
		SummaryText:     req.SummaryText,
		SummaryMarkdown: req.SummaryMarkdown,
		Decisions:       req.Decisions,
		ActionItems:     req.ActionItems,
		Normalized:      req.Normalized,
		ModelUsed:       req.ModelUsed,
		ProcessingTime:  req.ProcessingTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(sum))
}

// GetSummary returns the stored summary of a meeting
// GET /v1/meetings/:id/summary
func (h *Meeting) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	sum, err := h.meetingService.GetSummary(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(sum))
}
