package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	driveDTO "github.com/Aroool/Ai-meeting-summariser/internal/adapter/dto/drive"
	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/adapter/presenter"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/drive"
)

// Drive handles Google Drive backfill HTTP requests
type Drive struct {
	driveService *drive.Service
	logger       *zap.Logger
}

// NewDrive creates a new drive handler
func NewDrive(driveService *drive.Service, logger *zap.Logger) *Drive {
	return &Drive{
		driveService: driveService,
		logger:       logger,
	}
}

// Backfill lists the user's transcript-like Drive files
// GET /v1/drive/files
func (h *Drive) Backfill(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	files, err := h.driveService.Backfill(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, files)
}

// Preview returns a truncated text preview of a Drive file
// GET /v1/drive/files/:id/preview
func (h *Drive) Preview(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	fileID := c.Param("id")
	if fileID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing file ID"))
	}

	text, err := h.driveService.PreviewText(ctx, userID, fileID, c.QueryParam("mime_type"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"text": text})
}

// Attach downloads a Drive file and stores it as a meeting transcript
// POST /v1/drive/attach
func (h *Drive) Attach(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req driveDTO.AttachDriveFileRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	t, err := h.driveService.AttachToMeeting(ctx, userID, drive.AttachInput{
		MeetingID: meetingID,
		FileID:    req.FileID,
		MimeType:  req.MimeType,
		Name:      req.Name,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(t))
}
