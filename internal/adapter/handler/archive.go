package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/errors"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/storage"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/meeting"
)

// urlExpiry is how long presigned archive links stay valid.
const urlExpiry = 1 * time.Hour

// Archive serves presigned download links for archived transcript files.
type Archive struct {
	meetingService *meeting.Service
	minioClient    *storage.MinIOClient
	logger         *zap.Logger
}

// NewArchive creates a new archive handler
func NewArchive(meetingService *meeting.Service, minioClient *storage.MinIOClient, logger *zap.Logger) *Archive {
	return &Archive{
		meetingService: meetingService,
		minioClient:    minioClient,
		logger:         logger,
	}
}

// TranscriptURL generates a presigned URL for a meeting's raw transcript file
// GET /v1/meetings/:id/transcript/download
func (h *Archive) TranscriptURL(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := UserIDFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	// Ownership check; the archive key is derived, not user supplied.
	if _, err := h.meetingService.Get(ctx, userID, meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	objectName := storage.TranscriptObjectName(meetingID.String())
	url, err := h.minioClient.GetFileURL(ctx, objectName, urlExpiry)
	if err != nil {
		h.logger.Error("failed to generate transcript download URL",
			zap.String("object_name", objectName),
			zap.Error(err))
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"url":        url,
		"expires_in": urlExpiry.String(),
	})
}

// ListFiles lists archived objects, optionally under a prefix
// GET /v1/archive/files
func (h *Archive) ListFiles(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := UserIDFromContext(c); err != nil {
		return HandleError(h.logger, c, err)
	}
	prefix := c.QueryParam("prefix")

	files, err := h.minioClient.ListFiles(ctx, prefix)
	if err != nil {
		h.logger.Error("failed to list archived files", zap.Error(err))
		return HandleError(h.logger, c, errors.ErrStorageFailed("list", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"files":  files,
		"count":  len(files),
		"prefix": prefix,
	})
}
