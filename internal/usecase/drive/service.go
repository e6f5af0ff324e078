package drive

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/googleapi"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/oauth"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/calendar"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/meeting"
)

// previewLimit caps the preview text returned to the modal.
const previewLimit = 8000

// Service lets users pull transcript files out of Google Drive and attach
// them to meetings.
type Service struct {
	userRepo    repositories.UserRepository
	meetingRepo repositories.MeetingRepository
	meetings    *meeting.Service
	google      *oauth.GoogleProvider
	logger      *zap.Logger
}

// NewService creates a drive service.
func NewService(
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	meetings *meeting.Service,
	google *oauth.GoogleProvider,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		meetingRepo: meetingRepo,
		meetings:    meetings,
		google:      google,
		logger:      logger,
	}
}

// Backfill lists the user's transcript-like Drive files, newest first.
func (s *Service) Backfill(ctx context.Context, userID uuid.UUID) ([]googleapi.DriveFile, error) {
	client, err := s.clientFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return client.ListTranscriptFiles(ctx, 50)
}

// AttachInput identifies the Drive file to pull into a meeting.
type AttachInput struct {
	MeetingID uuid.UUID
	FileID    string
	MimeType  string
	Name      string
}

// AttachToMeeting downloads a Drive file (exporting Google Docs as plain
// text) and stores it as the meeting's transcript through the regular
// transcript path.
func (s *Service) AttachToMeeting(ctx context.Context, userID uuid.UUID, in AttachInput) (*entities.Transcript, error) {
	if in.FileID == "" {
		return nil, entities.ErrInvalidRequest
	}

	client, err := s.clientFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	content, err := client.DownloadText(ctx, in.FileID, in.MimeType)
	if err != nil {
		return nil, err
	}

	t, err := s.meetings.AttachTranscript(ctx, userID, in.MeetingID, content)
	if err != nil {
		return nil, err
	}

	// Remember the Drive origin so the meeting can be traced back.
	if m, err := s.meetingRepo.FindByID(ctx, in.MeetingID); err == nil {
		m.Source = entities.MeetingSourceDrive
		m.DriveFileID = &in.FileID
		if err := s.meetingRepo.Update(ctx, m); err != nil {
			s.logger.Warn("failed to record drive origin",
				zap.String("meeting_id", in.MeetingID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("drive file attached",
		zap.String("meeting_id", in.MeetingID.String()),
		zap.String("file_id", in.FileID),
	)
	return t, nil
}

// PreviewText returns a truncated text preview of a Drive file for the
// attach modal.
func (s *Service) PreviewText(ctx context.Context, userID uuid.UUID, fileID, mimeType string) (string, error) {
	if fileID == "" {
		return "", entities.ErrInvalidRequest
	}

	client, err := s.clientFor(ctx, userID)
	if err != nil {
		return "", err
	}

	text, err := client.DownloadText(ctx, fileID, strings.ToLower(mimeType))
	if err != nil {
		return "", err
	}

	if len(text) > previewLimit {
		text = text[:previewLimit] + "\n\n…(truncated preview)…"
	}
	return text, nil
}

func (s *Service) clientFor(ctx context.Context, userID uuid.UUID) (*googleapi.DriveClient, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := calendar.TokenForUser(user)
	if err != nil {
		return nil, err
	}

	httpClient := s.google.Client(ctx, token)
	calendar.PersistRefreshedToken(ctx, s.userRepo, s.google, user, token, s.logger)

	return googleapi.NewDriveClient(httpClient), nil
}
