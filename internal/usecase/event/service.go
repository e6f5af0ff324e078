package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/email"
	"github.com/Aroool/Ai-meeting-summariser/pkg/jobcontext"
)

// Service manages offline calendar events and their notification emails.
type Service struct {
	eventRepo repositories.EventRepository
	mailer    email.Sender
	logger    *zap.Logger
}

// NewService creates an event service.
func NewService(eventRepo repositories.EventRepository, mailer email.Sender, logger *zap.Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

// CreateInput carries the fields accepted when creating an event.
type CreateInput struct {
	Title       string
	Description *string
	Location    *string
	StartTime   time.Time
	EndTime     *time.Time
	NotifyEmail *string
	Source      entities.EventSource
}

// Create stores a new event. When a notify address is set the notification
// email is sent in the background; its failure never fails the create.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*entities.Event, error) {
	ev := entities.NewEvent(userID, in.Title, in.StartTime)
	ev.Description = in.Description
	ev.Location = in.Location
	ev.EndTime = in.EndTime
	ev.NotifyEmail = in.NotifyEmail
	if in.Source != "" {
		ev.Source = in.Source
	}

	if err := ev.Validate(); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, ev); err != nil {
		return nil, err
	}

	if ev.NotifyEmail != nil && *ev.NotifyEmail != "" {
		go s.sendEmailJob(ev)
	}

	return ev, nil
}

// Get returns one of the user's events.
func (s *Service) Get(ctx context.Context, userID, eventID uuid.UUID) (*entities.Event, error) {
	ev, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.UserID != userID {
		return nil, entities.ErrForbidden
	}
	return ev, nil
}

// UpdateInput carries the fields accepted when updating an event.
type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	NotifyEmail *string
}

// Update applies a partial update to one of the user's events.
func (s *Service) Update(ctx context.Context, userID, eventID uuid.UUID, in UpdateInput) (*entities.Event, error) {
	ev, err := s.Get(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		ev.Title = *in.Title
	}
	if in.Description != nil {
		ev.Description = in.Description
	}
	if in.Location != nil {
		ev.Location = in.Location
	}
	if in.StartTime != nil {
		ev.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		ev.EndTime = in.EndTime
	}
	if in.NotifyEmail != nil {
		ev.NotifyEmail = in.NotifyEmail
	}
	ev.UpdatedAt = time.Now()

	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Delete removes one of the user's events.
func (s *Service) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, eventID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, eventID)
}

// List returns the user's events between the optional bounds, soonest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit, offset int) ([]*entities.Event, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.eventRepo.List(ctx, repositories.EventFilters{
		UserID:    &userID,
		From:      from,
		To:        to,
		Limit:     limit,
		Offset:    offset,
		SortBy:    "start_time",
		SortOrder: "asc",
	})
}

// SendEmail re-sends the notification email for an event on demand.
func (s *Service) SendEmail(ctx context.Context, userID, eventID uuid.UUID) (*entities.Event, error) {
	ev, err := s.Get(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if ev.NotifyEmail == nil || *ev.NotifyEmail == "" {
		return nil, entities.ErrInvalidRequest
	}

	go s.sendEmailJob(ev)
	return ev, nil
}

// sendEmailJob delivers the notification with the standard job retry policy
// and records the sent timestamp on success.
func (s *Service) sendEmailJob(ev *entities.Event) {
	ctx, cancel := jobcontext.JobBegin(context.Background(), ev.ID, "event_email", 0)
	defer cancel()

	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		return s.mailer.SendEventNotification(ev)
	})
	if err != nil {
		s.logger.Error("event email job failed",
			zap.String("event_id", ev.ID.String()),
			zap.Error(err),
		)
		return
	}

	if err := s.eventRepo.MarkEmailSent(ctx, ev.ID); err != nil {
		s.logger.Warn("failed to record email sent time",
			zap.String("event_id", ev.ID.String()),
			zap.Error(err),
		)
	}
}
