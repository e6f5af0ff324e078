package calendar

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/googleapi"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/oauth"
)

// defaultTitle is used when the composer submits a blank title.
const defaultTitle = "Follow-up meeting"

// Service bridges the dashboard calendar panel to the user's Google
// Calendar.
type Service struct {
	userRepo repositories.UserRepository
	google   *oauth.GoogleProvider
	logger   *zap.Logger
}

// NewService creates a calendar service.
func NewService(userRepo repositories.UserRepository, google *oauth.GoogleProvider, logger *zap.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		google:   google,
		logger:   logger,
	}
}

// UpcomingEvent is the normalized calendar entry shown on the dashboard.
type UpcomingEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`
	Link     string `json:"link,omitempty"`
}

// ListEvents returns the user's next Google Calendar events within the
// window, soonest first.
func (s *Service) ListEvents(ctx context.Context, userID uuid.UUID, days, maxResults int) ([]UpcomingEvent, error) {
	client, err := s.clientFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	items, err := client.ListEvents(ctx, now, now.AddDate(0, 0, days), maxResults)
	if err != nil {
		return nil, err
	}

	out := make([]UpcomingEvent, 0, len(items))
	for _, it := range items {
		out = append(out, UpcomingEvent{
			ID:       it.ID,
			Title:    it.Summary,
			Start:    pickTime(it.Start),
			End:      pickTime(it.End),
			Location: it.Location,
			Link:     it.HTMLLink,
		})
	}
	return out, nil
}

// CreateInput carries the composer fields for a new calendar event.
type CreateInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// CreateEvent inserts an event into the user's primary calendar. An end at
// or before the start is treated as a composer typo and rolled to the next
// day after the start.
func (s *Service) CreateEvent(ctx context.Context, userID uuid.UUID, in CreateInput) (*googleapi.CalendarEvent, error) {
	client, err := s.clientFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Start.IsZero() {
		return nil, entities.ErrInvalidEventTime
	}

	ev := googleapi.CalendarEvent{
		Summary:     composerTitle(in.Title),
		Description: in.Description,
		Start:       googleapi.CalendarTime{DateTime: in.Start.Format(time.RFC3339)},
		End:         googleapi.CalendarTime{DateTime: resolveEnd(in.Start, in.End).Format(time.RFC3339)},
	}

	created, err := client.CreateEvent(ctx, ev)
	if err != nil {
		return nil, err
	}

	s.logger.Info("calendar event created",
		zap.String("user_id", userID.String()),
		zap.String("event_id", created.ID),
	)
	return created, nil
}

// composerTitle falls back to the default title on a blank submission.
func composerTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle
	}
	return title
}

// resolveEnd rolls an end at or before the start to the next day after the
// start. A zero end gets the same treatment.
func resolveEnd(start, end time.Time) time.Time {
	if end.IsZero() || !end.After(start) {
		return start.AddDate(0, 0, 1)
	}
	return end
}

// clientFor builds a calendar client carrying the user's Google tokens.
// Refreshed tokens are written back so the next request skips the refresh.
func (s *Service) clientFor(ctx context.Context, userID uuid.UUID) (*googleapi.CalendarClient, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := TokenForUser(user)
	if err != nil {
		return nil, err
	}

	httpClient := s.google.Client(ctx, token)
	PersistRefreshedToken(ctx, s.userRepo, s.google, user, token, s.logger)

	return googleapi.NewCalendarClient(httpClient), nil
}

// TokenForUser assembles the stored Google token set.
func TokenForUser(user *entities.User) (*oauth2.Token, error) {
	if !user.GoogleConnected() {
		return nil, entities.ErrGoogleNotLinked
	}

	token := &oauth2.Token{
		RefreshToken: *user.GoogleRefreshToken,
	}
	if user.GoogleAccessToken != nil {
		token.AccessToken = *user.GoogleAccessToken
	}
	if user.GoogleTokenExpiry != nil {
		token.Expiry = *user.GoogleTokenExpiry
	}
	return token, nil
}

// PersistRefreshedToken refreshes an expired access token eagerly and writes
// the new token set back on the user. Failure is non-fatal; the request
// client will retry the refresh itself.
func PersistRefreshedToken(
	ctx context.Context,
	userRepo repositories.UserRepository,
	google *oauth.GoogleProvider,
	user *entities.User,
	token *oauth2.Token,
	logger *zap.Logger,
) {
	if token.Valid() {
		return
	}

	fresh, err := google.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		logger.Warn("failed to refresh google token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return
	}

	user.LinkGoogle(valueOr(user.GoogleID), fresh.AccessToken, fresh.RefreshToken, fresh.Expiry)
	if err := userRepo.UpdateGoogleTokens(ctx, user); err != nil {
		logger.Warn("failed to persist refreshed google token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}
	token.AccessToken = fresh.AccessToken
	token.Expiry = fresh.Expiry
}

func valueOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func pickTime(t googleapi.CalendarTime) string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
