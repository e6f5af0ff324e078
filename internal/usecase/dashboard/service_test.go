package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/cache"
	"github.com/Aroool/Ai-meeting-summariser/internal/usecase/upcoming"
)

type stubSummaryRepo struct {
	summaries []*entities.MeetingSummary
}

func (r *stubSummaryRepo) Save(ctx context.Context, s *entities.MeetingSummary) error {
	r.summaries = append(r.summaries, s)
	return nil
}

func (r *stubSummaryRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	for _, s := range r.summaries {
		if s.MeetingID == meetingID {
			return s, nil
		}
	}
	return nil, entities.ErrSummaryNotFound
}

func (r *stubSummaryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.MeetingSummary, error) {
	return r.summaries, nil
}

func newTestService(summaries ...*entities.MeetingSummary) *Service {
	repo := &stubSummaryRepo{summaries: summaries}
	return NewService(repo, cache.NewMemoryKV(), upcoming.NewEngine(upcoming.DefaultOptions()), zap.NewNop())
}

func futureSummary(text string) *entities.MeetingSummary {
	s := entities.NewMeetingSummary(uuid.New(), text)
	return s
}

func TestUpcomingExtractsFromSummaries(t *testing.T) {
	svc := newTestService(futureSummary("Next review on 2099-12-01 at 14:00."))
	userID := uuid.New()

	got, err := svc.Upcoming(context.Background(), userID)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].StartISO != "2099-12-01T14:00:00" {
		t.Errorf("got start %s", got[0].StartISO)
	}
}

func TestConsumeRemovesSuggestion(t *testing.T) {
	svc := newTestService(futureSummary("Next review on 2099-12-01 at 14:00."))
	userID := uuid.New()
	ctx := context.Background()

	if err := svc.Consume(ctx, userID, "2099-12-01T14:00:00"); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	got, err := svc.Upcoming(ctx, userID)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("dismissed suggestion still present: %+v", got)
	}

	// Consuming the same key twice is a no-op.
	if err := svc.Consume(ctx, userID, "2099-12-01T14:00:00"); err != nil {
		t.Errorf("second Consume: %v", err)
	}
}

func TestConsumeRejectsEmptyKey(t *testing.T) {
	svc := newTestService()
	if err := svc.Consume(context.Background(), uuid.New(), ""); err != entities.ErrInvalidRequest {
		t.Errorf("got %v, want ErrInvalidRequest", err)
	}
}

func TestDismissalIsPerUser(t *testing.T) {
	svc := newTestService(futureSummary("Demo on 2099-11-05."))
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	if err := svc.Consume(ctx, alice, "2099-11-05T10:00:00"); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	forBob, err := svc.Upcoming(ctx, bob)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(forBob) != 1 {
		t.Errorf("another user's dismissal leaked: %+v", forBob)
	}
}

func TestNotesRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	notes, err := svc.Notes(ctx, userID)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if notes != "" {
		t.Errorf("expected empty default, got %q", notes)
	}

	if err := svc.SaveNotes(ctx, userID, "follow up with vendor"); err != nil {
		t.Fatalf("SaveNotes: %v", err)
	}
	notes, err = svc.Notes(ctx, userID)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if notes != "follow up with vendor" {
		t.Errorf("got %q", notes)
	}

	// Last write wins.
	if err := svc.SaveNotes(ctx, userID, "done"); err != nil {
		t.Fatalf("SaveNotes: %v", err)
	}
	notes, _ = svc.Notes(ctx, userID)
	if notes != "done" {
		t.Errorf("got %q after overwrite", notes)
	}

	// A blank note clears the entry.
	if err := svc.SaveNotes(ctx, userID, "   "); err != nil {
		t.Fatalf("SaveNotes blank: %v", err)
	}
	notes, err = svc.Notes(ctx, userID)
	if err != nil {
		t.Fatalf("Notes after clear: %v", err)
	}
	if notes != "" {
		t.Errorf("got %q, want cleared notes", notes)
	}
}

func TestUpcomingUsesNormalizedBlock(t *testing.T) {
	s := entities.NewMeetingSummary(uuid.New(), "irrelevant text without dates")
	s.Normalized = datatypes.JSON([]byte(`{
		"schedule_suggestions": [
			{"title": "Board Sync", "start_iso": "2099-10-01T09:00:00"}
		]
	}`))
	svc := newTestService(s)

	got, err := svc.Upcoming(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Board Sync" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpcomingSurvivesCorruptBlocks(t *testing.T) {
	s := entities.NewMeetingSummary(uuid.New(), "Planning on 2099-09-09.")
	s.Decisions = datatypes.JSON([]byte(`{not json`))
	s.Normalized = datatypes.JSON([]byte(`[broken`))
	svc := newTestService(s)

	got, err := svc.Upcoming(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("fallback to summary text failed: %+v", got)
	}
}
