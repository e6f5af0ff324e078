package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
)

type stubEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entities.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[uuid.UUID]*entities.Event)}
}

func (r *stubEventRepo) Create(ctx context.Context, ev *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.ID] = ev
	return nil
}

func (r *stubEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return nil, entities.ErrEventNotFound
	}
	return ev, nil
}

func (r *stubEventRepo) Update(ctx context.Context, ev *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.ID] = ev
	return nil
}

func (r *stubEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func (r *stubEventRepo) List(ctx context.Context, filters repositories.EventFilters) ([]*entities.Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Event
	for _, ev := range r.events {
		if filters.UserID != nil && ev.UserID != *filters.UserID {
			continue
		}
		if filters.From != nil && ev.StartTime.Before(*filters.From) {
			continue
		}
		if filters.To != nil && !ev.StartTime.Before(*filters.To) {
			continue
		}
		out = append(out, ev)
	}
	return out, int64(len(out)), nil
}

func (r *stubEventRepo) MarkEmailSent(ctx context.Context, eventID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := r.events[eventID]; ok {
		ev.MarkEmailSent()
	}
	return nil
}

type stubMailer struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newStubMailer() *stubMailer {
	return &stubMailer{done: make(chan struct{}, 8)}
}

func (m *stubMailer) SendEventNotification(ev *entities.Event) error {
	m.mu.Lock()
	if ev.NotifyEmail != nil {
		m.sent = append(m.sent, *ev.NotifyEmail)
	}
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *stubMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification email was never sent")
	}
}

func (m *stubMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateStoresEvent(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewService(repo, newStubMailer(), zap.NewNop())
	userID := uuid.New()

	start := time.Date(2099, 3, 14, 10, 0, 0, 0, time.UTC)
	ev, err := svc.Create(context.Background(), userID, CreateInput{
		Title:     "Sprint planning",
		StartTime: start,
		Location:  strPtr("Room 2"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.Source != entities.EventSourceManual {
		t.Errorf("got source %q, want manual default", ev.Source)
	}

	stored, err := repo.FindByID(context.Background(), ev.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Title != "Sprint planning" || !stored.StartTime.Equal(start) {
		t.Errorf("stored event mismatch: %+v", stored)
	}
}

func TestCreateRejectsInvalidTimes(t *testing.T) {
	svc := NewService(newStubEventRepo(), newStubMailer(), zap.NewNop())
	userID := uuid.New()
	start := time.Date(2099, 3, 14, 10, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), userID, CreateInput{
		Title:     "Backwards",
		StartTime: start,
		EndTime:   timePtr(start.Add(-time.Hour)),
	})
	if err != entities.ErrInvalidEventTime {
		t.Errorf("got %v, want ErrInvalidEventTime", err)
	}

	_, err = svc.Create(context.Background(), userID, CreateInput{StartTime: start})
	if err != entities.ErrInvalidEventTitle {
		t.Errorf("got %v, want ErrInvalidEventTitle", err)
	}
}

func TestCreateSendsNotificationEmail(t *testing.T) {
	repo := newStubEventRepo()
	mailer := newStubMailer()
	svc := NewService(repo, mailer, zap.NewNop())

	ev, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Title:       "Vendor call",
		StartTime:   time.Date(2099, 5, 2, 15, 0, 0, 0, time.UTC),
		NotifyEmail: strPtr("ops@example.com"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	mailer.waitForSend(t)
	if got := mailer.sentTo(); len(got) != 1 || got[0] != "ops@example.com" {
		t.Fatalf("sent to %v", got)
	}

	// The repo eventually records the sent timestamp.
	deadline := time.Now().Add(2 * time.Second)
	for {
		stored, _ := repo.FindByID(context.Background(), ev.ID)
		if stored.EmailSentAt != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("email_sent_at never recorded")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewService(repo, newStubMailer(), zap.NewNop())
	owner := uuid.New()

	ev, err := svc.Create(context.Background(), owner, CreateInput{
		Title:     "Private",
		StartTime: time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), uuid.New(), ev.ID); err != entities.ErrForbidden {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if _, err := svc.Get(context.Background(), owner, ev.ID); err != nil {
		t.Errorf("owner Get: %v", err)
	}
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewService(repo, newStubMailer(), zap.NewNop())
	owner := uuid.New()
	ctx := context.Background()

	ev, err := svc.Create(ctx, owner, CreateInput{
		Title:     "Standup",
		StartTime: time.Date(2099, 6, 1, 9, 0, 0, 0, time.UTC),
		Location:  strPtr("Room 1"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, owner, ev.ID, UpdateInput{
		Title: strPtr("Daily standup"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Daily standup" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Location == nil || *updated.Location != "Room 1" {
		t.Errorf("untouched field changed: %+v", updated.Location)
	}
}

func TestDeleteRemovesEvent(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewService(repo, newStubMailer(), zap.NewNop())
	owner := uuid.New()
	ctx := context.Background()

	ev, err := svc.Create(ctx, owner, CreateInput{
		Title:     "Obsolete",
		StartTime: time.Date(2099, 2, 2, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, uuid.New(), ev.ID); err != entities.ErrForbidden {
		t.Errorf("stranger delete: got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, owner, ev.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, owner, ev.ID); err != entities.ErrEventNotFound {
		t.Errorf("got %v after delete, want ErrEventNotFound", err)
	}
}

func TestListFiltersByRange(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewService(repo, newStubMailer(), zap.NewNop())
	owner := uuid.New()
	ctx := context.Background()

	for _, day := range []int{1, 10, 20} {
		_, err := svc.Create(ctx, owner, CreateInput{
			Title:     "Event",
			StartTime: time.Date(2099, 7, day, 12, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	from := time.Date(2099, 7, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2099, 7, 15, 0, 0, 0, 0, time.UTC)
	got, total, err := svc.List(ctx, owner, &from, &to, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(got) != 1 {
		t.Fatalf("got %d events (total %d), want 1", len(got), total)
	}
	if got[0].StartTime.Day() != 10 {
		t.Errorf("wrong event in range: %v", got[0].StartTime)
	}
}

func TestSendEmailRequiresNotifyAddress(t *testing.T) {
	repo := newStubEventRepo()
	mailer := newStubMailer()
	svc := NewService(repo, mailer, zap.NewNop())
	owner := uuid.New()
	ctx := context.Background()

	ev, err := svc.Create(ctx, owner, CreateInput{
		Title:     "No address",
		StartTime: time.Date(2099, 8, 8, 16, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.SendEmail(ctx, owner, ev.ID); err != entities.ErrInvalidRequest {
		t.Errorf("got %v, want ErrInvalidRequest", err)
	}

	if _, err := svc.Update(ctx, owner, ev.ID, UpdateInput{NotifyEmail: strPtr("team@example.com")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.SendEmail(ctx, owner, ev.ID); err != nil {
		t.Fatalf("SendEmail: %v", err)
	}
	mailer.waitForSend(t)
}
