package meeting

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/storage"
)

type stubMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newStubMeetingRepo() *stubMeetingRepo {
	return &stubMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *stubMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *stubMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return m, nil
}

func (r *stubMeetingRepo) FindByDriveFileID(ctx context.Context, userID uuid.UUID, fileID string) (*entities.Meeting, error) {
	for _, m := range r.meetings {
		if m.UserID == userID && m.DriveFileID != nil && *m.DriveFileID == fileID {
			return m, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (r *stubMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *stubMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.meetings, id)
	return nil
}

func (r *stubMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		if filters.UserID != nil && m.UserID != *filters.UserID {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMeetingRepo) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status entities.MeetingStatus) error {
	m, ok := r.meetings[meetingID]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	m.Status = status
	return nil
}

type stubTranscriptRepo struct {
	transcripts map[uuid.UUID]*entities.Transcript
}

func newStubTranscriptRepo() *stubTranscriptRepo {
	return &stubTranscriptRepo{transcripts: make(map[uuid.UUID]*entities.Transcript)}
}

func (r *stubTranscriptRepo) Save(ctx context.Context, t *entities.Transcript) error {
	r.transcripts[t.MeetingID] = t
	return nil
}

func (r *stubTranscriptRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	t, ok := r.transcripts[meetingID]
	if !ok {
		return nil, entities.ErrTranscriptNotFound
	}
	return t, nil
}

type stubSummaryRepo struct {
	summaries map[uuid.UUID]*entities.MeetingSummary
}

func newStubSummaryRepo() *stubSummaryRepo {
	return &stubSummaryRepo{summaries: make(map[uuid.UUID]*entities.MeetingSummary)}
}

func (r *stubSummaryRepo) Save(ctx context.Context, s *entities.MeetingSummary) error {
	r.summaries[s.MeetingID] = s
	return nil
}

func (r *stubSummaryRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	s, ok := r.summaries[meetingID]
	if !ok {
		return nil, entities.ErrSummaryNotFound
	}
	return s, nil
}

func (r *stubSummaryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.MeetingSummary, error) {
	var out []*entities.MeetingSummary
	for _, s := range r.summaries {
		out = append(out, s)
	}
	return out, nil
}

type stubObjectStore struct {
	objects map[string]string
}

func newStubObjectStore() *stubObjectStore {
	return &stubObjectStore{objects: make(map[string]string)}
}

func (s *stubObjectStore) UploadText(ctx context.Context, objectName string, content string) error {
	s.objects[objectName] = content
	return nil
}

func (s *stubObjectStore) Delete(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

type testFixture struct {
	svc         *Service
	meetings    *stubMeetingRepo
	transcripts *stubTranscriptRepo
	summaries   *stubSummaryRepo
	store       *stubObjectStore
}

func newFixture() *testFixture {
	f := &testFixture{
		meetings:    newStubMeetingRepo(),
		transcripts: newStubTranscriptRepo(),
		summaries:   newStubSummaryRepo(),
		store:       newStubObjectStore(),
	}
	f.svc = NewService(f.meetings, f.transcripts, f.summaries, f.store, zap.NewNop())
	return f
}

func TestCreateDefaultsToUploadSource(t *testing.T) {
	f := newFixture()
	userID := uuid.New()

	m, err := f.svc.Create(context.Background(), userID, "Weekly sync", nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Source != entities.MeetingSourceUpload {
		t.Errorf("got source %q, want upload", m.Source)
	}
	if m.Status != entities.MeetingStatusUploaded {
		t.Errorf("got status %q", m.Status)
	}

	if _, err := f.svc.Create(context.Background(), userID, "   ", nil, ""); err != entities.ErrInvalidRequest {
		t.Errorf("blank title: got %v, want ErrInvalidRequest", err)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	f := newFixture()
	owner := uuid.New()

	m, err := f.svc.Create(context.Background(), owner, "Private sync", nil, entities.MeetingSourceManual)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.svc.Get(context.Background(), uuid.New(), m.ID); err != entities.ErrForbidden {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if _, err := f.svc.Get(context.Background(), owner, m.ID); err != nil {
		t.Errorf("owner Get: %v", err)
	}
}

func TestAttachTranscriptArchivesAndParses(t *testing.T) {
	f := newFixture()
	owner := uuid.New()
	ctx := context.Background()

	m, err := f.svc.Create(ctx, owner, "Kickoff", nil, entities.MeetingSourceUpload)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tr, err := f.svc.AttachTranscript(ctx, owner, m.ID, "we agreed to ship on friday")
	if err != nil {
		t.Fatalf("AttachTranscript: %v", err)
	}
	if tr.WordCount != 6 {
		t.Errorf("got word count %d, want 6", tr.WordCount)
	}

	archived, ok := f.store.objects[storage.TranscriptObjectName(m.ID.String())]
	if !ok || archived != "we agreed to ship on friday" {
		t.Errorf("raw transcript not archived: %q", archived)
	}

	// Re-uploading replaces the stored transcript.
	if _, err := f.svc.AttachTranscript(ctx, owner, m.ID, "revised text"); err != nil {
		t.Fatalf("second AttachTranscript: %v", err)
	}
	got, err := f.svc.GetTranscript(ctx, owner, m.ID)
	if err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	if got.Text != "revised text" {
		t.Errorf("got %q after replace", got.Text)
	}

	if _, err := f.svc.AttachTranscript(ctx, owner, m.ID, "  "); err != entities.ErrInvalidRequest {
		t.Errorf("blank transcript: got %v, want ErrInvalidRequest", err)
	}
}

func TestIngestSummaryMarksMeetingSummarized(t *testing.T) {
	f := newFixture()
	owner := uuid.New()
	ctx := context.Background()

	m, err := f.svc.Create(ctx, owner, "Planning", nil, entities.MeetingSourceUpload)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sum, err := f.svc.IngestSummary(ctx, owner, m.ID, SummaryInput{
		SummaryText: "Team agreed on the Q3 roadmap.",
		Decisions:   []string{"Ship beta on 2099-09-01"},
		ModelUsed:   "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("IngestSummary: %v", err)
	}
	if sum.SummaryText != "Team agreed on the Q3 roadmap." {
		t.Errorf("summary text: %q", sum.SummaryText)
	}

	stored, _ := f.meetings.FindByID(ctx, m.ID)
	if stored.Status != entities.MeetingStatusSummarized {
		t.Errorf("got status %q, want summarized", stored.Status)
	}
}

func TestIngestSummaryReplacesExisting(t *testing.T) {
	f := newFixture()
	owner := uuid.New()
	ctx := context.Background()

	m, _ := f.svc.Create(ctx, owner, "Retro", nil, entities.MeetingSourceUpload)

	if _, err := f.svc.IngestSummary(ctx, owner, m.ID, SummaryInput{SummaryText: "first pass"}); err != nil {
		t.Fatalf("first IngestSummary: %v", err)
	}
	sum, err := f.svc.IngestSummary(ctx, owner, m.ID, SummaryInput{SummaryText: "second pass"})
	if err != nil {
		t.Fatalf("second IngestSummary: %v", err)
	}
	if sum.SummaryText != "second pass" {
		t.Errorf("got %q", sum.SummaryText)
	}
	if len(f.summaries.summaries) != 1 {
		t.Errorf("expected one summary row, got %d", len(f.summaries.summaries))
	}
}

func TestIngestSummaryRejectsBadNormalizedJSON(t *testing.T) {
	f := newFixture()
	owner := uuid.New()
	ctx := context.Background()

	m, _ := f.svc.Create(ctx, owner, "Sync", nil, entities.MeetingSourceUpload)

	_, err := f.svc.IngestSummary(ctx, owner, m.ID, SummaryInput{
		SummaryText: "text",
		Normalized:  []byte(`{broken`),
	})
	if err != entities.ErrInvalidRequest {
		t.Errorf("got %v, want ErrInvalidRequest", err)
	}
}

func TestDeleteRemovesMeetingAndArchive(t *testing.T) {
	f := newFixture()
	owner := uuid.New()
	ctx := context.Background()

	m, _ := f.svc.Create(ctx, owner, "Doomed", nil, entities.MeetingSourceUpload)
	if _, err := f.svc.AttachTranscript(ctx, owner, m.ID, "some text"); err != nil {
		t.Fatalf("AttachTranscript: %v", err)
	}

	if err := f.svc.Delete(ctx, uuid.New(), m.ID); err != entities.ErrForbidden {
		t.Errorf("stranger delete: got %v, want ErrForbidden", err)
	}
	if err := f.svc.Delete(ctx, owner, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.svc.Get(ctx, owner, m.ID); err != entities.ErrForbidden && err != entities.ErrMeetingNotFound {
		t.Errorf("got %v after delete", err)
	}
	if _, ok := f.store.objects[storage.TranscriptObjectName(m.ID.String())]; ok {
		t.Error("archived transcript survived delete")
	}
}

func TestListScopesToUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	f.svc.Create(ctx, alice, "Alice 1", nil, entities.MeetingSourceUpload)
	f.svc.Create(ctx, alice, "Alice 2", nil, entities.MeetingSourceUpload)
	f.svc.Create(ctx, bob, "Bob 1", nil, entities.MeetingSourceUpload)

	got, total, err := f.svc.List(ctx, alice, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Errorf("got %d meetings (total %d), want 2", len(got), total)
	}
}
