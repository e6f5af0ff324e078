package upcoming

import (
	"reflect"
	"testing"
	"time"
)

func testNow() time.Time {
	return time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
}

func TestExtractFromPayloadDecisionTitlePrecedence(t *testing.T) {
	e := NewEngine(DefaultOptions())
	p := SummaryPayload{
		Normalized: &NormalizedSummary{
			SummaryText: "Wrap-up notes. Next review on 2025-12-01.",
			Decisions:   []string{"Decision: We will hold a client review meeting next week."},
		},
	}

	got := e.ExtractFromPayload(p, testNow())
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	// The decision wins over the keyword table, which would have said
	// "Review Meeting" for this description.
	if got[0].Title != "hold a client review meeting next week" {
		t.Errorf("got title %q, want the decision-derived one", got[0].Title)
	}
}

func TestExtractFromPayloadKeywordFallback(t *testing.T) {
	e := NewEngine(DefaultOptions())
	p := SummaryPayload{
		Normalized: &NormalizedSummary{
			ScheduleSuggestions: []ScheduleSuggestion{
				{StartISO: "2025-12-02T10:00:00", Description: "quick kickoff chat before launch"},
			},
		},
	}

	got := e.ExtractFromPayload(p, testNow())
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Project Kickoff" {
		t.Errorf("got title %q, want Project Kickoff", got[0].Title)
	}
}

func TestPairDecisionsPositional(t *testing.T) {
	items := []Candidate{
		{StartISO: "2025-12-01T10:00:00"},
		{StartISO: "2025-12-02T10:00:00"},
		{StartISO: "2025-12-03T10:00:00"},
	}
	decisions := []string{
		"Schedule the vendor demo call.",
		"Book the sprint planning session.",
	}

	got := PairDecisions(items, decisions)
	if got[0].Title != "Schedule the vendor demo call" {
		t.Errorf("candidate 0: got %q", got[0].Title)
	}
	if got[1].Title != "Book the sprint planning session" {
		t.Errorf("candidate 1: got %q", got[1].Title)
	}
	// No decision at index 2: falls back to decision 0.
	if got[2].Title != "Schedule the vendor demo call" {
		t.Errorf("candidate 2: got %q, want fallback to decision 0", got[2].Title)
	}
}

func TestStructuredSuggestionBypass(t *testing.T) {
	e := NewEngine(DefaultOptions())
	p := SummaryPayload{
		Normalized: &NormalizedSummary{
			// Matchable date in the text that must NOT be extracted.
			SummaryText: "Final sync on 2025-12-20 at 14:00.",
			ScheduleSuggestions: []ScheduleSuggestion{
				{
					Title:       "Contract Signing",
					StartISO:    "2025-12-01T10:00:00",
					EndISO:      "2025-12-01T10:30:00",
					Description: "Sign the renewal contract",
					RawQuote:    "let's sign on Dec 1",
				},
			},
		},
	}

	got := e.ExtractFromPayload(p, testNow())
	if len(got) != 1 {
		t.Fatalf("regex passes ran despite suggestions: got %d candidates", len(got))
	}
	if got[0].StartISO != "2025-12-01T10:00:00" || got[0].Title != "Contract Signing" {
		t.Errorf("unexpected candidate %+v", got[0])
	}
	if got[0].EndISO != "2025-12-01T10:30:00" {
		t.Errorf("end not carried through: %q", got[0].EndISO)
	}
}

func TestExtractUpcomingDedupIdempotence(t *testing.T) {
	e := NewEngine(DefaultOptions())
	p := SummaryPayload{
		Normalized: &NormalizedSummary{
			SummaryText: "Review on 2025-12-01, demo on 2025-12-05 at 3pm.",
		},
	}

	once := e.ExtractUpcoming([]SummaryPayload{p}, nil, testNow())
	twice := e.ExtractUpcoming([]SummaryPayload{p, p}, nil, testNow())

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("duplicate payloads changed the output:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	seen := map[string]bool{}
	for _, c := range once {
		if seen[c.StartISO] {
			t.Errorf("duplicate start key %s", c.StartISO)
		}
		seen[c.StartISO] = true
	}
}

func TestExtractUpcomingAggregatesAndSorts(t *testing.T) {
	e := NewEngine(DefaultOptions())
	a := SummaryPayload{Normalized: &NormalizedSummary{SummaryText: "Planning on 2025-12-10."}}
	b := SummaryPayload{Normalized: &NormalizedSummary{SummaryText: "Retro on 2025-12-03, planning again on 2025-12-10."}}

	got := e.ExtractUpcoming([]SummaryPayload{a, b}, nil, testNow())
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2 after cross-meeting dedup", len(got))
	}
	if got[0].StartISO != "2025-12-03T10:00:00" || got[1].StartISO != "2025-12-10T10:00:00" {
		t.Errorf("not chronologically ordered: %+v", got)
	}
}

func TestExtractUpcomingDismissalRemoval(t *testing.T) {
	e := NewEngine(DefaultOptions())
	p := SummaryPayload{
		Normalized: &NormalizedSummary{
			SummaryText: "Review on 2025-12-01, demo on 2025-12-05.",
		},
	}
	dismissed := map[string]struct{}{
		"2025-12-01T10:00:00": {},
	}

	got := e.ExtractUpcoming([]SummaryPayload{p}, dismissed, testNow())
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1 after dismissal", len(got))
	}
	if got[0].StartISO != "2025-12-05T10:00:00" {
		t.Errorf("wrong survivor %s", got[0].StartISO)
	}
}

func TestExtractUpcomingEmptyAndMalformedPayloads(t *testing.T) {
	e := NewEngine(DefaultOptions())
	payloads := []SummaryPayload{
		{},
		{Normalized: &NormalizedSummary{}},
		{Summary: "no dates in here at all"},
	}

	if got := e.ExtractUpcoming(payloads, nil, testNow()); len(got) != 0 {
		t.Errorf("expected no candidates, got %+v", got)
	}
}
