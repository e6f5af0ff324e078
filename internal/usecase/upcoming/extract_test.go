package upcoming

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestParseTimeBits(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"10:00", 10, 0, true},
		{"3:30pm", 15, 30, true},
		{"3:30 PM", 15, 30, true},
		{"12am", 0, 0, true},
		{"12pm", 12, 0, true},
		{"7pm", 19, 0, true},
		// Bare small hours are pushed to the afternoon.
		{"6", 18, 0, true},
		{"7", 19, 0, true},
		// 9 is above the cutoff, so it stays in the morning.
		{"9", 9, 0, true},
		{"", 0, 0, false},
		{"noon-ish", 0, 0, false},
	}

	for _, tc := range cases {
		h, m, ok := parseTimeBits(tc.in, opts)
		if ok != tc.ok || h != tc.hour || m != tc.minute {
			t.Errorf("parseTimeBits(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tc.in, h, m, ok, tc.hour, tc.minute, tc.ok)
		}
	}
}

func TestParseTimeBitsPolicyDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.BareHourPM = false

	h, _, ok := parseTimeBits("6", opts)
	if !ok || h != 6 {
		t.Fatalf("with BareHourPM off, got hour %d, want 6", h)
	}
}

func TestAnchorYearOf(t *testing.T) {
	cases := []struct {
		text string
		year int
		ok   bool
	}{
		{"Date: November 9, 2025\nWeekly sync notes.", 2025, true},
		{"Date: Nov 9th 2024\nnotes", 2024, true},
		{"Meeting notes from 2026 planning cycle.", 2026, true},
		{"No year mentioned anywhere here.", 0, false},
	}

	for _, tc := range cases {
		y, ok := anchorYearOf(tc.text)
		if ok != tc.ok || y != tc.year {
			t.Errorf("anchorYearOf(%q) = (%d, %v), want (%d, %v)", tc.text, y, ok, tc.year, tc.ok)
		}
	}
}

func TestAnchorYearOnlySearchesHead(t *testing.T) {
	text := strings.Repeat("x ", 400) + " budget review in 2031"
	if _, ok := anchorYearOf(text); ok {
		t.Fatal("anchor found beyond the head window")
	}
}

func TestISOPassDefaultsTime(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	got := e.ExtractFromText("Ship review on 2025-11-12, demo on 2025-11-13 14:30.", now)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].StartISO != "2025-11-12T10:00:00" {
		t.Errorf("default time: got %s, want 2025-11-12T10:00:00", got[0].StartISO)
	}
	if got[1].StartISO != "2025-11-13T14:30:00" {
		t.Errorf("explicit time: got %s, want 2025-11-13T14:30:00", got[1].StartISO)
	}
	if got[0].Description != "Auto-detected: 2025-11-12" {
		t.Errorf("unexpected description %q", got[0].Description)
	}
}

func TestPastMentionsDiscarded(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	got := e.ExtractFromText("Kickoff was 2025-01-02, next review 2025-12-01.", now)
	for _, c := range got {
		if c.Start.Before(now) {
			t.Errorf("candidate %s is in the past", c.StartISO)
		}
	}
	if len(got) != 1 || got[0].Source != "2025-12-01" {
		t.Fatalf("expected only the future mention, got %+v", got)
	}
}

func TestSlashPassTwoDigitYear(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	got := e.ExtractFromText("Carry-over items due 3/5/26.", now)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].StartISO != "2026-03-05T10:00:00" {
		t.Errorf("got %s, want 2026-03-05T10:00:00", got[0].StartISO)
	}
}

func TestAnchorYearPropagation(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	text := "Date: November 9, 2025\nWeekly sync notes.\nFollow up on 12/15"
	got := e.ExtractFromText(text, now)

	var found bool
	for _, c := range got {
		if c.Source == "12/15" {
			found = true
			if c.StartISO != "2025-12-15T10:00:00" {
				t.Errorf("12/15 resolved to %s, want anchor year 2025", c.StartISO)
			}
		}
	}
	if !found {
		t.Fatalf("no candidate for 12/15 in %+v", got)
	}
}

func TestBareHourHeuristic(t *testing.T) {
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	got := e.ExtractFromText("Sync on 3/5 at 6, prep on 3/6 at 9.", now)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(got), got)
	}
	if got[0].StartISO != "2025-03-05T18:00:00" {
		t.Errorf("bare 6 resolved to %s, want 18:00", got[0].StartISO)
	}
	if got[1].StartISO != "2025-03-06T09:00:00" {
		t.Errorf("bare 9 resolved to %s, want 09:00", got[1].StartISO)
	}
}

func TestMonthNamePass(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	cases := []struct {
		text string
		want string
	}{
		{"Demo scheduled for December 3rd, 2025 at 3:30pm.", "2025-12-03T15:30:00"},
		{"Retro on Nov 28", "2025-11-28T10:00:00"},
		{"Planning session Jan 5 2026", "2026-01-05T10:00:00"},
	}

	for _, tc := range cases {
		got := e.ExtractFromText(tc.text, now)
		if len(got) != 1 {
			t.Errorf("%q: got %d candidates, want 1", tc.text, len(got))
			continue
		}
		if got[0].StartISO != tc.want {
			t.Errorf("%q: got %s, want %s", tc.text, got[0].StartISO, tc.want)
		}
	}
}

func TestChronologicalOrderAndCap(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	// 15 distinct future dates, listed out of order.
	var b strings.Builder
	for i := 15; i >= 1; i-- {
		fmt.Fprintf(&b, "task due 2025-12-%02d\n", i)
	}

	got := e.ExtractFromText(b.String(), now)
	if len(got) != 12 {
		t.Fatalf("got %d candidates, want cap of 12", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start.Before(got[i-1].Start) {
			t.Errorf("candidates out of order at %d: %s after %s", i, got[i].StartISO, got[i-1].StartISO)
		}
	}
}

func TestDedupAcrossPasses(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	e := NewEngine(DefaultOptions())

	// The same instant spelled two ways collapses to one candidate.
	got := e.ExtractFromText("Review on 2025-12-15 and again on December 15, 2025.", now)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(got), got)
	}
	// First pass encountered wins.
	if got[0].Source != "2025-12-15" {
		t.Errorf("kept %q, want the ISO form", got[0].Source)
	}
}
