package upcoming

import "testing"

func TestTitleFromDecisions(t *testing.T) {
	cases := []struct {
		name      string
		decisions []string
		want      string
	}{
		{
			name:      "strips label and filler",
			decisions: []string{"Decision: We will hold a client review meeting next week."},
			want:      "hold a client review meeting next week",
		},
		{
			name: "prefers meeting-like decision",
			decisions: []string{
				"Increase the ad spend for Q1.",
				"Let's schedule a demo call with the vendor on Friday.",
			},
			want: "schedule a demo call with the vendor on Friday",
		},
		{
			// Bullets are stripped after fillers, so a filler behind a
			// bullet survives.
			name:      "strips bullet markers",
			decisions: []string{"- need to review the onboarding flow"},
			want:      "need to review the onboarding flow",
		},
		{
			name:      "truncates to ten words",
			decisions: []string{"We should align on the final launch checklist items across every regional team before Friday"},
			want:      "align on the final launch checklist items across every regional",
		},
		{
			name:      "empty input",
			decisions: nil,
			want:      "",
		},
		{
			name:      "all blank",
			decisions: []string{"", "   "},
			want:      "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TitleFromDecisions(tc.decisions); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInferTitleKeywordTable(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"quick kickoff chat before launch", "Project Kickoff"},
		{"walkthrough with the customer team", "Client Meeting"},
		{"sprint retro follow-ups", "Sprint Retrospective"},
		{"align on budget numbers", "Budget Review"},
		{"grab lunch with the team", "Team Lunch"},
	}

	for _, tc := range cases {
		got := InferTitle(Candidate{Description: tc.desc})
		if got != tc.want {
			t.Errorf("InferTitle(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestInferTitleRawTitle(t *testing.T) {
	// A specific raw title is kept verbatim.
	got := InferTitle(Candidate{RawTitle: "Q1 Board Sync", Description: "kickoff prep"})
	if got != "Q1 Board Sync" {
		t.Errorf("got %q, want raw title kept", got)
	}

	// Generic placeholders are ignored and the table takes over.
	got = InferTitle(Candidate{RawTitle: "Follow-up meeting", Description: "kickoff prep"})
	if got != "Project Kickoff" {
		t.Errorf("got %q, want Project Kickoff", got)
	}
}

func TestInferTitlePhrasePatterns(t *testing.T) {
	got := InferTitle(Candidate{Description: "discuss the q3 launch checklist"})
	if got != "Discussion: the q3 launch checklist" {
		t.Errorf("discuss pattern: got %q", got)
	}

	got = InferTitle(Candidate{Description: "sync meeting tomorrow afternoon"})
	if got != "Sync Meeting" {
		t.Errorf("topic-meeting pattern: got %q", got)
	}
}

func TestInferTitleFallbacks(t *testing.T) {
	// Short title-cased phrase built from the description.
	got := InferTitle(Candidate{Description: "we need to finalize the vendor contract terms today"})
	if got != "Need To Finalize The Vendor Contract" {
		t.Errorf("sentence fallback: got %q", got)
	}

	// Nothing usable at all.
	got = InferTitle(Candidate{})
	if got != "Upcoming Meeting" {
		t.Errorf("absolute fallback: got %q", got)
	}
}
