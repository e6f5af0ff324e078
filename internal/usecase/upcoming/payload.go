package upcoming

import "strings"

// SummaryPayload is the loosely-typed summary document produced by the
// upstream summarizer for one meeting. Any field may be absent; when both a
// normalized and a raw version of a field exist, the normalized one wins.
type SummaryPayload struct {
	Normalized *NormalizedSummary `json:"normalized,omitempty"`

	// Raw fallbacks for older summary documents that predate the
	// normalized shape.
	Decisions       []string `json:"decisions,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	SummaryMarkdown string   `json:"summary_markdown,omitempty"`
	RawTranscript   string   `json:"raw_transcript,omitempty"`
	FullText        string   `json:"full_text,omitempty"`
}

// NormalizedSummary is the structured section of a summary document.
type NormalizedSummary struct {
	SummaryText         string               `json:"summary_text,omitempty"`
	Decisions           []string             `json:"decisions,omitempty"`
	ActionItems         []string             `json:"action_items,omitempty"`
	ScheduleSuggestions []ScheduleSuggestion `json:"schedule_suggestions,omitempty"`
}

// ScheduleSuggestion is a pre-resolved upcoming event emitted by the
// summarizer itself. When present, the regex passes are skipped for that
// meeting and these are used directly.
type ScheduleSuggestion struct {
	Title       string `json:"title,omitempty"`
	StartISO    string `json:"start_iso"`
	EndISO      string `json:"end_iso,omitempty"`
	Description string `json:"description,omitempty"`
	RawQuote    string `json:"raw_quote,omitempty"`
}

// DecisionList returns the decision strings for title pairing, preferring
// the normalized section over the raw fallback.
func (p SummaryPayload) DecisionList() []string {
	if p.Normalized != nil && len(p.Normalized.Decisions) > 0 {
		return p.Normalized.Decisions
	}
	return p.Decisions
}

// SourceText assembles the text blob the extraction passes scan. Every
// available free-text field is concatenated with newline separators in a
// fixed order: normalized summary text, decisions, action items, then the
// raw fallbacks. Empty fields are skipped.
func (p SummaryPayload) SourceText() string {
	var parts []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}

	if p.Normalized != nil {
		add(p.Normalized.SummaryText)
		for _, d := range p.Normalized.Decisions {
			add(d)
		}
		for _, a := range p.Normalized.ActionItems {
			add(a)
		}
	} else {
		for _, d := range p.Decisions {
			add(d)
		}
	}

	add(p.Summary)
	add(p.SummaryMarkdown)
	add(p.RawTranscript)
	add(p.FullText)

	return strings.Join(parts, "\n")
}

// HasScheduleSuggestions reports whether the summarizer already resolved
// upcoming events for this meeting.
func (p SummaryPayload) HasScheduleSuggestions() bool {
	return p.Normalized != nil && len(p.Normalized.ScheduleSuggestions) > 0
}
