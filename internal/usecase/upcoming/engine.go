package upcoming

import (
	"strings"
	"time"
)

// Engine turns meeting-summary payloads into upcoming-event candidates. It
// is a pure, synchronous transformer: given the same payloads, dismissed
// keys and reference time it always produces the same output, and it never
// mutates persisted state itself.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// ExtractFromText runs the regex passes over a raw text blob and returns
// deduplicated, chronologically ordered candidates at or after now, capped
// per the single-meeting limit. Titles are not yet populated.
func (e *Engine) ExtractFromText(text string, now time.Time) []Candidate {
	if text == "" {
		return nil
	}
	pc := passContext{now: now, opts: e.opts}
	pc.anchorYear, pc.hasAnchor = anchorYearOf(text)

	var out []Candidate
	for _, p := range passes {
		out = append(out, p.run(text, pc)...)
	}
	return dedupSort(out, e.opts.MaxPerMeeting)
}

// ExtractFromPayload produces titled candidates for one meeting. When the
// summarizer supplied schedule suggestions those are used directly and the
// regex passes do not run; otherwise the assembled source text is scanned.
func (e *Engine) ExtractFromPayload(p SummaryPayload, now time.Time) []Candidate {
	var items []Candidate
	if p.HasScheduleSuggestions() {
		items = fromSuggestions(p.Normalized.ScheduleSuggestions)
	} else {
		items = e.ExtractFromText(p.SourceText(), now)
	}
	return PairDecisions(items, p.DecisionList())
}

// ExtractUpcoming aggregates candidates across all of a user's meetings:
// per-meeting extraction, union, dedup and chronological sort (no cap at
// this stage), then removal of anything the user already dismissed.
func (e *Engine) ExtractUpcoming(payloads []SummaryPayload, dismissed map[string]struct{}, now time.Time) []Candidate {
	var all []Candidate
	for _, p := range payloads {
		all = append(all, e.ExtractFromPayload(p, now)...)
	}
	all = dedupSort(all, 0)
	return FilterDismissed(all, dismissed)
}

// PairDecisions assigns a title to each candidate. The pairing is
// positional and best-effort: decision i describes candidate i, falling
// back to decision 0, falling back to none. Summary decisions and regex
// hits are produced independently, so this correspondence is a heuristic,
// not a guarantee. Decision-derived titles always win over the keyword
// fallback.
func PairDecisions(items []Candidate, decisions []string) []Candidate {
	out := make([]Candidate, len(items))
	for i, it := range items {
		var paired []string
		switch {
		case i < len(decisions) && strings.TrimSpace(decisions[i]) != "":
			paired = []string{decisions[i]}
		case len(decisions) > 0:
			paired = []string{decisions[0]}
		}

		title := TitleFromDecisions(paired)
		if title == "" {
			title = InferTitle(it)
		}
		it.Title = title
		out[i] = it
	}
	return out
}

// FilterDismissed drops candidates whose start key the user has already
// consumed. Applied last, after title inference; membership is the only
// criterion, with no time-based expiry.
func FilterDismissed(items []Candidate, dismissed map[string]struct{}) []Candidate {
	if len(dismissed) == 0 {
		return items
	}
	out := make([]Candidate, 0, len(items))
	for _, it := range items {
		if _, gone := dismissed[it.StartISO]; gone {
			continue
		}
		out = append(out, it)
	}
	return out
}

// fromSuggestions maps summarizer-resolved suggestions onto candidates.
// They are trusted as-is: no past filter, no dedup, no cap.
func fromSuggestions(suggestions []ScheduleSuggestion) []Candidate {
	out := make([]Candidate, 0, len(suggestions))
	for _, s := range suggestions {
		desc := s.Description
		if desc == "" {
			desc = s.RawQuote
		}
		c := Candidate{
			RawTitle:    s.Title,
			StartISO:    s.StartISO,
			EndISO:      s.EndISO,
			Description: desc,
			Source:      s.RawQuote,
		}
		c.Start = parseStartISO(s.StartISO)
		out = append(out, c)
	}
	return out
}

// parseStartISO parses the summarizer's start timestamp for sorting. Local
// wall-clock semantics are kept; an unparsable value sorts first rather
// than erroring, per the fail-soft policy.
func parseStartISO(s string) time.Time {
	for _, layout := range []string{localISO, "2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
