package upcoming

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Candidate is one detected upcoming-event mention.
type Candidate struct {
	Title       string `json:"title"`
	RawTitle    string `json:"raw_title,omitempty"`
	StartISO    string `json:"start_iso"`
	EndISO      string `json:"end_iso,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`

	// Start backs sorting and dedup; StartISO is its wire form.
	Start time.Time `json:"-"`
}

// Options control the extraction heuristics.
type Options struct {
	// BareHourPM treats an hour without an am/pm marker as PM when it is
	// at or below BareHourPMCutoff ("at 6" means 18:00). This silently
	// misreads genuine early-morning mentions, so it is a policy knob
	// rather than a hard-coded rule.
	BareHourPM       bool
	BareHourPMCutoff int

	// MaxPerMeeting caps the candidates extracted from a single meeting's
	// summary. Zero means no cap.
	MaxPerMeeting int
}

// DefaultOptions mirror the behavior of the original dashboard.
func DefaultOptions() Options {
	return Options{
		BareHourPM:       true,
		BareHourPMCutoff: 7,
		MaxPerMeeting:    12,
	}
}

// localISO renders a timestamp in the local wall-clock form used as the
// dedup and dismissal key. No timezone conversion is performed.
const localISO = "2006-01-02T15:04:05"

// anchorWindow is how far into the text the year anchor is searched for.
const anchorWindow = 600

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	reAnchorHeader = regexp.MustCompile(`(?i)\bDate:\s*[A-Za-z]{3,9}\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*)?(\d{4})\b`)
	reAnchorYear   = regexp.MustCompile(`\b(20\d{2})\b`)

	reISODate   = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})(?:[ T](\d{2}):(\d{2}))?\b`)
	reSlashDate = regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{1,2})(?:/(20\d{2}|\d{2}))?(?:\s+(?:at\s+)?(\d{1,2}(?::\d{2})?\s*(?:am|pm)?))?\b`)
	reMonthDate = regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(20\d{2}))?(?:\s+(?:at\s+)?(\d{1,2}(?::\d{2})?\s*(?:am|pm)?))?\b`)

	reTimeBits = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// passContext carries the per-document state each pass consults.
type passContext struct {
	now        time.Time
	anchorYear int
	hasAnchor  bool
	opts       Options
}

// pass is one independent scan over the text. Passes run in table order and
// their results are unioned before dedup.
type pass struct {
	name string
	run  func(text string, pc passContext) []Candidate
}

var passes = []pass{
	{name: "iso", run: extractISODates},
	{name: "slash", run: extractSlashDates},
	{name: "month", run: extractMonthDates},
}

// anchorYearOf resolves the document-level year anchor: a transcript header
// like "Date: November 9, 2025", or any bare 20xx token near the top.
func anchorYearOf(text string) (int, bool) {
	head := text
	if len(head) > anchorWindow {
		head = head[:anchorWindow]
	}
	if m := reAnchorHeader.FindStringSubmatch(head); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y, true
		}
	}
	if m := reAnchorYear.FindStringSubmatch(head); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return y, true
		}
	}
	return 0, false
}

// parseTimeBits parses an inline time expression: an hour, optional :MM and
// an optional am/pm marker. Without a marker, small hours are pushed to the
// afternoon per the configured policy. The second return is false when the
// string holds no parsable time.
func parseTimeBits(s string, opts Options) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	m := reTimeBits.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mm := 0
	if m[2] != "" {
		mm, _ = strconv.Atoi(m[2])
	}
	switch ap := strings.ToLower(m[3]); {
	case ap == "pm" && h < 12:
		h += 12
	case ap == "am" && h == 12:
		h = 0
	case ap == "" && opts.BareHourPM && h <= opts.BareHourPMCutoff:
		h += 12
	}
	return h, mm, true
}

// newCandidate builds a candidate for a literal matched span, discarding
// anything strictly in the past. Past mentions are dropped here, at
// detection time, not filtered later.
func newCandidate(literal string, start time.Time, pc passContext) (Candidate, bool) {
	if start.Before(pc.now) {
		return Candidate{}, false
	}
	return Candidate{
		StartISO:    start.Format(localISO),
		Description: "Auto-detected: " + literal,
		Source:      literal,
		Start:       start,
	}, true
}

// extractISODates matches 2025-11-12 or 2025-11-12 10:00. Years outside
// 2000-2099 are not matched. Missing time defaults to 10:00.
func extractISODates(text string, pc passContext) []Candidate {
	var out []Candidate
	for _, m := range reISODate.FindAllStringSubmatch(text, -1) {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		hh, mm := 10, 0
		if m[4] != "" {
			hh, _ = strconv.Atoi(m[4])
			mm, _ = strconv.Atoi(m[5])
		}
		start := time.Date(y, time.Month(mo), d, hh, mm, 0, 0, time.Local)
		if c, ok := newCandidate(m[0], start, pc); ok {
			out = append(out, c)
		}
	}
	return out
}

// extractSlashDates matches M/D, M/D/YY and M/D/YYYY with an optional
// inline time ("12/15", "3/5 at 6pm"). Two-digit years get 2000 added; a
// missing year uses the document anchor, else the current year.
func extractSlashDates(text string, pc passContext) []Candidate {
	var out []Candidate
	for _, m := range reSlashDate.FindAllStringSubmatch(text, -1) {
		mo, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		y := resolveYear(m[3], pc)
		hh, mm := 10, 0
		if h, mn, ok := parseTimeBits(m[4], pc.opts); ok {
			hh, mm = h, mn
		}
		start := time.Date(y, time.Month(mo), d, hh, mm, 0, 0, time.Local)
		if c, ok := newCandidate(m[0], start, pc); ok {
			out = append(out, c)
		}
	}
	return out
}

// extractMonthDates matches month-name forms like "Nov 12", "November 12th,
// 2025" and "Dec 1 at 3:30pm". Year resolution matches the slash pass.
func extractMonthDates(text string, pc passContext) []Candidate {
	var out []Candidate
	for _, m := range reMonthDate.FindAllStringSubmatch(text, -1) {
		mo, ok := months[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		d, _ := strconv.Atoi(m[2])
		y := resolveYear(m[3], pc)
		hh, mm := 10, 0
		if h, mn, ok := parseTimeBits(m[4], pc.opts); ok {
			hh, mm = h, mn
		}
		start := time.Date(y, mo, d, hh, mm, 0, 0, time.Local)
		if c, ok := newCandidate(m[0], start, pc); ok {
			out = append(out, c)
		}
	}
	return out
}

func resolveYear(captured string, pc passContext) int {
	if captured != "" {
		y, err := strconv.Atoi(captured)
		if err == nil {
			if y < 100 {
				y += 2000
			}
			return y
		}
	}
	if pc.hasAnchor {
		return pc.anchorYear
	}
	return pc.now.Year()
}

// dedupSort collapses candidates that share a start key (first one wins),
// sorts ascending by start and optionally truncates to limit.
func dedupSort(in []Candidate, limit int) []Candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		if _, dup := seen[c.StartISO]; dup {
			continue
		}
		seen[c.StartISO] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
