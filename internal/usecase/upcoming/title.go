package upcoming

import (
	"regexp"
	"strings"
	"unicode"
)

// meetingKeywords mark a decision as clearly describing a meeting or call;
// such decisions are preferred when deriving a title.
var meetingKeywords = []string{
	"meeting", "call", "check-in", "check in", "review", "demo",
	"planning", "standup", "stand-up", "retro", "retrospective",
	"workshop", "session",
}

// genericTitles are raw titles too vague to keep verbatim.
var genericTitles = map[string]struct{}{
	"follow-up meeting": {},
	"follow up meeting": {},
	"follow-up":         {},
	"follow up":         {},
	"meeting":           {},
}

// titlePatterns map keyword sets to canonical titles. The first matching
// row wins, in table order.
var titlePatterns = []struct {
	words []string
	title string
}{
	{[]string{"kickoff", "kick-off", "introduction"}, "Project Kickoff"},
	{[]string{"client", "customer", "stakeholder"}, "Client Meeting"},
	{[]string{"demo", "demonstration", "showcase"}, "Product Demo"},
	{[]string{"retrospective", "retro"}, "Sprint Retrospective"},
	{[]string{"planning", "sprint"}, "Sprint Planning"},
	{[]string{"review", "feedback"}, "Review Meeting"},
	{[]string{"design", "architecture"}, "Design Discussion"},
	{[]string{"budget", "finance"}, "Budget Review"},
	{[]string{"training", "workshop", "onboarding"}, "Training Workshop"},
	{[]string{"q&a", "questions"}, "Q&A Session"},
	{[]string{"1:1", "one-on-one", "one on one"}, "1:1 Meeting"},
	{[]string{"support", "issue", "ticket", "bug"}, "Support Discussion"},
	{[]string{"standup", "stand-up", "daily standup"}, "Daily Standup"},
	{[]string{"interview", "candidate"}, "Interview Meeting"},
	{[]string{"strategy", "roadmap"}, "Strategy Meeting"},
	{[]string{"sales", "deal"}, "Sales Call"},
	{[]string{"marketing", "campaign"}, "Marketing Discussion"},
	{[]string{"lunch"}, "Team Lunch"},
}

var (
	reDecisionLabel = regexp.MustCompile(`(?i)^decision:\s*`)
	reDecisionFill  = regexp.MustCompile(`(?i)^(we will|we'll|let's|lets|we should|need to)\s+`)
	reBullet        = regexp.MustCompile(`^[-*]\s*`)
	reSentenceEnd   = regexp.MustCompile(`[.!?\n]`)
	reTitleFill     = regexp.MustCompile(`(?i)^(we|let's|lets|please|pls|kindly)\s+`)
	reDiscussTopic  = regexp.MustCompile(`discuss(?:ing)?\s+([a-z0-9 ]+)`)
	reMeetingTopic  = regexp.MustCompile(`([a-z0-9 ]+?) meeting`)
	reNonAlnumSpace = regexp.MustCompile(`[^a-z0-9 ]`)
)

// TitleFromDecisions derives an event title from meeting decisions. A
// decision that clearly reads like a meeting or call wins over one that
// does not; either way boilerplate ("Decision:", "we will", bullets) is
// stripped and the result is the first sentence, truncated to ten words.
// Returns "" when no decision yields a usable title.
func TitleFromDecisions(decisions []string) string {
	cleaned := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if t := strings.TrimSpace(d); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}

	for _, d := range cleaned {
		lower := strings.ToLower(d)
		for _, w := range meetingKeywords {
			if strings.Contains(lower, w) {
				if t := shortDecision(d); t != "" {
					return t
				}
				break
			}
		}
	}

	return shortDecision(cleaned[0])
}

func shortDecision(d string) string {
	t := reDecisionLabel.ReplaceAllString(d, "")
	t = reDecisionFill.ReplaceAllString(t, "")
	t = reBullet.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	sentence := strings.TrimSpace(reSentenceEnd.Split(t, 2)[0])
	words := strings.Fields(sentence)
	if len(words) > 10 {
		words = words[:10]
	}
	if short := strings.Join(words, " "); short != "" {
		return short
	}
	if sentence != "" {
		return sentence
	}
	return t
}

// InferTitle is the heuristic fallback used when no decision produced a
// title: a non-generic raw title is kept verbatim, then the keyword table
// is consulted, then "discuss <topic>" and "<topic> meeting" phrases, then
// a short title-cased phrase from the description itself.
func InferTitle(c Candidate) string {
	raw := strings.TrimSpace(c.RawTitle)
	if raw == "" {
		raw = strings.TrimSpace(c.Title)
	}
	if raw != "" {
		if _, generic := genericTitles[strings.ToLower(raw)]; !generic {
			return raw
		}
	}

	desc := strings.TrimSpace(c.Description)
	src := strings.TrimSpace(c.Source)
	text := strings.ToLower(desc + " " + src)

	for _, p := range titlePatterns {
		for _, w := range p.words {
			if strings.Contains(text, w) {
				return p.title
			}
		}
	}

	if m := reDiscussTopic.FindStringSubmatch(text); m != nil {
		topic := strings.TrimSpace(reNonAlnumSpace.ReplaceAllString(m[1], ""))
		if topic != "" {
			return "Discussion: " + topic
		}
	}

	if m := reMeetingTopic.FindStringSubmatch(text); m != nil {
		topic := strings.TrimSpace(m[1])
		if len(topic) > 2 {
			return upperFirst(topic) + " Meeting"
		}
	}

	base := desc
	if base == "" {
		base = src
	}
	if base != "" {
		sentence := reSentenceEnd.Split(base, 2)[0]
		sentence = reTitleFill.ReplaceAllString(sentence, "")
		words := strings.Fields(sentence)
		if len(words) > 6 {
			words = words[:6]
		}
		if len(words) > 0 {
			for i, w := range words {
				words[i] = upperFirst(w)
			}
			return strings.Join(words, " ")
		}
	}

	return "Upcoming Meeting"
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
