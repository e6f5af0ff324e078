package calendar

import (
	"testing"
	"time"

	"github.com/Aroool/Ai-meeting-summariser/internal/infrastructure/external/googleapi"
)

func TestResolveEndRollsToNextDay(t *testing.T) {
	start := time.Date(2099, 4, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want time.Time
	}{
		{"zero end", time.Time{}, start.AddDate(0, 0, 1)},
		{"end equals start", start, start.AddDate(0, 0, 1)},
		{"end before start", start.Add(-time.Hour), start.AddDate(0, 0, 1)},
		{"valid end kept", start.Add(30 * time.Minute), start.Add(30 * time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnd(start, tt.end); !got.Equal(tt.want) {
				t.Errorf("resolveEnd = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposerTitleDefaultsWhenBlank(t *testing.T) {
	if got := composerTitle("   "); got != "Follow-up meeting" {
		t.Errorf("got %q", got)
	}
	if got := composerTitle("Q3 budget review"); got != "Q3 budget review" {
		t.Errorf("got %q, want title kept verbatim", got)
	}
}

func TestPickTimePrefersDateTime(t *testing.T) {
	withBoth := googleapi.CalendarTime{DateTime: "2099-04-10T14:00:00Z", Date: "2099-04-10"}
	if got := pickTime(withBoth); got != "2099-04-10T14:00:00Z" {
		t.Errorf("got %q", got)
	}

	allDay := googleapi.CalendarTime{Date: "2099-04-10"}
	if got := pickTime(allDay); got != "2099-04-10" {
		t.Errorf("got %q", got)
	}
}
