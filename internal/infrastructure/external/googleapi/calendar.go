package googleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const calendarBase = "https://www.googleapis.com/calendar/v3"

// CalendarClient talks to the Google Calendar REST API on behalf of one
// user. The HTTP client it wraps already injects and refreshes the token.
type CalendarClient struct {
	http *http.Client
}

// NewCalendarClient creates a calendar client from an authenticated HTTP client.
func NewCalendarClient(httpClient *http.Client) *CalendarClient {
	return &CalendarClient{http: httpClient}
}

// CalendarEvent mirrors the subset of the Calendar API event resource the
// dashboard needs.
type CalendarEvent struct {
	ID          string        `json:"id,omitempty"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Start       CalendarTime  `json:"start"`
	End         CalendarTime  `json:"end"`
	HTMLLink    string        `json:"htmlLink,omitempty"`
	Attendees   []EventPerson `json:"attendees,omitempty"`
}

// CalendarTime is the API's dateTime wrapper.
type CalendarTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EventPerson is an attendee entry.
type EventPerson struct {
	Email string `json:"email"`
}

type eventListResponse struct {
	Items         []CalendarEvent `json:"items"`
	NextPageToken string          `json:"nextPageToken"`
}

// ListEvents returns events from the user's primary calendar between the two
// instants, ordered by start time.
func (c *CalendarClient) ListEvents(ctx context.Context, from, to time.Time, maxResults int) ([]CalendarEvent, error) {
	if maxResults <= 0 {
		maxResults = 50
	}

	q := url.Values{}
	q.Set("timeMin", from.Format(time.RFC3339))
	q.Set("timeMax", to.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))

	endpoint := fmt.Sprintf("%s/calendars/primary/events?%s", calendarBase, q.Encode())

	var out eventListResponse
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateEvent inserts an event into the user's primary calendar and returns
// the created resource.
func (c *CalendarClient) CreateEvent(ctx context.Context, ev CalendarEvent) (*CalendarEvent, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/primary/events", calendarBase)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar insert failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("calendar insert failed: status=%d, body=%s", resp.StatusCode, string(data))
	}

	var created CalendarEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode created event: %w", err)
	}
	return &created, nil
}

// getJSON performs a GET with retry on transient failures and decodes the
// JSON response into out.
func (c *CalendarClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("calendar api transient error: status=%d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("calendar api error: status=%d, body=%s", resp.StatusCode, string(data)))
		}

		return json.NewDecoder(resp.Body).Decode(out)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 20 * time.Second

	return backoff.Retry(fetch, backoff.WithContext(bo, ctx))
}
