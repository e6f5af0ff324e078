package googleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const driveBase = "https://www.googleapis.com/drive/v3/files"

// transcriptQuery filters Drive to transcript-like files: plain text, Google
// Docs and Word documents, or anything with a transcript-ish filename.
const transcriptQuery = "trashed = false and (" +
	"mimeType = 'text/plain' or " +
	"mimeType = 'application/vnd.google-apps.document' or " +
	"mimeType = 'application/vnd.openxmlformats-officedocument.wordprocessingml.document' or " +
	"name contains '.vtt' or " +
	"name contains '.srt' or " +
	"name contains '.txt'" +
	") and name contains 'transcript'"

// DriveClient talks to the Google Drive REST API on behalf of one user.
type DriveClient struct {
	http *http.Client
}

// NewDriveClient creates a drive client from an authenticated HTTP client.
func NewDriveClient(httpClient *http.Client) *DriveClient {
	return &DriveClient{http: httpClient}
}

// DriveFile is the file metadata subset returned by the backfill listing.
type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	ModifiedTime string `json:"modifiedTime"`
	WebViewLink  string `json:"webViewLink"`
	Size         string `json:"size,omitempty"`
}

type fileListResponse struct {
	Files []DriveFile `json:"files"`
}

// ListTranscriptFiles returns the user's transcript-like Drive files, newest
// first, capped at pageSize.
func (d *DriveClient) ListTranscriptFiles(ctx context.Context, pageSize int) ([]DriveFile, error) {
	if pageSize <= 0 {
		pageSize = 50
	}

	q := url.Values{}
	q.Set("q", transcriptQuery)
	q.Set("pageSize", fmt.Sprintf("%d", pageSize))
	q.Set("orderBy", "modifiedTime desc")
	q.Set("fields", "files(id,name,mimeType,modifiedTime,webViewLink,size)")

	endpoint := fmt.Sprintf("%s?%s", driveBase, q.Encode())

	var out fileListResponse
	if err := d.getJSON(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

// DownloadText fetches a file's textual content. Google Docs are exported as
// plain text; everything else is downloaded as-is.
func (d *DriveClient) DownloadText(ctx context.Context, fileID, mimeType string) (string, error) {
	var endpoint string
	if strings.HasPrefix(mimeType, "application/vnd.google-apps") {
		endpoint = fmt.Sprintf("%s/%s/export?mimeType=%s", driveBase, url.PathEscape(fileID), url.QueryEscape("text/plain"))
	} else {
		endpoint = fmt.Sprintf("%s/%s?alt=media", driveBase, url.PathEscape(fileID))
	}

	var content string
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := d.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("drive api transient error: status=%d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("drive api error: status=%d, body=%s", resp.StatusCode, string(data)))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		content = string(data)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 45 * time.Second

	if err := backoff.Retry(fetch, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	if content == "" {
		return "", fmt.Errorf("drive file %s is empty", fileID)
	}
	return content, nil
}

// getJSON performs a GET with retry on transient failures and decodes the
// JSON response into out.
func (d *DriveClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := d.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("drive api transient error: status=%d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("drive api error: status=%d, body=%s", resp.StatusCode, string(data)))
		}

		return json.NewDecoder(resp.Body).Decode(out)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 20 * time.Second

	return backoff.Retry(fetch, backoff.WithContext(bo, ctx))
}
