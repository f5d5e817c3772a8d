package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	// DefaultSubjectURL is the Open Library subject endpoint; %s is the subject.
	DefaultSubjectURL = "https://openlibrary.org/subjects/%s.json?limit=25"

	// DefaultFetchTimeout bounds a single subject request.
	DefaultFetchTimeout = 30 * time.Second
	// MaxSubjectSize is the largest subject response we read (5MB).
	MaxSubjectSize = int64(5 * 1024 * 1024)
)

// subjectResponse is the part of the Open Library subject payload we use.
type subjectResponse struct {
	Works []struct {
		Title            string `json:"title"`
		FirstPublishYear int    `json:"first_publish_year"`
		Authors          []struct {
			Name string `json:"name"`
		} `json:"authors"`
	} `json:"works"`
}

// Fetcher builds a catalog from the Open Library subject API.
type Fetcher struct {
	Client *http.Client
	// SubjectURL is a format string with a single %s for the subject.
	SubjectURL string
	// Progress, when set, is called before each subject is fetched.
	Progress func(subject string)
}

// NewFetcher returns a Fetcher pointed at Open Library.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:     &http.Client{Timeout: DefaultFetchTimeout},
		SubjectURL: DefaultSubjectURL,
	}
}

// FetchSubject returns the books listed under one subject. Each book's
// subject is set to the requested subject, not to what the API reports.
func (f *Fetcher) FetchSubject(ctx context.Context, subject string) ([]Book, error) {
	endpoint := fmt.Sprintf(f.SubjectURL, url.PathEscape(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "bookrec-fetch/1.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject %s: %w", subject, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch subject %s: status %d", subject, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxSubjectSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read subject %s: %w", subject, err)
	}

	var payload subjectResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode subject %s: %w", subject, err)
	}

	books := make([]Book, 0, len(payload.Works))
	for _, w := range payload.Works {
		b := Book{
			Title:            w.Title,
			FirstPublishYear: w.FirstPublishYear,
			Subject:          subject,
		}
		if len(w.Authors) > 0 {
			name := w.Authors[0].Name
			b.Author = &name
		}
		books = append(books, b)
	}
	return books, nil
}

// FetchAll fetches every subject in order and concatenates the results.
func (f *Fetcher) FetchAll(ctx context.Context, subjects []string) ([]Book, error) {
	var all []Book
	for _, s := range subjects {
		if f.Progress != nil {
			f.Progress(s)
		}
		books, err := f.FetchSubject(ctx, s)
		if err != nil {
			return nil, err
		}
		all = append(all, books...)
	}
	return all, nil
}

// Save writes books to path in the books.json layout, indented by two spaces.
func Save(path string, books []Book) error {
	if books == nil {
		books = []Book{}
	}
	data, err := json.MarshalIndent(file{Books: books}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
