package showcase

import (
	"context"
	"strings"
	"time"
)

// Tunables shared by every surface.
const (
	// AllLanguages is the synthetic language tag that disables the language filter.
	AllLanguages = "All"

	// MaxResults is the maximum number of cards in a view.
	MaxResults = 6

	// DebounceDelay is the pause in search input before the view is refiltered.
	DebounceDelay = 200 * time.Millisecond
)

// Placeholder values used when a repository field is absent.
const (
	placeholderName     = "untitled"
	placeholderLanguage = "Unknown"
	placeholderURL      = "#"
)

// Repository is a public repository as supplied by the listing API.
// It is read-only to this package.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"` // empty when the API reports none
	Stars       int    `json:"stars"`
	UpdatedAt   string `json:"updated_at"` // ISO 8601 as sent by the API
	URL         string `json:"url,omitempty"`
}

// DisplayName returns the name or a placeholder when absent.
func (r Repository) DisplayName() string {
	if r.Name == "" {
		return placeholderName
	}
	return r.Name
}

// DisplayLanguage returns the language or "Unknown" when absent.
// Filtering never uses this value.
func (r Repository) DisplayLanguage() string {
	if r.Language == "" {
		return placeholderLanguage
	}
	return r.Language
}

// DisplayURL returns the link or a placeholder anchor when absent.
func (r Repository) DisplayURL() string {
	if r.URL == "" {
		return placeholderURL
	}
	return r.URL
}

// UpdatedTime parses UpdatedAt. ok is false when the value is missing or
// not an RFC 3339 timestamp.
func (r Repository) UpdatedTime() (t time.Time, ok bool) {
	t, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// haystack is the lowercase text searched by a free-text query.
func (r Repository) haystack() string {
	return strings.ToLower(r.Name + " " + r.Description)
}

// Fetcher retrieves the full repository list. Implementations issue exactly
// one listing request per call.
type Fetcher interface {
	FetchRepos(ctx context.Context) ([]Repository, error)
}

// FetcherFunc adapts a function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context) ([]Repository, error)

// FetchRepos calls f(ctx).
func (f FetcherFunc) FetchRepos(ctx context.Context) ([]Repository, error) { return f(ctx) }

// RenderTarget receives the output of the pipeline. Calls arrive from the
// goroutine that triggered them: Load, SetLanguage, or the debounce timer.
type RenderTarget interface {
	// RenderList replaces all displayed cards with items.
	RenderList(items []Repository)
	// ShowError displays msg in the error region.
	ShowError(msg string)
	// SetLoading shows or hides the loading indicator.
	SetLoading(loading bool)
}
