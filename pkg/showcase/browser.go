package showcase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	rcerrors "github.com/matzehuels/repocards/pkg/errors"
	"github.com/matzehuels/repocards/pkg/observability"
)

// State is the outcome of the most recent Load.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateEmpty
	StateRateLimited
	StateFailed
)

var stateNames = [...]string{"idle", "loading", "ready", "empty", "rate-limited", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// failurePrefix precedes transport error details in the error region.
const failurePrefix = "Failed to load repositories. "

// Browser is the session object of the card pipeline. It owns the catalog,
// the active language and the search query, and pushes every new view to
// its RenderTarget. All methods are safe for concurrent use; render calls
// are serialized.
type Browser struct {
	fetcher  Fetcher
	target   RenderTarget
	logger   *log.Logger
	limit    int
	debounce *Debouncer

	// renderMu serializes filter+render so views reach the target in order.
	renderMu sync.Mutex

	mu       sync.Mutex
	catalog  *Catalog
	state    State
	language string
	query    string
}

// Option configures a Browser.
type Option func(*Browser)

// WithLimit sets the maximum number of rendered cards.
func WithLimit(n int) Option { return func(b *Browser) { b.limit = n } }

// WithDebounce sets the search debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(b *Browser) { b.debounce = NewDebouncer(d) }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option { return func(b *Browser) { b.logger = l } }

// NewBrowser creates a Browser reading from f and drawing onto t.
func NewBrowser(f Fetcher, t RenderTarget, opts ...Option) *Browser {
	b := &Browser{
		fetcher:  f,
		target:   t,
		limit:    MaxResults,
		language: AllLanguages,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.Default()
	}
	if b.debounce == nil {
		b.debounce = NewDebouncer(DebounceDelay)
	}
	if b.limit <= 0 {
		b.limit = MaxResults
	}
	return b
}

// Load fetches the repository list once and renders the initial view.
//
// The loading indicator is shown first and hidden exactly once on every
// terminal outcome. Rate limits and empty results are informational: they
// set [StateRateLimited] or [StateEmpty], show their notice and return the
// corresponding error so callers can tell them apart from failures.
// Nothing is retried.
func (b *Browser) Load(ctx context.Context) error {
	b.setState(StateLoading)
	b.target.SetLoading(true)
	defer b.target.SetLoading(false)

	hooks := observability.Browser()
	hooks.OnFetchStart(ctx)
	start := time.Now()

	repos, err := b.fetcher.FetchRepos(ctx)
	hooks.OnFetchComplete(ctx, len(repos), time.Since(start), err)

	if err != nil {
		var rl *rcerrors.RateLimitedError
		if errors.As(err, &rl) {
			b.setState(StateRateLimited)
			b.logger.Warn("rate limited", "reset", rl.ResetAt)
			b.target.ShowError(rl.Message(time.Local))
			return err
		}
		b.setState(StateFailed)
		b.logger.Error("failed to fetch repos", "err", err)
		b.target.ShowError(failurePrefix + rcerrors.UserMessage(err))
		return err
	}

	catalog := NewCatalog(repos)
	b.mu.Lock()
	b.catalog = catalog
	b.mu.Unlock()

	if catalog.Len() == 0 {
		b.setState(StateEmpty)
		b.target.ShowError(rcerrors.ErrEmptyResult.Message)
		return rcerrors.ErrEmptyResult
	}

	b.setState(StateReady)
	b.logger.Debug("loaded repositories", "count", catalog.Len(), "languages", len(catalog.Languages())-1)
	b.refresh()
	return nil
}

// SetLanguage changes the active language and re-renders immediately.
func (b *Browser) SetLanguage(tag string) {
	if tag == "" {
		tag = AllLanguages
	}
	b.mu.Lock()
	b.language = tag
	b.mu.Unlock()
	b.refresh()
}

// SetQuery records the search query and schedules a debounced re-render.
// Rapid successive calls produce a single re-render with the last query.
func (b *Browser) SetQuery(q string) {
	b.mu.Lock()
	b.query = q
	b.mu.Unlock()
	b.debounce.Trigger(b.refresh)
}

// FlushQuery applies a pending search immediately. It reports whether a
// re-render was pending.
func (b *Browser) FlushQuery() bool { return b.debounce.Flush() }

// View computes the current view without rendering it.
func (b *Browser) View() []Repository {
	b.mu.Lock()
	c, f := b.catalog, b.filterLocked()
	b.mu.Unlock()
	return c.Apply(f)
}

// refresh runs the filter engine and replaces the displayed cards.
// It does nothing until a catalog with content is loaded.
func (b *Browser) refresh() {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	b.mu.Lock()
	c, f, state := b.catalog, b.filterLocked(), b.state
	b.mu.Unlock()
	if state != StateReady {
		return
	}

	view := c.Apply(f)
	observability.Browser().OnFilter(f.Language, f.Query, len(view))
	b.target.RenderList(view)
	observability.Browser().OnRender(len(view))
}

func (b *Browser) filterLocked() Filter {
	return Filter{Language: b.language, Query: b.query, Limit: b.limit}
}

func (b *Browser) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// Catalog returns the loaded catalog, nil before the first successful fetch.
func (b *Browser) Catalog() *Catalog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.catalog
}

// Languages returns the language filter index of the loaded catalog.
func (b *Browser) Languages() []string { return b.Catalog().Languages() }

// State returns the outcome of the most recent Load.
func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ActiveLanguage returns the current language filter.
func (b *Browser) ActiveLanguage() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.language
}

// Query returns the current search query as typed.
func (b *Browser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Limit returns the maximum number of rendered cards.
func (b *Browser) Limit() int { return b.limit }

// Close cancels any pending search re-render.
func (b *Browser) Close() { b.debounce.Stop() }
