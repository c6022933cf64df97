// Package cli implements the repocards command-line interface.
//
// This package provides commands for browsing a GitHub account's repositories
// as cards in the terminal, rendering them once as text, JSON or HTML,
// serving them over HTTP, and managing the response cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - browse: Interactive card browser with language filter and search
//   - list: One-shot render of the filtered view
//   - languages: Print the language filter index
//   - serve: HTTP server for the card page
//   - intro: Replay the intro banner
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and fetch, filter and HTTP events are
// reported through observability hooks at debug level.
package cli

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repocards/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Loaded 42 repositories (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports observability events to a logger at debug level.
type logHooks struct {
	logger    *log.Logger
	cacheHits atomic.Int32
}

func (h *logHooks) OnFetchStart(ctx context.Context) {
	h.logger.Debug("fetching repositories")
}

func (h *logHooks) OnFetchComplete(ctx context.Context, count int, elapsed time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "elapsed", elapsed.Round(time.Millisecond), "error", err)
		return
	}
	h.logger.Debug("fetch complete", "count", count, "elapsed", elapsed.Round(time.Millisecond))
}

func (h *logHooks) OnFilter(language, query string, results int) {
	h.logger.Debug("filter", "language", language, "query", query, "results", results)
}

func (h *logHooks) OnRender(count int) {
	h.logger.Debug("render", "cards", count)
}

func (h *logHooks) OnRequest(ctx context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(ctx context.Context, method, host, path string, status int, elapsed time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "elapsed", elapsed.Round(time.Millisecond))
}

func (h *logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "path", path, "error", err)
}

func (h *logHooks) OnCacheHit(ctx context.Context, namespace string) {
	h.cacheHits.Add(1)
	h.logger.Debug("cache hit", "namespace", namespace)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, namespace string) {
	h.logger.Debug("cache miss", "namespace", namespace)
}

func (h *logHooks) OnCacheSet(ctx context.Context, namespace string, size int) {
	h.logger.Debug("cache set", "namespace", namespace, "entries", size)
}

var (
	_ observability.BrowserHooks = (*logHooks)(nil)
	_ observability.HTTPHooks    = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
)
