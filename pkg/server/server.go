package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/repocards/pkg/render"
	"github.com/matzehuels/repocards/pkg/showcase"
)

// Server renders filtered views of a loaded catalog.
type Server struct {
	mux     *chi.Mux
	catalog *showcase.Catalog
	logger  *log.Logger
	title   string
	user    string
	notice  string
	limit   int
	stagger time.Duration
	minify  bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithTitle sets the page heading.
func WithTitle(t string) Option { return func(s *Server) { s.title = t } }

// WithUser records the account the catalog belongs to.
func WithUser(u string) Option { return func(s *Server) { s.user = u } }

// WithNotice sets a message shown on every page, e.g. the outcome of a
// failed or empty load.
func WithNotice(n string) Option { return func(s *Server) { s.notice = n } }

// WithLimit caps the cards per view.
func WithLimit(n int) Option { return func(s *Server) { s.limit = n } }

// WithStagger sets the per-card entrance delay.
func WithStagger(d time.Duration) Option { return func(s *Server) { s.stagger = d } }

// WithMinify toggles HTML minification.
func WithMinify(on bool) Option { return func(s *Server) { s.minify = on } }

// New creates a Server over catalog. A nil catalog serves empty views.
func New(catalog *showcase.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: catalog,
		logger:  log.Default(),
		title:   "Repositories",
		limit:   showcase.MaxResults,
		stagger: render.StaggerStep,
		minify:  true,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.preProcess)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.write(w, http.StatusOK, "text/plain; charset=utf-8", []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/repos", s.handleRepos)
		r.Get("/languages", s.handleLanguages)
	})
	s.mux = r
	return s
}

// Mux returns the HTTP handler.
func (s *Server) Mux() *chi.Mux {
	return s.mux
}

// page builds the view for one request's filter parameters.
func (s *Server) page(r *http.Request) render.Page {
	q := r.URL.Query()
	lang := strings.TrimSpace(q.Get("lang"))
	if lang == "" {
		lang = showcase.AllLanguages
	}
	query := q.Get("q")

	repos := s.catalog.Apply(showcase.Filter{Language: lang, Query: query, Limit: s.limit})
	return render.Page{
		Title:     s.title,
		User:      s.user,
		Languages: s.catalog.Languages(),
		Active:    lang,
		Query:     query,
		Cards:     render.BuildCardsStagger(repos, s.stagger, time.Local),
		Notice:    s.notice,
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf strings.Builder
	if err := render.RenderHTML(&buf, s.page(r), render.HTMLOptions{Minify: s.minify}); err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, http.StatusOK, "text/html; charset=utf-8", []byte(buf.String()))
}

func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	var buf strings.Builder
	if err := render.RenderJSON(&buf, s.page(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, http.StatusOK, "application/json", []byte(buf.String()))
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(s.catalog.Languages())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, http.StatusOK, "application/json", body)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	loggerFrom(r.Context(), s.logger).Error("render failed", "error", err)
	s.write(w, http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("internal error"))
}

func (s *Server) write(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		s.logger.Error("fail to write response", "error", err)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.mux,

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
