package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/repocards/pkg/showcase"
)

func testCatalog() *showcase.Catalog {
	return showcase.NewCatalog([]showcase.Repository{
		{Name: "go-cli", Description: "a command line tool", Language: "Go", UpdatedAt: "2024-05-01T00:00:00Z", URL: "https://github.com/u/go-cli"},
		{Name: "rusty", Description: "systems stuff", Language: "Rust", UpdatedAt: "2024-04-01T00:00:00Z"},
		{Name: "go-web", Description: "web server", Language: "Go", UpdatedAt: "2024-03-01T00:00:00Z"},
		{Name: "notes", UpdatedAt: "2024-02-01T00:00:00Z"},
	})
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts = append([]Option{WithLogger(log.New(&logs))}, opts...)
	return New(testCatalog(), opts...), &logs
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.Mux().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
		active string
	}{
		{"all", "/", []string{"go-cli", "rusty", "go-web", "notes"}, "All"},
		{"language", "/?lang=Go", []string{"go-cli", "go-web"}, "Go"},
		{"query", "/?q=SERVER", []string{"go-web"}, "All"},
		{"both", "/?lang=Rust&q=go", nil, "Rust"},
		{"unknown language", "/?lang=Haskell", nil, ""},
	}

	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}

			doc, err := goquery.NewDocumentFromReader(w.Body)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			doc.Find(".repo-card .card-title a").Each(func(_ int, sel *goquery.Selection) {
				got = append(got, sel.Text())
			})
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("cards = %v, want %v", got, tt.want)
			}
			if active := strings.TrimSpace(doc.Find(".filter-btn.active").Text()); active != tt.active {
				t.Errorf("active = %q, want %q", active, tt.active)
			}
		})
	}
}

func TestPageLimit(t *testing.T) {
	s, _ := newTestServer(t, WithLimit(2))
	w := get(t, s, "/")
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find(".repo-card").Length(); n != 2 {
		t.Errorf("cards = %d, want 2", n)
	}
}

func TestPageNotice(t *testing.T) {
	s := New(showcase.NewCatalog(nil), WithNotice("No public repositories found."), WithLogger(log.New(io.Discard)))
	w := get(t, s, "/")
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("#repos-error").Text(); got != "No public repositories found." {
		t.Errorf("notice = %q", got)
	}
}

func TestAPIRepos(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/api/repos?lang=Go")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Active string `json:"active_language"`
		Cards  []struct {
			Title    string `json:"title"`
			Language string `json:"language"`
		} `json:"cards"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Active != "Go" || len(out.Cards) != 2 {
		t.Fatalf("out = %+v", out)
	}
	for _, c := range out.Cards {
		if c.Language != "Go" {
			t.Errorf("card %s has language %s", c.Title, c.Language)
		}
	}
}

func TestAPILanguages(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/api/languages")
	var langs []string
	if err := json.NewDecoder(w.Body).Decode(&langs); err != nil {
		t.Fatal(err)
	}
	if strings.Join(langs, ",") != "All,Go,Rust" {
		t.Errorf("languages = %v", langs)
	}
}

func TestAPILanguagesNilCatalog(t *testing.T) {
	s := New(nil, WithLogger(log.New(io.Discard)))
	w := get(t, s, "/api/languages")
	if strings.TrimSpace(w.Body.String()) != `["All"]` {
		t.Errorf("body = %q, want [\"All\"]", w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	s, logs := newTestServer(t)

	w := get(t, s, "/healthz")
	id := w.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatal("missing request id")
	}
	if !strings.Contains(logs.String(), id) {
		t.Errorf("access log does not carry request id: %s", logs.String())
	}

	// A valid incoming id is propagated.
	const incoming = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, incoming)
	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != incoming {
		t.Errorf("request id = %q, want %q", got, incoming)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	if w := get(t, s, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
