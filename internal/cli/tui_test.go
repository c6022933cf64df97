package cli

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/repocards/pkg/showcase"
)

// msgQueue collects messages sent by a teaTarget.
type msgQueue struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (q *msgQueue) send(m tea.Msg) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, m)
}

func (q *msgQueue) drain() []tea.Msg {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.msgs
	q.msgs = nil
	return out
}

func feed(m BrowseModel, msgs ...tea.Msg) BrowseModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(BrowseModel)
	}
	return m
}

func testRepos() []showcase.Repository {
	return []showcase.Repository{
		{Name: "go-one", Description: "first", Language: "Go", UpdatedAt: "2024-05-01T00:00:00Z"},
		{Name: "rust-one", Description: "second", Language: "Rust", UpdatedAt: "2024-04-01T00:00:00Z"},
		{Name: "go-two", Description: "third", Language: "Go", UpdatedAt: "2024-03-01T00:00:00Z"},
	}
}

func loadedModel(t *testing.T, repos []showcase.Repository, err error) (BrowseModel, *msgQueue) {
	t.Helper()
	q := &msgQueue{}
	fetch := showcase.FetcherFunc(func(context.Context) ([]showcase.Repository, error) {
		return repos, err
	})
	b := showcase.NewBrowser(fetch, newTeaTarget(q.send), showcase.WithDebounce(50*time.Millisecond))
	t.Cleanup(b.Close)

	m := NewBrowseModel(context.Background(), b, "test", 0)
	loaded := m.Init()()
	m = feed(m, q.drain()...)
	return feed(m, loaded), q
}

func cardTitles(m BrowseModel) string {
	titles := make([]string, 0, m.revealed)
	for _, c := range m.cards[:m.revealed] {
		titles = append(titles, c.Title)
	}
	return strings.Join(titles, ",")
}

func TestBrowseLoad(t *testing.T) {
	m, _ := loadedModel(t, testRepos(), nil)

	if m.loading {
		t.Error("still loading after load finished")
	}
	if got := strings.Join(m.languages, ","); got != "All,Go,Rust" {
		t.Errorf("languages = %s", got)
	}
	if got := cardTitles(m); got != "go-one,rust-one,go-two" {
		t.Errorf("cards = %s", got)
	}
	if !strings.Contains(m.View(), "go-two") {
		t.Error("view does not show cards")
	}
}

func TestBrowseLanguageCycle(t *testing.T) {
	m, q := loadedModel(t, testRepos(), nil)

	m = feed(m, tea.KeyMsg{Type: tea.KeyTab})
	m = feed(m, q.drain()...)
	if m.activeLanguage() != "Go" || cardTitles(m) != "go-one,go-two" {
		t.Errorf("after tab: %s -> %s", m.activeLanguage(), cardTitles(m))
	}

	m = feed(m, tea.KeyMsg{Type: tea.KeyTab})
	m = feed(m, q.drain()...)
	if cardTitles(m) != "rust-one" {
		t.Errorf("after second tab: %s", cardTitles(m))
	}

	// Wraps back to All, then backwards to Rust.
	m = feed(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = feed(m, q.drain()...)
	if m.activeLanguage() != "Rust" {
		t.Errorf("active = %s, want Rust", m.activeLanguage())
	}
}

func TestBrowseSearchDebounced(t *testing.T) {
	m, q := loadedModel(t, testRepos(), nil)

	for _, r := range "third" {
		m = feed(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if msgs := q.drain(); len(msgs) != 0 {
		t.Fatalf("render before debounce elapsed: %v", msgs)
	}

	time.Sleep(250 * time.Millisecond)
	m = feed(m, q.drain()...)
	if m.Query() != "third" || cardTitles(m) != "go-two" {
		t.Errorf("query %q -> %s", m.Query(), cardTitles(m))
	}

	m = feed(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyCtrlU}, tea.KeyMsg{Type: tea.KeyEnter})
	m = feed(m, q.drain()...)
	if m.Query() != "" || cardTitles(m) != "go-one,rust-one,go-two" {
		t.Errorf("after clear: %q -> %s", m.Query(), cardTitles(m))
	}
}

func TestBrowseNotice(t *testing.T) {
	m, _ := loadedModel(t, nil, nil)
	if m.notice != "No public repositories found." {
		t.Errorf("notice = %q", m.notice)
	}
	if !strings.Contains(m.View(), "No public repositories found.") {
		t.Error("notice not rendered")
	}
}

func TestBrowseStaleMessages(t *testing.T) {
	m := NewBrowseModel(context.Background(), nil, "test", 0)
	m = feed(m,
		viewMsg{seq: 5, repos: testRepos()[:1]},
		viewMsg{seq: 3, repos: testRepos()},
		loadingMsg{seq: 7, on: false},
		loadingMsg{seq: 6, on: true},
	)
	if cardTitles(m) != "go-one" {
		t.Errorf("stale view applied: %s", cardTitles(m))
	}
	if m.loading {
		t.Error("stale loading message applied")
	}
}

func TestBrowseStaggeredReveal(t *testing.T) {
	m := NewBrowseModel(context.Background(), nil, "test", 80*time.Millisecond)

	next, cmd := m.Update(viewMsg{seq: 1, repos: testRepos()})
	m = next.(BrowseModel)
	if m.Revealed() != 1 || cmd == nil {
		t.Fatalf("revealed = %d, cmd = %v", m.Revealed(), cmd)
	}

	gen := m.gen
	m = feed(m, revealMsg{gen: gen - 1})
	if m.Revealed() != 1 {
		t.Error("reveal from an old generation applied")
	}
	m = feed(m, revealMsg{gen: gen}, revealMsg{gen: gen}, revealMsg{gen: gen})
	if m.Revealed() != 3 {
		t.Errorf("revealed = %d, want 3", m.Revealed())
	}
	if m.cards[2].Delay != 160*time.Millisecond {
		t.Errorf("third card delay = %v", m.cards[2].Delay)
	}
}

func TestBrowseQuit(t *testing.T) {
	m := NewBrowseModel(context.Background(), nil, "test", 0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc did not quit")
	}
	if next.(BrowseModel).View() != "" {
		t.Error("view not cleared on quit")
	}
}
