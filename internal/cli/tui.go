package cli

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/repocards/pkg/render"
	"github.com/matzehuels/repocards/pkg/showcase"
)

// Browser styles
var (
	searchPromptStyle = lipgloss.NewStyle().Foreground(colorCyan)
	searchTextStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	helpStyle         = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	browseCardWidth = 38
	spinnerInterval = 80 * time.Millisecond
)

// =============================================================================
// Messages
// =============================================================================

// viewMsg replaces the displayed cards.
type viewMsg struct {
	seq   uint64
	repos []showcase.Repository
}

// noticeMsg replaces the cards with a message in the error region.
type noticeMsg struct {
	seq  uint64
	text string
}

// loadingMsg toggles the loading indicator.
type loadingMsg struct {
	seq uint64
	on  bool
}

// loadedMsg reports the end of the single fetch.
type loadedMsg struct{ err error }

// revealMsg shows the next card of render generation gen.
type revealMsg struct{ gen int }

// spinMsg advances the loading spinner.
type spinMsg struct{}

// =============================================================================
// teaTarget - RenderTarget backed by a bubbletea program
// =============================================================================

// teaTarget forwards browser output to the program as messages. Sends are
// asynchronous because the browser may call back from inside Update; each
// message carries a sequence number so the model can drop stale ones.
type teaTarget struct {
	seq  atomic.Uint64
	send func(tea.Msg)
}

func newTeaTarget(send func(tea.Msg)) *teaTarget {
	return &teaTarget{send: send}
}

func (t *teaTarget) RenderList(repos []showcase.Repository) {
	t.send(viewMsg{seq: t.seq.Add(1), repos: repos})
}

func (t *teaTarget) ShowError(msg string) {
	t.send(noticeMsg{seq: t.seq.Add(1), text: msg})
}

func (t *teaTarget) SetLoading(on bool) {
	t.send(loadingMsg{seq: t.seq.Add(1), on: on})
}

var _ showcase.RenderTarget = (*teaTarget)(nil)

// =============================================================================
// BrowseModel - Interactive card browser
// =============================================================================

// BrowseModel is the bubbletea model for the card browser.
type BrowseModel struct {
	ctx     context.Context
	browser *showcase.Browser
	title   string
	stagger time.Duration

	languages []string
	langIdx   int
	query     string

	cards    []render.Card
	revealed int
	gen      int
	notice   string

	loading  bool
	frame    int
	viewSeq  uint64
	loadSeq  uint64
	loadErr  error
	width    int
	quitting bool
}

// NewBrowseModel creates a browse model over b.
func NewBrowseModel(ctx context.Context, b *showcase.Browser, title string, stagger time.Duration) BrowseModel {
	return BrowseModel{
		ctx:       ctx,
		browser:   b,
		title:     title,
		stagger:   stagger,
		languages: []string{showcase.AllLanguages},
		width:     80,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	b, ctx := m.browser, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: b.Load(ctx)}
	}
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case loadingMsg:
		if msg.seq < m.loadSeq {
			return m, nil
		}
		m.loadSeq = msg.seq
		wasLoading := m.loading
		m.loading = msg.on
		if m.loading && !wasLoading {
			return m, spinTick()
		}

	case spinMsg:
		if m.loading {
			m.frame++
			return m, spinTick()
		}

	case loadedMsg:
		m.loadErr = msg.err
		m.languages = m.browser.Languages()
		m.langIdx = 0

	case viewMsg:
		if msg.seq < m.viewSeq {
			return m, nil
		}
		m.viewSeq = msg.seq
		m.notice = ""
		m.cards = render.BuildCardsStagger(msg.repos, m.stagger, time.Local)
		cmd := m.startReveal()
		return m, cmd

	case noticeMsg:
		if msg.seq < m.viewSeq {
			return m, nil
		}
		m.viewSeq = msg.seq
		m.notice = msg.text
		m.cards = nil
		m.revealed = 0
		m.gen++

	case revealMsg:
		if msg.gen != m.gen || m.revealed >= len(m.cards) {
			return m, nil
		}
		m.revealed++
		cmd := m.nextReveal()
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyRight:
		m.langIdx = (m.langIdx + 1) % len(m.languages)
		m.browser.SetLanguage(m.languages[m.langIdx])
	case tea.KeyShiftTab, tea.KeyLeft:
		m.langIdx = (m.langIdx - 1 + len(m.languages)) % len(m.languages)
		m.browser.SetLanguage(m.languages[m.langIdx])
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m.browser.SetQuery(m.query)
		}
	case tea.KeyCtrlU:
		if m.query != "" {
			m.query = ""
			m.browser.SetQuery(m.query)
		}
	case tea.KeyEnter:
		m.browser.FlushQuery()
	case tea.KeySpace:
		m.query += " "
		m.browser.SetQuery(m.query)
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m.browser.SetQuery(m.query)
	}
	return m, nil
}

// startReveal begins a new staggered entrance. The first card has no delay.
func (m *BrowseModel) startReveal() tea.Cmd {
	m.gen++
	m.revealed = 0
	if len(m.cards) == 0 {
		return nil
	}
	if m.stagger <= 0 {
		m.revealed = len(m.cards)
		return nil
	}
	m.revealed = 1
	return m.nextReveal()
}

func (m BrowseModel) nextReveal() tea.Cmd {
	if m.revealed >= len(m.cards) {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.stagger, func(time.Time) tea.Msg { return revealMsg{gen: gen} })
}

func spinTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinMsg{} })
}

func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(render.RenderFilters(m.languages, m.activeLanguage()))
	b.WriteString("\n")
	b.WriteString(searchPromptStyle.Render("/ ") + searchTextStyle.Render(m.query) + searchPromptStyle.Render("▌"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(styleIconSpinner.Render(frame) + " " + StyleDim.Render("Fetching repositories..."))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(render.NoticeStyle.Render(m.notice))
		b.WriteString("\n")
	case len(m.cards) == 0 && m.loadErr == nil && m.viewSeq > 0:
		b.WriteString(StyleDim.Render("No matching repositories."))
		b.WriteString("\n")
	}

	if m.revealed > 0 {
		cols := max(m.width/browseCardWidth, 1)
		b.WriteString(render.RenderCards(m.cards[:m.revealed], render.TextOptions{Width: browseCardWidth, Columns: cols}))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab language  type to search  ⏎ apply now  ctrl+u clear  esc quit"))
	return b.String()
}

func (m BrowseModel) activeLanguage() string {
	if m.langIdx < len(m.languages) {
		return m.languages[m.langIdx]
	}
	return showcase.AllLanguages
}

// Query returns the text typed into the search input.
func (m BrowseModel) Query() string { return m.query }

// Revealed returns how many cards are currently shown.
func (m BrowseModel) Revealed() int { return m.revealed }
