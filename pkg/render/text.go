package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorAmber = lipgloss.Color("220")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// Card styles shared by the text sink and the terminal browser.
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	CardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	CardBadgeStyle    = lipgloss.NewStyle().Foreground(colorAmber)
	CardDescStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	CardMetaStyle     = lipgloss.NewStyle().Foreground(colorGray)
	CardLinkStyle     = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	ActiveFilterStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	FilterStyle       = lipgloss.NewStyle().Foreground(colorGray)
	NoticeStyle       = lipgloss.NewStyle().Foreground(colorAmber)
)

// TextOptions controls the text sink layout.
type TextOptions struct {
	Width   int // card width in cells; <= 0 uses 36
	Columns int // cards per row; <= 0 uses 2
}

func (o TextOptions) withDefaults() TextOptions {
	if o.Width <= 0 {
		o.Width = 36
	}
	if o.Columns <= 0 {
		o.Columns = 2
	}
	return o
}

// RenderCard draws a single card box.
func RenderCard(c Card, width int) string {
	inner := max(width-4, 8)
	desc := c.Description
	if desc == "" {
		desc = " "
	}

	lines := []string{
		CardTitleStyle.Render(truncate(c.Title, inner)),
		CardBadgeStyle.Render(c.Language),
		CardDescStyle.Width(inner).Render(desc),
		CardMetaStyle.Render(fmt.Sprintf("★ %d  %s", c.Stars, c.Updated)),
		CardLinkStyle.Render(truncate(c.URL, inner)),
	}
	return CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderCards lays out cards in rows of opts.Columns boxes.
func RenderCards(cards []Card, opts TextOptions) string {
	opts = opts.withDefaults()
	var rows []string
	for i := 0; i < len(cards); i += opts.Columns {
		end := min(i+opts.Columns, len(cards))
		boxes := make([]string, 0, end-i)
		for _, c := range cards[i:end] {
			boxes = append(boxes, RenderCard(c, opts.Width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return strings.Join(rows, "\n")
}

// RenderFilters draws the language filter row with the active tag marked.
func RenderFilters(languages []string, active string) string {
	parts := make([]string, len(languages))
	for i, lang := range languages {
		if lang == active {
			parts[i] = ActiveFilterStyle.Render("[" + lang + "]")
		} else {
			parts[i] = FilterStyle.Render(" " + lang + " ")
		}
	}
	return strings.Join(parts, " ")
}

// RenderText writes the page as styled terminal text.
func RenderText(w io.Writer, p Page, opts TextOptions) error {
	var b strings.Builder
	if p.Title != "" {
		b.WriteString(CardTitleStyle.Render(p.Title))
		b.WriteString("\n")
	}
	if len(p.Languages) > 0 {
		b.WriteString(RenderFilters(p.Languages, p.Active))
		b.WriteString("\n")
	}
	if p.Query != "" {
		b.WriteString(CardMetaStyle.Render("search: " + p.Query))
		b.WriteString("\n")
	}
	if p.Notice != "" {
		b.WriteString(NoticeStyle.Render(p.Notice))
		b.WriteString("\n")
	}
	if len(p.Cards) > 0 {
		b.WriteString(RenderCards(p.Cards, opts))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
