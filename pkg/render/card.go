package render

import (
	"time"

	"github.com/matzehuels/repocards/pkg/showcase"
)

// StaggerStep is the entrance delay added per card position.
const StaggerStep = 80 * time.Millisecond

// TimeLayout is the display layout for update times.
const TimeLayout = "Jan 2, 2006 15:04"

// Card is one rendered repository.
type Card struct {
	Title       string
	URL         string
	Description string
	Language    string
	Stars       int
	Updated     string // formatted for display
	UpdatedAt   string // raw API value
	Delay       time.Duration
}

// Page is everything a sink draws: the cards plus the filter controls.
type Page struct {
	Title     string
	User      string
	Languages []string
	Active    string
	Query     string
	Cards     []Card
	Notice    string // error or informational message, empty when none
}

// BuildCards maps repos to cards with the default stagger.
func BuildCards(repos []showcase.Repository) []Card {
	return BuildCardsStagger(repos, StaggerStep, time.Local)
}

// BuildCardsStagger maps repos to cards, assigning card i a delay of
// i × step and formatting update times in loc.
func BuildCardsStagger(repos []showcase.Repository, step time.Duration, loc *time.Location) []Card {
	cards := make([]Card, len(repos))
	for i, r := range repos {
		cards[i] = Card{
			Title:       r.DisplayName(),
			URL:         r.DisplayURL(),
			Description: r.Description,
			Language:    r.DisplayLanguage(),
			Stars:       r.Stars,
			Updated:     FormatTimeIn(r.UpdatedAt, loc),
			UpdatedAt:   r.UpdatedAt,
			Delay:       time.Duration(i) * step,
		}
	}
	return cards
}

// FormatTime formats an ISO 8601 timestamp in local time.
func FormatTime(raw string) string { return FormatTimeIn(raw, time.Local) }

// FormatTimeIn formats an ISO 8601 timestamp in loc. Unparseable input is
// returned unchanged.
func FormatTimeIn(raw string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimeLayout)
}
