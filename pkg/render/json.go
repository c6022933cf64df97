package render

import (
	"encoding/json"
	"io"
)

type jsonCard struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Updated     string `json:"updated"`
	UpdatedAt   string `json:"updated_at"`
	DelayMS     int64  `json:"delay_ms"`
}

type jsonOutput struct {
	User      string     `json:"user,omitempty"`
	Languages []string   `json:"languages,omitempty"`
	Active    string     `json:"active_language,omitempty"`
	Query     string     `json:"query,omitempty"`
	Notice    string     `json:"notice,omitempty"`
	Cards     []jsonCard `json:"cards"`
}

// RenderJSON writes the page as indented JSON.
func RenderJSON(w io.Writer, p Page) error {
	out := jsonOutput{
		User:      p.User,
		Languages: p.Languages,
		Active:    p.Active,
		Query:     p.Query,
		Notice:    p.Notice,
		Cards:     make([]jsonCard, len(p.Cards)),
	}
	for i, c := range p.Cards {
		out.Cards[i] = jsonCard{
			Title:       c.Title,
			URL:         c.URL,
			Description: c.Description,
			Language:    c.Language,
			Stars:       c.Stars,
			Updated:     c.Updated,
			UpdatedAt:   c.UpdatedAt,
			DelayMS:     c.Delay.Milliseconds(),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
