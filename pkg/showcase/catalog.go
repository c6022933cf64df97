package showcase

import (
	"slices"
	"sort"
	"time"
)

// Catalog is the in-memory list of repositories from the most recent
// successful fetch, ordered by UpdatedAt descending. It is immutable once
// built; a new fetch builds a new Catalog instead of merging.
type Catalog struct {
	repos     []Repository
	languages []string
}

// NewCatalog copies repos, sorts the copy by recency and derives the
// language filter index. Entries with equal timestamps keep their input
// order; entries with unparseable timestamps sort last.
func NewCatalog(repos []Repository) *Catalog {
	type keyed struct {
		repo  Repository
		at    time.Time
		valid bool
	}
	ks := make([]keyed, len(repos))
	for i, r := range repos {
		at, ok := r.UpdatedTime()
		ks[i] = keyed{repo: r, at: at, valid: ok}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.valid != b.valid:
			if a.valid {
				return -1
			}
			return 1
		case !a.valid:
			return 0
		}
		return b.at.Compare(a.at)
	})

	out := make([]Repository, len(ks))
	for i, k := range ks {
		out[i] = k.repo
	}
	return &Catalog{repos: out, languages: languageIndex(out)}
}

// languageIndex returns "All" followed by the distinct non-empty languages
// in ascending lexicographic order.
func languageIndex(repos []Repository) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		langs = append(langs, r.Language)
	}
	sort.Strings(langs)
	return append([]string{AllLanguages}, langs...)
}

// Repos returns a copy of the cached repositories in recency order.
func (c *Catalog) Repos() []Repository {
	if c == nil {
		return nil
	}
	return slices.Clone(c.repos)
}

// Len returns the number of cached repositories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.repos)
}

// Languages returns a copy of the language filter index.
func (c *Catalog) Languages() []string {
	if c == nil {
		return []string{AllLanguages}
	}
	return slices.Clone(c.languages)
}

// HasLanguage reports whether tag is in the language filter index.
func (c *Catalog) HasLanguage(tag string) bool {
	return slices.Contains(c.Languages(), tag)
}

// Apply filters the catalog. A nil catalog yields an empty view.
func (c *Catalog) Apply(f Filter) []Repository {
	if c == nil {
		return nil
	}
	return Apply(c.repos, f)
}
