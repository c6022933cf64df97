package showcase

import "strings"

// Filter selects a view of the catalog.
type Filter struct {
	Language string // AllLanguages or "" disables the language constraint
	Query    string // free text, trimmed and lowercased before matching
	Limit    int    // maximum results; <= 0 means MaxResults
}

// Apply returns the repositories matching f, in input order, truncated to
// the filter's limit. It never modifies repos. An empty result is valid.
func Apply(repos []Repository, f Filter) []Repository {
	limit := f.Limit
	if limit <= 0 {
		limit = MaxResults
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	lang := f.Language
	if lang == "" {
		lang = AllLanguages
	}

	out := make([]Repository, 0, min(limit, len(repos)))
	for _, r := range repos {
		if lang != AllLanguages && r.Language != lang {
			continue
		}
		if q != "" && !strings.Contains(r.haystack(), q) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}
