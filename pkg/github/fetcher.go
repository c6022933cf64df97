package github

import (
	"context"

	"github.com/matzehuels/repocards/pkg/showcase"
)

// Fetcher lists one account's repositories as showcase records.
type Fetcher struct {
	Client  *Client
	User    string
	PerPage int
}

// NewFetcher creates a Fetcher for user. A non-positive perPage uses
// DefaultPerPage.
func NewFetcher(c *Client, user string, perPage int) *Fetcher {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if user == "" {
		user = DefaultUser
	}
	return &Fetcher{Client: c, User: user, PerPage: perPage}
}

// FetchRepos implements showcase.Fetcher.
func (f *Fetcher) FetchRepos(ctx context.Context) ([]showcase.Repository, error) {
	repos, err := f.Client.ListUserRepos(ctx, f.User, f.PerPage)
	if err != nil {
		return nil, err
	}
	out := make([]showcase.Repository, len(repos))
	for i, r := range repos {
		out[i] = ToRepository(r)
	}
	return out, nil
}

// ToRepository maps an API record to a showcase repository. Null fields
// become empty strings; display placeholders are applied at render time.
func ToRepository(r Repo) showcase.Repository {
	return showcase.Repository{
		Name:        r.Name,
		Description: deref(r.Description),
		Language:    deref(r.Language),
		Stars:       max(r.Stars, 0),
		UpdatedAt:   r.UpdatedAt,
		URL:         r.HTMLURL,
	}
}

var _ showcase.Fetcher = (*Fetcher)(nil)
