package github

// Repo is a repository record from the listing endpoint. Description and
// language are null for many repositories.
type Repo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stargazers_count"`
	UpdatedAt   string  `json:"updated_at"`
	HTMLURL     string  `json:"html_url"`
	Fork        bool    `json:"fork"`
	Archived    bool    `json:"archived"`
}

// apiError is the JSON error body GitHub sends with non-OK responses.
type apiError struct {
	Message string `json:"message"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
