package errors

import (
	"regexp"
	"strings"
)

// accountPattern matches GitHub logins: alphanumerics and single hyphens,
// not starting or ending with a hyphen.
var accountPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`)

// maxAccountLen is the longest login GitHub accepts.
const maxAccountLen = 39

// ValidateAccountName validates a GitHub account name before it is placed
// into a request path.
func ValidateAccountName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "account name cannot be empty")
	}
	if len(name) > maxAccountLen {
		return New(ErrCodeInvalidInput, "account name too long (max %d characters)", maxAccountLen)
	}
	if !accountPattern.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid account name: %q", name)
	}
	return nil
}

// ValidatePageSize validates the per_page query parameter.
// The GitHub API caps page size at 100.
func ValidatePageSize(n int) error {
	if n < 1 || n > 100 {
		return New(ErrCodeInvalidInput, "page size must be between 1 and 100, got %d", n)
	}
	return nil
}

// ValidateBaseURL checks that an API base URL is an absolute http(s) URL.
func ValidateBaseURL(u string) error {
	if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
		return New(ErrCodeInvalidInput, "base URL must start with http:// or https://: %q", u)
	}
	return nil
}
