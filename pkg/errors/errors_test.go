package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to decode")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestTransport(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   string
	}{
		{"status only", 500, "", "GitHub API error: 500"},
		{"with detail", 404, "Not Found", "GitHub API error: 404 - Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transport(tt.status, tt.detail)
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
			if err.Status != tt.status {
				t.Errorf("Status = %d, want %d", err.Status, tt.status)
			}
			if !Is(err, ErrCodeTransport) {
				t.Error("Is(ErrCodeTransport) = false")
			}
		})
	}
}

func TestTransportCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := TransportCause(cause)
	if err.Message != cause.Error() {
		t.Errorf("Message = %q, want %q", err.Message, cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be unwrappable")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeTransport, false},
		{"wrapped error", fmt.Errorf("load: %w", Transport(500, "")), ErrCodeTransport, true},
		{"rate limited", &RateLimitedError{}, ErrCodeRateLimited, true},
		{"wrapped rate limited", fmt.Errorf("x: %w", &RateLimitedError{}), ErrCodeRateLimited, true},
		{"empty result", ErrEmptyResult, ErrCodeEmptyResult, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
		{"empty code", errors.New("plain"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	reset := time.Date(2025, 3, 1, 14, 30, 5, 0, time.UTC)
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
		{"empty", ErrEmptyResult, "No public repositories found."},
		{"rate limited", &RateLimitedError{}, "GitHub API rate limit exceeded. Try again later."},
		{"rate limited with reset", &RateLimitedError{ResetAt: &reset},
			"GitHub API rate limit exceeded. Try again later; resets at " + reset.In(time.Local).Format("15:04:05") + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRateLimitedError(t *testing.T) {
	t.Run("message in location", func(t *testing.T) {
		reset := time.Date(2025, 3, 1, 14, 30, 5, 0, time.UTC)
		err := &RateLimitedError{ResetAt: &reset}
		got := err.Message(time.UTC)
		if !strings.HasSuffix(got, "resets at 14:30:05.") {
			t.Errorf("Message() = %q", got)
		}
	})

	t.Run("error string", func(t *testing.T) {
		err := &RateLimitedError{}
		if err.Error() != "rate limited" {
			t.Errorf("Error() = %v, want %v", err.Error(), "rate limited")
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &RateLimitedError{}
		if err.Code() != ErrCodeRateLimited {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeRateLimited)
		}
	})
}

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "noxx-code", false},
		{"alnum", "octocat42", false},
		{"empty", "", true},
		{"leading hyphen", "-abc", true},
		{"trailing hyphen", "abc-", true},
		{"double hyphen", "a--b", true},
		{"slash", "a/b", true},
		{"traversal", "..", true},
		{"too long", strings.Repeat("a", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAccountName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error should carry INVALID_INPUT, got %v", GetCode(err))
			}
		})
	}
}

func TestValidatePageSize(t *testing.T) {
	for _, n := range []int{1, 50, 100} {
		if err := ValidatePageSize(n); err != nil {
			t.Errorf("ValidatePageSize(%d) = %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 101} {
		if err := ValidatePageSize(n); err == nil {
			t.Errorf("ValidatePageSize(%d) should fail", n)
		}
	}
}

func TestValidateBaseURL(t *testing.T) {
	if err := ValidateBaseURL("https://api.github.com"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateBaseURL("ftp://example.com"); err == nil {
		t.Error("expected error for ftp URL")
	}
}
