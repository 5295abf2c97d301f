package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "message only",
			err:      &AppError{Code: ErrCodeValidation, Message: "unknown field"},
			expected: "unknown field",
		},
		{
			name:     "with host",
			err:      &AppError{Code: ErrCodeNotFound, Message: "application not found", Host: "blog.local"},
			expected: "application blog.local: application not found",
		},
		{
			name:     "with underlying error",
			err:      &AppError{Code: ErrCodeConfig, Message: "failed to load", Err: fmt.Errorf("file not found")},
			expected: "failed to load: file not found",
		},
		{
			name: "with host and underlying error",
			err: &AppError{
				Code:    ErrCodeInstaller,
				Message: "install failed",
				Host:    "wiki.local",
				Err:     fmt.Errorf("exit status 1"),
			},
			expected: "application wiki.local: install failed: exit status 1",
		},
		{
			name:     "host and error without message",
			err:      &AppError{Code: ErrCodeReload, Host: "wiki.local", Err: fmt.Errorf("boom")},
			expected: "application wiki.local: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &AppError{Code: ErrCodeConfig, Message: "wrapped", Err: underlying}

	if err.Unwrap() != underlying {
		t.Error("Unwrap() did not return underlying error")
	}
	if (&AppError{Code: ErrCodeValidation}).Unwrap() != nil {
		t.Error("Unwrap() should return nil without underlying error")
	}
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"not found matches sentinel", NotFound("blog.local"), ErrAppNotFound, true},
		{"parse matches sentinel", Parse("blog.vhost.conf", "missing ServerName"), ErrMalformedConfig, true},
		{"installer wrap matches sentinel", Wrap(ErrCodeInstaller, "install", errors.New("x")), ErrInstallerFailed, true},
		{"reload host wrap matches sentinel", WrapHost(ErrCodeReload, "a.local", "touch", errors.New("x")), ErrReloadFailed, true},
		{"config matches sentinel", Config("apps_dir must be absolute"), ErrConfigInvalid, true},
		{"different codes", NotFound("blog.local"), ErrMalformedConfig, false},
		{"plain error target", NotFound("blog.local"), errors.New("application not found"), false},
		{"wrapped in fmt", fmt.Errorf("outer: %w", Validation("bad")), ErrInvalidField, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("context: %w", WrapHost(ErrCodeReload, "blog.local", "touch failed", errors.New("exit 1")))

	var appErr *AppError
	if !As(err, &appErr) {
		t.Fatal("As() should find AppError in chain")
	}
	if appErr.Host != "blog.local" {
		t.Errorf("Host = %q, want blog.local", appErr.Host)
	}
	if appErr.Code != ErrCodeReload {
		t.Errorf("Code = %q, want %q", appErr.Code, ErrCodeReload)
	}
}

func TestParse(t *testing.T) {
	err := Parse("/tmp/x.vhost.conf", "missing ServerName")
	if err.Error() != "/tmp/x.vhost.conf: missing ServerName" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
