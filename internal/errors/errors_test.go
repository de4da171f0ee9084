package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// TestConfigError verifies the ConfigError message formatting.
func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("numberOfSimulations must be >= 1, got %d", 0)
	want := "numberOfSimulations must be >= 1, got 0"
	if err.Error() != want {
		t.Errorf("ConfigError.Error() = %q, want %q", err.Error(), want)
	}

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As should match ConfigError")
	}
}

// TestValidationError verifies the field-qualified message.
func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "houses", Message: "must be positive"}
	want := `validation error for "houses": must be positive`
	if err.Error() != want {
		t.Errorf("ValidationError.Error() = %q, want %q", err.Error(), want)
	}
}

// TestBatchErrorUnwrap verifies that the cause survives wrapping.
func TestBatchErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("scheduler stopped")
	err := BatchError{Run: 3, Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if err.Error() != "batch aborted during run 3: scheduler stopped" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

// TestTimeoutError verifies the timeout message formatting.
func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "batch", Limit: 5 * time.Minute}
	want := `operation "batch" timed out after 5m0s`
	if err.Error() != want {
		t.Errorf("TimeoutError.Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError verifies the %w wrapping helper.
func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "run %d", 7)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if wrapped.Error() != "run 7: boom" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
}

// TestIsContextError covers cancellation and deadline classification.
func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("outer: %w", context.Canceled), true},
		{"other", errors.New("nope"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestExitCodeForError verifies the error-to-exit-code mapping.
func TestExitCodeForError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "delay", Message: "negative"}, ExitErrorConfig},
		{"wrapped config", WrapError(NewConfigError("bad"), "parsing"), ExitErrorConfig},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
