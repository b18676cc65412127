package document

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown kind %q", "window")
	if got, want := err.Error(), `INVALID_KIND: unknown kind "window"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("boom")
	wrapped := Wrap(ErrCodeRead, cause, "open %s", "a.toml")
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
	if got, want := wrapped.Error(), "READ_FAILED: open a.toml: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	outer := fmt.Errorf("design.toml: %w", wrapped)
	if !Is(outer, ErrCodeRead) {
		t.Error("Is(outer, ErrCodeRead) = false, want true")
	}
	if GetCode(outer) != ErrCodeRead {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeRead)
	}
	if GetCode(cause) != "" {
		t.Errorf("GetCode(plain) = %q, want empty", GetCode(cause))
	}
}
