package at_test

import (
	"errors"
	"testing"

	"hc05bridge/at"
)

func TestCauseForCode(t *testing.T) {
	t.Run("Code 11 maps to Invalid Role entered", func(t *testing.T) {
		cause, err := at.CauseForCode("11")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cause != "Invalid Role entered" {
			t.Errorf("got %q, want %q", cause, "Invalid Role entered")
		}
	})

	t.Run("Benign already-initialized code", func(t *testing.T) {
		n, err := at.ParseErrorCode("17")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != at.CodeAlreadyInitialized {
			t.Errorf("got %#x, want %#x", n, at.CodeAlreadyInitialized)
		}
	})

	t.Run("Lowercase hex accepted", func(t *testing.T) {
		cause, err := at.CauseForCode("1c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cause != "Invalid encryption mode entered" {
			t.Errorf("got %q", cause)
		}
	})

	t.Run("Out of range code is an error, not a crash", func(t *testing.T) {
		if _, err := at.CauseForCode("1D"); !errors.Is(err, at.ErrUnknownErrorCode) {
			t.Errorf("expected ErrUnknownErrorCode, got: %v", err)
		}
		if _, err := at.CauseForCode("FF"); !errors.Is(err, at.ErrUnknownErrorCode) {
			t.Errorf("expected ErrUnknownErrorCode, got: %v", err)
		}
	})

	t.Run("Non-hex code is an error", func(t *testing.T) {
		if _, err := at.CauseForCode("zz"); !errors.Is(err, at.ErrUnknownErrorCode) {
			t.Errorf("expected ErrUnknownErrorCode, got: %v", err)
		}
	})
}
