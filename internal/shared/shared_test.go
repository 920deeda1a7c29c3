package shared

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestShared(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		t.Run("with nil writer defaults to stderr", func(t *testing.T) {
			logger := NewLogger(nil)
			if logger == nil {
				t.Fatal("expected logger to be created")
			}
		})

		t.Run("writes to provided writer", func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf)
			logger.Error("boom")

			if buf.Len() == 0 {
				t.Error("expected log output to be written")
			}
		})
	})

	t.Run("SetLogLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.ErrorLevel)

		logger.Info("suppressed")
		if buf.Len() != 0 {
			t.Error("expected info log to be suppressed at error level")
		}
	})

	t.Run("GenerateID", func(t *testing.T) {
		a := GenerateID()
		b := GenerateID()
		if a == "" || b == "" {
			t.Error("expected non-empty ids")
		}
		if a == b {
			t.Error("expected unique ids")
		}
	})

	t.Run("GenerateState", func(t *testing.T) {
		state, err := GenerateState()
		if err != nil {
			t.Fatalf("failed to generate state: %v", err)
		}
		if len(state) != 32 {
			t.Errorf("expected 32 hex characters, got %d", len(state))
		}
	})

	t.Run("TitleCase", func(t *testing.T) {
		if TitleCase("morning") != "Morning" {
			t.Errorf("expected Morning, got %s", TitleCase("morning"))
		}
		if TitleCase("") != "" {
			t.Error("expected empty string to pass through")
		}
	})

	t.Run("YesNo", func(t *testing.T) {
		if YesNo(true) != "Yes" || YesNo(false) != "No" {
			t.Error("unexpected YesNo rendering")
		}
	})
}
