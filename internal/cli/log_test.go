package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("expected output %v, got %q", tt.wantLog, buf.String())
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if loggerFromContext(withLogger(context.Background(), logger)) != logger {
		t.Error("expected attached logger to be returned")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected default logger without one attached")
	}
}

func TestSlogFromContext_WritesThroughCharmLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	slogFromContext(ctx).Info("worksheet created", "count", 5)

	if !strings.Contains(buf.String(), "worksheet created") {
		t.Errorf("expected slog record in charm output, got %q", buf.String())
	}
}

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Wrote 1 worksheet(s)")

	if !strings.Contains(buf.String(), "Wrote 1 worksheet(s) (") {
		t.Errorf("expected message with elapsed time, got %q", buf.String())
	}
}
