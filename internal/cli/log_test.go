package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/panplot/panplot/pkg/rc"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	// Test that it can log
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if tt.wantLog && buf.Len() == 0 {
				t.Error("expected log output, got none")
			}
			if !tt.wantLog && buf.Len() > 0 {
				t.Errorf("expected no log output, got %q", buf.String())
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}

	// Without a logger attached, the default is returned.
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should fall back to a usable logger")
	}
}

func TestConfigContext(t *testing.T) {
	cfg := rc.Default()
	cfg.ABC.Style = "(a)"

	ctx := withConfig(context.Background(), cfg)
	if got := configFromContext(ctx); got.ABC.Style != "(a)" {
		t.Errorf("configFromContext ABC style = %q, want %q", got.ABC.Style, "(a)")
	}

	if got := configFromContext(context.Background()); got != rc.Default() {
		t.Error("configFromContext should fall back to the defaults")
	}
}
