package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriterTagsService(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "storefront", "debug")
	logger.Info().Str("k", "v").Msg("hello")

	line := buf.String()
	for _, marker := range []string{`"service":"storefront"`, `"k":"v"`, `"message":"hello"`, `"level":"info"`} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing %q: %q", marker, line)
		}
	}
}

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: " WARN ", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "chatty", want: zerolog.InfoLevel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			logger := NewWithWriter(&bytes.Buffer{}, "storefront", tc.level)
			if got := logger.GetLevel(); got != tc.want {
				t.Fatalf("GetLevel() = %v, want %v", got, tc.want)
			}
		})
	}
}
