package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestParseLevel은 로그 레벨 파싱을 테스트합니다.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestNewRunID는 실행 ID 발급을 테스트합니다.
func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	if a == "" {
		t.Fatal("NewRunID() returned empty string")
	}
	if a == b {
		t.Errorf("NewRunID() returned duplicate IDs: %s", a)
	}
	if len(a) != 36 {
		t.Errorf("NewRunID() = %q, want UUID format (36 chars)", a)
	}
}
