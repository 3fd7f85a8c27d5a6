// Package cmd는 GutCheck Palette CLI의 명령어를 정의합니다.
// output.go는 이모지/색상/TTY 게이팅을 담당하는 출력 헬퍼입니다.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/mattn/go-isatty"
)

// stdoutIsTTY는 stdout이 터미널인지 확인합니다.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorEnabled는 설정과 TTY 상태에 따라 색상 사용 여부를 결정합니다.
func colorEnabled(cfg *config.Config) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutIsTTY()
	}
}

// emojiEnabled는 이모지 출력 여부를 결정합니다.
// JSON 모드와 비 TTY 출력에서는 항상 비활성화됩니다.
func emojiEnabled(cfg *config.Config) bool {
	if !cfg.Output.Emoji {
		return false
	}
	return stdoutIsTTY()
}

// emojiPrefix는 이모지가 활성화된 경우 "<emoji> " 접두사를 반환합니다.
func emojiPrefix(cfg *config.Config, emoji string) string {
	if emojiEnabled(cfg) {
		return emoji + " "
	}
	return ""
}

// hexSwatch는 색상 출력이 활성화된 경우 hex 값의 색상 블록을 반환합니다.
func hexSwatch(cfg *config.Config, hex string) string {
	if !colorEnabled(cfg) {
		return ""
	}
	block := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Render("██")
	return " " + block
}

// printJSON은 JSON 바이트를 stdout에 출력합니다.
func printJSON(data []byte) {
	fmt.Println(string(data))
}

// jsonMarshalIndent는 --json 출력용 직렬화 헬퍼입니다.
func jsonMarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("JSON 직렬화 실패: %w", err)
	}
	return data, nil
}
