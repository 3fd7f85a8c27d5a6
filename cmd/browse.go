package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gutcheck/gutcheck-palette/internal/tui"
	"github.com/spf13/cobra"
)

var browsePalette string

// browseCmd는 터미널 팔레트 브라우저를 실행합니다.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "터미널 팔레트 브라우저 실행",
	Long: `팔레트를 탐색하는 대화형 터미널 UI를 실행합니다.

색상 테이블, 컴포넌트/대비 상세 패널, 카탈로그 상태 패널을
제공합니다. ↑/↓(j/k)로 선택, tab으로 라이트/다크 전환,
d로 상세 토글, r로 카탈로그 재검사, q로 종료합니다.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browsePalette, "palette", "p", "",
		"탐색할 팔레트 (내장 이름, 등록된 이름, 또는 YAML 파일 경로)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !stdoutIsTTY() {
		return errors.New("브라우저는 터미널에서만 실행할 수 있습니다")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pal, err := resolvePalette(cfg, browsePalette)
	if err != nil {
		return fmt.Errorf("팔레트 해석 실패: %w", err)
	}

	model := tui.NewModel(pal, cfg.Assets.Dir)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("브라우저 실행 실패: %w", err)
	}
	return nil
}
