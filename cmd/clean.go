package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gutcheck/gutcheck-palette/internal/xcassets"
	"github.com/spf13/cobra"
)

var (
	cleanPalette string
	cleanAssets  string
	cleanDryRun  bool
	cleanYes     bool
)

// cleanCmd는 팔레트 색상의 colorset 디렉토리를 제거합니다.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "팔레트 색상의 colorset 제거",
	Long: `에셋 카탈로그에서 팔레트에 정의된 색상의 .colorset 디렉토리만
제거합니다. 카탈로그 루트와 팔레트에 없는 에셋은 건드리지 않습니다.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanPalette, "palette", "p", "",
		"대상 팔레트 (내장 이름, 등록된 이름, 또는 YAML 파일 경로)")
	cleanCmd.Flags().StringVarP(&cleanAssets, "assets", "a", "",
		"에셋 카탈로그 경로 (기본값: 설정의 assets.dir)")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false,
		"제거하지 않고 대상만 출력")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false,
		"확인 프롬프트 생략")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pal, err := resolvePalette(cfg, cleanPalette)
	if err != nil {
		return fmt.Errorf("팔레트 해석 실패: %w", err)
	}

	assetsDir := cfg.Assets.Dir
	if cleanAssets != "" {
		assetsDir = cleanAssets
	}

	if !cleanDryRun && !cleanYes {
		ok, err := confirm(fmt.Sprintf("%s에서 %d개 colorset을 제거합니다. 계속할까요?", assetsDir, pal.Len()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("취소되었습니다.")
			return nil
		}
	}

	removed, err := xcassets.Clean(assetsDir, pal, cleanDryRun)
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		fmt.Printf("%sNothing to remove.\n", emojiPrefix(cfg, "✨"))
		return nil
	}

	for _, name := range removed {
		fmt.Printf("   ✗ %s\n", name)
	}

	if cleanDryRun {
		fmt.Printf("\n%sWould remove %d colorsets (dry run)\n", emojiPrefix(cfg, "🧹"), len(removed))
	} else {
		fmt.Printf("\n%sRemoved %d colorsets\n", emojiPrefix(cfg, "🧹"), len(removed))
	}
	return nil
}

// confirm은 y/n 프롬프트를 출력하고 사용자 응답을 읽습니다.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("입력 읽기 실패: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
