package cmd

import (
	"fmt"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/spf13/cobra"
)

var (
	listPalette  string
	listJSON     bool
	listSimple   bool
	listContrast bool
)

// listCmd는 팔레트 색상을 나열합니다.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "팔레트 색상 나열",
	Long: `팔레트의 색상과 라이트/다크 hex 값을 나열합니다.
터미널이 색상을 지원하면 각 색상의 스와치를 함께 출력합니다.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listPalette, "palette", "p", "",
		"나열할 팔레트 (내장 이름, 등록된 이름, 또는 YAML 파일 경로)")
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"팔레트를 JSON으로 출력")
	listCmd.Flags().BoolVar(&listSimple, "simple", false,
		"색상 이름만 출력")
	listCmd.Flags().BoolVar(&listContrast, "contrast", false,
		"WCAG 대비 보고서 추가 출력")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pal, err := resolvePalette(cfg, listPalette)
	if err != nil {
		return fmt.Errorf("팔레트 해석 실패: %w", err)
	}

	// 플래그가 없으면 output.format 설정을 따릅니다.
	if !listJSON && !listSimple {
		switch cfg.Output.Format {
		case "json":
			listJSON = true
		case "simple":
			listSimple = true
		}
	}

	if listJSON {
		data, err := jsonMarshalIndent(pal)
		if err != nil {
			return err
		}
		printJSON(data)
		return nil
	}

	if listSimple {
		for _, c := range pal.Colors {
			fmt.Println(c.Name)
		}
		return nil
	}

	fmt.Printf("%sColors in %s (%d):\n", emojiPrefix(cfg, "🎨"), pal.Name, pal.Len())
	for _, c := range pal.Colors {
		fmt.Printf("   • %s: %s / %s%s%s\n",
			c.Name, c.Light, c.Dark, hexSwatch(cfg, c.Light), hexSwatch(cfg, c.Dark))
	}

	if listContrast {
		printContrastReport(cfg, pal)
	}
	return nil
}

// printContrastReport는 텍스트 역할 색상과 표면 역할 색상 간의
// WCAG 대비율을 출력합니다.
func printContrastReport(cfg *config.Config, pal *palette.Palette) {
	pairs := pal.ContrastReport()
	if len(pairs) == 0 {
		return
	}

	fmt.Printf("\n%sContrast (WCAG AA, normal text):\n", emojiPrefix(cfg, "🔬"))
	for _, pair := range pairs {
		fmt.Printf("   %s\n", pair)
	}
}
