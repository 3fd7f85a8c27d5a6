package cmd

import (
	"fmt"
	"strings"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/xcassets"
	"github.com/spf13/cobra"
)

var (
	verifyPalette string
	verifyAssets  string
	verifyJSON    bool
	verifyStrict  bool
)

// verifyCmd는 에셋 카탈로그를 팔레트와 비교 검증합니다.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "에셋 카탈로그를 팔레트와 비교",
	Long: `에셋 카탈로그의 colorset 파일들을 팔레트와 비교합니다.
각 색상을 ok / missing / drifted로 분류하며, 팔레트에 없는
colorset은 extra로 보고합니다. 카탈로그를 수정하지 않습니다.

missing 또는 drifted 색상이 있으면 종료 코드 1을 반환합니다.
--strict를 사용하면 extra colorset도 실패로 취급합니다.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyPalette, "palette", "p", "",
		"비교할 팔레트 (내장 이름, 등록된 이름, 또는 YAML 파일 경로)")
	verifyCmd.Flags().StringVarP(&verifyAssets, "assets", "a", "",
		"에셋 카탈로그 경로 (기본값: 설정의 assets.dir)")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false,
		"결과를 JSON으로 출력")
	verifyCmd.Flags().BoolVar(&verifyStrict, "strict", false,
		"팔레트에 없는 colorset도 실패로 취급")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 플래그가 없으면 output.format 설정을 따릅니다.
	if !verifyJSON && cfg.Output.Format == "json" {
		verifyJSON = true
	}

	pal, err := resolvePalette(cfg, verifyPalette)
	if err != nil {
		return fmt.Errorf("팔레트 해석 실패: %w", err)
	}

	assetsDir := cfg.Assets.Dir
	if verifyAssets != "" {
		assetsDir = verifyAssets
	}

	report, err := xcassets.Inspect(assetsDir, pal)
	if err != nil {
		return err
	}

	ok, missing, drifted := report.Counts()
	failed := missing > 0 || drifted > 0 || (verifyStrict && len(report.Extra) > 0)

	if verifyJSON {
		data, err := jsonMarshalIndent(report)
		if err != nil {
			return err
		}
		printJSON(data)
	} else {
		printVerifyReport(cfg, pal.Name, assetsDir, report, ok, missing, drifted)
	}

	if failed {
		return fmt.Errorf("카탈로그가 팔레트와 일치하지 않습니다 (missing %d, drifted %d, extra %d)",
			missing, drifted, len(report.Extra))
	}
	return nil
}

// printVerifyReport는 검증 결과를 사람이 읽을 수 있는 형태로 출력합니다.
func printVerifyReport(cfg *config.Config, name, assetsDir string, report *xcassets.Report, ok, missing, drifted int) {
	fmt.Printf("%sVerifying %s against %s...\n", emojiPrefix(cfg, "🔍"), name, assetsDir)

	for _, c := range report.Colors {
		switch c.State {
		case xcassets.StateOK:
			fmt.Printf("   ✓ %s\n", c.Name)
		case xcassets.StateMissing:
			fmt.Printf("   ✗ %s (missing)\n", c.Name)
		case xcassets.StateDrifted:
			fmt.Printf("   ~ %s (drifted)\n", c.Name)
		}
	}

	if len(report.Extra) > 0 {
		fmt.Printf("\nExtra colorsets: %s\n", strings.Join(report.Extra, ", "))
	}

	fmt.Println()
	if report.Clean() {
		fmt.Printf("%sCatalog matches the palette (%d colors)\n", emojiPrefix(cfg, "✅"), ok)
	} else {
		fmt.Printf("%s%d ok, %d missing, %d drifted\n", emojiPrefix(cfg, "❌"), ok, missing, drifted)
	}
}
