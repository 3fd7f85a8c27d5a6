package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/logger"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/gutcheck/gutcheck-palette/internal/stats"
	"github.com/gutcheck/gutcheck-palette/internal/watch"
	"github.com/gutcheck/gutcheck-palette/internal/xcassets"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	generatePalette  string
	generateAssets   string
	generateCreate   bool
	generateDryRun   bool
	generateQuiet    bool
	generateJSON     bool
	generateWatch    bool
	generateDebounce time.Duration
)

// generateCmd는 팔레트를 colorset 파일로 생성하는 핵심 명령어입니다.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "팔레트를 Xcode colorset 파일로 생성",
	Long: `팔레트의 각 색상에 대해 <AssetsDir>/<Name>.colorset/Contents.json
파일을 생성합니다. 기존 파일과 내용이 같으면 다시 쓰지 않습니다.

--watch 플래그를 사용하면 팔레트 파일 변경을 감지하여
자동으로 재생성합니다 (내장 팔레트는 파일이 없어 감시할 수 없습니다).`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generatePalette, "palette", "p", "",
		"사용할 팔레트 (내장 이름, 등록된 이름, 또는 YAML 파일 경로)")
	generateCmd.Flags().StringVarP(&generateAssets, "assets", "a", "",
		"에셋 카탈로그 경로 (기본값: 설정의 assets.dir)")
	generateCmd.Flags().BoolVar(&generateCreate, "create", false,
		"에셋 카탈로그가 없으면 생성")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false,
		"파일을 쓰지 않고 결과만 계산")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false,
		"진행 상황 출력 생략")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false,
		"요약을 JSON으로 출력")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false,
		"팔레트 파일 변경 감시 및 자동 재생성")
	generateCmd.Flags().DurationVar(&generateDebounce, "debounce", watch.DefaultDebounce,
		"감시 모드의 변경 디바운스 간격")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 플래그가 없으면 output.format 설정을 따릅니다.
	if !generateJSON && cfg.Output.Format == "json" {
		generateJSON = true
	}

	runID := logger.NewRunID()

	pal, source, err := resolvePaletteSource(cfg, generatePalette)
	if err != nil {
		return fmt.Errorf("팔레트 해석 실패: %w", err)
	}

	log := logger.WithPalette(runID, pal.Name)

	assetsDir := cfg.Assets.Dir
	if generateAssets != "" {
		assetsDir = generateAssets
	}

	writer := &xcassets.Writer{
		AssetsDir: assetsDir,
		DryRun:    generateDryRun,
		Create:    generateCreate || cfg.Assets.Create,
	}

	if err := writer.CheckCatalog(); err != nil {
		if !generateJSON && !generateQuiet {
			// 오류 메시지를 직접 출력했으므로 cobra의 재출력을 막습니다.
			fmt.Printf("%sError: %v!\n", emojiPrefix(cfg, "❌"), err)
			cmd.SilenceErrors = true
		}
		log.Error().Err(err).Str("assets_dir", assetsDir).Msg("에셋 카탈로그 확인 실패")
		return err
	}

	if generateWatch {
		if generateJSON {
			return errors.New("--watch와 --json은 함께 사용할 수 없습니다")
		}
		if source == "" {
			return fmt.Errorf("내장 팔레트 %q는 감시할 수 없습니다 (파일 기반 팔레트가 필요합니다)", pal.Name)
		}
		return watchAndGenerate(cfg, writer, pal, source, log)
	}

	summary, err := generateOnce(cfg, writer, pal, log)
	if err != nil {
		return err
	}

	if generateJSON {
		return printGenerateJSON(pal, assetsDir, summary)
	}
	return nil
}

// generateOnce는 한 번의 생성을 수행하고 텍스트 진행 상황을 출력합니다.
func generateOnce(cfg *config.Config, writer *xcassets.Writer, pal *palette.Palette, log zerolog.Logger) (xcassets.Summary, error) {
	showProgress := !generateJSON && !generateQuiet

	if showProgress {
		fmt.Printf("%sCreating GutCheck color assets...\n", emojiPrefix(cfg, "🎨"))
	}

	progress := func(c palette.Color, r xcassets.Result) {
		if showProgress {
			fmt.Printf("   ✓ %s\n", c.Name)
		}
		log.Debug().Str("color", c.Name).Str("result", r.String()).Msg("colorset 기록")
	}

	summary, err := writer.WritePalette(pal, progress)
	if err != nil {
		log.Error().Err(err).Msg("colorset 생성 실패")
		return summary, err
	}

	if showProgress {
		fmt.Printf("\n%sCreated %d color assets!\n", emojiPrefix(cfg, "✅"), summary.Total())
		if stdoutIsTTY() {
			printNextSteps(cfg)
		}
	}

	log.Info().
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("unchanged", summary.Unchanged).
		Bool("dry_run", writer.DryRun).
		Msg("생성 완료")
	return summary, nil
}

// printNextSteps는 원본 스크립트의 Xcode 후속 안내를 출력합니다.
func printNextSteps(cfg *config.Config) {
	fmt.Printf("\n%sNext steps:\n", emojiPrefix(cfg, "📋"))
	fmt.Println("1. Close Xcode if it's open")
	fmt.Println("2. Reopen Xcode")
	fmt.Println("3. Clean Build (Cmd+Shift+K)")
	fmt.Println("4. Build & Run")
}

// watchAndGenerate는 감시 모드를 실행합니다. 초기 생성 후 팔레트 파일
// 변경마다 재생성하며, 깨진 팔레트 파일은 로그만 남기고 이전 상태를
// 유지합니다.
func watchAndGenerate(cfg *config.Config, writer *xcassets.Writer, pal *palette.Palette, source string, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := stats.New()

	summary, err := generateOnce(cfg, writer, pal, log)
	if err != nil {
		st.RecordFailure()
		return err
	}
	st.RecordRun(summary.Created, summary.Updated, summary.Unchanged)

	watcher, err := watch.New(source, generateDebounce)
	if err != nil {
		return err
	}

	if !generateQuiet {
		fmt.Printf("\n%sWatching %s (Ctrl+C to stop)\n", emojiPrefix(cfg, "👀"), source)
	}
	log.Info().Str("file", source).Dur("debounce", generateDebounce).Msg("감시 모드 시작")

	runErr := watcher.Run(ctx, func() {
		st.RecordWatchTrigger()

		reloaded, err := palette.LoadFile(source)
		if err == nil {
			err = reloaded.Validate()
		}
		if err != nil {
			st.RecordFailure()
			log.Error().Err(err).Str("file", source).Msg("팔레트 재로드 실패, 이전 생성 결과 유지")
			return
		}

		summary, err := generateOnce(cfg, writer, reloaded, log)
		if err != nil {
			st.RecordFailure()
			return
		}
		st.RecordRun(summary.Created, summary.Updated, summary.Unchanged)
	})

	snap := st.Snapshot()
	log.Info().
		Int64("runs", snap.Runs).
		Int64("watch_triggers", snap.WatchTriggers).
		Int64("failed", snap.Failed).
		Str("uptime", snap.Uptime).
		Msg("감시 모드 종료")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// generateSummaryJSON은 --json 출력 구조입니다.
type generateSummaryJSON struct {
	Palette   string `json:"palette"`
	AssetsDir string `json:"assets_dir"`
	DryRun    bool   `json:"dry_run"`
	Created   int    `json:"created"`
	Updated   int    `json:"updated"`
	Unchanged int    `json:"unchanged"`
	Total     int    `json:"total"`
}

func printGenerateJSON(pal *palette.Palette, assetsDir string, summary xcassets.Summary) error {
	out := generateSummaryJSON{
		Palette:   pal.Name,
		AssetsDir: assetsDir,
		DryRun:    generateDryRun,
		Created:   summary.Created,
		Updated:   summary.Updated,
		Unchanged: summary.Unchanged,
		Total:     summary.Total(),
	}
	data, err := jsonMarshalIndent(out)
	if err != nil {
		return err
	}
	printJSON(data)
	return nil
}
