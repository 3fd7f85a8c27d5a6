// Package cmd는 GutCheck Palette CLI의 명령어를 정의합니다.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// 전역 플래그
	cfgFile string
	verbose bool

	// 버전 정보 (main에서 주입)
	appVersion   string
	appCommit    string
	appBuildDate string
)

// rootCmd는 CLI의 루트 명령어입니다.
var rootCmd = &cobra.Command{
	Use:   "gutcheck-palette",
	Short: "GutCheck Palette CLI",
	Long: `GutCheck Palette CLI는 GutCheck 앱의 색상 팔레트를
Xcode 에셋 카탈로그(.xcassets)의 colorset 파일로 생성합니다.

라이트/다크 모드 hex 값을 가진 팔레트를 읽어
<Name>.colorset/Contents.json 파일을 색상별로 생성합니다.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 로거 초기화
		return initLogger()
	},
}

// Execute는 루트 명령어를 실행합니다.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo는 버전 정보를 설정합니다.
func SetVersionInfo(version, commit, buildDate string) {
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

// GetVersionInfo는 버전 정보를 반환합니다.
func GetVersionInfo() (version, commit, buildDate string) {
	return appVersion, appCommit, appBuildDate
}

func init() {
	cobra.OnInitialize(initConfig)

	// 전역 플래그 정의
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"설정 파일 경로 (기본값: ~/.config/gutcheck-palette/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"상세 로그 출력 (debug 레벨)")
}

// initConfig는 설정 파일을 초기화합니다.
// 설정 우선순위: 환경변수 > 설정파일 > 기본값
func initConfig() {
	if cfgFile != "" {
		// 명시적 설정 파일 사용
		viper.SetConfigFile(cfgFile)
	} else {
		// 기본 설정 경로: ~/.config/gutcheck-palette/config.yaml
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "홈 디렉토리를 찾을 수 없습니다: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", config.ConfigDirName)
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// 환경변수 자동 바인딩 (GUTPALETTE_ 접두사)
	viper.SetEnvPrefix("GUTPALETTE")
	viper.AutomaticEnv()

	// 기본값 설정
	setDefaults()

	// 설정 파일 읽기 (없어도 오류 아님)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// 설정 파일이 있지만 읽기 실패한 경우만 오류
			fmt.Fprintf(os.Stderr, "설정 파일 읽기 실패: %v\n", err)
		}
	}
}

// setDefaults는 기본 설정값을 정의합니다.
func setDefaults() {
	// 에셋 카탈로그 설정
	viper.SetDefault("assets.dir", "GutCheck/Assets.xcassets")
	viper.SetDefault("assets.create", false)

	// 팔레트 설정
	viper.SetDefault("palette.default", "gutcheck")
	viper.SetDefault("palette.file", "")

	// 출력 설정
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", "auto")
	viper.SetDefault("output.emoji", true)

	// 로깅 설정
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.file", "")

	// 업데이트 설정
	viper.SetDefault("update.github_repo", "gutcheck/gutcheck-palette")
	viper.SetDefault("update.check_interval_hours", 24)
}

// initLogger는 로거를 초기화합니다.
func initLogger() error {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// verbose 플래그가 설정되면 debug 레벨로 오버라이드
	if verbose {
		cfg.Logging.Level = "debug"
	}

	// 로거 설정
	logger.Setup(cfg.Logging)
	return nil
}

// loadConfig는 설정을 로드하고 검증합니다.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("설정 검증 실패: %w", err)
	}
	return cfg, nil
}
