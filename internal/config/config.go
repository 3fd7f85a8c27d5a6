// Package config는 GutCheck Palette CLI의 설정 관리를 담당합니다.
// 설정 우선순위: 환경변수 > 설정파일 > 기본값
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config는 전체 애플리케이션 설정을 나타냅니다.
type Config struct {
	Assets  AssetsConfig  `mapstructure:"assets"`
	Palette PaletteConfig `mapstructure:"palette"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// AssetsConfig는 Xcode 에셋 카탈로그 관련 설정입니다.
type AssetsConfig struct {
	// Dir은 .xcassets 카탈로그 경로입니다.
	Dir string `mapstructure:"dir"`
	// Create는 카탈로그가 없을 때 생성할지 여부입니다.
	Create bool `mapstructure:"create"`
}

// PaletteConfig는 팔레트 선택 설정입니다.
type PaletteConfig struct {
	// Default는 기본 팔레트 이름입니다 ("gutcheck", "classic" 또는 등록된 이름).
	Default string `mapstructure:"default"`
	// File은 팔레트 YAML 파일 경로입니다. 설정되면 Default보다 우선합니다.
	File string `mapstructure:"file"`
}

// OutputConfig는 사용자 출력 설정입니다.
type OutputConfig struct {
	// Format은 출력 형식입니다 (text, json, simple).
	Format string `mapstructure:"format"`
	// Color는 ANSI 색상 사용 여부입니다 (auto, always, never).
	Color string `mapstructure:"color"`
	// Emoji는 진행 메시지의 이모지 사용 여부입니다.
	Emoji bool `mapstructure:"emoji"`
}

// LoggingConfig는 로깅 설정입니다.
type LoggingConfig struct {
	// Level은 로그 레벨입니다 (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Format은 로그 포맷입니다 (json, text).
	Format string `mapstructure:"format"`
	// File은 로그 파일 경로입니다. 비어있으면 stderr로 출력합니다.
	File string `mapstructure:"file"`
}

// UpdateConfig는 자동 업데이트 설정입니다.
type UpdateConfig struct {
	// GithubRepo는 릴리스를 확인할 GitHub 저장소입니다.
	GithubRepo string `mapstructure:"github_repo"`
	// CheckIntervalHours는 업데이트 확인 간격(시간)입니다.
	CheckIntervalHours int `mapstructure:"check_interval_hours"`
}

// Load는 설정을 로드하고 Config 구조체를 반환합니다.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	// 홈 디렉토리 경로 확장
	cfg.Assets.Dir = expandPath(cfg.Assets.Dir)
	cfg.Palette.File = expandPath(cfg.Palette.File)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// Validate는 설정의 유효성을 검사합니다.
func (c *Config) Validate() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir이 비어있습니다")
	}

	// 출력 형식 검증
	validFormats := map[string]bool{
		"text":   true,
		"json":   true,
		"simple": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("유효하지 않은 출력 형식: %s (text, json, simple 중 하나)", c.Output.Format)
	}

	// 색상 모드 검증
	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Output.Color] {
		return fmt.Errorf("유효하지 않은 색상 모드: %s (auto, always, never 중 하나)", c.Output.Color)
	}

	// 로그 레벨 검증
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("유효하지 않은 로그 레벨: %s (debug, info, warn, error 중 하나)", c.Logging.Level)
	}

	// 로그 포맷 검증
	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("유효하지 않은 로그 포맷: %s (json, text 중 하나)", c.Logging.Format)
	}

	if c.Update.CheckIntervalHours < 0 {
		return fmt.Errorf("update.check_interval_hours는 0 이상이어야 합니다")
	}

	return nil
}

// GetDefaultPalette는 기본 팔레트 이름을 반환합니다.
// 설정되지 않은 경우 "gutcheck"를 반환합니다.
func (c *PaletteConfig) GetDefaultPalette() string {
	if c.Default == "" {
		return "gutcheck"
	}
	return c.Default
}

// GetCheckInterval은 업데이트 확인 간격(시간)을 반환합니다.
// 설정되지 않은 경우 기본값 24를 반환합니다.
func (c *UpdateConfig) GetCheckInterval() int {
	if c.CheckIntervalHours <= 0 {
		return 24
	}
	return c.CheckIntervalHours
}

// expandPath는 ~를 홈 디렉토리로 확장합니다.
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ConfigDirName은 사용자 설정 디렉토리 이름입니다.
const ConfigDirName = "gutcheck-palette"

// ConfigDir는 설정 디렉토리 경로를 반환합니다.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("홈 디렉토리를 찾을 수 없습니다: %w", err)
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// EnsureConfigDir는 설정 디렉토리가 존재하는지 확인하고 없으면 생성합니다.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	return nil
}

// DefaultConfigPath는 기본 설정 파일 경로를 반환합니다.
func DefaultConfigPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
