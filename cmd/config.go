// Package cmd는 GutCheck Palette CLI의 명령어를 정의합니다.
// config.go는 설정 관리 명령을 구현합니다.
package cmd

import (
	"fmt"
	"strings"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd는 설정 관리를 위한 상위 명령어입니다.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정을 관리합니다",
	Long: `설정 파일의 값을 조회하거나 수정합니다.

설정 파일 위치: ~/.config/gutcheck-palette/config.yaml
모든 키는 GUTPALETTE_ 접두사의 환경변수로도 설정할 수 있습니다.
(예: GUTPALETTE_ASSETS_DIR, GUTPALETTE_LOGGING_LEVEL)`,
}

// configSetCmd는 설정 값을 저장하는 명령어입니다.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "설정 값을 저장합니다",
	Long: `설정 파일에 값을 저장합니다.

키는 점(.)으로 구분된 경로를 사용합니다.
예시:
  gutcheck-palette config set assets.dir MyApp/Assets.xcassets
  gutcheck-palette config set palette.default classic
  gutcheck-palette config set logging.level debug

지원하는 설정 키:
  assets.dir                  - 에셋 카탈로그 경로
  assets.create               - 카탈로그가 없으면 생성 (true/false)
  palette.default             - 기본 내장 팔레트 (gutcheck, classic)
  palette.file                - 팔레트 YAML 파일 경로
  output.format               - 출력 포맷 (text, json, simple)
  output.color                - 색상 출력 (auto, always, never)
  output.emoji                - 이모지 출력 (true/false)
  logging.level               - 로그 레벨 (debug, info, warn, error)
  logging.format              - 로그 포맷 (json, text)
  logging.file                - 로그 파일 경로 (비어있으면 stderr)
  update.github_repo          - 업데이트 확인 저장소
  update.check_interval_hours - 업데이트 확인 주기(시간)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configGetCmd는 설정 값을 조회하는 명령어입니다.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "설정 값을 조회합니다",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		value := viper.Get(key)
		if value == nil {
			return fmt.Errorf("설정 키를 찾을 수 없습니다: %s", key)
		}

		fmt.Printf("%s = %v\n", key, value)
		return nil
	},
}

// configListCmd는 전체 설정을 출력하는 명령어입니다.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "전체 설정을 출력합니다",
	Long:  `현재 적용된 모든 설정을 YAML 포맷으로 출력합니다.`,
	RunE:  runConfigList,
}

// configPathCmd는 설정 파일 경로를 출력하는 명령어입니다.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로를 출력합니다",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.DefaultConfigPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	// 하위 명령 등록
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
}

// runConfigSet은 설정 값을 저장합니다.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// 유효한 키인지 확인
	if !isValidConfigKey(key) {
		return fmt.Errorf("알 수 없는 설정 키: %s", key)
	}

	// 값 변환 (숫자, 불리언 등)
	parsedValue := parseConfigValue(value)

	// viper에 설정
	viper.Set(key, parsedValue)

	// 설정 디렉토리 확인/생성
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	// 설정 파일 저장
	configPath := config.DefaultConfigPath()
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("설정 파일 저장 실패: %w", err)
	}

	fmt.Printf("%s = %v\n", key, parsedValue)
	fmt.Printf("설정이 저장되었습니다: %s\n", configPath)
	return nil
}

// runConfigList는 전체 설정을 출력합니다.
func runConfigList(cmd *cobra.Command, args []string) error {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// 설정 파일 경로 출력
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		fmt.Printf("# 설정 파일: %s\n", configFile)
	} else {
		fmt.Printf("# 설정 파일: (기본값 사용 중)\n")
	}
	fmt.Println()

	// YAML로 직렬화
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("YAML 직렬화 실패: %w", err)
	}

	fmt.Println(string(yamlData))
	return nil
}

// isValidConfigKey는 유효한 설정 키인지 확인합니다.
func isValidConfigKey(key string) bool {
	validKeys := map[string]bool{
		"assets.dir":                  true,
		"assets.create":               true,
		"palette.default":             true,
		"palette.file":                true,
		"output.format":               true,
		"output.color":                true,
		"output.emoji":                true,
		"logging.level":               true,
		"logging.format":              true,
		"logging.file":                true,
		"update.github_repo":          true,
		"update.check_interval_hours": true,
	}
	return validKeys[key]
}

// parseConfigValue는 문자열 값을 적절한 타입으로 변환합니다.
func parseConfigValue(value string) interface{} {
	// 불리언
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}

	// 정수
	var intVal int
	if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
		if !strings.Contains(value, ".") {
			return intVal
		}
	}

	// 기본: 문자열
	return value
}
