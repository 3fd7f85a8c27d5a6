// Package cmd는 GutCheck Palette CLI의 명령어를 정의합니다.
// setup.go는 초기 설정 마법사를 구현합니다.
package cmd

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gutcheck/gutcheck-palette/internal/branding"
	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// toolInfo는 감지된 Xcode 도구 정보를 담는 구조체입니다.
type toolInfo struct {
	Name  string
	Path  string
	Found bool
}

// setupCmd는 초기 설정 마법사 명령어입니다.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "초기 설정 마법사를 실행합니다",
	Long: `GutCheck Palette CLI의 초기 설정을 안내합니다.

설정 마법사가 수행하는 작업:
  1. Xcode 도구 자동 감지 (xcodebuild, actool, plutil)
  2. 에셋 카탈로그(.xcassets) 후보 탐색 및 선택
  3. 기본 팔레트 선택
  4. 설정 파일 생성 (~/.config/gutcheck-palette/config.yaml)

이미 설정 파일이 존재하면 덮어쓸지 확인합니다.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// runSetup은 setup 명령의 실행 로직입니다.
func runSetup(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)

	// 1. 환영 메시지 출력
	printWelcomeBanner()

	// 2. 기존 설정 파일 확인
	configPath := config.DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("\n설정 파일이 이미 존재합니다: %s\n", configPath)
		fmt.Print("덮어쓰시겠습니까? (y/N): ")
		if !scanYesNo(scanner) {
			fmt.Println("설정을 취소합니다.")
			return nil
		}
	}

	// 3. Xcode 도구 감지
	fmt.Println("\n========================================")
	fmt.Println(" Xcode 도구 감지")
	fmt.Println("========================================")
	tools := detectXcodeTools()
	printToolStatus(tools)

	// 4. 에셋 카탈로그 선택
	fmt.Println("\n========================================")
	fmt.Println(" 에셋 카탈로그 설정")
	fmt.Println("========================================")
	assetsDir := promptAssetsDir(scanner)

	// 5. 기본 팔레트 선택
	fmt.Println("\n========================================")
	fmt.Println(" 기본 팔레트 설정")
	fmt.Println("========================================")
	defaultPalette := promptDefaultPalette(scanner)

	// 6. 설정 파일 생성
	fmt.Println("\n========================================")
	fmt.Println(" 설정 파일 생성")
	fmt.Println("========================================")
	if err := writeSetupConfig(configPath, assetsDir, defaultPalette); err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}
	fmt.Printf("설정 파일이 저장되었습니다: %s\n", configPath)

	// 7. 설정 요약 출력
	printSetupSummary(tools, assetsDir, defaultPalette, configPath)

	return nil
}

// printWelcomeBanner는 환영 배너를 출력합니다.
func printWelcomeBanner() {
	fmt.Println()
	fmt.Println(branding.StartupBanner())
	fmt.Println("========================================")
	fmt.Println(" 초기 설정")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Printf("이 마법사가 %s를 설정합니다.\n", branding.CLIName)
	fmt.Println()
	fmt.Println("수행 항목:")
	fmt.Println("  1. Xcode 도구 자동 감지")
	fmt.Println("  2. 에셋 카탈로그 탐색 및 선택")
	fmt.Println("  3. 기본 팔레트 선택")
	fmt.Println("  4. 설정 파일 생성")
}

// detectXcodeTools는 PATH에서 Xcode 커맨드라인 도구를 감지합니다.
func detectXcodeTools() []toolInfo {
	names := []string{"xcodebuild", "actool", "plutil"}

	tools := make([]toolInfo, 0, len(names))
	for _, name := range names {
		info := toolInfo{Name: name}
		if path, err := exec.LookPath(name); err == nil {
			info.Found = true
			info.Path = path
		}
		tools = append(tools, info)
	}
	return tools
}

// printToolStatus는 감지된 도구 상태를 출력합니다.
func printToolStatus(tools []toolInfo) {
	fmt.Println()
	anyFound := false

	for _, t := range tools {
		if t.Found {
			anyFound = true
			fmt.Printf("  [v] %s: 감지됨 (%s)\n", t.Name, t.Path)
		} else {
			fmt.Printf("  [ ] %s: 미감지\n", t.Name)
		}
	}

	if !anyFound {
		fmt.Println()
		fmt.Println("  주의: Xcode 도구가 감지되지 않았습니다.")
		fmt.Println("  colorset 생성은 가능하지만, 빌드 확인은 Xcode가 있는")
		fmt.Println("  환경에서 수행해야 합니다.")
	}
}

// findAssetCatalogs는 현재 디렉토리 아래의 .xcassets 디렉토리를
// 탐색합니다. 숨김 디렉토리는 건너뜁니다.
func findAssetCatalogs(root string) []string {
	var candidates []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && name != "." {
			return filepath.SkipDir
		}
		if strings.HasSuffix(d.Name(), ".xcassets") {
			candidates = append(candidates, path)
			return filepath.SkipDir
		}
		return nil
	})

	return candidates
}

// promptAssetsDir는 에셋 카탈로그 경로를 사용자에게 입력받습니다.
func promptAssetsDir(scanner *bufio.Scanner) string {
	defaultDir := "GutCheck/Assets.xcassets"

	cwd, _ := os.Getwd()
	candidates := findAssetCatalogs(cwd)

	fmt.Println()
	if len(candidates) > 0 {
		fmt.Println("발견된 에셋 카탈로그:")
		for i, c := range candidates {
			fmt.Printf("  %d) %s\n", i+1, c)
		}
		fmt.Printf("  %d) 직접 입력\n", len(candidates)+1)
		fmt.Print("\n선택 [1]: ")

		if !scanner.Scan() {
			return candidates[0]
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return candidates[0]
		}

		var choice int
		if _, err := fmt.Sscanf(input, "%d", &choice); err == nil {
			if choice >= 1 && choice <= len(candidates) {
				return candidates[choice-1]
			}
			if choice == len(candidates)+1 {
				return promptCustomAssetsDir(scanner, defaultDir)
			}
		}
		fmt.Printf("잘못된 선택입니다. 첫 번째 후보를 사용합니다: %s\n", candidates[0])
		return candidates[0]
	}

	fmt.Println("에셋 카탈로그를 찾지 못했습니다.")
	return promptCustomAssetsDir(scanner, defaultDir)
}

// promptCustomAssetsDir는 에셋 카탈로그 경로 직접 입력을 처리합니다.
func promptCustomAssetsDir(scanner *bufio.Scanner, defaultDir string) string {
	fmt.Printf("에셋 카탈로그 경로를 입력하세요 [%s]: ", defaultDir)
	if scanner.Scan() {
		if input := strings.TrimSpace(scanner.Text()); input != "" {
			return input
		}
	}
	return defaultDir
}

// promptDefaultPalette는 기본 팔레트를 사용자에게 선택받습니다.
func promptDefaultPalette(scanner *bufio.Scanner) string {
	names := palette.BuiltinNames()

	fmt.Println()
	fmt.Println("기본 팔레트를 선택하세요:")
	for i, name := range names {
		p, err := palette.Builtin(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %d) %s - %s\n", i+1, name, p.Description)
	}
	fmt.Print("\n선택 [1]: ")

	if !scanner.Scan() {
		return palette.DefaultName
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return palette.DefaultName
	}

	var choice int
	if _, err := fmt.Sscanf(input, "%d", &choice); err == nil && choice >= 1 && choice <= len(names) {
		return names[choice-1]
	}

	fmt.Printf("잘못된 선택입니다. 기본값을 사용합니다: %s\n", palette.DefaultName)
	return palette.DefaultName
}

// setupConfig는 설정 마법사에서 생성하는 설정 구조체입니다.
type setupConfig struct {
	Assets  setupAssetsConfig  `yaml:"assets"`
	Palette setupPaletteConfig `yaml:"palette"`
	Output  setupOutputConfig  `yaml:"output"`
	Logging setupLoggingConfig `yaml:"logging"`
	Update  setupUpdateConfig  `yaml:"update"`
}

type setupAssetsConfig struct {
	Dir    string `yaml:"dir"`
	Create bool   `yaml:"create"`
}

type setupPaletteConfig struct {
	Default string `yaml:"default"`
	File    string `yaml:"file,omitempty"`
}

type setupOutputConfig struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
	Emoji  bool   `yaml:"emoji"`
}

type setupLoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type setupUpdateConfig struct {
	GithubRepo         string `yaml:"github_repo"`
	CheckIntervalHours int    `yaml:"check_interval_hours"`
}

// writeSetupConfig는 설정을 YAML 파일로 저장합니다.
func writeSetupConfig(configPath, assetsDir, defaultPalette string) error {
	// 설정 디렉토리 생성 (0700 권한)
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	cfg := setupConfig{
		Assets: setupAssetsConfig{
			Dir:    assetsDir,
			Create: false,
		},
		Palette: setupPaletteConfig{
			Default: defaultPalette,
		},
		Output: setupOutputConfig{
			Format: "text",
			Color:  "auto",
			Emoji:  true,
		},
		Logging: setupLoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "",
		},
		Update: setupUpdateConfig{
			GithubRepo:         "gutcheck/gutcheck-palette",
			CheckIntervalHours: 24,
		},
	}

	// YAML 직렬화
	yamlData, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("YAML 직렬화 실패: %w", err)
	}

	// 헤더 주석 추가
	header := "# GutCheck Palette CLI 설정 파일\n"
	header += "# 생성됨: gutcheck-palette setup\n\n"

	content := header + string(yamlData)

	// 파일 저장 (0600 권한)
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("설정 파일 저장 실패: %w", err)
	}

	return nil
}

// printSetupSummary는 설정 완료 요약을 출력합니다.
func printSetupSummary(tools []toolInfo, assetsDir, defaultPalette, configPath string) {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println(" 설정 완료")
	fmt.Println("========================================")
	fmt.Println()

	// 감지된 도구
	fmt.Println("감지된 Xcode 도구:")
	anyFound := false
	for _, t := range tools {
		if t.Found {
			anyFound = true
			fmt.Printf("  [v] %s\n", t.Name)
		}
	}
	if !anyFound {
		fmt.Println("  (없음)")
	}
	fmt.Println()

	fmt.Printf("에셋 카탈로그: %s\n", assetsDir)
	fmt.Printf("기본 팔레트:   %s\n", defaultPalette)
	fmt.Printf("설정 파일:     %s\n", configPath)
	fmt.Println()

	// 다음 단계 안내
	fmt.Println("다음 단계:")
	fmt.Println("  1. gutcheck-palette generate  - colorset 파일 생성")
	fmt.Println("  2. gutcheck-palette verify    - 카탈로그 검증")
	fmt.Println("  3. gutcheck-palette browse    - 팔레트 브라우저")
	fmt.Println()
}

// scanYesNo는 y/N 응답을 읽습니다 (기본값 no).
func scanYesNo(scanner *bufio.Scanner) bool {
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
