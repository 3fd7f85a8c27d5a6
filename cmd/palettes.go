package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// palettesCmd는 팔레트 레지스트리 관리 명령어 그룹입니다.
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "팔레트 레지스트리 관리",
	Long: `사용자 팔레트 파일을 이름으로 등록하고 관리합니다.
등록된 팔레트는 generate/verify 등의 --palette 플래그와
palette.default 설정에서 이름으로 참조할 수 있습니다.`,
}

// palettesListCmd는 내장 및 등록된 팔레트를 나열합니다.
var palettesListCmd = &cobra.Command{
	Use:   "list",
	Short: "팔레트 목록 출력",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newRegistry()
		if err != nil {
			return err
		}

		active, hasActive := m.Active()
		for _, e := range m.List() {
			marker := " "
			if hasActive && e.Name == active.Name {
				marker = "*"
			}

			if e.Builtin {
				fmt.Printf(" %s %s (built-in)\n", marker, e.Name)
			} else {
				fmt.Printf(" %s %s → %s\n", marker, e.Name, e.Path)
			}
		}
		return nil
	},
}

// palettesAddCmd는 팔레트 파일을 이름으로 등록합니다.
var palettesAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "팔레트 파일 등록",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		m, err := newRegistry()
		if err != nil {
			return err
		}

		if err := m.Add(name, path); err != nil {
			return fmt.Errorf("팔레트 등록 실패: %w", err)
		}
		if err := m.Save(); err != nil {
			return fmt.Errorf("레지스트리 저장 실패: %w", err)
		}

		fmt.Printf("팔레트 %q 등록 완료 (%s)\n", name, path)
		return nil
	},
}

// palettesRemoveCmd는 등록된 팔레트를 제거합니다.
var palettesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "등록된 팔레트 제거",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		m, err := newRegistry()
		if err != nil {
			return err
		}

		if err := m.Remove(name); err != nil {
			return fmt.Errorf("팔레트 제거 실패: %w", err)
		}
		if err := m.Save(); err != nil {
			return fmt.Errorf("레지스트리 저장 실패: %w", err)
		}

		fmt.Printf("팔레트 %q 제거 완료\n", name)
		return nil
	},
}

// palettesUseCmd는 활성 팔레트를 지정합니다.
var palettesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "활성 팔레트 지정",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		m, err := newRegistry()
		if err != nil {
			return err
		}

		if err := m.SetActive(name); err != nil {
			return fmt.Errorf("활성 팔레트 지정 실패: %w", err)
		}
		if err := m.Save(); err != nil {
			return fmt.Errorf("레지스트리 저장 실패: %w", err)
		}

		fmt.Printf("활성 팔레트: %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.AddCommand(palettesListCmd)
	palettesCmd.AddCommand(palettesAddCmd)
	palettesCmd.AddCommand(palettesRemoveCmd)
	palettesCmd.AddCommand(palettesUseCmd)
}
