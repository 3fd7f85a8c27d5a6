package cmd

import (
	"fmt"
	"os"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/spf13/cobra"
)

var (
	initFrom  string
	initForce bool
)

// initCmd는 내장 팔레트를 기반으로 편집 가능한 팔레트 파일을 생성합니다.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "시작용 팔레트 YAML 파일 생성",
	Long: `내장 팔레트를 복사한 편집 가능한 YAML 팔레트 파일을 생성합니다.
경로를 생략하면 현재 디렉토리의 palette.yaml에 기록합니다.

생성한 파일은 'palettes add'로 등록하거나 --palette 플래그로
직접 사용할 수 있습니다.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFrom, "from", palette.DefaultName,
		"기반이 될 내장 팔레트")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"기존 파일 덮어쓰기")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "palette.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	pal, err := palette.Builtin(initFrom)
	if err != nil {
		return err
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s이(가) 이미 존재합니다 (덮어쓰려면 --force 사용)", path)
		}
	}

	if err := pal.Save(path); err != nil {
		return fmt.Errorf("팔레트 파일 생성 실패: %w", err)
	}

	fmt.Printf("팔레트 파일 생성 완료: %s (%s 기반, 색상 %d개)\n", path, initFrom, pal.Len())
	return nil
}
