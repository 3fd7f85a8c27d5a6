// Package main은 GutCheck Palette CLI의 진입점입니다.
// GutCheck 색상 팔레트를 Xcode 에셋 카탈로그 colorset 파일로 생성합니다.
package main

import (
	"os"

	"github.com/gutcheck/gutcheck-palette/cmd"
)

// 빌드 시 ldflags로 주입되는 버전 정보
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// 버전 정보를 root 패키지에 설정
	cmd.SetVersionInfo(version, commit, buildDate)

	// CLI 실행
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
