// Package cmd는 GutCheck Palette CLI의 명령어를 정의합니다.
// resolve.go는 명령어들이 공유하는 팔레트 해석 로직입니다.
package cmd

import (
	"fmt"

	"github.com/gutcheck/gutcheck-palette/internal/config"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/gutcheck/gutcheck-palette/internal/registry"
)

// newRegistry는 설정 디렉토리를 기반으로 팔레트 레지스트리를 로드합니다.
func newRegistry() (*registry.Manager, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}

	m := registry.NewManager(dir)
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("팔레트 레지스트리 로드 실패: %w", err)
	}
	return m, nil
}

// resolvePalette는 팔레트를 해석합니다. 우선순위: --palette 플래그 >
// palette.file 설정 > 레지스트리의 활성 팔레트 > palette.default 설정.
func resolvePalette(cfg *config.Config, flagValue string) (*palette.Palette, error) {
	p, _, err := resolvePaletteSource(cfg, flagValue)
	return p, err
}

// resolvePaletteSource는 resolvePalette에 더해 팔레트 파일 경로를
// 반환합니다. 내장 팔레트는 빈 경로를 반환합니다.
func resolvePaletteSource(cfg *config.Config, flagValue string) (*palette.Palette, string, error) {
	m, err := newRegistry()
	if err != nil {
		return nil, "", err
	}

	// 우선순위: 플래그 > palette.file 설정 > 활성 팔레트 > palette.default
	nameOrPath := flagValue
	if nameOrPath == "" {
		if cfg.Palette.File != "" {
			nameOrPath = cfg.Palette.File
		} else if active, ok := m.Active(); ok {
			nameOrPath = active.Name
		} else {
			nameOrPath = cfg.Palette.GetDefaultPalette()
		}
	}

	p, source, err := m.ResolveSource(nameOrPath)
	if err != nil {
		return nil, "", err
	}

	if err := p.Validate(); err != nil {
		return nil, "", err
	}
	return p, source, nil
}
