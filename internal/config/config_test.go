package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// validConfig returns a config that passes Validate.
func validConfig() *Config {
	return &Config{
		Assets:  AssetsConfig{Dir: "GutCheck/Assets.xcassets"},
		Palette: PaletteConfig{Default: "gutcheck"},
		Output:  OutputConfig{Format: "text", Color: "auto", Emoji: true},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Update:  UpdateConfig{GithubRepo: "gutcheck/gutcheck-palette", CheckIntervalHours: 24},
	}
}

// TestConfig_Validate는 설정 검증을 테스트합니다.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name:    "유효한 설정",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "에셋 디렉토리 누락",
			modify:  func(c *Config) { c.Assets.Dir = "" },
			wantErr: true,
		},
		{
			name:    "유효하지 않은 출력 형식",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "유효하지 않은 색상 모드",
			modify:  func(c *Config) { c.Output.Color = "sometimes" },
			wantErr: true,
		},
		{
			name:    "유효하지 않은 로그 레벨",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "유효하지 않은 로그 포맷",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "음수 업데이트 간격",
			modify:  func(c *Config) { c.Update.CheckIntervalHours = -1 },
			wantErr: true,
		},
		{
			name:    "simple 출력 형식",
			modify:  func(c *Config) { c.Output.Format = "simple" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPaletteConfig_GetDefaultPalette는 기본 팔레트 폴백을 테스트합니다.
func TestPaletteConfig_GetDefaultPalette(t *testing.T) {
	p := &PaletteConfig{}
	if got := p.GetDefaultPalette(); got != "gutcheck" {
		t.Errorf("GetDefaultPalette() = %q, want %q", got, "gutcheck")
	}

	p.Default = "classic"
	if got := p.GetDefaultPalette(); got != "classic" {
		t.Errorf("GetDefaultPalette() = %q, want %q", got, "classic")
	}
}

// TestUpdateConfig_GetCheckInterval은 업데이트 간격 폴백을 테스트합니다.
func TestUpdateConfig_GetCheckInterval(t *testing.T) {
	u := &UpdateConfig{}
	if got := u.GetCheckInterval(); got != 24 {
		t.Errorf("GetCheckInterval() = %d, want 24", got)
	}

	u.CheckIntervalHours = 6
	if got := u.GetCheckInterval(); got != 6 {
		t.Errorf("GetCheckInterval() = %d, want 6", got)
	}
}

// TestExpandPath는 ~ 확장을 테스트합니다.
func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("home directory not available")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~/palettes/app.yaml", filepath.Join(home, "palettes", "app.yaml")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestDefaultConfigPath는 기본 설정 파일 경로를 테스트합니다.
func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("home directory not available")
	}
	if !strings.HasSuffix(path, filepath.Join(".config", ConfigDirName, "config.yaml")) {
		t.Errorf("DefaultConfigPath() = %q, want .config/%s/config.yaml suffix", path, ConfigDirName)
	}
}
