package updater

import (
	"strings"
	"testing"
)

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in   string
		want semver
	}{
		{"1.2.3", semver{1, 2, 3}},
		{"v1.2.3", semver{1, 2, 3}},
		{" v2.0.10 ", semver{2, 0, 10}},
		{"1.2.3-beta.1", semver{1, 2, 3}},
		{"1.2", semver{1, 2, 0}},
		{"dev", semver{}},
		{"", semver{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseSemver(tt.in); got != tt.want {
				t.Errorf("parseSemver(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSemver_NewerThan(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"patch bump", "1.0.1", "1.0.0", true},
		{"minor bump", "1.3.0", "1.2.9", true},
		{"major bump", "2.0.0", "1.9.9", true},
		{"equal", "1.2.3", "1.2.3", false},
		{"older", "1.2.3", "1.2.4", false},
		{"prerelease ignored", "1.2.3-rc.1", "1.2.3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSemver(tt.a).newerThan(parseSemver(tt.b))
			if got != tt.want {
				t.Errorf("%q newerThan %q = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFindChecksum(t *testing.T) {
	list := strings.NewReader(
		"abc123  gutcheck-palette_linux_amd64\n" +
			"def456  *gutcheck-palette_darwin_arm64\n" +
			"\n" +
			"malformed-line\n")

	tests := []struct {
		name     string
		fileName string
		wantSum  string
		wantOK   bool
	}{
		{"plain entry", "gutcheck-palette_linux_amd64", "abc123", true},
		{"binary-mode entry", "gutcheck-palette_darwin_arm64", "def456", true},
		{"absent entry", "gutcheck-palette_windows_amd64", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _ = list.Seek(0, 0)
			sum, ok := findChecksum(list, tt.fileName)
			if ok != tt.wantOK {
				t.Fatalf("findChecksum(%q) ok = %v, want %v", tt.fileName, ok, tt.wantOK)
			}
			if sum != tt.wantSum {
				t.Errorf("findChecksum(%q) = %q, want %q", tt.fileName, sum, tt.wantSum)
			}
		})
	}
}

func TestMatchesPlatform(t *testing.T) {
	tests := []struct {
		name  string
		asset string
		os    string
		arch  string
		want  bool
	}{
		{"exact match", "gutcheck-palette_linux_amd64", "linux", "amd64", true},
		{"arch alias", "gutcheck-palette_darwin_x86_64.tar.gz", "darwin", "amd64", true},
		{"arm alias", "gutcheck-palette_linux_aarch64", "linux", "arm64", true},
		{"wrong os", "gutcheck-palette_windows_amd64.zip", "linux", "amd64", false},
		{"wrong arch", "gutcheck-palette_linux_arm64", "linux", "amd64", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesPlatform(tt.asset, tt.os, tt.arch); got != tt.want {
				t.Errorf("matchesPlatform(%q, %s, %s) = %v, want %v",
					tt.asset, tt.os, tt.arch, got, tt.want)
			}
		})
	}
}

func TestIsChecksumFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"checksums.txt", true},
		{"gutcheck-palette_0.2.0_sha256sums", true},
		{"gutcheck-palette_linux_amd64.sha256", true},
		{"gutcheck-palette_linux_amd64", false},
	}

	for _, tt := range tests {
		if got := isChecksumFile(tt.name); got != tt.want {
			t.Errorf("isChecksumFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
