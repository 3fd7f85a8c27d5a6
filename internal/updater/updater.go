// Package updater는 GitHub Releases 기반의 자동 업데이트를 구현합니다.
// 새 버전 확인, 플랫폼 바이너리 다운로드, SHA256 검증, 원자적 교체를
// 담당합니다.
package updater

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gutcheck/gutcheck-palette/internal/config"
)

// checkMemoFile은 마지막 확인 시간을 기록하는 설정 디렉토리 내 파일명입니다.
const checkMemoFile = ".last_update_check"

// Updater는 자동 업데이트의 한 사이클을 수행합니다.
type Updater struct {
	rawVersion string
	current    semver
	repo       string
	interval   time.Duration
	client     *http.Client
}

// New는 Updater를 생성합니다. checkIntervalHours가 0 이하이면
// 24시간을 사용합니다.
func New(currentVersion, githubRepo string, checkIntervalHours int) *Updater {
	if checkIntervalHours <= 0 {
		checkIntervalHours = 24
	}
	return &Updater{
		rawVersion: currentVersion,
		current:    parseSemver(currentVersion),
		repo:       githubRepo,
		interval:   time.Duration(checkIntervalHours) * time.Hour,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// GetCurrentVersion은 현재 버전 문자열을 반환합니다.
func (u *Updater) GetCurrentVersion() string {
	return u.rawVersion
}

// CheckForUpdate는 최신 릴리스를 조회하고 현재 버전보다 새로운지
// 반환합니다. 개발 빌드는 항상 최신으로 취급합니다.
func (u *Updater) CheckForUpdate() (*Release, bool, error) {
	release, err := u.latestRelease()
	if err != nil {
		return nil, false, fmt.Errorf("최신 릴리스 확인 실패: %w", err)
	}

	_ = u.touchCheckMemo()

	if u.rawVersion == "" || u.rawVersion == "dev" {
		return release, false, nil
	}

	return release, parseSemver(release.Version).newerThan(u.current), nil
}

// DownloadAndReplace는 릴리스에서 현재 플랫폼의 바이너리를 받아
// 실행 중인 바이너리를 교체합니다. 체크섬 에셋이 있으면 SHA256을
// 검증하고, 없으면 경고 후 진행합니다.
func (u *Updater) DownloadAndReplace(release *Release) error {
	asset, err := release.platformAsset()
	if err != nil {
		return err
	}

	wantSum, err := u.releaseChecksum(release, asset.Name)
	if err != nil {
		fmt.Println("  경고: 체크섬 파일을 찾을 수 없어 무결성 검증을 건너뜁니다.")
	}

	fmt.Printf("  다운로드 중: %s (%.1f MB)\n", asset.Name, float64(asset.Size)/(1024*1024))
	tmpPath, err := u.download(asset)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if wantSum != "" {
		fmt.Println("  체크섬 검증 중...")
		if err := checkSHA256(tmpPath, wantSum); err != nil {
			return err
		}
		fmt.Println("  체크섬 검증 완료")
	}

	return installBinary(tmpPath)
}

// ShouldCheck는 마지막 확인 이후 interval이 지났는지 반환합니다.
// 기록이 없거나 읽을 수 없으면 확인이 필요한 것으로 봅니다.
func (u *Updater) ShouldCheck() bool {
	last, err := u.lastCheckedAt()
	if err != nil {
		return true
	}
	return time.Since(last) >= u.interval
}

// installBinary는 임시 파일을 실행 중인 바이너리 위치로 옮깁니다.
// 기존 바이너리를 .bak으로 비켜두고 rename이 실패하면 되돌립니다.
func installBinary(tmpPath string) error {
	if err := os.Chmod(tmpPath, 0755); err != nil {
		return fmt.Errorf("실행 권한 설정 실패: %w", err)
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("현재 바이너리 경로 확인 실패: %w", err)
	}
	if self, err = filepath.EvalSymlinks(self); err != nil {
		return fmt.Errorf("심볼릭 링크 해석 실패: %w", err)
	}

	backup := self + ".bak"
	if err := os.Rename(self, backup); err != nil {
		return fmt.Errorf("기존 바이너리 백업 실패: %w", err)
	}
	if err := os.Rename(tmpPath, self); err != nil {
		_ = os.Rename(backup, self)
		return fmt.Errorf("새 바이너리 설치 실패: %w", err)
	}
	_ = os.Remove(backup)

	return nil
}

// checkSHA256은 파일의 SHA256 해시가 기대값과 일치하는지 확인합니다.
func checkSHA256(path, want string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일 열기 실패: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("해시 계산 실패: %w", err)
	}

	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("체크섬 불일치: 예상 %s, 실제 %s", want, got)
	}
	return nil
}

// memoPath는 확인 시간 기록 파일의 경로를 반환합니다.
func memoPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, checkMemoFile), nil
}

// touchCheckMemo는 현재 시간을 마지막 확인 시간으로 기록합니다.
func (u *Updater) touchCheckMemo() error {
	path, err := memoPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}
	return os.WriteFile(path, []byte(time.Now().Format(time.RFC3339)), 0600)
}

// lastCheckedAt은 기록된 마지막 확인 시간을 읽습니다.
func (u *Updater) lastCheckedAt() (time.Time, error) {
	path, err := memoPath()
	if err != nil {
		return time.Time{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
}

// semver는 비교 가능한 major.minor.patch 버전입니다.
type semver struct {
	major, minor, patch int
}

// parseSemver는 버전 문자열을 파싱합니다. 'v' 접두사와 프리릴리스
// 접미사(-beta.1 등)는 무시하며, 파싱할 수 없는 부분은 0으로 봅니다.
func parseSemver(s string) semver {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}

	var v semver
	fields := []*int{&v.major, &v.minor, &v.patch}
	for i, part := range strings.SplitN(s, ".", 3) {
		if i >= len(fields) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		*fields[i] = n
	}
	return v
}

// newerThan은 v가 o보다 새 버전인지 반환합니다.
func (v semver) newerThan(o semver) bool {
	if v.major != o.major {
		return v.major > o.major
	}
	if v.minor != o.minor {
		return v.minor > o.minor
	}
	return v.patch > o.patch
}
