// github.go는 GitHub Releases API 조회와 에셋 다운로드를 담당합니다.
package updater

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gutcheck/gutcheck-palette/internal/branding"
)

// githubAPIBase는 GitHub API 기본 URL입니다.
const githubAPIBase = "https://api.github.com"

// Release는 GitHub 릴리스 응답에서 사용하는 필드들입니다.
type Release struct {
	Version     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []Asset   `json:"assets"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
}

// Asset는 릴리스 첨부 파일입니다.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
	ContentType        string `json:"content_type"`
}

// latestRelease는 저장소의 최신 릴리스를 조회합니다.
func (u *Updater) latestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", githubAPIBase, u.repo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", branding.BinaryName+"/"+u.rawVersion)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub API 요청 실패: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusTooManyRequests:
		return nil, fmt.Errorf("GitHub API 요청 한도 초과. 잠시 후 다시 시도하세요")
	case http.StatusNotFound:
		return nil, fmt.Errorf("릴리스를 찾을 수 없습니다: %s", u.repo)
	default:
		return nil, fmt.Errorf("GitHub API 응답 오류 (HTTP %d)", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("릴리스 정보 파싱 실패: %w", err)
	}
	return &release, nil
}

// platformAsset는 현재 OS/아키텍처용 바이너리 에셋을 찾습니다.
func (r *Release) platformAsset() (*Asset, error) {
	for i := range r.Assets {
		name := strings.ToLower(r.Assets[i].Name)
		if isChecksumFile(name) {
			continue
		}
		if matchesPlatform(name, runtime.GOOS, runtime.GOARCH) {
			return &r.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("현재 플랫폼(%s/%s)에 맞는 바이너리를 찾을 수 없습니다",
		runtime.GOOS, runtime.GOARCH)
}

// archAliases는 릴리스 에셋 이름에서 통용되는 아키텍처 표기들입니다.
var archAliases = map[string][]string{
	"amd64": {"amd64", "x86_64", "x64"},
	"arm64": {"arm64", "aarch64"},
	"386":   {"386", "i386", "x86"},
}

// matchesPlatform은 소문자 에셋 이름이 주어진 OS와 아키텍처에
// 해당하는지 확인합니다.
func matchesPlatform(name, osName, arch string) bool {
	if !strings.Contains(name, osName) {
		return false
	}

	aliases, ok := archAliases[arch]
	if !ok {
		aliases = []string{arch}
	}
	for _, alias := range aliases {
		if strings.Contains(name, alias) {
			return true
		}
	}
	return false
}

// isChecksumFile은 소문자 에셋 이름이 체크섬 목록인지 확인합니다.
func isChecksumFile(name string) bool {
	return strings.Contains(name, "checksums") ||
		strings.Contains(name, "sha256sums") ||
		strings.HasSuffix(name, ".sha256")
}

// releaseChecksum은 릴리스의 체크섬 에셋에서 assetName의 SHA256
// 해시를 가져옵니다.
func (u *Updater) releaseChecksum(release *Release, assetName string) (string, error) {
	var checksumAsset *Asset
	for i := range release.Assets {
		if isChecksumFile(strings.ToLower(release.Assets[i].Name)) {
			checksumAsset = &release.Assets[i]
			break
		}
	}
	if checksumAsset == nil {
		return "", fmt.Errorf("체크섬 파일이 없습니다")
	}

	resp, err := u.client.Get(checksumAsset.BrowserDownloadURL)
	if err != nil {
		return "", fmt.Errorf("체크섬 파일 다운로드 실패: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("체크섬 파일 다운로드 실패 (HTTP %d)", resp.StatusCode)
	}

	sum, ok := findChecksum(resp.Body, assetName)
	if !ok {
		return "", fmt.Errorf("에셋 %q의 체크섬을 찾을 수 없습니다", assetName)
	}
	return sum, nil
}

// findChecksum은 "<해시> <파일명>" 줄들로 이루어진 체크섬 목록에서
// 파일의 해시를 찾습니다. 바이너리 모드 표시(*)는 무시합니다.
func findChecksum(list io.Reader, fileName string) (string, bool) {
	scanner := bufio.NewScanner(list)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if strings.TrimPrefix(fields[len(fields)-1], "*") == fileName {
			return fields[0], true
		}
	}
	return "", false
}

// download는 에셋을 임시 파일로 받고 그 경로를 반환합니다.
func (u *Updater) download(asset *Asset) (string, error) {
	resp, err := u.client.Get(asset.BrowserDownloadURL)
	if err != nil {
		return "", fmt.Errorf("다운로드 요청 실패: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("다운로드 실패 (HTTP %d)", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", branding.BinaryName+"-update-*")
	if err != nil {
		return "", fmt.Errorf("임시 파일 생성 실패: %w", err)
	}
	defer func() { _ = tmp.Close() }()

	written, err := io.Copy(tmp, resp.Body)
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("파일 쓰기 실패: %w", err)
	}
	if written == 0 {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("다운로드된 파일이 비어있습니다")
	}

	return tmp.Name(), nil
}
