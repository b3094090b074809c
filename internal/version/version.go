// Package version provides build version info and update checking for breakdown.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// GitHubRepo is the GitHub repository for breakdown.
const GitHubRepo = "wexinc/breakdown"

// ReleaseAPIURL is the GitHub API URL for the latest release.
const ReleaseAPIURL = "https://api.github.com/repos/%s/releases/latest"

// Info contains version information about breakdown.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("breakdown %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`breakdown %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// Release represents a GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Checker checks for new versions.
type Checker struct {
	HTTPClient *http.Client
	Repo       string
	// APIURL overrides the release endpoint. Used by tests.
	APIURL string
}

// NewChecker creates a new version checker.
func NewChecker() *Checker {
	return &Checker{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Repo:       GitHubRepo,
	}
}

// GetLatestRelease fetches the latest release from GitHub.
func (c *Checker) GetLatestRelease(ctx context.Context) (*Release, error) {
	url := c.APIURL
	if url == "" {
		url = fmt.Sprintf(ReleaseAPIURL, c.Repo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "breakdown-version-checker")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	return &release, nil
}

// CheckForUpdate compares the current version with the latest release.
// Returns the release if an update is available, nil if current.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*Release, error) {
	release, err := c.GetLatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	currentVersion = strings.TrimPrefix(currentVersion, "v")

	if CompareVersions(latestVersion, currentVersion) > 0 {
		return release, nil
	}

	return nil, nil
}

// CompareVersions compares two semantic version strings.
// Returns: 1 if a > b, -1 if a < b, 0 if equal.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseVersion parses a version string into major, minor, patch integers.
// Pre-release suffixes (e.g. "-rc1") are ignored.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		part := strings.Split(parts[i], "-")[0]
		fmt.Sscanf(part, "%d", &result[i])
	}
	return result
}

// WorkspaceVersion records which breakdown version initialized a workspace.
type WorkspaceVersion struct {
	BreakdownVersion string    `json:"breakdown_version"`
	InitializedAt    time.Time `json:"initialized_at"`
	LastRunAt        time.Time `json:"last_run_at,omitempty"`
}

// VersionFileName is the version stamp file name within the workspace root.
const VersionFileName = "version.json"

// LoadWorkspaceVersion loads the version stamp from the workspace root.
func LoadWorkspaceVersion(workingDir string) (*WorkspaceVersion, error) {
	path := filepath.Join(workingDir, VersionFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wv WorkspaceVersion
	if err := json.Unmarshal(data, &wv); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", VersionFileName, err)
	}

	return &wv, nil
}

// SaveWorkspaceVersion writes the version stamp into the workspace root.
func SaveWorkspaceVersion(workingDir string, wv *WorkspaceVersion) error {
	path := filepath.Join(workingDir, VersionFileName)
	data, err := json.MarshalIndent(wv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", VersionFileName, err)
	}

	return os.WriteFile(path, data, 0644)
}

// Stamp writes a fresh version stamp for a just-initialized workspace,
// preserving the original InitializedAt when one already exists.
func Stamp(workingDir, buildVersion string) error {
	wv := &WorkspaceVersion{
		BreakdownVersion: buildVersion,
		InitializedAt:    time.Now().UTC(),
	}
	if existing, err := LoadWorkspaceVersion(workingDir); err == nil {
		wv.InitializedAt = existing.InitializedAt
	}
	return SaveWorkspaceVersion(workingDir, wv)
}

// TouchLastRun updates the last_run_at timestamp, if a stamp exists.
func TouchLastRun(workingDir string) error {
	wv, err := LoadWorkspaceVersion(workingDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	wv.LastRunAt = time.Now().UTC()
	return SaveWorkspaceVersion(workingDir, wv)
}
