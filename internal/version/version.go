package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the current version of the CLI
	// This will be overridden by ldflags during build
	Version = "dev"

	// These variables are set by goreleaser
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"

	// Cache check results
	lastCheck     time.Time
	latestVersion string
	checkMutex    sync.Mutex
	checkInterval = 24 * time.Hour
)

// SetBuildInfo sets the build information
func SetBuildInfo(commitHash, buildDate, builder string) {
	commit = commitHash
	date = buildDate
	builtBy = builder
}

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// GetVersion returns the full version string
func GetVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, by: %s)",
		Version, commit, date, builtBy)
}

// compareVersions reports whether latest is a newer release than current.
// Dev and otherwise unparseable current versions never trigger an update.
func compareVersions(current, latest string) (bool, error) {
	cur, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, nil
	}
	lat, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("invalid latest version %q: %w", latest, err)
	}
	return lat.GreaterThan(cur), nil
}

// CheckForUpdate checks if a new version is available
// Returns: latestVersion, hasUpdate, error
func CheckForUpdate() (string, bool, error) {
	checkMutex.Lock()
	defer checkMutex.Unlock()

	// Use cached result if recent enough
	if time.Since(lastCheck) < checkInterval && latestVersion != "" {
		hasUpdate, err := compareVersions(Version, latestVersion)
		return latestVersion, hasUpdate, err
	}

	// Check GitHub API for latest release
	resp, err := http.Get("https://api.github.com/repos/hjps/approvalctl/releases/latest")
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", false, err
	}

	// Update cache
	lastCheck = time.Now()
	latestVersion = release.TagName

	hasUpdate, err := compareVersions(Version, latestVersion)
	return latestVersion, hasUpdate, err
}

// GetUpdateMessage returns a formatted message about available updates
func GetUpdateMessage() string {
	latest, hasUpdate, err := CheckForUpdate()
	if err != nil || !hasUpdate {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n📢 Update available!\n")
	sb.WriteString(fmt.Sprintf("Current version: %s\n", Version))
	sb.WriteString(fmt.Sprintf("Latest version:  %s\n", latest))
	sb.WriteString("Download the latest release to update\n")

	return sb.String()
}
