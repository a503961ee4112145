// Package versioncheck notifies the user when a newer CLI release is
// available. It is adapted from the teacher's self-update check: the
// throttling state moves from a standalone ~/.textloom JSON side-cache
// into the same DuckDB cache database cli/store already opens for
// summary results, via store.LastVersionCheck/SetLastVersionCheck,
// rather than reimplementing a second on-disk cache format.
package versioncheck

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/textloom/summarizer/cmd/summarize/cli/store"
)

const (
	checkInterval = 24 * time.Hour
	httpTimeout   = 5 * time.Second
	githubAPIURL  = "https://api.github.com/repos/textloom/summarizer/releases/latest"
)

// GitHubRelease is the subset of the GitHub releases API response this
// package consumes.
type GitHubRelease struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
}

// CheckAndNotify performs a version check and notifies the user if a newer
// version is available. d is the already-open cache database (see
// cli/store); CheckAndNotify uses it to throttle how often it hits GitHub.
// Silent on all errors to avoid interrupting CLI operations.
func CheckAndNotify(w io.Writer, currentVersion string, d *sql.DB) {
	if currentVersion == "dev" || currentVersion == "" {
		return
	}

	lastCheck, err := store.LastVersionCheck(d)
	if err != nil {
		return
	}
	if time.Since(lastCheck) < checkInterval {
		return
	}

	latestVersion, err := fetchLatestVersion()

	_ = store.SetLastVersionCheck(d, time.Now().UTC())

	if err != nil {
		return
	}

	if isOutdated(currentVersion, latestVersion) {
		printNotification(w, currentVersion, latestVersion)
	}
}

func fetchLatestVersion() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubAPIURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "textloom-summarizer")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching release info: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	version, err := parseGitHubRelease(body)
	if err != nil {
		return "", fmt.Errorf("parsing release: %w", err)
	}

	return version, nil
}

func parseGitHubRelease(body []byte) (string, error) {
	var release GitHubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("parsing JSON: %w", err)
	}
	if release.Prerelease {
		return "", errors.New("only prerelease versions available")
	}
	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}
	return release.TagName, nil
}

func isOutdated(current, latest string) bool {
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}
	return semver.Compare(current, latest) < 0
}

// updateCommand picks the update instruction matching how the running
// binary was installed, the way the teacher's does: a Homebrew Cellar
// path means a brew formula exists, otherwise fall back to the install
// script.
func updateCommand() string {
	execPath, err := os.Executable()
	if err != nil {
		return "curl -fsSL https://raw.githubusercontent.com/textloom/summarizer/main/scripts/install.sh | bash"
	}

	realPath, err := filepath.EvalSymlinks(execPath)
	if err != nil {
		realPath = execPath
	}

	if strings.Contains(realPath, "/Cellar/") || strings.Contains(realPath, "/homebrew/") {
		return "brew upgrade summarize"
	}

	return "curl -fsSL https://raw.githubusercontent.com/textloom/summarizer/main/scripts/install.sh | bash"
}

func printNotification(w io.Writer, current, latest string) {
	msg := fmt.Sprintf("\nA newer version of summarize is available: %s (current: %s)\nRun '%s' to update.\n",
		latest, current, updateCommand())
	_, _ = fmt.Fprint(w, msg)
}
