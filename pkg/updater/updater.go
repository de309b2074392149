package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/mod/semver"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/version"
)

// ReleaseURL is the GitHub API endpoint for the latest release.
var ReleaseURL = "https://api.github.com/repos/Dicklesworthstone/responsive_viewer/releases/latest"

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckForUpdates queries GitHub for the latest release.
// Returns the new version tag and its URL if an update is available, empty strings otherwise.
func CheckForUpdates(ctx context.Context) (string, string, error) {
	return checkAgainst(ctx, ReleaseURL, version.Version)
}

func checkAgainst(ctx context.Context, url, current string) (string, string, error) {
	// Short timeout so `rv version --check` never hangs on a slow network
	client := http.Client{Timeout: 2 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", "", err
	}

	if compareVersions(rel.TagName, current) > 0 {
		return rel.TagName, rel.HTMLURL, nil
	}
	return "", "", nil
}

// compareVersions returns 1 if v1 > v2, -1 if v1 < v2, 0 if equal.
// A missing "v" prefix is tolerated; invalid versions sort lowest.
func compareVersions(v1, v2 string) int {
	return semver.Compare(canonical(v1), canonical(v2))
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return v
}
