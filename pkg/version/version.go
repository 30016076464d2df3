package version

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/mod/semver"
)

const devVersion = "0.0.0-dev"

// Sobrescritos via -ldflags "-X .../pkg/version.Version=1.2.3".
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// releasesURL aponta para a última release publicada no GitHub.
var releasesURL = "https://api.github.com/repos/diillson/aws-tag-inventory-go/releases/latest"

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(bi)
	}
}

// applyBuildInfo completa a versão quando o binário veio de "go install ...@vX.Y.Z"
// ou de um checkout git. Valores vindos de ldflags não são tocados.
func applyBuildInfo(bi *debug.BuildInfo) {
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if Version == devVersion && semver.IsValid(bi.Main.Version) {
		Version = strings.TrimPrefix(bi.Main.Version, "v")
		if settings["vcs.modified"] == "true" {
			Version += "-dirty"
		}
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); BuildTime == "" && err == nil {
		BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
	}
}

// CheckLatestVersion avisa no console quando há uma release mais nova.
func CheckLatestVersion(currentVersion string) {
	// Versões dev não são verificadas
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	latestVersion, err := fetchLatestVersion(&http.Client{Timeout: 3 * time.Second}, releasesURL)
	if err != nil {
		return
	}

	if isNewer(latestVersion, currentVersion) {
		pterm.Warning.Println(fmt.Sprintf("A new version of AWS Tag Inventory is available: %s", latestVersion))
		pterm.Info.Println("Please update using: go install github.com/diillson/aws-tag-inventory-go/cmd/aws-tag-inventory@latest")
	}
}

func fetchLatestVersion(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// isNewer compara como semver; uma tag inválida nunca é considerada mais nova.
func isNewer(latest, current string) bool {
	return semver.Compare("v"+latest, "v"+current) > 0
}

// FormatVersion monta a linha exibida no banner e em --version,
// ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	switch {
	case Commit == "" && BuildTime == "":
		return ver + " (development)"
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
}
