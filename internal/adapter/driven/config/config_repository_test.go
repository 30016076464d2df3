package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"inventory.toml", "profile = \"audit\"\nregion = \"eu-west-1\"\nall_regions = true\noutput = \"/tmp/reports\"\nreport_type = [\"xlsx\", \"csv\"]\n"},
		{"inventory.yaml", "profile: audit\nregion: eu-west-1\nall_regions: true\noutput: /tmp/reports\nreport_type: [xlsx, csv]\n"},
		{"inventory.yml", "profile: audit\nregion: eu-west-1\nall_regions: true\noutput: /tmp/reports\nreport_type:\n  - xlsx\n  - csv\n"},
		{"inventory.json", `{"profile":"audit","region":"eu-west-1","all_regions":true,"output":"/tmp/reports","report_type":["xlsx","csv"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigRepository().LoadConfigFile(writeConfig(t, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "audit", cfg.Profile)
			assert.Equal(t, "eu-west-1", cfg.Region)
			assert.True(t, cfg.AllRegions)
			assert.Equal(t, "/tmp/reports", cfg.Output)
			assert.Equal(t, []string{"xlsx", "csv"}, cfg.ReportType)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeConfig(t, "inventory.ini", "profile=x"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(writeConfig(t, "inventory.json", "{not json"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadConfigFileNormalizes(t *testing.T) {
	t.Setenv("REPORT_DIR", "/data/reports")
	path := writeConfig(t, "inventory.yaml", "output: $REPORT_DIR/inventory.xlsx\nreport_type: [\" XLSX \", PDF]\n")

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/reports/inventory.xlsx", cfg.Output)
	assert.Equal(t, []string{"xlsx", "pdf"}, cfg.ReportType)
	assert.Empty(t, cfg.Profile)
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "reports"), expandPath("~/reports"))
	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, "relative/dir", expandPath("relative/dir"))
}
