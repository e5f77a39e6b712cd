package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, "backend/data", cfg.Project.DataDir)
	assert.Equal(t, "docs/PROGRAM_LISTING.md", cfg.Project.Output)
	assert.NotEmpty(t, cfg.Replace.Extensions)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proglist.yaml")
	yaml := `
project:
  root: ./work
  output: reports/LISTING.md
listing:
  programmer: N. Author
replace:
  allow:
    - "src/**"
  replacements:
    - old: "Copy ID"
      new: "Reference ID"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./work", cfg.Project.Root)
	assert.Equal(t, "reports/LISTING.md", cfg.Project.Output)
	assert.Equal(t, "N. Author", cfg.Listing.Programmer)
	assert.Equal(t, []string{"src/**"}, cfg.Replace.Allow)
	require.Len(t, cfg.Replace.Replacements, 1)
	assert.Equal(t, Replacement{Old: "Copy ID", New: "Reference ID"}, cfg.Replace.Replacements[0])

	// Unset fields still come from defaults.
	assert.Equal(t, "backend/data", cfg.Project.DataDir)
	assert.Equal(t, "TBD", cfg.Listing.DateCreated)
}

func TestLoadConfig_ScanSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proglist.yaml")
	yaml := `
scan:
  skip_dirs:
    - tmp
  skip_names:
    - notes.txt
  skip_extensions:
    - .sql
  exclude_patterns:
    - "generated/**"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"tmp"}, cfg.Scan.SkipDirs)
	assert.Equal(t, []string{"notes.txt"}, cfg.Scan.SkipNames)
	assert.Equal(t, []string{".sql"}, cfg.Scan.SkipExtensions)
	assert.Equal(t, []string{"generated/**"}, cfg.Scan.ExcludePatterns)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PROGLIST_ROOT", "/srv/app")
	t.Setenv("PROGLIST_PROGRAMMER", "Env Author")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/app", cfg.Project.Root)
	assert.Equal(t, "Env Author", cfg.Listing.Programmer)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: ["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
