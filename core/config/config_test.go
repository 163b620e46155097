package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagemark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "label: found\ncase_sensitive: true\nformat: json\nscope: \"#content\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "found", cfg.Label)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "#content", cfg.Scope)
	assert.Equal(t, 100, cfg.MaxPages)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "label: [",
		"bad label":  "label: \"two words\"",
		"bad format": "format: docx",
		"bad pages":  "max_pages: 0",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}
