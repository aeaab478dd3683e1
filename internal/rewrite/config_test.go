package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "litgo.yaml"), false)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`packages:
  - ./cmd/...
  - ./internal/...
suffix: _gen.go
`), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, []string{"./cmd/...", "./internal/..."}, cfg.Packages)
	require.Equal(t, "_gen.go", cfg.Suffix)
	// Omitted keys fall back to defaults.
	require.Equal(t, "litgo", cfg.Tag)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [unclosed"), 0o644))

	_, err := LoadConfig(path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing")
}
