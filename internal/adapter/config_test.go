package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.False(t, cfg.Verbose)
	require.True(t, cfg.Passes.LiteralArrays.Enabled)
	require.True(t, cfg.Passes.LiteralArrays.Cleanup)
	require.Empty(t, cfg.Passes.Order)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unveil.toml")
	content := `
verbose = true

[passes]
order = ["literal-arrays", "literal-arrays"]

[passes.literal-arrays]
enabled = true
cleanup = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.Equal(t, []string{"literal-arrays", "literal-arrays"}, cfg.Passes.Order)
	require.True(t, cfg.Passes.LiteralArrays.Enabled)
	require.False(t, cfg.Passes.LiteralArrays.Cleanup)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unveil.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.True(t, cfg.Passes.LiteralArrays.Enabled, "unset keys keep defaults")
}

func TestLoadConfig_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unveil.toml")
	require.NoError(t, os.WriteFile(path, []byte("verbose = [[["), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TOML")
}
