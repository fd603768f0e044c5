package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCmd_DefaultConfig(t *testing.T) {
	out, exec := newTestRoot()

	err := exec.run("list")
	require.NoError(t, err)

	rendered := out.String()
	require.Contains(t, rendered, "literal-arrays")
	require.Contains(t, rendered, "enabled")
	require.Contains(t, rendered, "cleanup on")
}

func TestListCmd_DisabledByConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "unveil.toml")
	config := "[passes.literal-arrays]\nenabled = false\ncleanup = false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	out, exec := newTestRoot()

	err := exec.run("list", "--config", configPath)
	require.NoError(t, err)
	require.Contains(t, out.String(), "disabled")
}

func TestListCmd_BadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "unveil.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("passes = [[["), 0o600))

	_, exec := newTestRoot()

	err := exec.run("list", "--config", configPath)
	require.Error(t, err)
}
