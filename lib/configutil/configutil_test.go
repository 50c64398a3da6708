package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	CompanyId string `json:"company_id"`
	LoginId   string `json:"login_id"`
	TimeoutMs int    `json:"timeout_ms"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kinnosuke.json5")

	err := os.WriteFile(path, []byte(`{
		// trailing commas and comments are fine
		company_id: "foo",
		login_id: "bar",
		timeout_ms: 3000,
	}`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "kinnosuke.local.json5"), []byte(`{login_id: "baz"}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{CompanyId: "foo", LoginId: "baz", TimeoutMs: 3000}, cfg)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestMerge(t *testing.T) {
	merged, err := Merge(
		testConfig{CompanyId: "foo", LoginId: "bar"},
		testConfig{LoginId: "baz", TimeoutMs: 500},
	)
	require.NoError(t, err)
	require.Equal(t, testConfig{CompanyId: "foo", LoginId: "baz", TimeoutMs: 500}, merged)
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "dir/kinnosuke.local.json5", localPath("dir/kinnosuke.json5"))
	require.Equal(t, "config.local", localPath("config"))
}
