package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(test *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(test, err)
	assert.Equal(test, "info", cfg.LogLevel)
	assert.Equal(test, 3, cfg.Instances)
	assert.Equal(test, []string{"world"}, cfg.Greet)
}

func TestLoadConfigOverrides(test *testing.T) {
	path := filepath.Join(test.TempDir(), "conjure.toml")
	content := `
log_level = "debug"
instances = 5
greet = ["ada", "alan"]
seed = [10.0, 20.0]
`
	require.NoError(test, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(test, err)
	assert.Equal(test, "debug", cfg.LogLevel)
	assert.Equal(test, 5, cfg.Instances)
	assert.Equal(test, []string{"ada", "alan"}, cfg.Greet)
	assert.Equal(test, []float64{10, 20}, cfg.Seed)
}

func TestLoadConfigRejectsBadInstances(test *testing.T) {
	path := filepath.Join(test.TempDir(), "conjure.toml")
	require.NoError(test, os.WriteFile(path, []byte("instances = 0\n"), 0o644))
	_, err := loadConfig(path)
	assert.Error(test, err)
}

func TestLoadConfigMissingFile(test *testing.T) {
	_, err := loadConfig(filepath.Join(test.TempDir(), "absent.toml"))
	assert.Error(test, err)
}
