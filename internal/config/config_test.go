package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 5000, cfg.Timeout)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Equal(t, "console", cfg.Output)
	assert.Equal(t, 80, cfg.Threshold)
	assert.Equal(t, "lean build", cfg.TestCommand)
}

func TestLoadCustomValues(t *testing.T) {
	viper.Reset()
	viper.Set("timeout", 2000)
	viper.Set("parallel", 4)
	viper.Set("output", "json")
	viper.Set("threshold", 90)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Timeout)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 90, cfg.Threshold)
}

func TestLoadRejectsInvalidOutput(t *testing.T) {
	viper.Reset()
	viper.Set("output", "xml")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	viper.Reset()
	viper.Set("timeout", -1)
	_, err := Load()
	assert.Error(t, err)
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".leanmutator.yml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "threshold")

	err = WriteDefault(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoadLegacyYAMLv2(t *testing.T) {
	data := []byte("timeout: 3000\nparallel: 2\noutput: console\nthreshold: 70\n")
	cfg, err := LoadLegacy(data)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Timeout)
	assert.Equal(t, 2, cfg.Parallel)
}

func TestValidatePathRejectsTraversal(t *testing.T) {
	assert.Error(t, validatePath("../../etc/passwd"))
	assert.Error(t, validatePath("report;rm -rf /"))
	assert.NoError(t, validatePath("reports/out.json"))
}
