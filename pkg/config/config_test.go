package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "noteful")
	path := writeFile(t, "name: ${SAMPLE_NAME}\nport: 8000\n")

	var cfg sample
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, sample{Name: "noteful", Port: 8000}, cfg)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "name: override\n")

	cfg := sample{Name: "default", Port: 9000}
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "override", cfg.Name)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_Validates(t *testing.T) {
	path := writeFile(t, "port: 0\n")

	var cfg sample
	err := Load(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "port: [\n")

	var cfg sample
	assert.Error(t, Load(path, &cfg))
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg := sample{Port: 8000}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 8000, cfg.Port)

	var invalid sample
	_, err = LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"), &invalid)
	assert.Error(t, err)
}

func TestLoadOptional_ExistingFile(t *testing.T) {
	path := writeFile(t, "port: 7000\n")

	var cfg sample
	found, err := LoadOptional(path, &cfg)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7000, cfg.Port)
}
