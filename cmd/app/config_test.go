package app

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Insolation)
	require.NotNil(t, cfg.TransferCoefficient)
	assert.Equal(t, defaultInsolation, *cfg.Insolation)
	assert.Equal(t, defaultTransferCoefficient, *cfg.TransferCoefficient)
	assert.Nil(t, cfg.Emissivity)
	assert.Empty(t, cfg.PatchesPath)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadConfigYAML(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "insolation: 1000\nemissivity: 0.95\npatches: daisies.csv\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, *cfg.Insolation)
		require.NotNil(t, cfg.Emissivity)
		assert.Equal(t, 0.95, *cfg.Emissivity)
		assert.Equal(t, defaultTransferCoefficient, *cfg.TransferCoefficient)
		assert.Equal(t, "daisies.csv", cfg.PatchesPath)
	})

	t.Run("explicit zeros are kept", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "insolation: 0\ntransfer_coefficient: 0\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 0.0, *cfg.Insolation)
		assert.Equal(t, 0.0, *cfg.TransferCoefficient)

		params := cfg.Params()
		assert.Equal(t, 0.0, params.Insolation)
		assert.Equal(t, 0.0, params.TransferCoefficient)
	})
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"transfer_coefficient": 25.175}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25.175, *cfg.TransferCoefficient)
	assert.Equal(t, defaultInsolation, *cfg.Insolation)
	assert.Nil(t, cfg.Emissivity)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unsupported extension", file: "config.toml", content: "insolation = 1000"},
		{name: "bad yaml", file: "config.yaml", content: "insolation: [1000"},
		{name: "bad json", file: "config.json", content: `{"insolation": "bright"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DAISYEARTH_INSOLATION", "1200")
	t.Setenv("DAISYEARTH_EMISSIVITY", "0.9")
	t.Setenv("DAISYEARTH_TRANSFER_COEFFICIENT", "0")
	t.Setenv("DAISYEARTH_PATCHES", "other.csv")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, ApplyEnvOverrides(&cfg))

	assert.Equal(t, 1200.0, *cfg.Insolation)
	require.NotNil(t, cfg.Emissivity)
	assert.Equal(t, 0.9, *cfg.Emissivity)
	assert.Equal(t, 0.0, *cfg.TransferCoefficient)
	assert.Equal(t, "other.csv", cfg.PatchesPath)

	params := cfg.Params()
	assert.Equal(t, 1200.0, params.Insolation)
	assert.Equal(t, cfg.Emissivity, params.Emissivity)
	assert.Equal(t, 0.0, params.TransferCoefficient)
}

func TestApplyEnvOverridesInvalid(t *testing.T) {
	t.Setenv("DAISYEARTH_EMISSIVITY", "gray")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Error(t, ApplyEnvOverrides(&cfg))
}
