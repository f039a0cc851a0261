package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/config"
	"github.com/katalvlaran/hexlath/layout"
)

// writeConfig stores body in a temp file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults checks an empty path yields the built-in defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	g, err := cfg.NewGrid()
	require.NoError(t, err)
	assert.Equal(t, layout.PointyOdd, g.Layout())
	assert.Equal(t, 1.0, g.InscribedRadius())
}

// TestLoad_File reads layout and radius from YAML.
func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "layout: flat-even\ninscribed_radius: 2.5\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flat-even", cfg.Layout)
	assert.Equal(t, 2.5, cfg.InscribedRadius)

	g, err := cfg.NewGrid()
	require.NoError(t, err)
	assert.Equal(t, layout.FlatEven, g.Layout())
}

// TestLoad_PartialFile fills missing fields with defaults.
func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, "layout: PointyEven\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "PointyEven", cfg.Layout)
	assert.Equal(t, config.DefaultInscribedRadius, cfg.InscribedRadius)
}

// TestLoad_EnvOverrides verifies environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HEXGRID_LAYOUT", "flat-odd")
	t.Setenv("HEXGRID_INSCRIBED_RADIUS", "4")
	path := writeConfig(t, "layout: pointy-even\ninscribed_radius: 2\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flat-odd", cfg.Layout)
	assert.Equal(t, 4.0, cfg.InscribedRadius)
}

// TestLoad_Errors covers unreadable, malformed and env-malformed inputs.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "layout: [unclosed\n"))
	assert.Error(t, err)

	t.Setenv("HEXGRID_INSCRIBED_RADIUS", "wide")
	_, err = config.Load("")
	assert.Error(t, err)
}

// TestValidate rejects unknown layouts and bad radii.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"UnknownLayout", config.Config{Layout: "triangle", InscribedRadius: 1}},
		{"ZeroRadius", config.Config{Layout: "flat-odd", InscribedRadius: 0}},
		{"NegativeRadius", config.Config{Layout: "flat-odd", InscribedRadius: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.cfg.Validate(), config.ErrInvalidConfig)
			g, err := tc.cfg.NewGrid()
			assert.Nil(t, g)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
	err := config.Config{Layout: "triangle", InscribedRadius: 1}.Validate()
	assert.ErrorIs(t, err, layout.ErrUnknownLayout)
	assert.NoError(t, config.Default().Validate())
}
