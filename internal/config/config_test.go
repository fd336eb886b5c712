package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergedIgnoreConfig(t *testing.T) {
	cfg, used, err := LoadMerged(Options{
		IgnoreConfig: true,
		DocsURL:      "http://example.test/errors.html",
		Output:       "out.rs",
	})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "http://example.test/errors.html", cfg.DocsURL)
	assert.Equal(t, "out.rs", cfg.Output)
	assert.Equal(t, DefaultTrait, cfg.TraitName)
	assert.Equal(t, DefaultWrapper, cfg.WrapperType)
}

func TestLoadMergedDefaults(t *testing.T) {
	cfg, _, err := LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)

	assert.Equal(t, DefaultDocsURL, cfg.DocsURL)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.CFBypass)
}

func TestMergeConfigBooleansOnlyTurnOn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.CFBypass = true

	mergeConfig(cfg, Options{})

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.CFBypass)
}

func TestNormalizeDefaultsFillsEmptyFields(t *testing.T) {
	cfg := &Config{}
	normalizeDefaults(cfg)

	assert.Equal(t, DefaultDocsURL, cfg.DocsURL)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultTrait, cfg.TraitName)
	assert.Equal(t, DefaultWrapper, cfg.WrapperType)
}

func TestSaveAndLoadYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	want := DefaultConfig()
	want.DocsURL = "http://example.test/trait.Error.html"
	want.CFBypass = true
	require.NoError(t, SaveYAML(want, path))

	got, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
