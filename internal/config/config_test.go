package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/reselect/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full list", func(t *testing.T) {
		input := []byte(`version: "1"
detailed: carrot
sections:
  - title: Fruit
    items: [apple, date]
  - title: Veg
    items:
      - butternut squash
      - carrot
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "1", cfg.Version)
		assert.Equal(t, "carrot", cfg.Detailed)
		require.Len(t, cfg.Sections, 2)
		assert.Equal(t, "Veg", cfg.Sections[1].Title)
		assert.Equal(t, []string{"butternut squash", "carrot"}, cfg.Sections[1].Items)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(`sections:
  - items: [a]
`))
		require.NoError(t, err)
		assert.Equal(t, config.CurrentVersion, cfg.Version)
		assert.Equal(t, "Section 1", cfg.Sections[0].Title)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "list.yaml")
	cfg := config.Config{
		Detailed: "b",
		Sections: []config.Section{{Title: "Only", Items: []string{"a", "b"}}},
	}
	require.NoError(t, config.Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Only")

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Detailed)
	assert.Equal(t, config.CurrentVersion, got.Version)
	assert.Equal(t, cfg.Sections, got.Sections)
}

func TestLoadMissingFileUsesDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadUnreadable(t *testing.T) {
	_, err := config.Load(t.TempDir())
	assert.Error(t, err)
}
