package editor

import (
	"testing"

	"github.com/ruminaider/reselect/internal/config"
	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFromConfig(t *testing.T) {
	cfg := config.Config{
		Detailed: "carrot",
		Sections: []config.Section{
			{Title: "Fruit", Items: []string{"apple"}},
			{Title: "Veg", Items: []string{"carrot", "carrot"}},
		},
	}
	list := ListFromConfig(cfg)

	assert.Equal(t, 2, list.SectionCount())
	assert.Equal(t, "Veg", list.SectionTitle(1))

	d, ok := list.DetailedItem()
	require.True(t, ok)
	pos, ok := list.PositionOf(d)
	require.True(t, ok)
	assert.Equal(t, reselect.At(1, 0), pos, "first matching title wins")
}

func TestListFromConfig_UnknownDetailed(t *testing.T) {
	list := ListFromConfig(config.Config{
		Detailed: "kiwi",
		Sections: []config.Section{{Title: "Fruit", Items: []string{"apple"}}},
	})
	_, ok := list.DetailedItem()
	assert.False(t, ok)
}
