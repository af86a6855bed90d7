package headless

import (
	"testing"

	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/ruminaider/reselect/internal/sectionlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastPosition(t *testing.T) {
	list := sectionlist.New(
		sectionlist.Section[string]{Title: "A", Items: []string{"a", "b"}},
		sectionlist.Section[string]{Title: "B", Items: []string{"c"}},
		sectionlist.Section[string]{Title: "C"},
	)
	table := NewTable(list)

	pos, ok := table.LastPosition()
	require.True(t, ok)
	assert.Equal(t, reselect.At(1, 0), pos)

	empty := NewTable(sectionlist.New[string]())
	_, ok = empty.LastPosition()
	assert.False(t, ok)
}

func TestReloadSnapshotsShape(t *testing.T) {
	list := sectionlist.New(sectionlist.Section[string]{Title: "A", Items: []string{"a", "b", "c"}})
	table := NewTable(list)
	table.SelectRow(reselect.At(0, 2), false, reselect.ScrollNone)

	_, err := list.Delete(reselect.At(0, 2))
	require.NoError(t, err)

	pos, _ := table.LastPosition()
	assert.Equal(t, reselect.At(0, 2), pos, "shape is stale until Reload")

	table.Reload()
	pos, _ = table.LastPosition()
	assert.Equal(t, reselect.At(0, 1), pos)
	_, selected := table.Selected()
	assert.False(t, selected, "selection past the end is dropped")
}

func TestSelectRow(t *testing.T) {
	list := sectionlist.New(sectionlist.Section[string]{Title: "A", Items: []string{"a", "b"}})
	table := NewTable(list)

	table.SelectRow(reselect.At(0, 5), true, reselect.ScrollBottom)
	_, ok := table.Selected()
	assert.False(t, ok)

	table.SelectRow(reselect.At(0, 1), true, reselect.ScrollBottom)
	sel, ok := table.Selected()
	require.True(t, ok)
	assert.Equal(t, Selection{Position: reselect.At(0, 1), Animated: true, Scroll: reselect.ScrollBottom}, sel)
	assert.Equal(t, 1, table.Selects)

	table.Deselect()
	_, ok = table.Selected()
	assert.False(t, ok)
}

func TestEditingClearsAndBlocksSelection(t *testing.T) {
	list := sectionlist.New(sectionlist.Section[string]{Title: "A", Items: []string{"a", "b"}})
	table := NewTable(list)
	table.SelectRow(reselect.At(0, 0), false, reselect.ScrollNone)

	table.SetEditing(true)
	assert.True(t, table.Editing())
	_, ok := table.Selected()
	assert.False(t, ok)

	table.SelectRow(reselect.At(0, 1), true, reselect.ScrollBottom)
	_, ok = table.Selected()
	assert.False(t, ok)

	table.SetEditing(false)
	table.SelectRow(reselect.At(0, 1), true, reselect.ScrollBottom)
	_, ok = table.Selected()
	assert.True(t, ok)
}
