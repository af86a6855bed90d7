package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "BROWSE", ModeBrowse.String())
	assert.Equal(t, "EDIT", ModeEdit.String())
	assert.Equal(t, "UNKNOWN", Mode(9).String())
}

func TestStatusBarView(t *testing.T) {
	var s StatusBar
	s.SetWidth(120)
	s.Update(ModeEdit, "(0,2) date")
	s.SetMessage("boom", true)

	out := s.View()
	assert.Contains(t, out, "EDIT")
	assert.Contains(t, out, "pending (0,2) date")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "insert")
}

func TestStatusBarView_Narrow(t *testing.T) {
	var s StatusBar
	s.SetWidth(10)
	assert.NotPanics(t, func() { _ = s.View() })
}
