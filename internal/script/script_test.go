package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editSession = `detailed: carrot
sections:
  - title: Produce
    items: [apple, butternut squash, carrot, date, elderberry]
steps:
  - op: edit
  - op: delete
    at: [0, 2]
  - op: move
    from: [0, 2]
    to: [0, 3]
  - op: insert
    at: [0, 3]
    title: orange
  - op: done
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(editSession))
	require.NoError(t, err)
	assert.Equal(t, "carrot", s.Detailed)
	require.Len(t, s.Sections, 1)
	require.Len(t, s.Steps, 5)
	assert.Equal(t, OpInsert, s.Steps[3].Op)
	assert.Equal(t, "orange", s.Steps[3].Title)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown op", "steps:\n  - op: frobnicate\n", ErrUnknownOp},
		{"short position", "steps:\n  - op: select\n    at: [1]\n", ErrBadPosition},
		{"negative position", "steps:\n  - op: insert\n    at: [0, -1]\n", ErrBadPosition},
		{"delete without rows", "steps:\n  - op: delete\n", ErrBadPosition},
		{"move without target", "steps:\n  - op: move\n    from: [0, 0]\n", ErrBadPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("{{{"))
	assert.Error(t, err)
}

func TestRun_EditSession(t *testing.T) {
	s, err := Parse([]byte(editSession))
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(s, &out)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "date", res.Selected)
	assert.Equal(t, reselect.At(0, 4), res.Position)
	assert.Equal(t, 1, res.Selects)
	assert.Equal(t, 5, res.Steps)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "start")
	assert.Contains(t, lines[2], "pending=(0,2) date")
	assert.Contains(t, lines[2], "editing=true")
	assert.Contains(t, lines[4], "pending=(0,4) date")
	assert.Contains(t, lines[5], "selected=(0,4) date")
	assert.Contains(t, lines[5], "editing=false")
}

func TestRun_DeleteRowsOutsideEditMode(t *testing.T) {
	s, err := Parse([]byte(`sections:
  - title: Produce
    items: [apple, butternut squash, carrot, date, elderberry]
steps:
  - op: select
    at: [0, 4]
  - op: delete
    rows: [[0, 4], [0, 0]]
`))
	require.NoError(t, err)

	res, err := Run(s, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "date", res.Selected)
	assert.Equal(t, reselect.At(0, 2), res.Position)
}

func TestRun_EditFailure(t *testing.T) {
	s, err := Parse([]byte(`sections:
  - title: Produce
    items: [apple]
steps:
  - op: delete
    at: [0, 3]
`))
	require.NoError(t, err)

	_, err = Run(s, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (delete)")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(editSession), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
