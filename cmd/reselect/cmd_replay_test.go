package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`detailed: elderberry
sections:
  - title: Produce
    items: [apple, butternut squash, carrot, date, elderberry]
steps:
  - op: edit
  - op: delete
    at: [0, 4]
  - op: done
`), 0o644))

	var out bytes.Buffer
	replayCmd.SetOut(&out)
	err := replayCmd.RunE(replayCmd, []string{path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "pending=(0,3) date")
	assert.Contains(t, out.String(), "Final selection: (0,3) date (1 selects over 3 steps)")
}

func TestReplayCommand_MissingFile(t *testing.T) {
	err := replayCmd.RunE(replayCmd, []string{filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestSplitRows(t *testing.T) {
	assert.Equal(t, []string{"apple", "carrot"}, splitRows("  apple\n\n carrot \n"))
	assert.Empty(t, splitRows("\n  \n"))
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	require.NoError(t, err)
	assert.Nil(t, logger)
	closeLog()

	path := filepath.Join(t.TempDir(), "logs", "reselect.log")
	logger, closeLog, err = openLogger(path)
	require.NoError(t, err)
	logger.Debug("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
