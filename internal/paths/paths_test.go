package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/ruminaider/reselect/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	t.Setenv("HOME", "/tmp/home")

	assert.Equal(t, filepath.Join("/tmp/home", ".reselect"), paths.ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/home", ".reselect", "list.yaml"), paths.ListFile())
	assert.Equal(t, filepath.Join("/tmp/home", ".reselect", "reselect.log"), paths.LogFile())
}
