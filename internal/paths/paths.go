package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.reselect.
func ConfigDir() string {
	return filepath.Join(home(), ".reselect")
}

// ListFile returns ~/.reselect/list.yaml.
func ListFile() string {
	return filepath.Join(ConfigDir(), "list.yaml")
}

// LogFile returns ~/.reselect/reselect.log.
func LogFile() string {
	return filepath.Join(ConfigDir(), "reselect.log")
}
