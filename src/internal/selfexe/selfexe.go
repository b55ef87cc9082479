package selfexe

import (
	"os"
	"path/filepath"
)

// Path returns the absolute path of the running executable with
// symlinks resolved. Directory resolution itself never needs this; it
// is surfaced for callers that locate resources next to the binary.
func Path() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return exe, nil
	}
	return resolved, nil
}
