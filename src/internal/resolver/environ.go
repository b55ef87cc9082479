package resolver

import (
	"os"
	"strings"
)

// Environ is an injected snapshot of environment variables. Resolution
// reads only from this mapping, never from the process environment
// directly, so results are a pure function of their inputs.
type Environ map[string]string

func (e Environ) Get(key string) string {
	return e[key]
}

// OSEnviron snapshots the current process environment.
func OSEnviron() Environ {
	vars := os.Environ()
	env := make(Environ, len(vars))
	for _, kv := range vars {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// Environment variables consulted by the decision table.
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html
const (
	EnvHome       = "HOME"
	EnvLogname    = "LOGNAME"
	EnvDataHome   = "XDG_DATA_HOME"
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvCacheHome  = "XDG_CACHE_HOME"
	EnvStateHome  = "XDG_STATE_HOME"
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
	EnvBinDir     = "XDG_BIN_DIR"

	// Windows.
	EnvUserProfile  = "USERPROFILE"
	EnvHomePath     = "HOMEPATH"
	EnvHomeDrive    = "HOMEDRIVE"
	EnvAppData      = "APPDATA"
	EnvLocalAppData = "LOCALAPPDATA"
	EnvTemp         = "TEMP"
	EnvBin          = "BIN"

	// macOS.
	EnvTmpDir = "TMPDIR"

	// Plan9 spells its home variable in lowercase.
	EnvPlan9Home = "home"
)
