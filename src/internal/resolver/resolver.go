package resolver

import (
	"errors"
	"fmt"
	"path"
	"udirs/src/internal/passwd"
	"udirs/src/internal/userinfo"
)

// Directories is the resolved set of per-user base directories. Every
// field is always populated; an empty string means the location is
// genuinely unresolvable on the given platform and environment. The
// value is immutable once returned and safe for concurrent reads.
type Directories struct {
	Home    string `json:"home" toml:"home"`
	Data    string `json:"data" toml:"data"`
	Config  string `json:"config" toml:"config"`
	Cache   string `json:"cache" toml:"cache"`
	State   string `json:"state" toml:"state"`
	Runtime string `json:"runtime" toml:"runtime"`
	Bin     string `json:"bin" toml:"bin"`
}

// Entry reports one resolved field together with where its value came
// from: the name of the environment variable that supplied it,
// "passwd" when the home directory came from the user database, or
// "default" for a computed fallback.
type Entry struct {
	Field  string
	Value  string
	Source string
}

const sourceDefault = "default"

// Resolver resolves base directories from an injected environment
// snapshot. PasswdPath and LookupUID exist so tests can exercise the
// POSIX fallbacks without touching the real system; leave them zero
// for real use.
type Resolver struct {
	Env      Environ
	Platform Platform
	Scope    Scope

	// PasswdPath overrides the user database consulted when HOME is
	// unset on a POSIX platform. Empty means /etc/passwd.
	PasswdPath string

	// LookupUID overrides the login-to-uid lookup. Nil means the
	// platform user database via os/user.
	LookupUID userinfo.LookupFunc
}

// Resolve applies the platform decision table once and returns the
// complete directory set. It fails only when the user database is
// needed as a home fallback and cannot be opened; every other missing
// input degrades to a per-field default or an empty string.
func (r Resolver) Resolve() (Directories, error) {
	entries, err := r.Entries()
	if err != nil {
		return Directories{}, err
	}
	var d Directories
	slots := map[string]*string{
		"home":    &d.Home,
		"data":    &d.Data,
		"config":  &d.Config,
		"cache":   &d.Cache,
		"state":   &d.State,
		"runtime": &d.Runtime,
		"bin":     &d.Bin,
	}
	for _, e := range entries {
		*slots[e.Field] = e.Value
	}
	return d, nil
}

// Entries resolves the same table as Resolve but keeps per-field
// provenance, in the fixed order home, data, config, cache, state,
// runtime, bin.
func (r Resolver) Entries() ([]Entry, error) {
	if r.Scope == ScopeSystem {
		return nil, errors.New("system-wide resolution is reserved and not implemented")
	}

	identity := userinfo.Resolve(r.Env.Get(EnvLogname), r.LookupUID)

	home, err := r.resolveHome(identity)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, 7)
	entries = append(entries, home)

	// An explicit variable always wins verbatim over the computed
	// default, even if its value looks implausible.
	pick := func(field, envKey, fallback string) {
		if v := r.Env.Get(envKey); v != "" {
			entries = append(entries, Entry{field, v, envKey})
			return
		}
		entries = append(entries, Entry{field, fallback, sourceDefault})
	}

	// Defaults derived from an unresolvable home stay unresolvable.
	under := func(elem ...string) string {
		if home.Value == "" {
			return ""
		}
		return path.Join(append([]string{home.Value}, elem...)...)
	}

	switch r.Platform {
	case Windows:
		pick("data", EnvAppData, "")
		pick("config", EnvAppData, "")
		pick("cache", EnvTemp, "")
		pick("state", EnvLocalAppData, "")
		pick("runtime", EnvTemp, "")
		pick("bin", EnvBin, r.Env.Get(EnvHomeDrive)+`\Windows\system32`)
	case Darwin:
		entries = append(entries,
			Entry{"data", under("Library"), sourceDefault},
			Entry{"config", under("Library", "Preferences"), sourceDefault},
			Entry{"cache", under("Library", "Caches"), sourceDefault},
			Entry{"state", under("Library", "Preferences"), sourceDefault},
		)
		pick("runtime", EnvTmpDir, under("Library", "Caches", "TemporaryItems"))
		pick("bin", EnvBinDir, under("Library", "bin"))
	default:
		// Generic XDG; Plan9 and Haiku get these rules best-effort.
		pick("data", EnvDataHome, under(".local", "share"))
		pick("config", EnvConfigHome, under(".config"))
		pick("cache", EnvCacheHome, under(".cache"))
		pick("state", EnvStateHome, under(".local", "state"))
		pick("runtime", EnvRuntimeDir, fmt.Sprintf("/run/user/%d", identity.UID))
		pick("bin", EnvBinDir, under(".local", "bin"))
	}
	return entries, nil
}

func (r Resolver) resolveHome(identity userinfo.Identity) (Entry, error) {
	switch r.Platform {
	case Windows:
		if v := r.Env.Get(EnvUserProfile); v != "" {
			return Entry{"home", v, EnvUserProfile}, nil
		}
		if v := r.Env.Get(EnvHomePath); v != "" {
			return Entry{"home", v, EnvHomePath}, nil
		}
		return Entry{"home", "", sourceDefault}, nil
	case Plan9:
		if v := r.Env.Get(EnvPlan9Home); v != "" {
			return Entry{"home", v, EnvPlan9Home}, nil
		}
		return Entry{"home", "", sourceDefault}, nil
	case Haiku:
		return Entry{"home", "/boot/home", sourceDefault}, nil
	}

	if v := r.Env.Get(EnvHome); v != "" {
		return Entry{"home", v, EnvHome}, nil
	}
	home, err := passwd.LookupHomeByUIDFile(r.PasswdPath, identity.UID)
	if errors.Is(err, passwd.ErrNotFound) {
		// A uid without a passwd entry is a normal outcome, not a
		// failure; home is just unresolvable.
		return Entry{"home", "", sourceDefault}, nil
	}
	if err != nil {
		return Entry{}, err
	}
	return Entry{"home", home, "passwd"}, nil
}

// Resolve resolves the decision table for env on platform at user
// scope with the real system fallbacks.
func Resolve(env Environ, platform Platform) (Directories, error) {
	return Resolver{Env: env, Platform: platform}.Resolve()
}
