package resolver

import (
	"fmt"
	"runtime"
)

// Platform selects which column of the directory decision table is
// applied. It is passed explicitly so any platform's rules can be
// resolved (and tested) on any host.
type Platform int

const (
	// Unix covers generic POSIX systems following the XDG Base
	// Directory specification.
	Unix Platform = iota
	Darwin
	Windows
	Plan9
	Haiku
)

func (p Platform) String() string {
	switch p {
	case Unix:
		return "unix"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	case Plan9:
		return "plan9"
	case Haiku:
		return "haiku"
	}
	return fmt.Sprintf("platform(%d)", int(p))
}

// Current maps runtime.GOOS to a Platform. Unrecognized systems get
// the generic XDG rules as a best effort.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin", "ios":
		return Darwin
	case "windows":
		return Windows
	case "plan9":
		return Plan9
	case "haiku":
		return Haiku
	default:
		return Unix
	}
}

// ParsePlatform converts a user-supplied name into a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch name {
	case "unix", "linux", "xdg":
		return Unix, nil
	case "darwin", "macos":
		return Darwin, nil
	case "windows":
		return Windows, nil
	case "plan9":
		return Plan9, nil
	case "haiku":
		return Haiku, nil
	}
	return Unix, fmt.Errorf("unknown platform %q", name)
}

// Scope distinguishes per-user from system-wide resolution. System
// scope is reserved and not yet specified.
type Scope int

const (
	ScopeUser Scope = iota
	ScopeSystem
)

func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "user":
		return ScopeUser, nil
	case "system":
		return ScopeSystem, nil
	}
	return ScopeUser, fmt.Errorf("unknown scope %q", name)
}
