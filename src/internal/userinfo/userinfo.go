package userinfo

import (
	"os/user"
	"strconv"
)

// FallbackUID is used when the platform user lookup fails for any
// reason (unknown login, non-numeric uid, unsupported platform).
const FallbackUID = 1000

// Identity is the transient user identity consulted during directory
// resolution. Login may be empty when LOGNAME is unset.
type Identity struct {
	Login string
	UID   int
}

// LookupFunc maps a login name to a numeric uid. The second return
// reports whether the lookup succeeded.
type LookupFunc func(login string) (int, bool)

// SystemLookup resolves a login via the platform user database. On
// Windows the uid field is a SID and fails the numeric parse, which
// callers recover from via FallbackUID.
func SystemLookup(login string) (int, bool) {
	if login == "" {
		return 0, false
	}
	u, err := user.Lookup(login)
	if err != nil {
		return 0, false
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, false
	}
	return uid, true
}

// Resolve builds an Identity from a login name, falling back to
// FallbackUID when lookup fails. It never errors.
func Resolve(login string, lookup LookupFunc) Identity {
	if lookup == nil {
		lookup = SystemLookup
	}
	uid, ok := lookup(login)
	if !ok {
		uid = FallbackUID
	}
	return Identity{Login: login, UID: uid}
}
