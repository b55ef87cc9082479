package passwd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the conventional location of the user database.
const DefaultPath = "/etc/passwd"

// ErrNotFound is returned when no entry matches the requested uid.
// A uid without a passwd entry is a normal, recoverable outcome.
var ErrNotFound = errors.New("passwd: no entry for uid")

const (
	uidField  = 2
	homeField = 5

	// passwd lines are usually short, but GECOS fields can balloon.
	maxLineBytes = 1 << 20
)

// LookupHomeByUID scans a passwd-format stream (colon-delimited:
// name, password, uid, gid, comment, home, shell) and returns the
// home directory of the first entry whose uid matches. Lines with a
// malformed uid field are skipped rather than aborting the scan.
func LookupHomeByUID(r io.Reader, uid int) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) <= homeField {
			continue
		}
		id, err := strconv.Atoi(fields[uidField])
		if err != nil {
			continue
		}
		if id == uid {
			return fields[homeField], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scanning passwd: %w", err)
	}
	return "", ErrNotFound
}

// LookupHomeByUIDFile opens the user database at path (DefaultPath if
// empty) and looks up uid. A database that cannot be opened is a hard
// failure since no further home fallback exists.
func LookupHomeByUIDFile(path string, uid int) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening user database: %w", err)
	}
	defer f.Close()
	return LookupHomeByUID(f, uid)
}
