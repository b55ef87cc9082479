package passwd

import (
	"errors"
	"strings"
	"testing"
)

const sampleDB = `root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
alice:x:1000:1000:Alice:/home/alice:/bin/sh
bob:x:1001:1001:Bob:/home/bob:/bin/zsh
`

func TestLookupHomeByUIDMatch(t *testing.T) {
	home, err := LookupHomeByUID(strings.NewReader(sampleDB), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/home/alice" {
		t.Fatalf("expected /home/alice, got %s", home)
	}
}

func TestLookupHomeByUIDRoot(t *testing.T) {
	home, err := LookupHomeByUID(strings.NewReader(sampleDB), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/root" {
		t.Fatalf("expected /root, got %s", home)
	}
}

func TestLookupHomeByUIDNotFound(t *testing.T) {
	_, err := LookupHomeByUID(strings.NewReader(sampleDB), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupHomeByUIDSkipsMalformedLines(t *testing.T) {
	db := `broken line without colons
nouid:x:not-a-number:1000:Bad:/home/bad:/bin/sh
short:x:5
alice:x:1000:1000:Alice:/home/alice:/bin/sh
`
	home, err := LookupHomeByUID(strings.NewReader(db), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/home/alice" {
		t.Fatalf("expected /home/alice, got %s", home)
	}
}

func TestLookupHomeByUIDSkipsComments(t *testing.T) {
	db := "# comment\nalice:x:1000:1000:Alice:/home/alice:/bin/sh\n"
	if _, err := LookupHomeByUID(strings.NewReader(db), 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLookupHomeByUIDLongLine(t *testing.T) {
	// A huge GECOS field on an earlier entry must not break the scan.
	gecos := strings.Repeat("x", 128*1024)
	db := "bloat:x:42:42:" + gecos + ":/home/bloat:/bin/sh\n" +
		"alice:x:1000:1000:Alice:/home/alice:/bin/sh\n"
	home, err := LookupHomeByUID(strings.NewReader(db), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/home/alice" {
		t.Fatalf("expected /home/alice, got %s", home)
	}
}

func TestLookupHomeByUIDFileMissing(t *testing.T) {
	if _, err := LookupHomeByUIDFile("/nonexistent/passwd", 1000); err == nil {
		t.Fatal("expected error for unreadable database")
	}
}
