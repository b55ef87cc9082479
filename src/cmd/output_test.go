package cmd

import (
	"encoding/json"
	"strings"
	"testing"
	"udirs/src/internal/resolver"
)

var sampleDirs = resolver.Directories{
	Home:    "/home/alice",
	Data:    "/home/alice/.local/share",
	Config:  "/home/alice/.config",
	Cache:   "/home/alice/.cache",
	State:   "/home/alice/.local/state",
	Runtime: "/run/user/1000",
	Bin:     "/home/alice/.local/bin",
}

func TestRenderPlain(t *testing.T) {
	out, err := renderDirectories(sampleDirs, "plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "basedirs:\n") {
		t.Fatalf("expected basedirs header, got:\n%s", out)
	}
	if !strings.Contains(out, "  config: /home/alice/.config\n") {
		t.Fatalf("missing config line:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", got, out)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := renderDirectories(sampleDirs, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["runtime"] != "/run/user/1000" {
		t.Fatalf("expected runtime key, got %v", decoded)
	}
}

func TestRenderTOML(t *testing.T) {
	out, err := renderDirectories(sampleDirs, "toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `home = "/home/alice"`) {
		t.Fatalf("missing home key:\n%s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := renderDirectories(sampleDirs, "yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFieldValue(t *testing.T) {
	value, err := fieldValue(sampleDirs, "state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "/home/alice/.local/state" {
		t.Fatalf("unexpected state value: %s", value)
	}
	if _, err := fieldValue(sampleDirs, "documents"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
