package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"udirs/src/internal/resolver"

	"github.com/BurntSushi/toml"
)

// renderDirectories serializes the resolved set. The plain format is
// a nested key-value listing with a single basedirs top-level key.
func renderDirectories(dirs resolver.Directories, format string) (string, error) {
	switch format {
	case "plain":
		var buf bytes.Buffer
		buf.WriteString("basedirs:\n")
		fmt.Fprintf(&buf, "  home: %s\n", dirs.Home)
		fmt.Fprintf(&buf, "  data: %s\n", dirs.Data)
		fmt.Fprintf(&buf, "  config: %s\n", dirs.Config)
		fmt.Fprintf(&buf, "  cache: %s\n", dirs.Cache)
		fmt.Fprintf(&buf, "  state: %s\n", dirs.State)
		fmt.Fprintf(&buf, "  runtime: %s\n", dirs.Runtime)
		fmt.Fprintf(&buf, "  bin: %s\n", dirs.Bin)
		return buf.String(), nil
	case "json":
		data, err := json.MarshalIndent(dirs, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(dirs); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return "", fmt.Errorf("unknown format %q (expected plain, json or toml)", format)
}
