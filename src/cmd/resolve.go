package cmd

import (
	"fmt"
	"udirs/src/internal/resolver"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	formatName  string
	systemScope bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [field]",
	Short: "Resolve base directories for the current user",
	Long: `Resolve prints the full set of base directories, or a single field's
bare value when one of home, data, config, cache, state, runtime, bin
is given. Explicit environment variables always win over computed
defaults; an empty value means the location is unresolvable.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if systemScope {
			pterm.Error.Println("System-wide resolution is reserved and not implemented")
			return
		}
		platform, err := targetPlatform()
		if err != nil {
			pterm.Error.Printf("Invalid platform: %v\n", err)
			return
		}
		dirs, err := resolver.Resolve(resolver.OSEnviron(), platform)
		if err != nil {
			pterm.Error.Printf("Resolution failed: %v\n", err)
			return
		}

		if len(args) == 1 {
			value, err := fieldValue(dirs, args[0])
			if err != nil {
				pterm.Error.Println(err)
				return
			}
			fmt.Println(value)
			return
		}

		format := formatName
		if format == "" {
			format = viper.GetString("format")
		}
		out, err := renderDirectories(dirs, format)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		fmt.Print(out)
	},
}

func fieldValue(dirs resolver.Directories, field string) (string, error) {
	switch field {
	case "home":
		return dirs.Home, nil
	case "data":
		return dirs.Data, nil
	case "config":
		return dirs.Config, nil
	case "cache":
		return dirs.Cache, nil
	case "state":
		return dirs.State, nil
	case "runtime":
		return dirs.Runtime, nil
	case "bin":
		return dirs.Bin, nil
	}
	return "", fmt.Errorf("unknown field %q (expected home, data, config, cache, state, runtime or bin)", field)
}

func init() {
	resolveCmd.Flags().StringVar(&formatName, "format", "", "output format: plain, json or toml (default from config, plain)")
	resolveCmd.Flags().BoolVar(&systemScope, "system", false, "resolve system-wide directories (reserved)")
	rootCmd.AddCommand(resolveCmd)
}
