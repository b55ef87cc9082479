package cmd

import (
	"udirs/src/internal/resolver"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show each directory and where its value came from",
	Long: `Inspect lists every resolved field with its provenance: the
environment variable that supplied it, "passwd" when the home
directory came from the user database, or "default" for a computed
fallback.`,
	Run: func(cmd *cobra.Command, args []string) {
		platform, err := targetPlatform()
		if err != nil {
			pterm.Error.Printf("Invalid platform: %v\n", err)
			return
		}
		r := resolver.Resolver{Env: resolver.OSEnviron(), Platform: platform}
		entries, err := r.Entries()
		if err != nil {
			pterm.Error.Printf("Resolution failed: %v\n", err)
			return
		}

		pterm.Info.Printf("Base directories for platform %s\n", platform)
		data := pterm.TableData{{"Field", "Value", "Source"}}
		for _, e := range entries {
			value := e.Value
			if value == "" {
				value = "(unresolvable)"
			}
			data = append(data, []string{e.Field, value, e.Source})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
