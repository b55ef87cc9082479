package cmd

import (
	"fmt"
	"udirs/src/internal/selfexe"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var selfCmd = &cobra.Command{
	Use:   "self",
	Short: "Inspect the udirs binary itself",
}

var selfPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the running executable",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := selfexe.Path()
		if err != nil {
			pterm.Error.Printf("Could not determine executable path: %v\n", err)
			return
		}
		fmt.Println(path)
	},
}

func init() {
	selfCmd.AddCommand(selfPathCmd)
	rootCmd.AddCommand(selfCmd)
}
