package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"udirs/src/internal/resolver"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	platformName string
)

var rootCmd = &cobra.Command{
	Use:   "udirs",
	Short: "udirs resolves per-user base directories across platforms",
	Long: `udirs maps the current environment to the standard set of per-user
base directories (home, data, config, cache, state, runtime, bin),
following the XDG Base Directory convention on Unix-like systems and
the nearest platform equivalents on Windows and macOS. It only reports
paths; nothing is created or validated.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/udirs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "resolve for a platform other than the current one (unix, darwin, windows, plan9, haiku)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dirs, err := resolver.Resolve(resolver.OSEnviron(), resolver.Current())
		if err == nil && dirs.Config != "" {
			viper.AddConfigPath(filepath.Join(dirs.Config, "udirs"))
		}
		viper.SetConfigName("config")
	}

	viper.SetDefault("format", "plain")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// Config file found and read
	}
}

// targetPlatform honors the --platform override, defaulting to the
// host platform.
func targetPlatform() (resolver.Platform, error) {
	if platformName == "" {
		return resolver.Current(), nil
	}
	return resolver.ParsePlatform(platformName)
}
