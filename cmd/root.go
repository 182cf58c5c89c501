/*
Copyright © 2025 open-wc
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string
	// set using ldflags
	version string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "open-wc",
	Short: "Generate browser loader scripts and polyfill bundles",
	Long: `Generates the bootstrap script a web app embeds into its HTML entry point.
At page load the script decides whether the browser needs polyfills, loads the
triggered ones, and then loads either the modern or the legacy entry bundles.
For example:

open-wc generate loader.config.yaml
open-wc polyfills # Lists the built-in polyfills
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "open-wc config file path (default is $CWD/.open-wc.yml)")
	if version == "" {
		version = "dev"
	}
	rootCmd.Version = version
	viper.SetEnvPrefix("OPENWC")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find cwd directory.
		cwd, err := os.Getwd()
		cobra.CheckErr(err)
		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".open-wc.yml")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
