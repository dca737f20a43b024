// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the openalex-scrapping CLI.
// See docs/ARCHITECTURE § Pipeline Interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the openalex-scrapping CLI.
var rootCmd = &cobra.Command{
	Use:   "openalex-scrapping",
	Short: "Collect and filter bibliographic metadata from OpenAlex",
	Long: `openalex-scrapping retrieves work metadata from the OpenAlex API using
YAML-defined searches and post-processes the resulting CSV files.

fetch runs the configured searches with pagination, deduplicates results
across searches, and writes them to CSV. filter deduplicates a works CSV by
title, filters by open-access status, and counts papers per publication year.
catalog keeps a local SQLite index of collected works for offline search.`,
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads app-level settings (HTTP timeout, user agent, defaults)
// from openalex-scrapping.yaml or the environment. The per-run search
// definitions come from the fetch subcommand's --config file instead.
func initConfig() {
	viper.SetConfigName("openalex-scrapping")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "openalex-scrapping"))
	}

	viper.SetEnvPrefix("OPENALEX_SCRAPPING")
	viper.AutomaticEnv()

	viper.SetDefault("timeout", "30s")
	viper.SetDefault("user_agent", "openalex-scrapping/"+version)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the app-level fetch settings from viper.
func appConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		Mailto: viper.GetString("mailto"),
		Output: viper.GetString("output"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
