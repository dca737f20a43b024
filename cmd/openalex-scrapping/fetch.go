// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SpectraGen/openalex-scrapping/internal/collect"
	"github.com/SpectraGen/openalex-scrapping/internal/config"
	"github.com/SpectraGen/openalex-scrapping/internal/openalex"
	"github.com/SpectraGen/openalex-scrapping/internal/report"
	"github.com/SpectraGen/openalex-scrapping/internal/secrets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Run configured searches against OpenAlex and collect works",
	Long: `Fetch loads one or more searches from a YAML definition file, runs each
against the OpenAlex works API with pagination, deduplicates results across
searches by work ID (first search wins), and writes them to CSV and/or renders
a console listing.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("config", "", "path to the YAML search definition file")
	fetchCmd.MarkFlagRequired("config")
	fetchCmd.Flags().String("mailto", "", "contact email sent with requests (default: OPENALEX_MAILTO or .secrets/openalex-email)")
	fetchCmd.Flags().String("output", "", "path to save results as CSV")
	fetchCmd.Flags().Bool("no-render", false, "skip rendering results to the console")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	mailto, _ := cmd.Flags().GetString("mailto")
	output, _ := cmd.Flags().GetString("output")
	noRender, _ := cmd.Flags().GetBool("no-render")

	configs, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, cfg := range configs {
		if err := cfg.Filters.Validate(); err != nil {
			return fmt.Errorf("search %s: %w", cfg.Name, err)
		}
	}

	app := appConfig()
	if output == "" {
		output = app.Output
	}

	client := &openalex.Client{
		HTTP:      &http.Client{Timeout: app.Timeout},
		Mailto:    resolveMailto(mailto, app.Mailto),
		UserAgent: app.UserAgent,
	}

	w := cmd.OutOrStdout()
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "%s\nOPENALEX WORKS COLLECTION\n%s\n", rule, rule)
	fmt.Fprintf(w, "Number of searches: %d\n\n", len(configs))

	works := collect.All(cmd.Context(), client, configs, w)
	fmt.Fprintf(w, "collection complete: %d unique works\n", len(works))

	if output != "" {
		if err := report.WriteCSV(works, output, w); err != nil {
			return err
		}
	}
	if !noRender {
		report.Render(works, w)
	}
	return nil
}

// resolveMailto picks the contact email: the --mailto flag, then the
// OPENALEX_MAILTO environment variable, then the app config, then the
// .secrets/openalex-email file. Empty means unidentified requests.
func resolveMailto(flag, fromConfig string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("OPENALEX_MAILTO"); env != "" {
		return env
	}
	if fromConfig != "" {
		return fromConfig
	}
	if s, err := secrets.Load(".secrets/"); err == nil {
		return s["openalex-email"]
	}
	return ""
}
