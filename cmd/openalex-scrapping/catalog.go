// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/SpectraGen/openalex-scrapping/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local SQLite catalog of collected works",
	Long: `Catalog keeps collected works in a local SQLite database with FTS5
full-text search over titles, authors, and journals. Use store to ingest a
results CSV and search to query it.`,
}

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest a results CSV into the catalog",
	RunE:  runCatalogStore,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog with full-text search",
	Long: `Search queries the catalog's FTS5 index. Without a query it lists the
most recent works by year and citation count.`,
	RunE: runCatalogSearch,
}

func init() {
	catalogCmd.PersistentFlags().String("db", "catalog/works.db", "path to the catalog database")

	catalogStoreCmd.Flags().StringP("input", "i", "", "path to the results CSV to ingest")
	catalogStoreCmd.MarkFlagRequired("input")

	catalogSearchCmd.Flags().Int("limit", 20, "maximum number of results")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	input, _ := cmd.Flags().GetString("input")

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.ImportCSV(cmd.Context(), input, cmd.OutOrStdout())
	return err
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}
	catalog.FormatEntries(entries, cmd.OutOrStdout())
	return nil
}
