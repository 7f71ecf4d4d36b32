// Package main is resumectl, a command-line front end to the résumé analyzer.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

var (
	taxonomyFile string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Analyze résumés and rank job postings from the command line",
	Long:  "resumectl scores résumés against job roles, lists the configured roles, searches job postings and issues API tokens.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.Init(logger.Config{Level: logLevel, Format: "pretty", Output: cmd.ErrOrStderr()})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&taxonomyFile, "taxonomy", "", "Path to a role taxonomy YAML file (default: $TAXONOMY_FILE, then built-in roles)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	path := taxonomyFile
	if path == "" {
		path = os.Getenv("TAXONOMY_FILE")
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
