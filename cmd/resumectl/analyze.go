package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/extract"
	"github.com/artem13815/resume-analyzer/pkg/upload"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze a PDF or DOCX résumé against a job role",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzeRole string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target job role (required)")
	if err := analyzeCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	registry := extract.Default()
	extractor, ok := registry.ForFile(path)
	if !ok {
		return fmt.Errorf("%s: %w (supported: %s)", path, upload.ErrUnsupportedFormat, strings.Join(registry.Extensions(), ", "))
	}
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := analysis.NewService(tax).Analyze(ctx, extractor.Text(ctx, path), analyzeRole)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
