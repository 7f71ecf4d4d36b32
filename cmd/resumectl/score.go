package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

var scoreCmd = &cobra.Command{
	Use:   "score FILE_A FILE_B",
	Short: "Print the TF-IDF cosine similarity (0-100) of two documents",
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := readResume(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := readResume(cmd, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", nlp.Similarity(a, b))
	return nil
}
