package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/extract"
	"github.com/artem13815/resume-analyzer/pkg/jobs"
	"github.com/artem13815/resume-analyzer/pkg/jobs/scraper"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job postings for a role and rank them against a résumé",
	Long:  "Fetches postings from the job board configured with --board (or JOB_BOARD_URL), falling back to synthetic postings, and ranks them by similarity to the résumé.",
	Args:  cobra.NoArgs,
	RunE:  runJobs,
}

var (
	jobsRole     string
	jobsLocation string
	jobsResume   string
	jobsBoard    string
	jobsResults  int
	jobsTimeout  time.Duration
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsRole, "role", "r", "", "Job role to search for (required)")
	jobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Location filter")
	jobsCmd.Flags().StringVar(&jobsResume, "resume", "", "Résumé file (PDF, DOCX or plain text) to rank against")
	jobsCmd.Flags().StringVar(&jobsBoard, "board", "", "Job board URL template with {role} and {location} placeholders (default: $JOB_BOARD_URL)")
	jobsCmd.Flags().IntVar(&jobsResults, "results", scraper.DefaultResults, "Maximum postings taken from the board")
	jobsCmd.Flags().DurationVar(&jobsTimeout, "timeout", scraper.DefaultTimeout, "Job board request timeout")
	if err := jobsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	resumeText, err := readResume(cmd, jobsResume)
	if err != nil {
		return err
	}
	board := jobsBoard
	if board == "" {
		board = os.Getenv("JOB_BOARD_URL")
	}
	var live jobs.Source
	if board != "" {
		live = scraper.New(board, jobsResults, jobsTimeout)
	}
	matches, err := jobs.NewService(live).Search(cmd.Context(), jobsRole, jobsLocation, resumeText)
	if err != nil {
		return fmt.Errorf("failed to search jobs: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), map[string][]jobs.Match{"jobs": matches})
}

// readResume returns the text of path, using a document extractor when the extension
// has one and the raw file contents otherwise. An empty path yields "".
func readResume(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if extractor, ok := extract.Default().ForFile(path); ok {
		return extractor.Text(cmd.Context(), path), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
