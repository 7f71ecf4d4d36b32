package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token CLIENT",
	Short: "Issue an API bearer token signed with JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

var (
	tokenPublish bool
	tokenTTL     time.Duration
	tokenSecret  string
	tokenIssuer  string
)

func init() {
	tokenCmd.Flags().BoolVar(&tokenPublish, "publish", false, "Allow the token to publish vacancies")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime, 0 for no expiry")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret (default: $JWT_SECRET)")
	tokenCmd.Flags().StringVar(&tokenIssuer, "issuer", "", "Token issuer (default: $JWT_ISSUER)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	secret, issuer := tokenSecret, tokenIssuer
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if issuer == "" {
		issuer = os.Getenv("JWT_ISSUER")
	}
	token, err := jwt.NewGenerator(secret, issuer, tokenTTL).Generate(args[0], tokenPublish)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
