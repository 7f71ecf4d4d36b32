package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List job roles and their required skills",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

var rolesSkills bool

func init() {
	rolesCmd.Flags().BoolVarP(&rolesSkills, "skills", "s", false, "Also print each role's required skills")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, r := range tax.Roles() {
		if rolesSkills {
			fmt.Fprintf(out, "%s: %s\n", r.Name, strings.Join(r.Skills, ", "))
			continue
		}
		fmt.Fprintln(out, r.Name)
	}
	return nil
}
