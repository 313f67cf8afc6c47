package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"beacon/internal/respond"
)

var orgCmd = &cobra.Command{
	Use:   "org <query>",
	Short: "Ask a free-text question about the organization",
	Long: `Answers questions about the organization's mission, history, services,
locations, events, contact details, and impact statistics. The query is
matched against fixed keyword sets; several categories may answer at once.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOrg,
}

func runOrg(cmd *cobra.Command, args []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	text, _ := respond.Organization(st, strings.Join(args, " "))
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
