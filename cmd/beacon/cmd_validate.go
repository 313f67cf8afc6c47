package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"beacon/internal/format"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the data document",
	Long: `Loads the data document, runs the same structural and record validation
the server applies at startup, and reports section record counts. Exits
non-zero if the document would prevent the server from starting.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	tb := format.NewTable(format.ASCII)
	tb.Header("Section", "Records")
	tb.Row("volunteer opportunities", len(st.Volunteer.Opportunities))
	tb.Row("donation channels", 3)
	tb.Row("services", len(st.Organization.Services))
	tb.Row("locations", len(st.Organization.Locations))
	tb.Row("events", len(st.Organization.Events))
	tb.Columns(format.ColumnConfig{Number: 2, Right: true})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tb.String())
	fmt.Fprintf(out, "data document is valid (%s, founded %d)\n",
		st.Organization.Name, st.Organization.About.Founded)
	return nil
}
