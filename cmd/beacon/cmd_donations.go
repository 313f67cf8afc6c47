package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"beacon/internal/respond"
)

var donationsFlags struct {
	typ string
}

var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "Show donation information for one giving channel",
	RunE:  runDonations,
}

func init() {
	donationsCmd.Flags().StringVar(&donationsFlags.typ, "type", "", "Donation channel: online, in_kind, or vehicle (required)")
	_ = donationsCmd.MarkFlagRequired("type")
}

func runDonations(cmd *cobra.Command, _ []string) error {
	typ, err := respond.ParseDonationType(donationsFlags.typ)
	if err != nil {
		return err
	}

	st, err := loadStore()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), respond.Donation(st.Donations, typ))
	return nil
}
