package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTaxonomyCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the loaded taxonomy version and per-platform coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			info := svc.Taxonomy(cmd.Context())
			if asJSON {
				return writeJSON(cmd, info)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "version %s\n\n", info.Version)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PLATFORM\tINDUSTRIES\tSKILLS\tSENIORITY\tLOCATIONS")
			for _, c := range info.Coverage {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", c.Platform, c.Industries, c.Skills, c.Seniority, c.Locations)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
