package main

import (
	"github.com/spf13/cobra"

	"jobads/internal/core/domain"
)

func newResolveCmd(opts *options) *cobra.Command {
	var (
		file     string
		platform string
	)
	cmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Show how a targeting descriptor maps onto one platform",
		Example: `  echo '{"locations":["REGION_DACH"]}' | adcompile resolve -p x`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := domain.ParsePlatform(platform)
			if err != nil {
				return err
			}
			var desc domain.TargetingDescriptor
			if err = readInput(cmd, file, &desc); err != nil {
				return err
			}
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			rt, err := svc.Resolve(cmd.Context(), p, desc)
			if err != nil {
				return err
			}
			return writeJSON(cmd, rt)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "targeting descriptor JSON; - reads stdin")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "target platform")
	_ = cmd.MarkFlagRequired("platform")
	return cmd
}
