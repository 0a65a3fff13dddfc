package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobads/internal/core/domain"
	"jobads/internal/core/port"
)

type compileInput struct {
	Record    domain.AdRecord            `json:"record"`
	Targeting domain.TargetingDescriptor `json:"targeting"`
	Platforms []domain.Platform          `json:"platforms,omitempty"`
}

type compileOutput struct {
	Platform domain.Platform                  `json:"platform"`
	Stage    domain.Stage                     `json:"stage"`
	Bundle   *domain.Bundle                   `json:"bundle,omitempty"`
	Error    *domain.Failure                  `json:"error,omitempty"`
	Warnings []domain.UnmappedTaxonomyWarning `json:"warnings,omitempty"`
}

func newCompileCmd(opts *options) *cobra.Command {
	var (
		file      string
		platforms []string
	)
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a request file into platform payloads",
		Example: `  adcompile compile -f request.json
  adcompile compile -f - -p meta -p tiktok < request.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in compileInput
			if err := readInput(cmd, file, &in); err != nil {
				return err
			}
			selected, err := parsePlatforms(platforms)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				selected = in.Platforms
			}

			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			resp, err := svc.Compile(cmd.Context(), port.CompileReq{
				Record:    in.Record,
				Targeting: in.Targeting,
				Platforms: selected,
			})
			if err != nil {
				return err
			}

			out := make([]compileOutput, 0, len(resp.Results))
			failed := 0
			for _, r := range resp.Results {
				if !r.OK() {
					failed++
				}
				out = append(out, compileOutput{
					Platform: r.Platform,
					Stage:    r.Stage,
					Bundle:   r.Bundle,
					Error:    domain.FailureOf(r.Err),
					Warnings: r.Warnings,
				})
			}
			if err = writeJSON(cmd, out); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d platforms", errCompileFailed, failed, len(out))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "request JSON ({record, targeting, platforms}); - reads stdin")
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "platforms to compile; defaults to the request's or the record's")
	return cmd
}
