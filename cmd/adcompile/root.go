package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jobads/internal/adapter/usecase"
	"jobads/internal/compiler"
	"jobads/internal/config"
	"jobads/internal/core/domain"
	"jobads/internal/taxonomy"
)

var errCompileFailed = errors.New("compilation failed")

type options struct {
	taxonomyDir string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "adcompile",
		Short: "Compile job ads into ad network payloads",
		Long: `adcompile turns a normalised job ad record and its targeting descriptor
into the campaign, ad group and creative payloads of Meta, Google Ads, X,
TikTok and Snapchat.

Platform identities are read from the environment (and an optional .env
file) using the same META_, GOOGLE_, TWITTER_, TIKTOK_ and SNAPCHAT_
variables as the service. Logs go to stderr and follow LOG_LEVEL and
LOG_FORMAT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.taxonomyDir, "taxonomy-dir", "", "load taxonomy tables from this directory instead of the embedded ones")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level, overriding LOG_LEVEL")

	root.AddCommand(
		newCompileCmd(opts),
		newResolveCmd(opts),
		newTaxonomyCmd(opts),
	)
	return root
}

// service builds the same use case the HTTP server runs, minus the audit
// trail.
func (o *options) service(cmd *cobra.Command) (*usecase.CompileUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dir := o.taxonomyDir
	if dir == "" {
		dir = cfg.Taxonomy.Dir
	}

	if o.verbose {
		cfg.Log.Level = "debug"
	}
	logger := slog.New(cfg.Log.Handler(cmd.ErrOrStderr()))

	store, err := taxonomy.NewStore(taxonomy.Source(dir), logger)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	engine := compiler.NewEngine(store, logger, compiler.WithConcurrency(cfg.Engine.Concurrency))
	return usecase.NewCompileUseCase(engine, nil, cfg.Platforms(), nil, logger), nil
}

// readInput decodes JSON from path, or from stdin when path is "-".
func readInput(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parsePlatforms(names []string) ([]domain.Platform, error) {
	out := make([]domain.Platform, 0, len(names))
	for _, n := range names {
		p, err := domain.ParsePlatform(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
