package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"datavec-generator/internal/config"
	"datavec-generator/internal/gen"
	"datavec-generator/internal/logger"
)

const defaultPlanPath = "plan.yaml"

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [flags] <size>...",
		Short: "Write a plan file for the given sizes",
		Long: `Write a YAML plan file with the given sizes, the chosen branch order and
the default DSL identifiers. Edit the names, then generate with -c.

The file is written to --config (default: ` + defaultPlanPath + `). An existing
file is kept unless --force is given.

Examples:
  ` + programName + ` init 1 2 4 8 16
  ` + programName + ` init -c vectors.yaml --order descending 3 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = defaultPlanPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Newf("plan file %s already exists", path),
					"pass --force to overwrite it",
				)
			}

			sizes, err := parseInts(args, "size")
			if err != nil {
				return err
			}

			pf := config.Default()
			pf.Sizes = sizes

			if opts.order != "" {
				order, err := gen.ParseOrder(opts.order)
				if err != nil {
					return err
				}

				pf.Order = string(order)
			}

			diags := config.Validate(pf)
			for _, w := range diags.Warnings {
				logger.Logger.Warnw(w.Message, "code", w.Code, "at", w.Location)
			}

			if err := diags.Error(); err != nil {
				return err
			}

			if err := config.WriteFile(pf, path); err != nil {
				return err
			}

			logger.Logger.Infow("wrote plan", "path", path, "sizes", pf.Sizes)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %s\n", path)

			return errors.Wrap(err, "writing init result")
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing plan file")

	return cmd
}
