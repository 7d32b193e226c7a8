package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"datavec-generator/internal/config"
	"datavec-generator/internal/gen"
	"datavec-generator/internal/logger"
)

const usageLine = "Please provide a list of data vector sizes as argument. i.e. " + programName + " 1 2 4 8 16"

// options holds flag values shared by all commands.
type options struct {
	configPath string
	outputPath string
	order      string
	verbose    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   programName + " [flags] <size>...",
		Short: "Generate fixed-size data vector definitions",
		Long: `Generate data vector definitions for the embedded DSL.

For each size a fixed-length constructor is emitted, together with a
concatenation helper and a chooser that builds any requested total by greedily
concatenating the largest fitting constructors. Totals the greedy walk cannot
reach produce an undefined value in the generated code.

Examples:
  ` + programName + ` 1 2 4 8 16                  # Print to stdout
  ` + programName + ` -o data_vector.impala 1 2 4  # Write to a file
  ` + programName + ` --order descending 3 1 2     # Try larger sizes first
  ` + programName + ` -c plan.yaml                 # Sizes and names from a plan file`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Initialize(opts.verbose, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.configPath == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return err
			}

			pf, err := loadPlan(opts, args)
			if err != nil {
				return err
			}

			if len(pf.Sizes) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return err
			}

			out, err := generate(pf)
			if err != nil {
				return err
			}

			if opts.outputPath == "" {
				_, err := cmd.OutOrStdout().Write(out.Bytes())
				return errors.Wrap(err, "writing generated output")
			}

			if err := gen.WriteFile(opts.outputPath, out.Bytes()); err != nil {
				return err
			}

			logger.Logger.Infow("wrote data vectors", "path", opts.outputPath, "blocks", len(out.Blocks))

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML plan file with sizes, order and names")
	cmd.PersistentFlags().StringVar(&opts.order, "order", "", "Chooser branch order: input-reversed (default) or descending")
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (-v, -vv)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file (default: stdout)")

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newPlanCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))

	return cmd
}

// loadPlan merges the plan file (if any) with command line sizes and flags.
func loadPlan(opts *options, args []string) (*config.PlanFile, error) {
	pf := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		pf = loaded
	}

	if len(args) > 0 {
		sizes, err := parseInts(args, "size")
		if err != nil {
			return nil, err
		}

		pf.Sizes = sizes
	}

	if opts.order != "" {
		order, err := gen.ParseOrder(opts.order)
		if err != nil {
			return nil, err
		}

		pf.Order = string(order)
	}

	return pf, nil
}

// generate validates the plan, logs warnings and runs the generator.
func generate(pf *config.PlanFile) (*gen.Output, error) {
	diags := config.Validate(pf)
	for _, w := range diags.Warnings {
		logger.Logger.Warnw(w.Message, "code", w.Code, "at", w.Location)
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	logger.Logger.Infow("generating data vectors", "sizes", pf.Sizes, "order", pf.Order)

	return gen.NewGenerator(pf.GeneratorConfig()).Generate(pf.Sizes)
}

// parseInts parses base-10 integer arguments, naming the first bad one.
func parseInts(args []string, what string) ([]int, error) {
	res := make([]int, 0, len(args))

	for i, a := range args {
		n, err := strconv.Atoi(a)
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.WithHintf(
				errors.Newf("invalid %s %q (argument %d): out of range", what, a, i+1),
				"values must fit in a %d-bit integer", strconv.IntSize,
			)
		}

		if err != nil {
			return nil, errors.WithHintf(
				errors.Newf("invalid %s %q (argument %d): not a base-10 integer", what, a, i+1),
				"pass whole numbers, e.g. %s 1 2 4 8 16", programName,
			)
		}

		res = append(res, n)
	}

	return res, nil
}
