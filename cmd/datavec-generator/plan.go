package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"datavec-generator/internal/config"
	"datavec-generator/internal/gen"
)

func newPlanCmd(opts *options) *cobra.Command {
	var sizes []int

	cmd := &cobra.Command{
		Use:   "plan [flags] <total>...",
		Short: "Show how the generated chooser builds each total",
		Long: `Show which fixed-size constructors the generated chooser concatenates for
each requested total, without generating any code.

The chooser is greedy: it commits to the first size that fits and never
backtracks, so some totals are unsupported even when a combination exists.

Examples:
  ` + programName + ` plan --sizes 1,2,4,8,16 31    # 31 = 16 + 8 + 4 + 2 + 1
  ` + programName + ` plan --sizes 1,2,4 9          # 9 = 4×2 + 1
  ` + programName + ` plan --sizes 2,4 3            # 3: unsupported
  ` + programName + ` plan -c plan.yaml 7 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := parseInts(args, "total")
			if err != nil {
				return err
			}

			pf, err := loadPlan(opts, nil)
			if err != nil {
				return err
			}

			if len(sizes) > 0 {
				pf.Sizes = sizes
			}

			diags := config.Validate(pf)
			if err := diags.Error(); err != nil {
				return errors.WithHint(err, "give sizes with --sizes or a plan file")
			}

			order := pf.GeneratorConfig().Order
			w := cmd.OutOrStdout()

			for _, total := range totals {
				terms, err := gen.Decompose(pf.Sizes, order, total)
				switch {
				case errors.Is(err, gen.ErrUnsupportedSize):
					_, err = fmt.Fprintln(w, strconv.Itoa(total)+": unsupported")
				case err != nil:
					return err
				default:
					_, err = fmt.Fprintln(w, gen.FormatDecomposition(total, terms))
				}

				if err != nil {
					return errors.Wrap(err, "writing plan")
				}
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&sizes, "sizes", "s", nil, "Supported sizes (default: from --config)")

	return cmd
}
