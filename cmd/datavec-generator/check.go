package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check -o <file> [flags] <size>...",
		Short: "Check that a generated file is up to date",
		Long: `Regenerate in memory and compare with an existing file.

Exit codes:
  0 - File is up to date
  1 - File is out of date (unified diff shown) or an error occurred

Examples:
  ` + programName + ` check -o data_vector.impala 1 2 4 8 16
  ` + programName + ` check -o data_vector.impala -c plan.yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.outputPath == "" {
				return errors.WithHint(errors.New("no file to check"), "pass the generated file with -o")
			}

			pf, err := loadPlan(opts, args)
			if err != nil {
				return err
			}

			out, err := generate(pf)
			if err != nil {
				return err
			}

			existing, err := os.ReadFile(opts.outputPath)
			if err != nil {
				return errors.Wrapf(err, "reading %s", opts.outputPath)
			}

			w := cmd.OutOrStdout()
			want := out.Bytes()

			if bytes.Equal(existing, want) {
				_, err := fmt.Fprintf(w, "✓ %s is up to date\n", opts.outputPath)
				return errors.Wrap(err, "writing check result")
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(existing)),
				B:        difflib.SplitLines(string(want)),
				FromFile: opts.outputPath,
				ToFile:   "generated",
				Context:  3,
			})
			if err != nil {
				return errors.Wrap(err, "computing diff")
			}

			if _, err := fmt.Fprintf(w, "✗ %s is out of date\n%s", opts.outputPath, diff); err != nil {
				return errors.Wrap(err, "writing diff")
			}

			return errors.WithHintf(
				errors.Newf("%s is out of date", opts.outputPath),
				"regenerate with: %s -o %s %s", programName, opts.outputPath, joinInts(pf.Sizes),
			)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Generated file to compare against")

	return cmd
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}

	return strings.Join(parts, " ")
}
