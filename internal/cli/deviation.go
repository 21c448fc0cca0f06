package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/conclave/internal/stats"
)

// DeviationResult is the JSON payload of the deviation command.
type DeviationResult struct {
	N         int     `json:"n"`
	Mean      float64 `json:"mean"`
	Deviation float64 `json:"deviation"`
}

// NewDeviationCommand creates the deviation command.
//
// Flag parsing is done by the command itself so negative samples such as
// "-1" are read as values rather than shorthand flags.
func NewDeviationCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deviation <value>...",
		Short: "Print the sample standard deviation of the given values",
		Long: `Print the sample (n-1) standard deviation of two or more numbers.

Negative values are accepted as-is. Everything after "--" is read as a value.

Example:
  conclave deviation 2 4 4 4 5 5 7 9
  conclave deviation -1 2 3
  conclave deviation -- -1 2 3`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, flagArgs := splitNumericArgs(args)
			if err := cmd.Flags().Parse(flagArgs); err != nil {
				return WrapExitError(ExitCommandError, "invalid flag", err)
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if err := rootOpts.prepare(cmd); err != nil {
				return err
			}
			return runDeviation(rootOpts, append(values, cmd.Flags().Args()...), cmd)
		},
	}

	return cmd
}

// splitNumericArgs separates numeric arguments from flag arguments.
// Anything after "--" is treated as a value.
func splitNumericArgs(args []string) (values, flagArgs []string) {
	for i, a := range args {
		if a == "--" {
			return append(values, args[i+1:]...), flagArgs
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			values = append(values, a)
			continue
		}
		flagArgs = append(flagArgs, a)
	}
	return values, flagArgs
}

func runDeviation(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeBadFlag, fmt.Sprintf("invalid number %q", a), err)
		}
		values = append(values, v)
	}

	dev, err := stats.Deviation(values)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, "cannot compute deviation", err)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, "cannot compute mean", err)
	}

	result := DeviationResult{N: len(values), Mean: mean, Deviation: dev}
	return formatter.Success(result, strconv.FormatFloat(dev, 'g', -1, 64)+"\n")
}
