package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/conclave/internal/param"
	"github.com/roach88/conclave/internal/stats"
)

// Built-in settings for the poisson command, used when neither a flag
// nor the --config file provides a value.
const (
	defaultLambda = "1"
	defaultCount  = "1"
	defaultSeed   = "0"

	// maxCount bounds the number of samples drawn in one run.
	maxCount = 10_000_000
)

// PoissonOptions holds flags for the poisson command.
type PoissonOptions struct {
	*RootOptions
	Config string
	Lambda float64
	Count  int
	Seed   uint64
	Fixed  float64
}

// PoissonResult is the JSON payload of the poisson command.
type PoissonResult struct {
	Lambda  float64  `json:"lambda"`
	Seed    uint64   `json:"seed,omitempty"`
	Fixed   *float64 `json:"fixed,omitempty"`
	Samples []int    `json:"samples"`
	Mean    float64  `json:"mean"`
}

// NewPoissonCommand creates the poisson command.
func NewPoissonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PoissonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "poisson",
		Short: "Draw Poisson-distributed samples",
		Long: `Draw Poisson-distributed integers with Knuth's algorithm.

Settings come from flags, then from the optional --config parameter file
(keys: lambda, count, seed, fixed), then from built-in defaults.

By default each sample takes fresh uniform draws from a seeded generator
and may be 0. With --fixed P the same probability P is reused on every
iteration and every sample is at least 1.

Example:
  conclave poisson --lambda 3 --count 10 --seed 42
  conclave poisson --config experiment.txt --fixed 0.5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoisson(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "parameter file with lambda/count/seed/fixed")
	cmd.Flags().Float64VarP(&opts.Lambda, "lambda", "l", 1, "Poisson rate (> 0)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of samples")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Float64Var(&opts.Fixed, "fixed", 0, "use the fixed-draw variant with this probability in [0, 1)")

	return cmd
}

// poissonSettings is the resolved configuration of one poisson run.
type poissonSettings struct {
	lambda float64
	count  int
	seed   uint64
	fixed  *float64
}

func runPoisson(opts *PoissonOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	settings, err := resolvePoissonSettings(opts, cmd)
	if err != nil {
		if param.IsIOFailure(err) {
			return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to load parameters", err)
		}
		return formatter.Fail(ExitCommandError, ErrCodeBadFlag, "invalid setting", err)
	}

	result := PoissonResult{
		Lambda:  settings.lambda,
		Fixed:   settings.fixed,
		Samples: make([]int, 0, settings.count),
	}

	var draw func() (int, error)
	if settings.fixed != nil {
		prob := *settings.fixed
		draw = func() (int, error) { return stats.PoissonFixed(prob, settings.lambda) }
	} else {
		rng, seed := stats.NewRand(settings.seed)
		if settings.seed == 0 {
			slog.Info("using random seed", "seed", seed)
		}
		result.Seed = seed
		draw = func() (int, error) { return stats.Poisson(rng, settings.lambda) }
	}

	sum := 0
	for i := 0; i < settings.count; i++ {
		k, err := draw()
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, "cannot sample", err)
		}
		result.Samples = append(result.Samples, k)
		sum += k
	}
	result.Mean = float64(sum) / float64(settings.count)

	var text strings.Builder
	for _, k := range result.Samples {
		text.WriteString(strconv.Itoa(k))
		text.WriteByte('\n')
	}
	return formatter.Success(result, text.String())
}

// resolvePoissonSettings layers flags over the config file over defaults.
// Flags that were set explicitly are written into the parameter store, so a
// single ResolveOrDefault per key yields the effective value.
func resolvePoissonSettings(opts *PoissonOptions, cmd *cobra.Command) (*poissonSettings, error) {
	st := param.New(param.WithDefaultObserver(func(key, value string) {
		slog.Debug("poisson setting defaulted", "key", key, "value", value)
	}))

	if opts.Config != "" {
		n, err := st.LoadFile(opts.Config)
		if err != nil {
			return nil, err
		}
		slog.Debug("parameters loaded", "path", opts.Config, "keys", n)
	}

	for _, name := range []string{"lambda", "count", "seed", "fixed"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			st.Set(name, f.Value.String())
		}
	}

	s := &poissonSettings{}
	var err error

	raw := st.ResolveOrDefault("lambda", defaultLambda)
	if s.lambda, err = strconv.ParseFloat(raw, 64); err != nil {
		return nil, fmt.Errorf("lambda %q: %w", raw, err)
	}

	raw = st.ResolveOrDefault("count", defaultCount)
	if s.count, err = strconv.Atoi(raw); err != nil {
		return nil, fmt.Errorf("count %q: %w", raw, err)
	}
	if s.count < 1 || s.count > maxCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", maxCount, s.count)
	}

	raw = st.ResolveOrDefault("seed", defaultSeed)
	if s.seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
		return nil, fmt.Errorf("seed %q: %w", raw, err)
	}

	// Absence of "fixed" selects the randomized variant, so no default-fill.
	if raw, ok := st.Lookup("fixed"); ok {
		prob, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("fixed %q: %w", raw, err)
		}
		s.fixed = &prob
	}

	return s, nil
}
