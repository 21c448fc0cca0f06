package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/conclave/internal/param"
)

// ParamsOptions holds flags for the params command.
type ParamsOptions struct {
	*RootOptions

	// Defaults are "key=value" pairs resolved after loading.
	Defaults []string
}

// ParamsResult is the JSON payload of the params command.
type ParamsResult struct {
	Files     []string     `json:"files"`
	Count     int          `json:"count"`
	Pairs     []param.Pair `json:"pairs"`
	Defaulted []string     `json:"defaulted,omitempty"`
}

// NewParamsCommand creates the params command.
func NewParamsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParamsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "params <file>...",
		Short: "Load parameter files and print the merged result",
		Long: `Load one or more parameter files in order and print the merged store.

Later files override keys from earlier ones. Keys are case-insensitive and
printed lowercased. Each --default is resolved after loading: if the key is
not configured, the default is stored and reported.

Example:
  conclave params base.txt run-12.txt
  conclave params run.txt --default generations=100 --default seed=1`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Defaults, "default", "d", nil, "key=value resolved after loading (repeatable)")

	return cmd
}

func runParams(opts *ParamsOptions, files []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	defaults, err := parseDefaults(opts.Defaults)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFlag, "invalid --default", err)
	}

	var defaulted []string
	st := param.New(param.WithDefaultObserver(func(key, value string) {
		slog.Debug("parameter default applied", "key", key, "value", value)
		defaulted = append(defaulted, key)
	}))

	for _, path := range files {
		n, err := st.LoadFile(path)
		if err != nil {
			code := ErrCodeGeneric
			if param.IsIOFailure(err) {
				code = ErrCodeIO
			}
			return formatter.Fail(ExitCommandError, code, "failed to load parameters", err)
		}
		slog.Debug("parameters loaded", "path", path, "keys", n)
	}

	for _, d := range defaults {
		st.ResolveOrDefault(d.Key, d.Value)
	}

	result := ParamsResult{
		Files:     files,
		Count:     st.Len(),
		Pairs:     st.Pairs(),
		Defaulted: defaulted,
	}
	if result.Pairs == nil {
		result.Pairs = []param.Pair{}
	}
	formatter.VerboseLog("%d key(s) from %d file(s), %d defaulted", result.Count, len(files), len(defaulted))
	return formatter.Success(result, st.Render())
}

// parseDefaults splits "key=value" flag values on the first '='.
func parseDefaults(raw []string) ([]param.Pair, error) {
	out := make([]param.Pair, 0, len(raw))
	for _, r := range raw {
		k, v, ok := strings.Cut(r, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%q: expected key=value", r)
		}
		out = append(out, param.Pair{Key: k, Value: strings.TrimSpace(v)})
	}
	return out, nil
}
