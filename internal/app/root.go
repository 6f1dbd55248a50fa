package app

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"indexdist/internal/config"
	"indexdist/internal/output"
	"indexdist/internal/version"
)

// NewRootCmd returns a fresh indexdist command writing to stdout/stderr.
// Each call has its own flag set and settings, so tests can run it repeatedly.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexdist",
		Short: "Pairwise Hamming distances between two sets of sequencing index barcodes",
		Long: `Compare every reference index against every test index, channel by
channel (i7, i5, ...), and write the Hamming distances as a long-form table.

Optionally also writes the stacked table, a per-test-index summary and a
histogram figure with one panel per test index and a reference line at the
minimum safe distance.

Settings come from flags, INDEXDIST_* environment variables (dashes become
underscores) and an optional --config file, in that order of precedence.`,
		Example: `  indexdist --ref-indices ref.csv --test-indices test.csv \
      --results-csv distances.csv --comparison-pdf distances.pdf

  indexdist --ref-indices ref.csv --test-indices test.csv --results-csv - --format jsonl`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{err: errUnexpectedArgs(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			config.SetDefaults(v)
			config.BindEnv(v)
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			settings, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, settings)
			if err != nil {
				return &usageError{err: err}
			}
			return execute(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("indexdist version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	registerFlags(cmd.Flags())
	return cmd
}

// registerFlags wires every setting onto fs. Defaults mirror config.SetDefaults.
func registerFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false

	// Input
	fs.StringP("ref-indices", "r", "", "reference index table (CSV with name + channel columns, '-' for stdin) [*]")
	fs.StringP("test-indices", "t", "", "test index table (same columns as the reference) [*]")
	fs.StringP("delimiter", "d", ",", `input field separator (use "tab" or "\t" for TSV)`)
	fs.StringSlice("channels", nil, "channels to compare, in output order (default: reference column order)")

	// Output
	fs.StringP("results-csv", "o", "", "long-form results table ('-' for stdout) [*]")
	fs.StringP("format", "f", output.FormatCSV, "results format: "+strings.Join(output.Formats, " | "))
	fs.Bool("no-header", false, "suppress header rows")
	fs.String("stacked-csv", "", "also write the stacked table (one row per channel) ('-' for stdout)")
	fs.String("stacked-format", output.FormatCSV, "stacked table format: "+strings.Join(output.Formats, " | "))
	fs.String("summary", "", "also write a per-test-index summary TSV ('-' for stdout)")
	fs.StringP("comparison-pdf", "p", "", "histogram figure; format from extension (pdf, png, svg, eps, jpg, tif)")

	// Figure
	fs.Float64("threshold", 3.5, "minimum safe distance, drawn as a red reference line")
	fs.Int("facet-cols", 3, "histogram panels per row")

	// Performance
	fs.IntP("workers", "w", 1, "channels built concurrently (0 = all CPUs)")

	// Misc
	fs.StringP("config", "c", "", "settings file (yaml, toml or json)")
	fs.BoolP("quiet", "q", false, "suppress warnings")
	fs.Bool("verbose", false, "print progress to stderr")
}
