// Package config is for run-wide settings that are unmarshalled
// from Viper (see: internal/app)
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"indexdist/internal/histogram"
	"indexdist/internal/output"
)

// EnvPrefix is prepended to every environment override, e.g.
// INDEXDIST_RESULTS_CSV.
const EnvPrefix = "INDEXDIST"

// Config is the root-level settings struct and is a mix of settings
// available in an optional settings file, the environment and the command line.
type Config struct {
	// index sets to compare
	RefIndices  string `mapstructure:"ref-indices"`
	TestIndices string `mapstructure:"test-indices"`
	// input field separator
	Delimiter string `mapstructure:"delimiter"`

	// long-form results table ("-" for stdout) and its format
	ResultsCSV string `mapstructure:"results-csv"`
	Format     string `mapstructure:"format"`
	NoHeader   bool   `mapstructure:"no-header"`
	// optional stacked table, per-test summary and histogram figure
	StackedCSV    string `mapstructure:"stacked-csv"`
	StackedFormat string `mapstructure:"stacked-format"`
	Summary       string `mapstructure:"summary"`
	ComparisonPDF string `mapstructure:"comparison-pdf"`

	// channel enumeration order; empty means reference column order
	Channels []string `mapstructure:"channels"`
	// concurrent channel builds (0 = all CPUs)
	Workers int `mapstructure:"workers"`

	// minimum safe distance, drawn as the reference line
	Threshold float64 `mapstructure:"threshold"`
	// histogram panels per row
	FacetCols int `mapstructure:"facet-cols"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", ",")
	v.SetDefault("format", output.FormatCSV)
	v.SetDefault("stacked-format", output.FormatCSV)
	v.SetDefault("threshold", 3.5)
	v.SetDefault("facet-cols", 3)
	v.SetDefault("workers", 1)
	for _, k := range []string{"ref-indices", "test-indices", "results-csv", "stacked-csv", "summary", "comparison-pdf"} {
		v.SetDefault(k, "")
	}
	v.SetDefault("channels", []string{})
	for _, k := range []string{"no-header", "quiet", "verbose"} {
		v.SetDefault(k, false)
	}
}

// BindEnv makes every key overridable through INDEXDIST_<KEY> with dashes
// turned into underscores.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional settings file and unmarshals v into a validated
// Config.
func Load(v *viper.Viper, settingsFile string) (Config, error) {
	var c Config
	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return c, errors.Wrapf(err, "read settings %s", settingsFile)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "unable to decode settings")
	}
	c.Channels = splitChannels(c.Channels)
	return c, c.Validate()
}

// splitChannels accepts both repeated values and comma lists.
func splitChannels(in []string) []string {
	var out []string
	for _, s := range in {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// Validate applies run invariants.
func (c Config) Validate() error {
	switch {
	case c.RefIndices == "":
		return errors.New("--ref-indices is required")
	case c.TestIndices == "":
		return errors.New("--test-indices is required")
	case c.RefIndices == "-" && c.TestIndices == "-":
		return errors.New("only one of --ref-indices/--test-indices can read stdin")
	case c.ResultsCSV == "":
		return errors.New("--results-csv is required")
	}
	if !validFormat(c.Format) {
		return errors.Errorf("invalid --format %q (want %s)", c.Format, strings.Join(output.Formats, " | "))
	}
	if !validFormat(c.StackedFormat) {
		return errors.Errorf("invalid --stacked-format %q (want %s)", c.StackedFormat, strings.Join(output.Formats, " | "))
	}
	if _, err := c.Comma(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if c.FacetCols < 1 {
		return errors.New("--facet-cols must be ≥ 1")
	}
	if c.Threshold < 0 {
		return errors.New("--threshold must be ≥ 0")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	stdout := 0
	for _, p := range []string{c.ResultsCSV, c.StackedCSV, c.Summary} {
		if p == "-" {
			stdout++
		}
	}
	if stdout > 1 {
		return errors.New("only one output can be written to stdout")
	}
	if c.ComparisonPDF == "-" {
		return errors.New("--comparison-pdf needs a file path")
	}
	if c.ComparisonPDF != "" {
		if _, err := histogram.FormatOf(c.ComparisonPDF); err != nil {
			return errors.Wrap(err, "--comparison-pdf")
		}
	}
	return nil
}

func validFormat(f string) bool {
	for _, ok := range output.Formats {
		if f == ok {
			return true
		}
	}
	return false
}

// Comma returns the input field separator. `\t` and "tab" both mean a tab.
func (c Config) Comma() (rune, error) {
	switch c.Delimiter {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, errors.Errorf("--delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, errors.Errorf("invalid --delimiter %q", c.Delimiter)
	}
	return r, nil
}

// Header reports whether tables get a header row.
func (c Config) Header() bool { return !c.NoHeader }
