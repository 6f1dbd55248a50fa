package app

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"indexdist/internal/cmdutil"
	"indexdist/internal/config"
	"indexdist/internal/histogram"
	"indexdist/internal/output"
	"indexdist/internal/report"
	"indexdist/internal/seqtable"
	"indexdist/internal/writers"
)

func errUnexpectedArgs(args []string) error {
	return errors.Errorf("unexpected arguments: %s", strings.Join(args, " "))
}

// execute loads both index tables, runs the comparison and writes every
// requested output. Nothing is written unless the report was built in full.
func execute(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	comma, err := cfg.Comma()
	if err != nil {
		return err
	}
	ref, err := seqtable.LoadCSV(cfg.RefIndices, comma)
	if err != nil {
		return errors.Wrap(err, "reference indices")
	}
	cmdutil.Infof(stderr, cfg.Verbose, "reference indices: %d rows, columns %s", ref.Len(), strings.Join(ref.Columns(), ","))
	test, err := seqtable.LoadCSV(cfg.TestIndices, comma)
	if err != nil {
		return errors.Wrap(err, "test indices")
	}
	cmdutil.Infof(stderr, cfg.Verbose, "test indices: %d rows, columns %s", test.Len(), strings.Join(test.Columns(), ","))
	if err := ctx.Err(); err != nil {
		return err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	lf, err := report.Run(ref, test, report.Options{Channels: cfg.Channels, Workers: workers})
	if err != nil {
		return err
	}
	cmdutil.Infof(stderr, cfg.Verbose, "channels %s: %d pairs", strings.Join(lf.Channels, ","), len(lf.Records))

	summaries := report.Summarize(lf, cfg.Threshold)
	nearPairs := 0
	for _, s := range summaries {
		nearPairs += s.Close
	}
	if nearPairs > 0 {
		cmdutil.Warnf(stderr, cfg.Quiet, "%d reference/test pairs are within %g on every channel", nearPairs, cfg.Threshold)
	}

	outw := bufio.NewWriter(stdout)
	if err := emit(cfg.ResultsCSV, outw, func(w io.Writer) error {
		return writers.Write(cfg.Format, w, lf, cfg.Header())
	}); err != nil {
		return withCode(ExitOutput, errors.Wrap(err, "write results"))
	}
	cmdutil.Infof(stderr, cfg.Verbose, "results: %s (%s)", cfg.ResultsCSV, cfg.Format)

	if cfg.StackedCSV != "" {
		if err := emit(cfg.StackedCSV, outw, func(w io.Writer) error {
			return writers.WriteStacked(cfg.StackedFormat, w, lf, cfg.Header())
		}); err != nil {
			return withCode(ExitOutput, errors.Wrap(err, "write stacked table"))
		}
		cmdutil.Infof(stderr, cfg.Verbose, "stacked table: %s (%s)", cfg.StackedCSV, cfg.StackedFormat)
	}
	if cfg.Summary != "" {
		if err := emit(cfg.Summary, outw, func(w io.Writer) error {
			return output.WriteSummaryTSV(w, lf.Channels, summaries, cfg.Header())
		}); err != nil {
			return withCode(ExitOutput, errors.Wrap(err, "write summary"))
		}
		cmdutil.Infof(stderr, cfg.Verbose, "summary: %s", cfg.Summary)
	}

	if cfg.ComparisonPDF != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		opts := histogram.DefaultOptions
		opts.Threshold = cfg.Threshold
		opts.Cols = cfg.FacetCols
		if err := histogram.Save(cfg.ComparisonPDF, lf.Stack(), opts); err != nil {
			return withCode(ExitOutput, errors.Wrap(err, "render histogram"))
		}
		cmdutil.Infof(stderr, cfg.Verbose, "figure: %s", cfg.ComparisonPDF)
	}

	if err := outw.Flush(); err != nil {
		return withCode(ExitOutput, err)
	}
	return nil
}

// emit runs write against stdout for "-" and against a new file otherwise.
// A file that could not be written completely is removed.
func emit(path string, stdout *bufio.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}
