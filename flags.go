package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/orayew2002/folhaponto/config"
)

// ErrUsage marks bad command lines.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	year    int
	month   int
	source  string
	quiet   bool
	verbose bool
}

// generateFlags holds flags for the generate command.
type generateFlags struct {
	common    commonFlags
	template  string
	outputDir string
	dryRun    bool
}

// sampleFlags holds flags for the sample command.
type sampleFlags struct {
	common commonFlags
	people int
	output string
}

// calibrateFlags holds flags for the calibrate command.
type calibrateFlags struct {
	common   commonFlags
	template string
	output   string
}

// addCommonFlags adds shared flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file (default: "+config.DefaultFileName+" if present)")
	fs.IntVar(&f.year, "year", 0, "reference year")
	fs.IntVar(&f.month, "month", 0, "reference month (1-12)")
	fs.StringVarP(&f.source, "source", "s", "", "source workbook (default: from config pattern)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log roster, grids and placements")
}

// applyCommon copies explicitly set shared flags onto cfg.
func applyCommon(fs *flag.FlagSet, f *commonFlags, cfg *config.Config) {
	if fs.Changed("year") {
		cfg.Period.Year = f.year
	}
	if fs.Changed("month") {
		cfg.Period.Month = f.month
	}
	if fs.Changed("source") {
		cfg.Source.Path = f.source
	}
}

func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseError wraps flag errors so they map to ExitUsage. flag.ErrHelp is
// passed through untouched.
func parseError(err error) error {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, *flag.FlagSet, error) {
	f := &generateFlags{}
	fs := newFlagSet("generate", printGenerateUsage, stderr)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.template, "template", "t", "", "blank form PDF")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for filled forms")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "validate and lay out, write nothing")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, fs, nil
}

func (f *generateFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	applyCommon(fs, &f.common, cfg)
	if fs.Changed("template") {
		cfg.Output.Template = f.template
	}
	if fs.Changed("output-dir") {
		cfg.Output.Dir = f.outputDir
	}
}

func parseSampleFlags(args []string, stderr io.Writer) (*sampleFlags, *flag.FlagSet, error) {
	f := &sampleFlags{}
	fs := newFlagSet("sample", printSampleUsage, stderr)

	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.people, "people", "p", 5, "number of people to generate")
	fs.StringVarP(&f.output, "output", "o", "", "workbook to write (default: the configured source path)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if f.people < 1 {
		return nil, nil, fmt.Errorf("%w: --people must be at least 1", ErrUsage)
	}
	return f, fs, nil
}

func parseCalibrateFlags(args []string, stderr io.Writer) (*calibrateFlags, *flag.FlagSet, error) {
	f := &calibrateFlags{}
	fs := newFlagSet("calibrate", printCalibrateUsage, stderr)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.template, "template", "t", "", "blank form PDF")
	fs.StringVarP(&f.output, "output", "o", "", "mask PDF to write")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs, nil
}

func (f *calibrateFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	applyCommon(fs, &f.common, cfg)
	if fs.Changed("template") {
		cfg.Output.Template = f.template
	}
	if fs.Changed("output") {
		cfg.Layout.Calibration.Output = f.output
	}
}
