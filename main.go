package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/processor"
	"github.com/orayew2002/folhaponto/render"
	"github.com/orayew2002/folhaponto/sample"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Environment holds the process streams so commands can be tested.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NoColor bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{Stdout: os.Stdout, Stderr: os.Stderr}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(exitCodeFor(err))
}

// run dispatches to a command. The first argument names the command unless it
// is a flag, in which case generate is assumed.
func run(ctx context.Context, args []string, env *Environment) error {
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerate(ctx, args, env)
	case "sample":
		return runSample(args, env)
	case "calibrate":
		return runCalibrate(args, env)
	case "version":
		fmt.Fprintf(env.Stdout, "folhaponto %s\n", Version)
		return nil
	case "help":
		printUsage(env.Stdout)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

// newLogger writes human-readable logs to w. verbose wins over quiet.
func newLogger(w io.Writer, verbose, quiet, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: noColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// setup builds the logger and the effective configuration for a command.
func setup(common *commonFlags, env *Environment, apply func(*config.Config)) (*config.Config, zerolog.Logger, error) {
	log := newLogger(env.Stderr, common.verbose, common.quiet, env.NoColor)

	loadDotEnv(log)
	warnUnknownEnvVars(log)

	cfg, err := resolveConfig(common.config, loadEnvConfig(), log)
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		return nil, log, err
	}
	apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("configuration")
		return nil, log, err
	}
	return cfg, log, nil
}

func runGenerate(ctx context.Context, args []string, env *Environment) error {
	f, fs, err := parseGenerateFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return err
	}

	cfg, log, err := setup(&f.common, env, func(c *config.Config) { f.apply(fs, c) })
	if err != nil {
		return err
	}

	writer := render.NewPDFWriter(cfg.Layout.Page.Size, cfg.Layout.Page.Font, cfg.Output.TemplatePage)
	p := processor.New(cfg, render.New(writer, cfg.Output.Template),
		processor.WithLogger(log),
		processor.WithDryRun(f.dryRun),
	)

	report, err := p.Run(ctx)
	if report != nil {
		printReport(env.Stdout, report, cfg.Output.Dir)
	}
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		return err
	}
	return nil
}

func runSample(args []string, env *Environment) error {
	f, fs, err := parseSampleFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printSampleUsage(env.Stdout)
		return nil
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return err
	}

	cfg, log, err := setup(&f.common, env, func(c *config.Config) { applyCommon(fs, &f.common, c) })
	if err != nil {
		return err
	}

	w := sample.NewWriter(cfg)
	dims, err := w.Dims()
	if err != nil {
		return err
	}

	out := f.output
	if out == "" {
		out = cfg.SourcePath()
	}
	if err := w.WriteToFile(cfg.Reference(), sample.Generate(f.people, dims), out); err != nil {
		log.Error().Err(err).Msg("sample workbook not written")
		return err
	}

	log.Info().Str("output", out).Int("people", f.people).Str("period", cfg.Reference().String()).Msg("sample workbook written")
	return nil
}

func runCalibrate(args []string, env *Environment) error {
	f, fs, err := parseCalibrateFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printCalibrateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return err
	}

	cfg, log, err := setup(&f.common, env, func(c *config.Config) { f.apply(fs, c) })
	if err != nil {
		return err
	}

	writer := render.NewPDFWriter(cfg.Layout.Page.Size, cfg.Layout.Page.Font, cfg.Output.TemplatePage)
	p := processor.New(cfg, render.New(writer, cfg.Output.Template), processor.WithLogger(log))
	if err := p.Calibrate(cfg.Layout.Calibration.Output); err != nil {
		log.Error().Err(err).Msg("calibration mask not written")
		return err
	}
	return nil
}

func printReport(w io.Writer, r *processor.Report, dir string) {
	verb := "written to"
	if r.DryRun {
		verb = "would be written to"
	}
	fmt.Fprintf(w, "%s: %d form(s) %s %s\n", processor.MonthName(r.Period), len(r.Generated), verb, dir)
	for _, o := range r.Skipped {
		fmt.Fprintf(w, "  skipped  %s (%s): %v\n", o.Person, o.Registration, o.Err)
	}
	for _, o := range r.Failed {
		fmt.Fprintf(w, "  failed   %s (%s): %v\n", o.Person, o.Registration, o.Err)
	}
}
