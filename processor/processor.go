// Package processor runs a batch: it validates the workbook's reference
// period, reads the roster and produces one filled form per person.
package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/excel"
	"github.com/orayew2002/folhaponto/extract"
	"github.com/orayew2002/folhaponto/layout"
	"github.com/orayew2002/folhaponto/roster"
)

// Renderer writes stamped copies of the form template.
type Renderer interface {
	Render(out string, placements []domain.PlacementInstruction) error
	RenderPage(out string, build func(width, height float64) []domain.PlacementInstruction) error
}

// Processor sequences validation, roster extraction, and per-person
// extraction, layout and rendering.
type Processor struct {
	cfg      *config.Config
	renderer Renderer
	engine   *layout.Engine
	log      zerolog.Logger
	runID    string
	dryRun   bool
}

// Option customises a Processor.
type Option func(*Processor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithDryRun runs everything except writing forms and creating the output directory.
func WithDryRun(dryRun bool) Option {
	return func(p *Processor) { p.dryRun = dryRun }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(p *Processor) { p.runID = id }
}

// New creates a Processor for cfg that writes forms through r.
func New(cfg *config.Config, r Renderer, opts ...Option) *Processor {
	p := &Processor{
		cfg:      cfg,
		renderer: r,
		engine:   layout.New(cfg.Layout),
		log:      zerolog.Nop(),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With().Str("run", p.runID).Logger()
	return p
}

// RunID identifies this processor's run in logs and reports.
func (p *Processor) RunID() string { return p.runID }

// Run processes the whole roster. Errors from opening the workbook, the
// period check or the roster abort the batch before any file is written.
// Per-person failures are collected in the report; the returned error then
// wraps ErrPartial.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	path := p.cfg.SourcePath()
	want := p.cfg.Reference()

	p.log.Info().
		Str("source", path).
		Str("period", MonthName(want)).
		Msg("starting batch")

	wb, err := excel.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if _, err := roster.ValidatePeriod(wb, p.cfg.Source, want); err != nil {
		return nil, err
	}

	entries, err := roster.Extract(wb, p.cfg.Source.ParametersSheet, p.cfg.Roster)
	if err != nil {
		return nil, err
	}
	p.log.Info().Int("people", len(entries)).Msg("roster loaded")
	if p.log.GetLevel() <= zerolog.DebugLevel {
		for _, e := range entries {
			p.log.Debug().
				Int("seq", e.Sequence).
				Str("person", e.PersonName).
				Str("registration", e.RegistrationID).
				Strs("sheets", e.DetailSheetNames).
				Msg("roster entry")
		}
	}

	ex, err := extract.New(wb, p.cfg.Detail)
	if err != nil {
		return nil, err
	}

	if !p.dryRun {
		if err := os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", p.cfg.Output.Dir, err)
		}
	}

	report := &Report{RunID: p.runID, Period: want, DryRun: p.dryRun}
	names := newNamer(p.cfg.Output.Suffix)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p.process(ex, names, entry, report)
	}

	p.log.Info().
		Int("generated", len(report.Generated)).
		Int("skipped", len(report.Skipped)).
		Int("failed", len(report.Failed)).
		Bool("dry_run", p.dryRun).
		Msg("batch finished")

	return report, report.Err()
}

func (p *Processor) process(ex *extract.Extractor, names *namer, entry domain.RosterEntry, report *Report) {
	log := p.log.With().
		Int("seq", entry.Sequence).
		Str("person", entry.PersonName).
		Str("registration", entry.RegistrationID).
		Logger()

	outcome := Outcome{
		Sequence:     entry.Sequence,
		Person:       entry.PersonName,
		Registration: entry.RegistrationID,
	}

	res, err := ex.Extract(entry)
	for _, s := range res.Sheets {
		if s.Err != nil {
			log.Warn().Str("sheet", s.Sheet).Err(s.Err).Msg("detail sheet ignored")
			outcome.Sheets = append(outcome.Sheets, s.Sheet)
		}
	}
	if err != nil {
		outcome.Err = err
		if errors.Is(err, domain.ErrNoDetailSheet) {
			log.Warn().Err(err).Msg("person skipped")
			report.Skipped = append(report.Skipped, outcome)
			return
		}
		log.Error().Err(err).Msg("extraction failed")
		report.Failed = append(report.Failed, outcome)
		return
	}

	rec := res.Record
	placements := p.engine.Layout(rec)
	if log.GetLevel() <= zerolog.DebugLevel {
		dumpGrids(log, rec)
		log.Debug().Int("placements", len(placements)).Strs("subjects", rec.Subjects).Msg("layout ready")
	}

	target := filepath.Join(p.cfg.Output.Dir, names.next(rec.PersonName))

	if p.dryRun {
		outcome.Output = target
		log.Info().Str("output", target).Msg("dry run, form not written")
		report.Generated = append(report.Generated, outcome)
		return
	}

	if err := p.renderer.Render(target, placements); err != nil {
		outcome.Err = err
		log.Error().Str("output", target).Err(err).Msg("form not written")
		report.Failed = append(report.Failed, outcome)
		return
	}

	outcome.Output = target
	log.Info().Str("output", target).Msg("form written")
	report.Generated = append(report.Generated, outcome)
}

// Calibrate stamps the calibration mask over the template and saves it to out.
func (p *Processor) Calibrate(out string) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := p.renderer.RenderPage(out, p.engine.CalibrationMask); err != nil {
		return err
	}
	p.log.Info().Str("output", out).Float64("spacing", p.cfg.Layout.Calibration.Spacing).Msg("calibration mask written")
	return nil
}

// MonthName renders a period as "outubro de 2025".
func MonthName(period domain.ReferencePeriod) string {
	t := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	return monday.Format(t, "January de 2006", monday.LocalePtBR)
}

func dumpGrids(log zerolog.Logger, rec *domain.PersonRecord) {
	for _, turn := range domain.Turns {
		m := rec.Grid(turn)
		rows := make([]string, len(m))
		for i, row := range m {
			rows[i] = strings.Join(row, " ")
		}
		log.Debug().Str("turn", turn.String()).Strs("rows", rows).Msg("grid")
	}
}
