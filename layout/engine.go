// Package layout turns a PersonRecord into placement instructions: every
// piece of text on the form together with its page position and font size.
//
// Grids are laid out row by row from Grid.YStart. Rows up to ThresholdRow are
// RowHeight apart; later rows are ExtraRowHeight apart, matching the gap the
// printed form leaves before its last rows. Columns start at the turn's X and
// advance by ColumnWidth, except around the turn's ThresholdCol where the form
// has wider cells (ExtraWidth). The turn's Rule decides whether every column
// from the threshold on is wide ("from") or only the threshold column ("at").
package layout

import (
	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
)

// Engine computes placements from a fixed layout configuration.
type Engine struct {
	cfg config.LayoutConfig
}

// New returns an Engine for cfg.
func New(cfg config.LayoutConfig) *Engine {
	return &Engine{cfg: cfg}
}

// RowY returns the baseline of grid row i (1-based).
func (e *Engine) RowY(i int) float64 {
	g := e.cfg.Grid
	if i <= g.ThresholdRow {
		return g.YStart + float64(i-1)*g.RowHeight
	}
	return g.YStart + float64(g.ThresholdRow-1)*g.RowHeight + float64(i-g.ThresholdRow)*g.ExtraRowHeight
}

// ColumnXs returns the x of the first n columns of turn t's grid.
func (e *Engine) ColumnXs(t domain.Turn, n int) []float64 {
	tl := e.cfg.Turns.For(t)
	xs := make([]float64, n)
	x := tl.X
	for j := 1; j <= n; j++ {
		xs[j-1] = x
		x += e.columnAdvance(tl, j)
	}
	return xs
}

// columnAdvance is the distance from column j (1-based) to column j+1.
func (e *Engine) columnAdvance(tl config.TurnLayout, j int) float64 {
	wide := j >= tl.ThresholdCol
	if tl.Rule == config.RuleAt {
		wide = j == tl.ThresholdCol
	}
	if wide {
		return tl.ExtraWidth
	}
	return e.cfg.Grid.ColumnWidth
}

// PlaceGrid lays out turn t's matrix and returns the baseline of its last row,
// which anchors the turn's remark. An empty matrix reports Grid.YStart.
func (e *Engine) PlaceGrid(t domain.Turn, m domain.Matrix) (out []domain.PlacementInstruction, lastRowY float64) {
	lastRowY = e.cfg.Grid.YStart
	for i, row := range m {
		y := e.RowY(i + 1)
		lastRowY = y
		for j, x := range e.ColumnXs(t, len(row)) {
			text := row[j]
			if text == domain.Placeholder && !e.cfg.Grid.PrintBlank {
				continue
			}
			out = append(out, domain.PlacementInstruction{Text: text, X: x, Y: y, FontSize: e.cfg.Grid.FontSize})
		}
	}
	return out, lastRowY
}

// RemarkY returns the baseline of a remark placed under a grid ending at lastRowY.
func (e *Engine) RemarkY(lastRowY float64) float64 {
	return lastRowY + e.cfg.Remarks.Offset
}

// Layout returns every placement for rec: header fields, subjects, then each
// turn's grid followed by its remark.
func (e *Engine) Layout(rec *domain.PersonRecord) []domain.PlacementInstruction {
	out := e.placeFields(rec)
	out = append(out, e.placeSubjects(rec.Subjects)...)

	for _, turn := range domain.Turns {
		grid, lastRowY := e.PlaceGrid(turn, rec.Grid(turn))
		out = append(out, grid...)
		out = append(out, domain.PlacementInstruction{
			Text:     printable(rec.Remarks.For(turn)),
			X:        e.cfg.Turns.For(turn).RemarksX,
			Y:        e.RemarkY(lastRowY),
			FontSize: e.cfg.Remarks.FontSize,
		})
	}

	return out
}

func printable(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}
