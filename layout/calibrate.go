package layout

import (
	"math"

	"github.com/orayew2002/folhaponto/domain"
)

// CalibrationMask covers a width×height page with the calibration mark every
// Spacing points, starting at the top-left corner. Printed over the template it
// lets an operator read coordinates straight off the page: mark n sits at
// CalibrationPoint(n, perLine, Spacing).
func (e *Engine) CalibrationMask(width, height float64) []domain.PlacementInstruction {
	c := e.cfg.Calibration
	perLine, lines := marksAlong(width, c.Spacing), marksAlong(height, c.Spacing)

	out := make([]domain.PlacementInstruction, 0, perLine*lines)
	for n := 1; n <= perLine*lines; n++ {
		x, y := CalibrationPoint(n, perLine, c.Spacing)
		out = append(out, domain.PlacementInstruction{Text: c.Mark, X: x, Y: y, FontSize: c.FontSize})
	}
	return out
}

// marksAlong is the number of marks spaced spacing apart that fit in length,
// the first one at 0.
func marksAlong(length, spacing float64) int {
	if length <= 0 || spacing <= 0 {
		return 0
	}
	return int(math.Ceil(length / spacing))
}

// CalibrationPoint returns the coordinate of the n-th mark (1-based) when marks
// are counted left to right, perLine to a row. It returns (0, 0) for n < 1 or
// perLine < 1.
func CalibrationPoint(n, perLine int, spacing float64) (x, y float64) {
	if n < 1 || perLine < 1 {
		return 0, 0
	}
	i := n - 1
	return float64(i%perLine) * spacing, float64(i/perLine) * spacing
}
