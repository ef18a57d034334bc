package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", IndexToColumn(col), row+1)
}

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
func IndexToColumn(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}

// CellIndex converts an Excel cell reference to 0-based row and column indices ("B19" → 18, 1).
func CellIndex(cell string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.TrimSpace(cell))
	if err != nil {
		return 0, 0, err
	}
	return r - 1, c - 1, nil
}

// Range is a rectangular block of cells written as "B19:G24".
type Range struct {
	StartRow, StartCol int // 0-based, inclusive
	EndRow, EndCol     int // 0-based, inclusive
}

// ParseRange parses an "A1:B2" reference. Corners may be given in any order.
func ParseRange(ref string) (Range, error) {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		return Range{}, fmt.Errorf("range %q: expected START:END", ref)
	}

	r1, c1, err := CellIndex(from)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", ref, err)
	}
	r2, c2, err := CellIndex(to)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", ref, err)
	}

	return Range{
		StartRow: min(r1, r2), StartCol: min(c1, c2),
		EndRow: max(r1, r2), EndCol: max(c1, c2),
	}, nil
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int { return r.EndCol - r.StartCol + 1 }

func (r Range) String() string {
	return CellName(r.StartRow, r.StartCol) + ":" + CellName(r.EndRow, r.EndCol)
}
