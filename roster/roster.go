package roster

import (
	"fmt"
	"slices"
	"strings"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/extract"
)

// Extract reads the person rows of the parameters sheet, starting at
// rc.StartRow. Rows blank in every tracked column are skipped; the order of
// the sheet is preserved.
func Extract(src Source, sheet string, rc config.RosterConfig) ([]domain.RosterEntry, error) {
	rows, err := src.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingColumn, err)
	}

	var header []string
	if rc.HeaderRow <= len(rows) {
		header = rows[rc.HeaderRow-1]
	}

	cols, err := locateColumns(header, rc)
	if err != nil {
		return nil, fmt.Errorf("sheet %q row %d: %w", sheet, rc.HeaderRow, err)
	}

	var entries []domain.RosterEntry
	for r := rc.StartRow - 1; r < len(rows); r++ {
		row := rows[r]
		seq, reg, name, sheets := cell(row, cols.sequence), cell(row, cols.registration), cell(row, cols.name), cell(row, cols.sheets)
		if extract.IsBlank(seq) && extract.IsBlank(reg) && extract.IsBlank(name) && extract.IsBlank(sheets) {
			continue
		}

		sequence, ok := parseInt(seq)
		if !ok {
			sequence = len(entries) + 1
		}

		entries = append(entries, domain.RosterEntry{
			Sequence:         sequence,
			RegistrationID:   extract.Normalize(reg),
			PersonName:       extract.Normalize(name),
			DetailSheetNames: SplitSheetNames(sheets),
		})
	}

	return entries, nil
}

// SplitSheetNames splits a comma-separated list of sheet names, dropping blanks.
func SplitSheetNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if extract.IsBlank(part) {
			continue
		}
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

type columnIndex struct {
	sequence, registration, name, sheets int
}

func locateColumns(header []string, rc config.RosterConfig) (columnIndex, error) {
	find := func(caption string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(caption)) {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		sequence:     find(rc.Columns.Sequence),
		registration: find(rc.Columns.Registration),
		name:         find(rc.Columns.Name),
		sheets:       find(rc.Columns.Sheets),
	}

	var missing []string
	for caption, i := range map[string]int{
		rc.Columns.Sequence:     idx.sequence,
		rc.Columns.Registration: idx.registration,
		rc.Columns.Name:         idx.name,
		rc.Columns.Sheets:       idx.sheets,
	} {
		if i < 0 {
			missing = append(missing, fmt.Sprintf("%q", caption))
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return idx, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
