// Package roster reads the parameters sheet: the reference period the
// workbook was prepared for and the list of people to print forms for.
package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
)

// Source is the read access roster needs from a workbook.
type Source interface {
	CellValue(sheet, cell string) (string, error)
	Rows(sheet string) ([][]string, error)
}

// ValidatePeriod reads the year and month cells of the parameters sheet and
// compares them with want. Any disagreement is a *domain.PeriodMismatchError.
func ValidatePeriod(src Source, sc config.SourceConfig, want domain.ReferencePeriod) (domain.ReferencePeriod, error) {
	year, err := readInt(src, sc.ParametersSheet, sc.YearCell)
	if err != nil {
		return domain.ReferencePeriod{}, err
	}
	month, err := readInt(src, sc.ParametersSheet, sc.MonthCell)
	if err != nil {
		return domain.ReferencePeriod{}, err
	}

	found := domain.ReferencePeriod{Year: year, Month: month}
	if found != want {
		return domain.ReferencePeriod{}, &domain.PeriodMismatchError{Expected: want, Found: found}
	}
	return found, nil
}

func readInt(src Source, sheet, cell string) (int, error) {
	raw, err := src.CellValue(sheet, cell)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSheetNotFound, err)
	}

	n, ok := parseInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %s!%s holds %q, not a number", domain.ErrPeriodMismatch, sheet, cell, raw)
	}
	return n, nil
}

// parseInt accepts "2025" as well as the "2025.0" a float-typed cell renders as.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
