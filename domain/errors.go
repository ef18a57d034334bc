package domain

import (
	"errors"
	"fmt"
)

// Fatal errors abort the whole batch before any form is written.
var (
	ErrSourceNotFound = errors.New("source workbook not found")
	ErrPeriodMismatch = errors.New("reference period mismatch")
	ErrMissingColumn  = errors.New("missing roster column")
)

// Per-sheet and per-person errors are reported and the batch continues.
var (
	ErrSheetNotFound = errors.New("detail sheet not found")
	ErrSheetRead     = errors.New("detail sheet unreadable")
	ErrNoDetailSheet = errors.New("no resolvable detail sheet")
	ErrRender        = errors.New("form rendering failed")
)

// ErrTemplateNotFound is wrapped together with ErrRender when the blank form
// is missing.
var ErrTemplateNotFound = errors.New("form template not found")

// PeriodMismatchError reports the period found in the workbook when it
// differs from the configured one.
type PeriodMismatchError struct {
	Expected ReferencePeriod
	Found    ReferencePeriod
}

func (e *PeriodMismatchError) Error() string {
	return fmt.Sprintf("%s: workbook declares %s, expected %s", ErrPeriodMismatch, e.Found, e.Expected)
}

// Is lets errors.Is(err, ErrPeriodMismatch) match.
func (e *PeriodMismatchError) Is(target error) bool {
	return target == ErrPeriodMismatch
}
