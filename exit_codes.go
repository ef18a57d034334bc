package main

import (
	"errors"
	"os"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/processor"
)

// Exit codes for the folhaponto CLI.
// 0=success, 1=general, 2=usage, then custom codes below 126.
const (
	ExitSuccess = 0 // Every form written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or environment
	ExitIO      = 3 // Source workbook or template not found, permission denied
	ExitData    = 4 // Workbook contradicts the configuration (period, roster columns)
	ExitPartial = 5 // At least one person's form failed
)

// exitCodeFor returns the exit code for an error.
// It relies on errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, processor.ErrPartial) {
		return ExitPartial
	}

	// Data contract errors (exit 4)
	if errors.Is(err, domain.ErrPeriodMismatch) ||
		errors.Is(err, domain.ErrMissingColumn) ||
		errors.Is(err, domain.ErrSheetNotFound) {
		return ExitData
	}

	// I/O errors (exit 3)
	if errors.Is(err, domain.ErrSourceNotFound) ||
		errors.Is(err, domain.ErrTemplateNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) {
		return ExitUsage
	}

	return ExitGeneral
}
