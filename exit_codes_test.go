package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/processor"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown", err: errors.New("boom"), want: ExitGeneral},

		{name: "usage", err: fmt.Errorf("%w: bad flag", ErrUsage), want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: fmt.Errorf("x: %w", config.ErrConfigParse), want: ExitUsage},
		{name: "config invalid", err: fmt.Errorf("x: %w", config.ErrConfigInvalid), want: ExitUsage},

		{name: "source missing", err: fmt.Errorf("%w: a.xlsx", domain.ErrSourceNotFound), want: ExitIO},
		{name: "template missing", err: fmt.Errorf("%w: %w", domain.ErrRender, domain.ErrTemplateNotFound), want: ExitIO},
		{name: "permission", err: fmt.Errorf("open: %w", os.ErrPermission), want: ExitIO},

		{name: "period mismatch", err: &domain.PeriodMismatchError{}, want: ExitData},
		{name: "missing column", err: fmt.Errorf("row 11: %w", domain.ErrMissingColumn), want: ExitData},
		{name: "parameters sheet missing", err: fmt.Errorf("%w: parametros", domain.ErrSheetNotFound), want: ExitData},

		{name: "partial", err: fmt.Errorf("%w: 1 of 3", processor.ErrPartial), want: ExitPartial},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
