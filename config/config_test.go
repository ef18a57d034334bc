package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orayew2002/folhaponto/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults must be valid on their own
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if got := cfg.SourcePath(); got != "Base-folhaPonto-2025-10.xlsx" {
		t.Errorf("SourcePath() = %q", got)
	}
	if got := cfg.Reference(); got != (domain.ReferencePeriod{Year: 2025, Month: 10}) {
		t.Errorf("Reference() = %v", got)
	}
	if cfg.Layout.Turns.For(domain.Evening).X != 473 {
		t.Errorf("evening x = %v, want 473", cfg.Layout.Turns.For(domain.Evening).X)
	}
	if cfg.Detail.Grids.For(domain.Afternoon) != "H19:M24" {
		t.Errorf("afternoon grid = %q", cfg.Detail.Grids.For(domain.Afternoon))
	}
}

func TestSourcePath(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Period = PeriodConfig{Year: 2026, Month: 3}
	if got := cfg.SourcePath(); got != "Base-folhaPonto-2026-3.xlsx" {
		t.Errorf("SourcePath() = %q", got)
	}

	cfg.Source.Path = "/data/custom.xlsx"
	if got := cfg.SourcePath(); got != "/data/custom.xlsx" {
		t.Errorf("SourcePath() with explicit path = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - YAML loading over defaults
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
period:
  year: 2026
  month: 2
layout:
  grid:
    yStart: 230
  turns:
    morning:
      x: 90
      thresholdCol: 2
      extraWidth: 28
      rule: from
      remarksX: 50
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Period.Year != 2026 || cfg.Period.Month != 2 {
		t.Errorf("period = %+v", cfg.Period)
	}
	if cfg.Layout.Grid.YStart != 230 {
		t.Errorf("yStart = %v, want 230", cfg.Layout.Grid.YStart)
	}
	if cfg.Layout.Grid.RowHeight != 8 {
		t.Errorf("rowHeight = %v, want default 8", cfg.Layout.Grid.RowHeight)
	}
	if cfg.Layout.Turns.Morning.Rule != RuleFrom || cfg.Layout.Turns.Morning.X != 90 {
		t.Errorf("morning = %+v", cfg.Layout.Turns.Morning)
	}
	if cfg.Layout.Turns.Afternoon.X != 295 {
		t.Errorf("afternoon x = %v, want default 295", cfg.Layout.Turns.Afternoon.X)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, "\n"))
	if err != nil {
		t.Fatalf("LoadConfig(empty): %v", err)
	}
	if cfg.Period.Month != 10 {
		t.Errorf("month = %d, want default 10", cfg.Period.Month)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown key",
			content: "period:\n  yaer: 2025\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "malformed yaml",
			content: "period: [",
			wantErr: ErrConfigParse,
		},
		{
			name:    "month out of range",
			content: "period:\n  month: 13\n",
			wantErr: ErrConfigInvalid,
		},
		{
			name:    "bad column rule",
			content: "layout:\n  turns:\n    evening:\n      x: 1\n      thresholdCol: 1\n      extraWidth: 1\n      rule: after\n",
			wantErr: ErrConfigInvalid,
		},
		{
			name:    "bad grid range",
			content: "detail:\n  grids:\n    morning: B19\n",
			wantErr: ErrConfigInvalid,
		},
		{
			name:    "bad period cell",
			content: "source:\n  yearCell: five\n",
			wantErr: ErrConfigInvalid,
		},
		{
			name:    "start row above header",
			content: "roster:\n  headerRow: 11\n  startRow: 3\n",
			wantErr: ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error %q should name the file", err)
	}
}
