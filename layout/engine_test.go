package layout

import (
	"slices"
	"testing"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
)

func testConfig() config.LayoutConfig {
	return config.DefaultConfig().Layout
}

// ---------------------------------------------------------------------------
// TestRowY - Piecewise vertical spacing
// ---------------------------------------------------------------------------

func TestRowY(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Grid.YStart = 100
	cfg.Grid.ThresholdRow = 4
	cfg.Grid.RowHeight = 8
	cfg.Grid.ExtraRowHeight = 10
	e := New(cfg)

	want := []float64{100, 108, 116, 124, 134, 144}
	for i, w := range want {
		if got := e.RowY(i + 1); got != w {
			t.Errorf("RowY(%d) = %v, want %v", i+1, got, w)
		}
	}
}

func TestRowY_ThresholdOne(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Grid.YStart = 0
	cfg.Grid.ThresholdRow = 1
	cfg.Grid.RowHeight = 8
	cfg.Grid.ExtraRowHeight = 12
	e := New(cfg)

	for i, w := range []float64{0, 12, 24} {
		if got := e.RowY(i + 1); got != w {
			t.Errorf("RowY(%d) = %v, want %v", i+1, got, w)
		}
	}
}

// ---------------------------------------------------------------------------
// TestColumnXs - Turn-specific horizontal spacing
// ---------------------------------------------------------------------------

func TestColumnXs(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Grid.ColumnWidth = 20
	cfg.Turns.Morning = config.TurnLayout{X: 95, ThresholdCol: 2, ExtraWidth: 30, Rule: config.RuleAt}
	cfg.Turns.Afternoon = config.TurnLayout{X: 295, ThresholdCol: 6, ExtraWidth: 25, Rule: config.RuleFrom}
	cfg.Turns.Evening = config.TurnLayout{X: 473, ThresholdCol: 3, ExtraWidth: 25, Rule: config.RuleFrom}
	e := New(cfg)

	tests := []struct {
		name string
		turn domain.Turn
		n    int
		want []float64
	}{
		{
			name: "threshold 6: columns 1-5 advance by default width",
			turn: domain.Afternoon,
			n:    6,
			want: []float64{295, 315, 335, 355, 375, 395},
		},
		{
			name: "threshold 6: column 6 advances by extra width",
			turn: domain.Afternoon,
			n:    8,
			want: []float64{295, 315, 335, 355, 375, 395, 420, 445},
		},
		{
			name: "rule at: only the threshold column is wide",
			turn: domain.Morning,
			n:    6,
			want: []float64{95, 115, 145, 165, 185, 205},
		},
		{
			name: "rule from on a 4-wide grid",
			turn: domain.Evening,
			n:    4,
			want: []float64{473, 493, 513, 538},
		},
		{
			name: "no columns",
			turn: domain.Evening,
			n:    0,
			want: []float64{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := e.ColumnXs(tt.turn, tt.n); !slices.Equal(got, tt.want) {
				t.Errorf("ColumnXs(%s, %d) = %v, want %v", tt.turn, tt.n, got, tt.want)
			}
		})
	}
}

func TestColumnXs_RuleFromMatchesAt_BeforeThreshold(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Turns.Morning.Rule = config.RuleFrom
	from := New(cfg).ColumnXs(domain.Morning, 6)
	cfg.Turns.Morning.Rule = config.RuleAt
	atXs := New(cfg).ColumnXs(domain.Morning, 6)

	th := cfg.Turns.Morning.ThresholdCol
	if !slices.Equal(from[:th+1], atXs[:th+1]) {
		t.Errorf("rules diverge before/at threshold: from=%v at=%v", from, atXs)
	}
	if from[5] <= atXs[5] {
		t.Errorf("rule from should end further right: from=%v at=%v", from, atXs)
	}
}

// ---------------------------------------------------------------------------
// TestPlaceGrid - Grid placements and last row
// ---------------------------------------------------------------------------

func TestPlaceGrid(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	m := domain.NewMatrix(6, 6, domain.Placeholder)
	m[0][0] = "X"
	m[5][2] = "Y"

	out, lastY := e.PlaceGrid(domain.Morning, m)
	if len(out) != 36 {
		t.Fatalf("placements = %d, want 36 (blank cells printed)", len(out))
	}
	if lastY != 264 {
		t.Errorf("lastRowY = %v, want 264", lastY)
	}

	first := out[0]
	if first != (domain.PlacementInstruction{Text: "X", X: 95, Y: 220, FontSize: 6}) {
		t.Errorf("first placement = %+v", first)
	}
	y := out[5*6+2]
	if y != (domain.PlacementInstruction{Text: "Y", X: 145, Y: 264, FontSize: 6}) {
		t.Errorf("row 6 col 3 placement = %+v", y)
	}
}

func TestPlaceGrid_SkipBlank(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Grid.PrintBlank = false
	e := New(cfg)

	m := domain.NewMatrix(6, 4, domain.Placeholder)
	m[4][3] = "N"

	out, lastY := e.PlaceGrid(domain.Evening, m)
	if len(out) != 1 {
		t.Fatalf("placements = %+v, want only the mark", out)
	}
	if out[0].X != 538 || out[0].Y != 254 {
		t.Errorf("mark at (%v, %v), want (538, 254)", out[0].X, out[0].Y)
	}
	if lastY != 264 {
		t.Errorf("lastRowY = %v, want 264 even when the last row is blank", lastY)
	}
}

func TestPlaceGrid_Empty(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	out, lastY := e.PlaceGrid(domain.Afternoon, nil)
	if len(out) != 0 || lastY != 220 {
		t.Errorf("empty grid = %v, lastY %v", out, lastY)
	}
}
