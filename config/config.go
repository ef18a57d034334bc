// Package config holds every tunable of a batch run: the reference period,
// where the workbook and template live, the cell geometry of the source
// workbook and the page coordinates of the printed form.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/excel"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigInvalid  = errors.New("invalid config")
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "folhaponto.yaml"

// Config holds all configuration for a batch run.
type Config struct {
	Period PeriodConfig `yaml:"period"`
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Roster RosterConfig `yaml:"roster"`
	Detail DetailConfig `yaml:"detail"`
	Layout LayoutConfig `yaml:"layout"`
}

// PeriodConfig is the year/month the batch is expected to cover.
type PeriodConfig struct {
	Year  int `yaml:"year" validate:"min=2000,max=2100"`
	Month int `yaml:"month" validate:"min=1,max=12"`
}

// SourceConfig locates the workbook and the period cells in it.
type SourceConfig struct {
	Pattern         string `yaml:"pattern" validate:"required"` // {year} and {month} are substituted
	Path            string `yaml:"path"`                        // overrides Pattern when set
	ParametersSheet string `yaml:"parametersSheet" validate:"required"`
	YearCell        string `yaml:"yearCell" validate:"required"`
	MonthCell       string `yaml:"monthCell" validate:"required"`
}

// OutputConfig defines the template and where filled forms go.
type OutputConfig struct {
	Dir          string `yaml:"dir" validate:"required"`
	Suffix       string `yaml:"suffix" validate:"required"`
	Template     string `yaml:"template" validate:"required"`
	TemplatePage int    `yaml:"templatePage" validate:"min=1"`
}

// RosterConfig describes the person table of the parameters sheet.
// Rows are 1-based, as shown by Excel.
type RosterConfig struct {
	HeaderRow int           `yaml:"headerRow" validate:"min=1"`
	StartRow  int           `yaml:"startRow" validate:"gtfield=HeaderRow"`
	Columns   RosterColumns `yaml:"columns"`
}

// RosterColumns are the header captions of the tracked roster columns.
type RosterColumns struct {
	Sequence     string `yaml:"sequence" validate:"required"`
	Registration string `yaml:"registration" validate:"required"`
	Name         string `yaml:"name" validate:"required"`
	Sheets       string `yaml:"sheets" validate:"required"`
}

// DetailConfig is the layout descriptor of a per-person detail sheet.
type DetailConfig struct {
	HeaderRow     int          `yaml:"headerRow" validate:"min=1"`
	DataRow       int          `yaml:"dataRow" validate:"gtfield=HeaderRow"`
	Fields        DetailFields `yaml:"fields"`
	SubjectPrefix string       `yaml:"subjectPrefix" validate:"required"`
	MaxSubjects   int          `yaml:"maxSubjects" validate:"min=0,max=50"`
	Grids         GridRegions  `yaml:"grids"`
}

// DetailFields are the header captions of the scalar detail columns.
type DetailFields struct {
	Regime                 string `yaml:"regime" validate:"required"`
	Category               string `yaml:"category" validate:"required"`
	CourseLoad             string `yaml:"courseLoad" validate:"required"`
	ActivityHours          string `yaml:"activityHours" validate:"required"`
	ExtraHoursOrientation  string `yaml:"extraHoursOrientation" validate:"required"`
	ExtraHoursCoordination string `yaml:"extraHoursCoordination" validate:"required"`
	RemarksMorning         string `yaml:"remarksMorning" validate:"required"`
	RemarksAfternoon       string `yaml:"remarksAfternoon" validate:"required"`
	RemarksEvening         string `yaml:"remarksEvening" validate:"required"`
}

// GridRegions are the cell ranges of the three occupancy grids ("B19:G24").
type GridRegions struct {
	Morning   string `yaml:"morning" validate:"required"`
	Afternoon string `yaml:"afternoon" validate:"required"`
	Evening   string `yaml:"evening" validate:"required"`
}

// For returns the range reference of turn t.
func (g GridRegions) For(t domain.Turn) string {
	switch t {
	case domain.Morning:
		return g.Morning
	case domain.Afternoon:
		return g.Afternoon
	default:
		return g.Evening
	}
}

// LayoutConfig holds the page coordinates of the printed form, in points
// from the top-left corner.
type LayoutConfig struct {
	Page        PageConfig        `yaml:"page"`
	Grid        GridLayout        `yaml:"grid"`
	Turns       TurnLayouts       `yaml:"turns"`
	Remarks     RemarksLayout     `yaml:"remarks"`
	Fields      FieldLayout       `yaml:"fields"`
	Subjects    SubjectsLayout    `yaml:"subjects"`
	Calibration CalibrationLayout `yaml:"calibration"`
}

// PageConfig defines the output page.
type PageConfig struct {
	Size string `yaml:"size" validate:"oneof=A4 Letter Legal"`
	Font string `yaml:"font" validate:"required"`
}

// GridLayout holds the vertical rhythm shared by every turn's grid.
type GridLayout struct {
	YStart         float64 `yaml:"yStart" validate:"gte=0"`
	RowHeight      float64 `yaml:"rowHeight" validate:"gt=0"`
	ExtraRowHeight float64 `yaml:"extraRowHeight" validate:"gt=0"`
	ThresholdRow   int     `yaml:"thresholdRow" validate:"min=1"`
	FontSize       float64 `yaml:"fontSize" validate:"gt=0"`
	ColumnWidth    float64 `yaml:"columnWidth" validate:"gt=0"`
	PrintBlank     bool    `yaml:"printBlank"`
}

// Column width rules.
const (
	RuleFrom = "from" // every column at or after the threshold is wide
	RuleAt   = "at"   // only the threshold column is wide
)

// TurnLayout positions one turn's grid and remark.
type TurnLayout struct {
	X            float64 `yaml:"x" validate:"gte=0"`
	ThresholdCol int     `yaml:"thresholdCol" validate:"min=1"`
	ExtraWidth   float64 `yaml:"extraWidth" validate:"gt=0"`
	Rule         string  `yaml:"rule" validate:"oneof=at from"`
	RemarksX     float64 `yaml:"remarksX" validate:"gte=0"`
}

// TurnLayouts groups the three turn layouts.
type TurnLayouts struct {
	Morning   TurnLayout `yaml:"morning"`
	Afternoon TurnLayout `yaml:"afternoon"`
	Evening   TurnLayout `yaml:"evening"`
}

// For returns the layout of turn t.
func (tl TurnLayouts) For(t domain.Turn) TurnLayout {
	switch t {
	case domain.Morning:
		return tl.Morning
	case domain.Afternoon:
		return tl.Afternoon
	default:
		return tl.Evening
	}
}

// RemarksLayout places the remark line under each grid.
type RemarksLayout struct {
	Offset   float64 `yaml:"offset"`
	FontSize float64 `yaml:"fontSize" validate:"gt=0"`
}

// Position is a fixed text anchor.
type Position struct {
	X    float64 `yaml:"x" validate:"gte=0"`
	Y    float64 `yaml:"y" validate:"gte=0"`
	Size float64 `yaml:"size" validate:"gt=0"`
}

// FieldLayout anchors the header fields.
type FieldLayout struct {
	Name                   Position `yaml:"name"`
	Registration           Position `yaml:"registration"`
	Regime                 Position `yaml:"regime"`
	Category               Position `yaml:"category"`
	CourseLoad             Position `yaml:"courseLoad"`
	ActivityHours          Position `yaml:"activityHours"`
	ExtraHoursOrientation  Position `yaml:"extraHoursOrientation"`
	ExtraHoursCoordination Position `yaml:"extraHoursCoordination"`
}

// SubjectsLayout places the subject list on one or two lines.
type SubjectsLayout struct {
	Line1      Position `yaml:"line1"`
	Line2      Position `yaml:"line2"`
	LineBudget int      `yaml:"lineBudget" validate:"min=1"`
	Separator  string   `yaml:"separator"`
}

// CalibrationLayout configures the coordinate mask.
type CalibrationLayout struct {
	Spacing  float64 `yaml:"spacing" validate:"gt=0"`
	FontSize float64 `yaml:"fontSize" validate:"gt=0"`
	Mark     string  `yaml:"mark" validate:"required"`
	Output   string  `yaml:"output" validate:"required"`
}

// DefaultConfig returns the geometry of the current template and workbook.
func DefaultConfig() *Config {
	return &Config{
		Period: PeriodConfig{Year: 2025, Month: 10},
		Source: SourceConfig{
			Pattern:         "Base-folhaPonto-{year}-{month}.xlsx",
			ParametersSheet: "parametros",
			YearCell:        "B5",
			MonthCell:       "B6",
		},
		Output: OutputConfig{
			Dir:          "formularios_preenchidos",
			Suffix:       "_formulario.pdf",
			Template:     "_ model.pdf",
			TemplatePage: 1,
		},
		Roster: RosterConfig{
			HeaderRow: 11,
			StartRow:  12,
			Columns: RosterColumns{
				Sequence:     "Sequencia",
				Registration: "Matricula",
				Name:         "NomeProf",
				Sheets:       "Nome da Aba",
			},
		},
		Detail: DetailConfig{
			HeaderRow: 12,
			DataRow:   13,
			Fields: DetailFields{
				Regime:                 "Regime Juridico",
				Category:               "Categoria",
				CourseLoad:             "Carga Horária",
				ActivityHours:          "Hora Atividade",
				ExtraHoursOrientation:  "HAE-O",
				ExtraHoursCoordination: "HAE-C",
				RemarksMorning:         "Obs-Manha",
				RemarksAfternoon:       "Obs-Tarde",
				RemarksEvening:         "Obs-Noite",
			},
			SubjectPrefix: "Disciplina",
			MaxSubjects:   6,
			Grids: GridRegions{
				Morning:   "B19:G24",
				Afternoon: "H19:M24",
				Evening:   "N19:Q24",
			},
		},
		Layout: LayoutConfig{
			Page: PageConfig{Size: "A4", Font: "Helvetica"},
			Grid: GridLayout{
				YStart:         220,
				RowHeight:      8,
				ExtraRowHeight: 10,
				ThresholdRow:   4,
				FontSize:       6,
				ColumnWidth:    20,
				PrintBlank:     true,
			},
			Turns: TurnLayouts{
				Morning:   TurnLayout{X: 95, ThresholdCol: 2, ExtraWidth: 30, Rule: RuleAt, RemarksX: 55},
				Afternoon: TurnLayout{X: 295, ThresholdCol: 6, ExtraWidth: 25, Rule: RuleFrom, RemarksX: 245},
				Evening:   TurnLayout{X: 473, ThresholdCol: 3, ExtraWidth: 25, Rule: RuleFrom, RemarksX: 435},
			},
			Remarks: RemarksLayout{Offset: 8, FontSize: 8},
			Fields: FieldLayout{
				Name:                   Position{X: 80, Y: 135, Size: 9},
				Registration:           Position{X: 360, Y: 135, Size: 8},
				Regime:                 Position{X: 460, Y: 135, Size: 8},
				Category:               Position{X: 540, Y: 135, Size: 8},
				CourseLoad:             Position{X: 535, Y: 145, Size: 9},
				ActivityHours:          Position{X: 98, Y: 154, Size: 9},
				ExtraHoursOrientation:  Position{X: 295, Y: 154, Size: 9},
				ExtraHoursCoordination: Position{X: 473, Y: 154, Size: 9},
			},
			Subjects: SubjectsLayout{
				Line1:      Position{X: 95, Y: 140, Size: 6},
				Line2:      Position{X: 95, Y: 146, Size: 6},
				LineBudget: 60,
				Separator:  ", ",
			},
			Calibration: CalibrationLayout{
				Spacing:  20,
				FontSize: 5,
				Mark:     "*",
				Output:   "mascara_grade.pdf",
			},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and every cell reference.
// Called by LoadConfig; call it again after applying flag or env overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	for name, cell := range map[string]string{
		"source.yearCell":  c.Source.YearCell,
		"source.monthCell": c.Source.MonthCell,
	} {
		if _, _, err := excel.CellIndex(cell); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigInvalid, name, err)
		}
	}

	for _, turn := range domain.Turns {
		if _, err := excel.ParseRange(c.Detail.Grids.For(turn)); err != nil {
			return fmt.Errorf("%w: detail.grids.%s: %v", ErrConfigInvalid, turn, err)
		}
	}

	return nil
}

// Reference returns the configured period.
func (c *Config) Reference() domain.ReferencePeriod {
	return domain.ReferencePeriod{Year: c.Period.Year, Month: c.Period.Month}
}

// SourcePath returns Source.Path, or Source.Pattern with the period substituted.
func (c *Config) SourcePath() string {
	if c.Source.Path != "" {
		return c.Source.Path
	}
	return strings.NewReplacer(
		"{year}", strconv.Itoa(c.Period.Year),
		"{month}", strconv.Itoa(c.Period.Month),
	).Replace(c.Source.Pattern)
}
