package domain

import "fmt"

// Placeholder is printed wherever the source has no value for a field.
const Placeholder = "......"

// Turn identifies one schedule block of the day.
type Turn int

const (
	Morning Turn = iota
	Afternoon
	Evening
)

// Turns lists every turn in the order the form prints them.
var Turns = []Turn{Morning, Afternoon, Evening}

func (t Turn) String() string {
	switch t {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return fmt.Sprintf("turn(%d)", int(t))
	}
}

// ReferencePeriod is the year/month a batch is generated for.
type ReferencePeriod struct {
	Year  int
	Month int
}

func (p ReferencePeriod) String() string {
	return fmt.Sprintf("%d/%d", p.Year, p.Month)
}

// RosterEntry is one person row of the parameters sheet.
type RosterEntry struct {
	Sequence         int
	RegistrationID   string
	PersonName       string
	DetailSheetNames []string
}

// Matrix is a fixed-size grid of occupancy marks, addressed [row][col].
type Matrix [][]string

// NewMatrix returns a rows×cols matrix filled with fill.
func NewMatrix(rows, cols int, fill string) Matrix {
	m := make(Matrix, rows)
	for r := range m {
		m[r] = make([]string, cols)
		for c := range m[r] {
			m[r][c] = fill
		}
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the width of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Remarks holds the free-text observation printed under each turn's grid.
type Remarks struct {
	Morning   string
	Afternoon string
	Evening   string
}

// For returns the remark belonging to turn t.
func (r Remarks) For(t Turn) string {
	switch t {
	case Morning:
		return r.Morning
	case Afternoon:
		return r.Afternoon
	default:
		return r.Evening
	}
}

// PersonRecord is everything printed on one person's form.
type PersonRecord struct {
	RegistrationID         string
	PersonName             string
	Regime                 string
	Category               string
	CourseLoad             string
	ActivityHours          string
	ExtraHoursOrientation  string
	ExtraHoursCoordination string
	Subjects               []string
	MorningGrid            Matrix
	AfternoonGrid          Matrix
	EveningGrid            Matrix
	Remarks                Remarks
}

// Grid returns the occupancy matrix for turn t.
func (p *PersonRecord) Grid(t Turn) Matrix {
	switch t {
	case Morning:
		return p.MorningGrid
	case Afternoon:
		return p.AfternoonGrid
	default:
		return p.EveningGrid
	}
}

// SetGrid replaces the occupancy matrix for turn t.
func (p *PersonRecord) SetGrid(t Turn, m Matrix) {
	switch t {
	case Morning:
		p.MorningGrid = m
	case Afternoon:
		p.AfternoonGrid = m
	default:
		p.EveningGrid = m
	}
}

// PlacementInstruction is one piece of text stamped at an absolute page position.
// Coordinates are PDF points from the top-left corner; y is the text baseline.
type PlacementInstruction struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
}
