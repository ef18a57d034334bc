// Package extract turns a person's detail sheets into a domain.PersonRecord:
// the scalar header fields, the subject list and the three occupancy grids.
package extract

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/excel"
)

// Source is the read access the extractor needs from a workbook.
type Source interface {
	HasSheet(name string) bool
	Rows(sheet string) ([][]string, error)
}

// Extractor reads detail sheets laid out as described by a config.DetailConfig.
type Extractor struct {
	src     Source
	cfg     config.DetailConfig
	regions map[domain.Turn]excel.Range
}

// New binds an extractor to a workbook and a detail-sheet layout descriptor.
func New(src Source, cfg config.DetailConfig) (*Extractor, error) {
	regions := make(map[domain.Turn]excel.Range, len(domain.Turns))
	for _, turn := range domain.Turns {
		r, err := excel.ParseRange(cfg.Grids.For(turn))
		if err != nil {
			return nil, fmt.Errorf("%s grid: %w", turn, err)
		}
		regions[turn] = r
	}

	return &Extractor{src: src, cfg: cfg, regions: regions}, nil
}

// SheetOutcome records what happened to one named detail sheet.
// Err is nil when the sheet contributed to the record.
type SheetOutcome struct {
	Sheet string
	Err   error
}

// Result is the merged record plus the per-sheet outcomes, in listed order.
type Result struct {
	Record *domain.PersonRecord
	Sheets []SheetOutcome
}

// Extract reads every detail sheet named by entry, in order. Each sheet that
// reads cleanly overwrites the scalar fields and replaces all three grids;
// subjects accumulate. When no sheet can be read, Record is nil and the error
// wraps domain.ErrNoDetailSheet.
func (e *Extractor) Extract(entry domain.RosterEntry) (Result, error) {
	rec := e.blankRecord(entry)
	res := Result{}
	resolved := 0

	for _, name := range entry.DetailSheetNames {
		data, err := e.readSheet(name)
		res.Sheets = append(res.Sheets, SheetOutcome{Sheet: name, Err: err})
		if err != nil {
			continue
		}
		data.mergeInto(rec)
		resolved++
	}

	if resolved == 0 {
		return res, fmt.Errorf("%w: %q lists %d sheet(s), none readable", domain.ErrNoDetailSheet, entry.PersonName, len(entry.DetailSheetNames))
	}

	res.Record = rec
	return res, nil
}

func (e *Extractor) blankRecord(entry domain.RosterEntry) *domain.PersonRecord {
	rec := &domain.PersonRecord{
		RegistrationID:         Normalize(entry.RegistrationID),
		PersonName:             Normalize(entry.PersonName),
		Regime:                 domain.Placeholder,
		Category:               domain.Placeholder,
		CourseLoad:             domain.Placeholder,
		ActivityHours:          domain.Placeholder,
		ExtraHoursOrientation:  domain.Placeholder,
		ExtraHoursCoordination: domain.Placeholder,
		Remarks: domain.Remarks{
			Morning:   domain.Placeholder,
			Afternoon: domain.Placeholder,
			Evening:   domain.Placeholder,
		},
	}
	for _, turn := range domain.Turns {
		r := e.regions[turn]
		rec.SetGrid(turn, domain.NewMatrix(r.Rows(), r.Cols(), domain.Placeholder))
	}
	return rec
}

// sheetData is what a single detail sheet contributes to a record.
type sheetData struct {
	regime, category, courseLoad, activityHours string
	extraOrientation, extraCoordination         string
	subjects                                    []string
	grids                                       map[domain.Turn]domain.Matrix
	remarks                                     domain.Remarks
}

func (d *sheetData) mergeInto(rec *domain.PersonRecord) {
	rec.Regime = d.regime
	rec.Category = d.category
	rec.CourseLoad = d.courseLoad
	rec.ActivityHours = d.activityHours
	rec.ExtraHoursOrientation = d.extraOrientation
	rec.ExtraHoursCoordination = d.extraCoordination
	rec.Remarks = d.remarks

	for _, s := range d.subjects {
		if !slices.Contains(rec.Subjects, s) {
			rec.Subjects = append(rec.Subjects, s)
		}
	}

	for turn, m := range d.grids {
		rec.SetGrid(turn, m)
	}
}

func (e *Extractor) readSheet(name string) (*sheetData, error) {
	if !e.src.HasSheet(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrSheetNotFound, name)
	}

	rows, err := e.src.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrSheetRead, name, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", domain.ErrSheetRead, name)
	}

	header := rowAt(rows, e.cfg.HeaderRow-1)
	data := rowAt(rows, e.cfg.DataRow-1)

	field := func(caption string) string {
		i := columnOf(header, caption)
		if i < 0 {
			return domain.Placeholder
		}
		return Normalize(valueAt(data, i))
	}

	f := e.cfg.Fields
	d := &sheetData{
		regime:            field(f.Regime),
		category:          field(f.Category),
		courseLoad:        field(f.CourseLoad),
		activityHours:     field(f.ActivityHours),
		extraOrientation:  field(f.ExtraHoursOrientation),
		extraCoordination: field(f.ExtraHoursCoordination),
		remarks: domain.Remarks{
			Morning:   field(f.RemarksMorning),
			Afternoon: field(f.RemarksAfternoon),
			Evening:   field(f.RemarksEvening),
		},
		grids: make(map[domain.Turn]domain.Matrix, len(domain.Turns)),
	}

	for i := 1; i <= e.cfg.MaxSubjects; i++ {
		col := columnOf(header, e.cfg.SubjectPrefix+strconv.Itoa(i))
		if col < 0 || IsBlank(valueAt(data, col)) {
			continue
		}
		d.subjects = append(d.subjects, Normalize(valueAt(data, col)))
	}

	for _, turn := range domain.Turns {
		d.grids[turn] = readMatrix(rows, e.regions[turn])
	}

	return d, nil
}

// readMatrix copies a cell range out of rows, normalizing every cell.
// Cells past the end of the sheet read as blank.
func readMatrix(rows [][]string, r excel.Range) domain.Matrix {
	m := make(domain.Matrix, 0, r.Rows())
	for row := r.StartRow; row <= r.EndRow; row++ {
		src := rowAt(rows, row)
		line := make([]string, 0, r.Cols())
		for col := r.StartCol; col <= r.EndCol; col++ {
			line = append(line, Normalize(valueAt(src, col)))
		}
		m = append(m, line)
	}
	return m
}

func rowAt(rows [][]string, i int) []string {
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

func valueAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func columnOf(header []string, caption string) int {
	caption = strings.TrimSpace(caption)
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), caption) {
			return i
		}
	}
	return -1
}
