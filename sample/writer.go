package sample

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
	"github.com/orayew2002/folhaponto/excel"
)

// Writer lays out a source workbook following cfg's cell geometry, so that
// whatever it writes reads back through the same configuration.
type Writer struct {
	cfg *config.Config
}

// NewWriter returns a Writer for cfg.
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Dims returns the grid size of each turn as configured.
func (w *Writer) Dims() (map[domain.Turn][2]int, error) {
	dims := make(map[domain.Turn][2]int, len(domain.Turns))
	for _, turn := range domain.Turns {
		r, err := excel.ParseRange(w.cfg.Detail.Grids.For(turn))
		if err != nil {
			return nil, fmt.Errorf("%s grid: %w", turn, err)
		}
		dims[turn] = [2]int{r.Rows(), r.Cols()}
	}
	return dims, nil
}

// WriteToFile builds the workbook and saves it to path.
func (w *Writer) WriteToFile(period domain.ReferencePeriod, people []Person, path string) error {
	f, err := w.build(period, people)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes builds the workbook and returns it as bytes.
func (w *Writer) WriteToBytes(period domain.ReferencePeriod, people []Person) ([]byte, error) {
	f, err := w.build(period, people)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func (w *Writer) build(period domain.ReferencePeriod, people []Person) (*excelize.File, error) {
	f := excelize.NewFile()
	styles := newStyleManager(f)

	params := w.cfg.Source.ParametersSheet
	if err := f.SetSheetName("Sheet1", params); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := w.writeParameters(f, styles, period, people); err != nil {
		return nil, fmt.Errorf("write parameters: %w", err)
	}

	for _, p := range people {
		for _, sheet := range p.Sheets {
			if err := w.writeDetail(f, styles, sheet, &p.Record); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet, err)
			}
		}
	}

	return f, nil
}

func (w *Writer) writeParameters(f *excelize.File, styles *styleManager, period domain.ReferencePeriod, people []Person) error {
	sheet := w.cfg.Source.ParametersSheet
	sc := w.cfg.Source

	if err := labelled(f, sheet, sc.YearCell, "Ano", period.Year); err != nil {
		return err
	}
	if err := labelled(f, sheet, sc.MonthCell, "Mês", period.Month); err != nil {
		return err
	}

	rc := w.cfg.Roster
	headers := []string{rc.Columns.Sequence, rc.Columns.Registration, rc.Columns.Name, rc.Columns.Sheets}
	if err := writeHeaderRow(f, styles, sheet, rc.HeaderRow-1, headers); err != nil {
		return err
	}

	for i, p := range people {
		row := rc.StartRow - 1 + i
		values := []any{p.Sequence, p.Record.RegistrationID, p.Record.PersonName, strings.Join(p.Sheets, ", ")}
		for col, v := range values {
			if err := f.SetCellValue(sheet, excel.CellName(row, col), v); err != nil {
				return fmt.Errorf("person %d, col %d: %w", p.Sequence, col, err)
			}
		}
	}

	return setWidths(f, sheet, []float64{12, 14, 32, 24})
}

func (w *Writer) writeDetail(f *excelize.File, styles *styleManager, sheet string, rec *domain.PersonRecord) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	dc := w.cfg.Detail
	fields := []struct {
		caption string
		value   string
	}{
		{dc.Fields.Regime, rec.Regime},
		{dc.Fields.Category, rec.Category},
		{dc.Fields.CourseLoad, rec.CourseLoad},
		{dc.Fields.ActivityHours, rec.ActivityHours},
		{dc.Fields.ExtraHoursOrientation, rec.ExtraHoursOrientation},
		{dc.Fields.ExtraHoursCoordination, rec.ExtraHoursCoordination},
		{dc.Fields.RemarksMorning, rec.Remarks.Morning},
		{dc.Fields.RemarksAfternoon, rec.Remarks.Afternoon},
		{dc.Fields.RemarksEvening, rec.Remarks.Evening},
	}
	for i := 1; i <= dc.MaxSubjects; i++ {
		var subject string
		if i <= len(rec.Subjects) {
			subject = rec.Subjects[i-1]
		}
		fields = append(fields, struct {
			caption string
			value   string
		}{dc.SubjectPrefix + strconv.Itoa(i), subject})
	}

	headers := make([]string, len(fields))
	for i, fd := range fields {
		headers[i] = fd.caption
	}
	if err := writeHeaderRow(f, styles, sheet, dc.HeaderRow-1, headers); err != nil {
		return err
	}
	for col, fd := range fields {
		if fd.value == "" {
			continue
		}
		if err := f.SetCellStr(sheet, excel.CellName(dc.DataRow-1, col), fd.value); err != nil {
			return fmt.Errorf("field %q: %w", fd.caption, err)
		}
	}

	for _, turn := range domain.Turns {
		if err := w.writeGrid(f, styles, sheet, turn, rec.Grid(turn)); err != nil {
			return fmt.Errorf("%s grid: %w", turn, err)
		}
	}

	return nil
}

func (w *Writer) writeGrid(f *excelize.File, styles *styleManager, sheet string, turn domain.Turn, m domain.Matrix) error {
	r, err := excel.ParseRange(w.cfg.Detail.Grids.For(turn))
	if err != nil {
		return err
	}

	style, err := styles.slot()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, excel.CellName(r.StartRow, r.StartCol), excel.CellName(r.EndRow, r.EndCol), style); err != nil {
		return err
	}

	for i := 0; i < r.Rows() && i < len(m); i++ {
		for j := 0; j < r.Cols() && j < len(m[i]); j++ {
			v := m[i][j]
			if v == "" || v == domain.Placeholder {
				continue
			}
			if err := f.SetCellStr(sheet, excel.CellName(r.StartRow+i, r.StartCol+j), v); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeHeaderRow(f *excelize.File, styles *styleManager, sheet string, row int, headers []string) error {
	style, err := styles.header()
	if err != nil {
		return err
	}

	for col, h := range headers {
		cell := excel.CellName(row, col)
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

// labelled writes v into cell and a caption into the cell to its left.
func labelled(f *excelize.File, sheet, cell, label string, v int) error {
	row, col, err := excel.CellIndex(cell)
	if err != nil {
		return err
	}
	if col > 0 {
		if err := f.SetCellStr(sheet, excel.CellName(row, col-1), label); err != nil {
			return err
		}
	}
	return f.SetCellValue(sheet, cell, v)
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for col, w := range widths {
		name := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
