package excel

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/folhaponto/domain"
)

// Workbook is a read-only view over an .xlsx file.
type Workbook struct {
	file *excelize.File
	path string
}

// Open opens the workbook at path. A missing file yields domain.ErrSourceNotFound.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Workbook{file: f, path: path}, nil
}

// OpenBytes reads a workbook from raw bytes.
func OpenBytes(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open from bytes: %w", err)
	}

	return &Workbook{file: f}, nil
}

// Path returns the file the workbook was opened from, or "" for in-memory workbooks.
func (w *Workbook) Path() string { return w.path }

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether a sheet with exactly this name exists.
func (w *Workbook) HasSheet(name string) bool {
	return slices.Contains(w.file.GetSheetList(), name)
}

// CellValue returns the displayed value of a cell ("B5"). Empty cells yield "".
func (w *Workbook) CellValue(sheet, cell string) (string, error) {
	v, err := w.file.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("sheet %q cell %s: %w", sheet, cell, err)
	}
	return v, nil
}

// Rows returns every row of the sheet. Trailing empty cells of a row are omitted,
// so callers must bounds-check column indices.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return rows, nil
}
