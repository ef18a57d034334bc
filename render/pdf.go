package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/orayew2002/folhaponto/domain"
)

// PDFWriter opens PDF templates with gofpdi and stamps them with gofpdf.
// Coordinates are in points. The output page takes the template page's
// MediaBox; PageSize only applies when the template does not declare one.
type PDFWriter struct {
	PageSize string // fallback: A4, Letter or Legal
	Font     string // core font family
	Page     int    // template page to copy, 1-based
}

// NewPDFWriter returns a PDFWriter for the given page size and font.
func NewPDFWriter(pageSize, font string, page int) *PDFWriter {
	if page < 1 {
		page = 1
	}
	return &PDFWriter{PageSize: pageSize, Font: font, Page: page}
}

// Open imports the template page into a new document.
func (w *PDFWriter) Open(template string) (doc Document, err error) {
	if _, err := os.Stat(template); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrRender, domain.ErrTemplateNotFound, template)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}

	// gofpdi panics on files it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: import %s: %v", domain.ErrRender, template, r)
		}
	}()

	pdf := gofpdf.New("P", "pt", w.PageSize, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, template, w.Page, "/MediaBox")
	if size, ok := mediaBox(imp, w.Page); ok {
		pdf.AddPageFormat("P", size)
	} else {
		pdf.AddPage()
	}
	width, height := pdf.GetPageSize()
	imp.UseImportedTemplate(pdf, tpl, 0, 0, width, height)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: import %s: %w", domain.ErrRender, template, err)
	}

	return &pdfDocument{
		pdf:    pdf,
		font:   w.Font,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  width,
		height: height,
	}, nil
}

// mediaBox returns the imported page's MediaBox dimensions. ok is false when
// the box is missing or empty.
func mediaBox(imp *gofpdi.Importer, page int) (gofpdf.SizeType, bool) {
	box := imp.GetPageSizes()[page]["/MediaBox"]
	w, h := box["w"], box["h"]
	if w <= 0 || h <= 0 {
		return gofpdf.SizeType{}, false
	}
	return gofpdf.SizeType{Wd: w, Ht: h}, true
}

type pdfDocument struct {
	pdf    *gofpdf.Fpdf
	font   string
	tr     func(string) string
	width  float64
	height float64
	closed bool
}

func (d *pdfDocument) PageSize() (float64, float64) {
	return d.width, d.height
}

func (d *pdfDocument) Stamp(p domain.PlacementInstruction) error {
	if d.closed {
		return fmt.Errorf("%w: document closed", domain.ErrRender)
	}
	d.pdf.SetFont(d.font, "", p.FontSize)
	d.pdf.Text(p.X, p.Y, d.tr(p.Text))
	return d.pdf.Error()
}

func (d *pdfDocument) Save(path string) error {
	if d.closed {
		return fmt.Errorf("%w: document closed", domain.ErrRender)
	}
	d.closed = true
	return d.pdf.OutputFileAndClose(path)
}

func (d *pdfDocument) Close() error {
	d.closed = true
	return nil
}
