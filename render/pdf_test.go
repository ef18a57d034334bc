package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/orayew2002/folhaponto/domain"
)

// blankTemplate writes a one-page A4 PDF with a caption, standing in for the
// printed form.
func blankTemplate(t *testing.T) string {
	t.Helper()
	return blankTemplateSized(t, "A4")
}

func blankTemplateSized(t *testing.T, size string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.pdf")
	pdf := gofpdf.New("P", "pt", size, "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(40, 60, "FOLHA DE PONTO")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestPDFWriter - gofpdf/gofpdi round trip
// ---------------------------------------------------------------------------

func TestPDFWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	tpl := blankTemplate(t)
	before, err := os.ReadFile(tpl)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "Jane_Doe_formulario.pdf")
	r := New(NewPDFWriter("A4", "Helvetica", 1), tpl)
	err = r.Render(out, []domain.PlacementInstruction{
		{Text: "José Araújo", X: 80, Y: 135, FontSize: 9},
		{Text: domain.Placeholder, X: 95, Y: 220, FontSize: 6},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 16)])
	}

	after, err := os.ReadFile(tpl)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("template was modified")
	}
}

func TestPDFWriter_PageSize(t *testing.T) {
	t.Parallel()

	doc, err := NewPDFWriter("A4", "Helvetica", 1).Open(blankTemplate(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	w, h := doc.PageSize()
	if w < 595 || w > 596 || h < 841 || h > 842 {
		t.Errorf("PageSize() = %v x %v, want A4 in points", w, h)
	}
}

func TestPDFWriter_KeepsTemplatePageSize(t *testing.T) {
	t.Parallel()

	tpl := blankTemplateSized(t, "Letter")
	doc, err := NewPDFWriter("A4", "Helvetica", 1).Open(tpl)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	w, h := doc.PageSize()
	if math.Abs(w-612) > 0.5 || math.Abs(h-792) > 0.5 {
		t.Errorf("PageSize() = %v x %v, want the Letter template's 612 x 792", w, h)
	}

	if err := doc.Stamp(domain.PlacementInstruction{Text: "X", X: 300, Y: 700, FontSize: 6}); err != nil {
		t.Fatalf("Stamp() error = %v", err)
	}
	if err := doc.Save(filepath.Join(t.TempDir(), "out.pdf")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestPDFWriter_MissingTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewPDFWriter("A4", "Helvetica", 1).Open(filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, domain.ErrRender) {
		t.Errorf("error = %v, want ErrRender", err)
	}
	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestPDFWriter_CorruptTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewPDFWriter("A4", "Helvetica", 1).Open(path)
	if !errors.Is(err, domain.ErrRender) {
		t.Errorf("error = %v, want ErrRender", err)
	}
}

func TestPDFWriter_SaveTwice(t *testing.T) {
	t.Parallel()

	doc, err := NewPDFWriter("A4", "Helvetica", 1).Open(blankTemplate(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	dir := t.TempDir()
	if err := doc.Save(filepath.Join(dir, "a.pdf")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := doc.Save(filepath.Join(dir, "b.pdf")); !errors.Is(err, domain.ErrRender) {
		t.Errorf("second Save() error = %v, want ErrRender", err)
	}
}
