// Package render stamps placement instructions onto a copy of the blank form.
package render

import (
	"errors"
	"fmt"

	"github.com/orayew2002/folhaponto/domain"
)

// Document is one open copy of the template.
type Document interface {
	// PageSize returns the width and height of the stamped page in points.
	PageSize() (width, height float64)
	// Stamp writes text with its baseline at (X, Y), measured from the top-left.
	Stamp(p domain.PlacementInstruction) error
	// Save writes the document to path.
	Save(path string) error
	// Close releases the document. Calling it after Save is harmless.
	Close() error
}

// DocumentWriter opens fresh copies of a template.
type DocumentWriter interface {
	Open(template string) (Document, error)
}

// Renderer produces one output document per call from a fixed template.
type Renderer struct {
	writer   DocumentWriter
	template string
}

// New returns a Renderer that copies template through w.
func New(w DocumentWriter, template string) *Renderer {
	return &Renderer{writer: w, template: template}
}

// Render stamps placements onto a fresh copy of the template and saves it to
// out. The template itself is never modified.
func (r *Renderer) Render(out string, placements []domain.PlacementInstruction) error {
	return r.RenderPage(out, func(_, _ float64) []domain.PlacementInstruction {
		return placements
	})
}

// RenderPage is Render for placements that depend on the page dimensions.
func (r *Renderer) RenderPage(out string, build func(width, height float64) []domain.PlacementInstruction) (err error) {
	doc, err := r.writer.Open(r.template)
	if err != nil {
		return wrap(err, "open template %s", r.template)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = wrap(cerr, "close %s", out)
		}
	}()

	for _, p := range build(doc.PageSize()) {
		if err := doc.Stamp(p); err != nil {
			return wrap(err, "stamp %q at (%.1f, %.1f)", p.Text, p.X, p.Y)
		}
	}

	if err := doc.Save(out); err != nil {
		return wrap(err, "save %s", out)
	}
	return nil
}

// wrap adds context and guarantees the result matches ErrRender.
func wrap(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, domain.ErrRender) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRender, msg, err)
}
