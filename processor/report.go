package processor

import (
	"errors"
	"fmt"

	"github.com/orayew2002/folhaponto/domain"
)

// ErrPartial is returned when at least one person's form could not be produced.
var ErrPartial = errors.New("some forms failed")

// Outcome records what happened to one roster entry.
type Outcome struct {
	Sequence     int
	Person       string
	Registration string
	Output       string   // empty unless a form was (or, in a dry run, would be) written
	Sheets       []string // sheets that could not be read
	Err          error
}

// Report summarises a batch run.
type Report struct {
	RunID     string
	Period    domain.ReferencePeriod
	DryRun    bool
	Generated []Outcome
	Skipped   []Outcome // no resolvable detail sheet
	Failed    []Outcome // extraction or rendering failed
}

// Total is the number of roster entries seen.
func (r *Report) Total() int {
	return len(r.Generated) + len(r.Skipped) + len(r.Failed)
}

// Err returns nil when no person failed, otherwise an error wrapping ErrPartial.
// Skipped people do not count as failures.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrPartial, len(r.Failed), r.Total())
}
