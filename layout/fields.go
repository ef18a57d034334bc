package layout

import (
	"strings"

	"github.com/orayew2002/folhaponto/config"
	"github.com/orayew2002/folhaponto/domain"
)

// fieldDef binds one header value to its anchor on the form.
type fieldDef struct {
	value func(r *domain.PersonRecord) string
	pos   func(f config.FieldLayout) config.Position
}

// fields lists the header fields in print order.
// To print another field: append one entry here.
var fields = []fieldDef{
	{value: func(r *domain.PersonRecord) string { return r.PersonName }, pos: func(f config.FieldLayout) config.Position { return f.Name }},
	{value: func(r *domain.PersonRecord) string { return r.RegistrationID }, pos: func(f config.FieldLayout) config.Position { return f.Registration }},
	{value: func(r *domain.PersonRecord) string { return r.Regime }, pos: func(f config.FieldLayout) config.Position { return f.Regime }},
	{value: func(r *domain.PersonRecord) string { return r.Category }, pos: func(f config.FieldLayout) config.Position { return f.Category }},
	{value: func(r *domain.PersonRecord) string { return r.CourseLoad }, pos: func(f config.FieldLayout) config.Position { return f.CourseLoad }},
	{value: func(r *domain.PersonRecord) string { return r.ActivityHours }, pos: func(f config.FieldLayout) config.Position { return f.ActivityHours }},
	{value: func(r *domain.PersonRecord) string { return r.ExtraHoursOrientation }, pos: func(f config.FieldLayout) config.Position { return f.ExtraHoursOrientation }},
	{value: func(r *domain.PersonRecord) string { return r.ExtraHoursCoordination }, pos: func(f config.FieldLayout) config.Position { return f.ExtraHoursCoordination }},
}

func (e *Engine) placeFields(rec *domain.PersonRecord) []domain.PlacementInstruction {
	out := make([]domain.PlacementInstruction, 0, len(fields))
	for _, f := range fields {
		p := f.pos(e.cfg.Fields)
		out = append(out, domain.PlacementInstruction{Text: printable(f.value(rec)), X: p.X, Y: p.Y, FontSize: p.Size})
	}
	return out
}

// SplitSubjects joins subjects with sep on one line when the result fits in
// budget runes. Otherwise the first ceil(n/2) subjects go on the first line and
// the rest on the second.
func SplitSubjects(subjects []string, sep string, budget int) (line1, line2 string) {
	joined := strings.Join(subjects, sep)
	if len([]rune(joined)) <= budget {
		return joined, ""
	}
	half := (len(subjects) + 1) / 2
	return strings.Join(subjects[:half], sep), strings.Join(subjects[half:], sep)
}

func (e *Engine) placeSubjects(subjects []string) []domain.PlacementInstruction {
	sl := e.cfg.Subjects
	line1, line2 := SplitSubjects(subjects, sl.Separator, sl.LineBudget)

	out := []domain.PlacementInstruction{
		{Text: printable(line1), X: sl.Line1.X, Y: sl.Line1.Y, FontSize: sl.Line1.Size},
	}
	if line2 != "" {
		out = append(out, domain.PlacementInstruction{Text: line2, X: sl.Line2.X, Y: sl.Line2.Y, FontSize: sl.Line2.Size})
	}
	return out
}
