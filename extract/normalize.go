package extract

import (
	"strings"

	"github.com/orayew2002/folhaponto/domain"
)

// blankMarkers are cell texts that mean "no value" once trimmed and lower-cased.
var blankMarkers = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
	"#n/a": {},
}

// IsBlank reports whether a raw cell value carries no data.
func IsBlank(value string) bool {
	_, ok := blankMarkers[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Normalize maps a raw cell value to printable text: blank values become
// domain.Placeholder, everything else is trimmed. Normalize(Normalize(v)) == Normalize(v).
func Normalize(value string) string {
	if IsBlank(value) {
		return domain.Placeholder
	}
	return strings.TrimSpace(value)
}
