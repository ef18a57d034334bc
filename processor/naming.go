package processor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reUnsafe     = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	reUnderscore = regexp.MustCompile(`_+`)
)

// fallbackName is used when a person's name has nothing printable.
const fallbackName = "sem_nome"

// SanitizeName turns a person name into a file-name stem: diacritics are
// stripped, whitespace becomes "_", and anything outside [A-Za-z0-9_-] is
// dropped. "José da Silva" → "Jose_da_Silva".
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.TrimSpace(name)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsSpace(r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	s := reUnsafe.ReplaceAllString(b.String(), "")
	s = reUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	if s == "" {
		return fallbackName
	}
	return s
}

// OutputName is SanitizeName(name) followed by suffix.
func OutputName(name, suffix string) string {
	return SanitizeName(name) + suffix
}

// namer hands out output names that are unique within one run, appending
// "_2", "_3", ... to stems already taken. Comparison ignores case.
type namer struct {
	suffix string
	used   map[string]bool
	count  map[string]int
}

func newNamer(suffix string) *namer {
	return &namer{suffix: suffix, used: make(map[string]bool), count: make(map[string]int)}
}

func (n *namer) next(name string) string {
	base := SanitizeName(name)
	key := strings.ToLower(base)

	stem, c := base, max(n.count[key], 1)
	for n.used[strings.ToLower(stem)] {
		c++
		stem = base + "_" + strconv.Itoa(c)
	}
	n.count[key] = c
	n.used[strings.ToLower(stem)] = true
	return stem + n.suffix
}
