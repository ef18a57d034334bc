// Package sample builds demonstration source workbooks: a parameters sheet
// with the reference period and roster, plus one detail sheet per person.
package sample

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bxcodec/faker/v4"

	"github.com/orayew2002/folhaponto/domain"
)

// Person is one roster row together with the detail sheet written for it.
type Person struct {
	Sequence int
	Sheets   []string
	Record   domain.PersonRecord
}

var (
	regimes    = []string{"CLT", "Estatutário", "Temporário"}
	categories = []string{"Docente", "Auxiliar Docente", "Coordenador"}
	courses    = []string{
		"Algoritmos", "Banco de Dados", "Redes", "Sistemas Operacionais",
		"Engenharia de Software", "Cálculo", "Estatística", "Compiladores",
		"Inglês Técnico", "Gestão de Projetos",
	}
	remarks = []string{"", "", "Reunião pedagógica", "Plantão", "Orientação de TCC"}
)

// Generate returns n people with random names and schedules. Grids are sized
// rows×cols per turn.
func Generate(n int, dims map[domain.Turn][2]int) []Person {
	people := make([]Person, n)

	for i := 0; i < n; i++ {
		first, last := faker.FirstName(), faker.LastName()
		rec := domain.PersonRecord{
			RegistrationID:         fmt.Sprintf("%06d", rand.Intn(1_000_000)),
			PersonName:             first + " " + last,
			Regime:                 pick(regimes),
			Category:               pick(categories),
			CourseLoad:             fmt.Sprintf("%d", 8+2*rand.Intn(9)),
			ActivityHours:          fmt.Sprintf("%d", 2+rand.Intn(6)),
			ExtraHoursOrientation:  maybe(fmt.Sprintf("%d", 1+rand.Intn(4))),
			ExtraHoursCoordination: maybe(fmt.Sprintf("%d", 1+rand.Intn(4))),
			Subjects:               pickSubjects(1 + rand.Intn(4)),
			Remarks: domain.Remarks{
				Morning:   pick(remarks),
				Afternoon: pick(remarks),
				Evening:   pick(remarks),
			},
		}
		for _, turn := range domain.Turns {
			d := dims[turn]
			rec.SetGrid(turn, randomGrid(d[0], d[1]))
		}

		people[i] = Person{
			Sequence: i + 1,
			Sheets:   []string{SheetName(last, i+1)},
			Record:   rec,
		}
	}

	return people
}

// SheetName derives a worksheet name from a surname and sequence number,
// dropping characters Excel forbids and keeping within its 31-rune limit.
func SheetName(surname string, seq int) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\'`, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(surname))

	suffix := fmt.Sprintf(" %02d", seq)
	if runes := []rune(clean); len(runes)+len(suffix) > 31 {
		clean = string(runes[:31-len(suffix)])
	}
	if clean == "" {
		clean = "Pessoa"
	}
	return clean + suffix
}

func pick(from []string) string {
	return from[rand.Intn(len(from))]
}

func maybe(s string) string {
	if rand.Intn(2) == 0 {
		return ""
	}
	return s
}

func pickSubjects(n int) []string {
	perm := rand.Perm(len(courses))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = courses[perm[i]]
	}
	return out
}

// randomGrid marks roughly a third of the slots with "X".
func randomGrid(rows, cols int) domain.Matrix {
	m := domain.NewMatrix(rows, cols, "")
	for r := range m {
		for c := range m[r] {
			if rand.Intn(3) == 0 {
				m[r][c] = "X"
			}
		}
	}
	return m
}
