package processor

import (
	"errors"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces", in: "Jane Doe", want: "Jane_Doe"},
		{name: "diacritics", in: "José da Conceição", want: "Jose_da_Conceicao"},
		{name: "surrounding space", in: "  Ana  Lima ", want: "Ana_Lima"},
		{name: "unsafe characters", in: "Ana/Lima: \"Jr.\"", want: "AnaLima_Jr"},
		{name: "hyphen kept", in: "Maria-Clara", want: "Maria-Clara"},
		{name: "placeholder", in: "......", want: fallbackName},
		{name: "empty", in: "", want: fallbackName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	if got := OutputName("Jane Doe", "_formulario.pdf"); got != "Jane_Doe_formulario.pdf" {
		t.Errorf("OutputName() = %q", got)
	}
}

func TestNamer(t *testing.T) {
	t.Parallel()

	n := newNamer(".pdf")
	got := []string{n.next("Jane Doe"), n.next("jane doe"), n.next("John"), n.next("Jane  Doe")}
	want := []string{"Jane_Doe.pdf", "jane_doe_2.pdf", "John.pdf", "Jane_Doe_3.pdf"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("next #%d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNamer_SuffixedStemNeverReused(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "literal name after suffix",
			names: []string{"Jane Doe", "Jane Doe", "Jane Doe 2"},
			want:  []string{"Jane_Doe.pdf", "Jane_Doe_2.pdf", "Jane_Doe_2_2.pdf"},
		},
		{
			name:  "literal name before suffix",
			names: []string{"Jane Doe 2", "Jane Doe", "Jane Doe"},
			want:  []string{"Jane_Doe_2.pdf", "Jane_Doe.pdf", "Jane_Doe_3.pdf"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := newNamer(".pdf")
			seen := map[string]bool{}
			for i, name := range tt.names {
				got := n.next(name)
				if got != tt.want[i] {
					t.Errorf("next(%q) = %q, want %q", name, got, tt.want[i])
				}
				if seen[got] {
					t.Errorf("next(%q) reused %q", name, got)
				}
				seen[got] = true
			}
		})
	}
}

func TestReportErr(t *testing.T) {
	t.Parallel()

	r := &Report{Generated: []Outcome{{}}, Skipped: []Outcome{{}}}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil with only skips", err)
	}

	r.Failed = append(r.Failed, Outcome{Person: "x"})
	if err := r.Err(); !errors.Is(err, ErrPartial) {
		t.Errorf("Err() = %v, want ErrPartial", err)
	}
	if r.Total() != 3 {
		t.Errorf("Total() = %d, want 3", r.Total())
	}
}
