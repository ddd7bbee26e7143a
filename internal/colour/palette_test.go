package colour

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate(t *testing.T) {
	const (
		a Hex = "#ff0000"
		b Hex = "#00ff00"
		c Hex = "#0000ff"
	)
	keepAll := DefaultFilterPolicy().KeepAll()

	tests := []struct {
		name         string
		observations []Hex
		policy       FilterPolicy
		maxColors    int
		want         []FrequencyEntry
	}{
		{
			name:         "ranking",
			observations: []Hex{a, b, a, c, b, a},
			policy:       keepAll,
			maxColors:    3,
			want:         []FrequencyEntry{{a, 3}, {b, 2}, {c, 1}},
		},
		{
			name:         "ties keep first seen order",
			observations: []Hex{b, a},
			policy:       keepAll,
			maxColors:    2,
			want:         []FrequencyEntry{{b, 1}, {a, 1}},
		},
		{
			name:         "truncation",
			observations: []Hex{b, a},
			policy:       keepAll,
			maxColors:    1,
			want:         []FrequencyEntry{{b, 1}},
		},
		{
			name:         "tie broken by first observation not last",
			observations: []Hex{c, a, a, c, b, b},
			policy:       keepAll,
			maxColors:    10,
			want:         []FrequencyEntry{{c, 2}, {a, 2}, {b, 2}},
		},
		{
			name:         "filtered colours dropped",
			observations: []Hex{"#ffffff", "#ffffff", "#000000", a},
			policy:       DefaultFilterPolicy(),
			maxColors:    5,
			want:         []FrequencyEntry{{a, 1}},
		},
		{
			name:         "filtered colours do not consume slots",
			observations: []Hex{"#ffffff", "#ffffff", a, b},
			policy:       DefaultFilterPolicy(),
			maxColors:    2,
			want:         []FrequencyEntry{{a, 1}, {b, 1}},
		},
		{
			name:         "empty observations",
			observations: nil,
			policy:       keepAll,
			maxColors:    3,
			want:         nil,
		},
		{
			name:         "zero max colors",
			observations: []Hex{a},
			policy:       keepAll,
			maxColors:    0,
			want:         nil,
		},
		{
			name:         "negative max colors",
			observations: []Hex{a},
			policy:       keepAll,
			maxColors:    -4,
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.observations, tt.policy, tt.maxColors)
			if diff := cmp.Diff(tt.want, got.Entries); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateDoesNotModifyInput(t *testing.T) {
	obs := []Hex{"#ff0000", "#00ff00", "#ff0000"}
	Aggregate(obs, DefaultFilterPolicy(), 1)
	if diff := cmp.Diff([]Hex{"#ff0000", "#00ff00", "#ff0000"}, obs); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestPaletteJSON(t *testing.T) {
	p := Palette{Entries: []FrequencyEntry{{Color: "#0a141e", Frequency: 2}}}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `[{"hex":"#0a141e","frequency":2}]`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	empty, err := json.Marshal(Palette{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(empty) != "[]" {
		t.Errorf("empty palette = %s, want []", empty)
	}

	var back Palette
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteHelpers(t *testing.T) {
	p := Palette{Entries: []FrequencyEntry{{"#ff0000", 3}, {"#00ff00", 1}}}

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if diff := cmp.Diff([]Hex{"#ff0000", "#00ff00"}, p.Hexes()); diff != "" {
		t.Errorf("Hexes() mismatch (-want +got):\n%s", diff)
	}

	var seen []int
	for i, e := range p.All() {
		seen = append(seen, i)
		if e != p.Entries[i] {
			t.Errorf("All() entry %d = %v", i, e)
		}
		break
	}
	if len(seen) != 1 {
		t.Errorf("All() did not stop after break: %v", seen)
	}

	if s := p.String(); !strings.Contains(s, "#ff0000") || !strings.Contains(s, "x3") {
		t.Errorf("String() = %q", s)
	}
	if s := (Palette{}).String(); s != "Empty palette" {
		t.Errorf("empty String() = %q", s)
	}
}
