package colour

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// FrequencyEntry is one distinct colour and the number of times it was observed.
type FrequencyEntry struct {
	Color     Hex `json:"hex"`
	Frequency int `json:"frequency"`
}

// Palette is a ranked list of colours, most frequent first.
type Palette struct {
	Entries []FrequencyEntry
}

// Aggregate counts observations, drops colours rejected by policy and ranks the
// rest by frequency. Equal frequencies keep the order in which the colours were
// first observed. At most maxColors entries are returned; maxColors <= 0 yields
// an empty palette.
func Aggregate(observations []Hex, policy FilterPolicy, maxColors int) Palette {
	if maxColors <= 0 || len(observations) == 0 {
		return Palette{}
	}

	index := make(map[Hex]int, len(observations))
	var entries []FrequencyEntry
	for _, c := range observations {
		if i, ok := index[c]; ok {
			entries[i].Frequency++
			continue
		}
		index[c] = len(entries)
		entries = append(entries, FrequencyEntry{Color: c, Frequency: 1})
	}

	// entries is in first-seen order, so a stable sort keeps that order for ties.
	entries = slices.DeleteFunc(entries, func(e FrequencyEntry) bool {
		return ShouldFilter(e.Color, policy)
	})
	slices.SortStableFunc(entries, func(a, b FrequencyEntry) int {
		return b.Frequency - a.Frequency
	})

	if len(entries) > maxColors {
		entries = entries[:maxColors]
	}
	return Palette{Entries: slices.Clip(entries)}
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p.Entries)
}

// Hexes returns the palette colours in rank order.
func (p Palette) Hexes() []Hex {
	out := make([]Hex, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Color
	}
	return out
}

// All returns an iterator over the ranked entries.
func (p Palette) All() iter.Seq2[int, FrequencyEntry] {
	return func(yield func(int, FrequencyEntry) bool) {
		for i, e := range p.Entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// MarshalJSON encodes the palette as a list of {hex, frequency} objects.
func (p Palette) MarshalJSON() ([]byte, error) {
	if p.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.Entries)
}

// UnmarshalJSON decodes a list of {hex, frequency} objects.
func (p *Palette) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.Entries)
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	if len(p.Entries) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colors:\n", len(p.Entries))
	for i, e := range p.Entries {
		fmt.Fprintf(&sb, "  %2d: %s (%s) x%d\n", i+1, e.Color, e.Color.RGB(), e.Frequency)
	}
	return sb.String()
}
