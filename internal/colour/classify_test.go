package colour

import "testing"

func TestShouldFilter(t *testing.T) {
	whiteOnly := FilterPolicy{FilterWhite: true, WhiteThreshold: 240}

	tests := []struct {
		name   string
		colour Hex
		policy FilterPolicy
		want   bool
	}{
		{name: "near white filtered", colour: "#f8f8f8", policy: whiteOnly, want: true},
		{name: "light gray below white threshold", colour: "#e0e0e0", policy: whiteOnly, want: false},
		{name: "white with defaults", colour: "#ffffff", policy: DefaultFilterPolicy(), want: true},
		{name: "black with defaults", colour: "#000000", policy: DefaultFilterPolicy(), want: true},
		{name: "mid gray with defaults", colour: "#808080", policy: DefaultFilterPolicy(), want: true},
		{name: "saturated colour kept", colour: "#0a141e", policy: DefaultFilterPolicy(), want: false},
		{name: "red kept", colour: "#ff0000", policy: DefaultFilterPolicy(), want: false},
		{name: "nothing enabled", colour: "#ffffff", policy: DefaultFilterPolicy().KeepAll(), want: false},
		{
			name:   "gray kept when only white and black filtered",
			colour: "#808080",
			policy: FilterPolicy{FilterWhite: true, FilterBlack: true, WhiteThreshold: 240, BlackThreshold: 20},
			want:   false,
		},
		{
			name:   "white still filtered without grayscale",
			colour: "#ffffff",
			policy: FilterPolicy{FilterWhite: true, FilterBlack: true, WhiteThreshold: 240, BlackThreshold: 20},
			want:   true,
		},
		{
			name:   "near black filtered without grayscale",
			colour: "#141414",
			policy: FilterPolicy{FilterBlack: true, BlackThreshold: 20},
			want:   true,
		},
		{
			name:   "dark blue passes black test",
			colour: "#00001f",
			policy: FilterPolicy{FilterBlack: true, BlackThreshold: 20},
			want:   false,
		},
		{
			name:   "grayscale threshold boundary",
			colour: "#7f8589",
			policy: FilterPolicy{FilterGrayscale: true, GrayscaleThreshold: 10},
			want:   true,
		},
		{
			name:   "just outside grayscale threshold",
			colour: "#7f858a",
			policy: FilterPolicy{FilterGrayscale: true, GrayscaleThreshold: 10},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldFilter(tt.colour, tt.policy); got != tt.want {
				t.Errorf("ShouldFilter(%q) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

// TestShouldFilterMonotonic checks that enabling more filters never keeps a
// colour that a subset of those filters already removed.
func TestShouldFilterMonotonic(t *testing.T) {
	samples := []Hex{"#000000", "#ffffff", "#808080", "#f8f8f8", "#101010", "#ff0000", "#0a141e", "#f0f0f5"}
	base := DefaultFilterPolicy()

	for mask := 0; mask < 8; mask++ {
		sub := base.KeepAll()
		sub.FilterGrayscale = mask&1 != 0
		sub.FilterWhite = mask&2 != 0
		sub.FilterBlack = mask&4 != 0

		for _, c := range samples {
			if ShouldFilter(c, base.KeepAll()) {
				t.Errorf("%q filtered with every filter disabled", c)
			}
			if ShouldFilter(c, sub) && !ShouldFilter(c, base) {
				t.Errorf("%q filtered by subset %03b but not by full policy", c, mask)
			}
		}
	}
}
