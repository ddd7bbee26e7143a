package colour

// Default classification thresholds.
const (
	DefaultGrayscaleThreshold = 10
	DefaultWhiteThreshold     = 240
	DefaultBlackThreshold     = 20
)

// FilterPolicy controls which colours are dropped from a palette.
// Each test is independent; a colour is filtered when any enabled test matches.
type FilterPolicy struct {
	FilterGrayscale bool `json:"grayscale_filtered"`
	FilterWhite     bool `json:"white_filtered"`
	FilterBlack     bool `json:"black_filtered"`

	GrayscaleThreshold int `json:"-"`
	WhiteThreshold     int `json:"-"`
	BlackThreshold     int `json:"-"`
}

// DefaultFilterPolicy returns a policy with every filter enabled and default thresholds.
func DefaultFilterPolicy() FilterPolicy {
	return FilterPolicy{
		FilterGrayscale:    true,
		FilterWhite:        true,
		FilterBlack:        true,
		GrayscaleThreshold: DefaultGrayscaleThreshold,
		WhiteThreshold:     DefaultWhiteThreshold,
		BlackThreshold:     DefaultBlackThreshold,
	}
}

// KeepAll returns a copy of the policy with every filter disabled.
func (p FilterPolicy) KeepAll() FilterPolicy {
	p.FilterGrayscale = false
	p.FilterWhite = false
	p.FilterBlack = false
	return p
}

// ShouldFilter reports whether c is excluded by the policy.
// Pure white and black also satisfy the grayscale test.
func ShouldFilter(c Hex, p FilterPolicy) bool {
	rgb := c.RGB()
	if p.FilterWhite && IsTooWhite(rgb, p.WhiteThreshold) {
		return true
	}
	if p.FilterBlack && IsTooBlack(rgb, p.BlackThreshold) {
		return true
	}
	if p.FilterGrayscale && IsGrayscale(rgb, p.GrayscaleThreshold) {
		return true
	}
	return false
}

// IsGrayscale reports whether all channel pairs differ by at most threshold.
func IsGrayscale(rgb RGB, threshold int) bool {
	r, g, b := int(rgb.R), int(rgb.G), int(rgb.B)
	return absInt(r-g) <= threshold && absInt(g-b) <= threshold && absInt(r-b) <= threshold
}

// IsTooWhite reports whether every channel is at or above threshold.
func IsTooWhite(rgb RGB, threshold int) bool {
	return int(rgb.R) >= threshold && int(rgb.G) >= threshold && int(rgb.B) >= threshold
}

// IsTooBlack reports whether every channel is at or below threshold.
func IsTooBlack(rgb RGB, threshold int) bool {
	return int(rgb.R) <= threshold && int(rgb.G) <= threshold && int(rgb.B) <= threshold
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
