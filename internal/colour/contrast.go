package colour

// Text colours chosen by TextColorFor.
const (
	White Hex = "#ffffff"
	Black Hex = "#000000"
)

// PerceivedLuminance returns (0.299r + 0.587g + 0.114b) / 255, in the range [0, 1].
func PerceivedLuminance(rgb RGB) float64 {
	return (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255
}

// TextColorFor returns white for backgrounds with perceived luminance below 0.5
// and black otherwise.
func TextColorFor(background Hex) Hex {
	if PerceivedLuminance(background.RGB()) < 0.5 {
		return White
	}
	return Black
}
