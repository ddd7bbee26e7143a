package colour

import "regexp"

// Patterns for colour literals embedded in CSS text. The hex pattern prefers the
// six digit form and falls back to three digits, so "#abcd" yields "#abc".
var (
	hexScanRegex  = regexp.MustCompile(`#(?:[0-9a-fA-F]{3}){1,2}`)
	rgbScanRegex  = regexp.MustCompile(`rgb\((\d+),\s*(\d+),\s*(\d+)\)`)
	rgbaScanRegex = regexp.MustCompile(`rgba\((\d+),\s*(\d+),\s*(\d+),\s*[\d.]+\)`)
)

// ScanText returns every colour literal found in text, normalised.
//
// Results are ordered by pass, then by position: all hex literals first, then
// rgb() literals, then rgba() literals. The ordering is significant because the
// aggregator breaks frequency ties by first appearance. Literals that cannot be
// normalised (e.g. rgb(300, 0, 0)) are skipped.
func ScanText(text string) []Hex {
	var colours []Hex

	for _, match := range hexScanRegex.FindAllString(text, -1) {
		colours = append(colours, expandHex(match[1:]))
	}

	for _, re := range []*regexp.Regexp{rgbScanRegex, rgbaScanRegex} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			rgb, err := componentsToRGB(m[1], m[2], m[3])
			if err != nil {
				continue
			}
			colours = append(colours, rgb.Hex())
		}
	}

	return colours
}

// ScanAll scans each text in order and concatenates the results.
func ScanAll(texts []string) []Hex {
	var colours []Hex
	for _, text := range texts {
		colours = append(colours, ScanText(text)...)
	}
	return colours
}
