package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/webpalette/internal/colour"
	"github.com/jmylchreest/webpalette/internal/harvest"
	"github.com/jmylchreest/webpalette/internal/version"
)

//go:embed palette.html.tmpl
var paletteTemplate string

var htmlTemplate = template.Must(template.New("palette").Funcs(templateFuncs()).Parse(paletteTemplate))

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"plural": pluralFunc,
	}
}

// pluralFunc appends "s" to word unless n is exactly one.
func pluralFunc(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// card is the view model for one swatch.
type card struct {
	Hex       colour.Hex
	Style     template.CSS
	RGB       string
	HSL       string
	Frequency int
}

type htmlPage struct {
	URL     string
	Site    string
	Version string
	Cards   []card
}

// HSLString formats c as "HSL(h, s%, l%)" with whole-number components.
func HSLString(c colour.Hex) string {
	rgb := c.RGB()
	h, s, l := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.Hsl()
	return fmt.Sprintf("HSL(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

func newPage(result *harvest.Result) htmlPage {
	p := htmlPage{
		URL:     result.URL,
		Site:    DisplayName(result.URL),
		Version: version.Short(),
		Cards:   make([]card, 0, result.Palette.Len()),
	}
	for _, e := range result.Palette.Entries {
		rgb := e.Color.RGB()
		p.Cards = append(p.Cards, card{
			Hex: e.Color,
			// Hex values are validated canonical colours, safe to emit as CSS.
			Style:     template.CSS(fmt.Sprintf("background-color: %s; color: %s;", e.Color, colour.TextColorFor(e.Color))), // #nosec G203
			RGB:       fmt.Sprintf("RGB(%d, %d, %d)", rgb.R, rgb.G, rgb.B),
			HSL:       HSLString(e.Color),
			Frequency: e.Frequency,
		})
	}
	return p
}

// WriteHTML renders the palette visualization for result.
func WriteHTML(w io.Writer, result *harvest.Result) error {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newPage(result)); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

// SaveHTML writes the palette visualization to path.
func SaveHTML(path string, result *harvest.Result) error {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, result); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { // #nosec G306 - report is meant to be shared
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}
