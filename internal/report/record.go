// Package report writes palette results as JSON, HTML and terminal summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/webpalette/internal/colour"
	"github.com/jmylchreest/webpalette/internal/harvest"
)

// Filters records which filters were applied.
type Filters struct {
	GrayscaleFiltered bool `json:"grayscale_filtered"`
	WhiteFiltered     bool `json:"white_filtered"`
	BlackFiltered     bool `json:"black_filtered"`
}

// Record is the JSON document written for a run.
type Record struct {
	URL     string           `json:"url"`
	Colors  colour.Palette   `json:"colors"`
	Filters Filters          `json:"filters"`
	Sources []harvest.Source `json:"sources,omitempty"`
}

// NewRecord builds the JSON record for a result. Sources are included only when requested.
func NewRecord(result *harvest.Result, withSources bool) Record {
	rec := Record{
		URL:    result.URL,
		Colors: result.Palette,
		Filters: Filters{
			GrayscaleFiltered: result.Policy.FilterGrayscale,
			WhiteFiltered:     result.Policy.FilterWhite,
			BlackFiltered:     result.Policy.FilterBlack,
		},
	}
	if withSources {
		rec.Sources = result.Sources
	}
	return rec
}

// WriteJSON encodes rec with two-space indentation.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// SaveJSON writes rec to path.
func SaveJSON(path string, rec Record) error {
	f, err := os.Create(path) // #nosec G304 - output path chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	if err := WriteJSON(f, rec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
