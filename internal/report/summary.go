package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/webpalette/internal/colour"
	"github.com/jmylchreest/webpalette/internal/harvest"
)

const rule = "--------------------------------------------------"

// SummaryOptions controls WriteSummary output.
type SummaryOptions struct {
	// Preview prefixes each colour with an ANSI swatch.
	Preview bool

	// Paths lists the files written, if any.
	Paths *Paths
}

// WriteSummary prints the ranked palette and the filters that were applied.
func WriteSummary(w io.Writer, result *harvest.Result, opts SummaryOptions) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nColor Harvest Results for %s\n", result.URL)
	sb.WriteString(rule + "\n")
	for i, e := range result.Palette.Entries {
		fmt.Fprintf(&sb, "%d. ", i+1)
		if opts.Preview {
			sb.WriteString(colour.ColourPreviewWithText(e.Color.RGB(), "", 4))
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s - %d occurrences\n", e.Color, e.Frequency)
	}
	sb.WriteString(rule + "\n")

	p := result.Policy
	fmt.Fprintf(&sb, "Filters applied: Grayscale: %s, White: %s, Black: %s\n",
		yesNo(p.FilterGrayscale), yesNo(p.FilterWhite), yesNo(p.FilterBlack))

	if opts.Paths != nil {
		if opts.Paths.JSON != "" {
			fmt.Fprintf(&sb, "Data saved to %s\n", opts.Paths.JSON)
		}
		if opts.Paths.HTML != "" {
			fmt.Fprintf(&sb, "Visual palette saved to %s\n", opts.Paths.HTML)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
