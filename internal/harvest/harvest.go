package harvest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/webpalette/internal/colour"
	imageutil "github.com/jmylchreest/webpalette/internal/image"
	"github.com/jmylchreest/webpalette/internal/page"
)

// ErrNoColors is returned when no colour survives filtering.
var ErrNoColors = errors.New("no colors extracted")

// SourceKind identifies where a batch of colours came from.
type SourceKind string

// Source kinds, in the order their colours are merged.
const (
	SourceStyle      SourceKind = "style"
	SourceInline     SourceKind = "inline"
	SourceStylesheet SourceKind = "stylesheet"
	SourceImage      SourceKind = "image"
)

// Source describes one unit of input and how many colours it contributed.
type Source struct {
	Kind     SourceKind `json:"kind"`
	Location string     `json:"location,omitempty"`
	Colors   int        `json:"colors"`
	Error    string     `json:"error,omitempty"`
}

// Result is the outcome of a run.
type Result struct {
	URL          string
	Palette      colour.Palette
	Policy       colour.FilterPolicy
	Sources      []Source
	Observations int
}

// Harvester extracts palettes from websites.
type Harvester struct {
	cfg Config
	log hclog.Logger
}

// New creates a Harvester. A nil Fetcher, Sampler or Logger and zero timeouts
// are filled with defaults; MaxColors and Parallelism are used as given.
func New(cfg Config) (*Harvester, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = cfg.withDefaults()
	return &Harvester{cfg: cfg, log: cfg.Logger}, nil
}

// Run fetches pageURL and builds its palette.
//
// Only a failure to fetch or parse the page itself is returned as an error.
// Stylesheets and images that cannot be fetched or decoded are logged and
// skipped. If nothing survives filtering, the result is returned together with
// ErrNoColors.
func (h *Harvester) Run(ctx context.Context, pageURL string) (*Result, error) {
	base, err := page.Base(pageURL)
	if err != nil {
		return nil, err
	}

	h.log.Info("extracting colors", "url", pageURL)

	body, err := h.cfg.Fetcher.FetchBytes(ctx, pageURL, h.cfg.PageTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch website: %w", err)
	}

	doc, err := page.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	h.log.Debug("parsed page",
		"style_blocks", len(doc.StyleBlocks),
		"inline_styles", len(doc.InlineStyles),
		"stylesheets", len(doc.Stylesheets),
		"images", len(doc.Images))

	batches := h.collect(ctx, base, doc)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var observations []colour.Hex
	sources := make([]Source, 0, len(batches))
	for _, b := range batches {
		observations = append(observations, b.colours...)
		sources = append(sources, b.source)
	}

	result := &Result{
		URL:          pageURL,
		Palette:      colour.Aggregate(observations, h.cfg.Policy, h.cfg.MaxColors),
		Policy:       h.cfg.Policy,
		Sources:      sources,
		Observations: len(observations),
	}

	h.log.Info("extracted colors after filtering",
		"colors", result.Palette.Len(),
		"observations", result.Observations)

	if result.Palette.Len() == 0 {
		return result, ErrNoColors
	}
	return result, nil
}

// batch is the ordered output of one source.
type batch struct {
	source  Source
	colours []colour.Hex
}

// collect scans every source of doc. Local sources are scanned inline; remote
// stylesheets and images are fetched concurrently. The returned batches are in
// merge order: style blocks, inline styles, stylesheets, images.
func (h *Harvester) collect(ctx context.Context, base string, doc *page.Document) []batch {
	var batches []batch

	for i, text := range doc.StyleBlocks {
		found := colour.ScanText(text)
		batches = append(batches, batch{
			source:  Source{Kind: SourceStyle, Location: fmt.Sprintf("style[%d]", i), Colors: len(found)},
			colours: found,
		})
	}

	inline := colour.ScanAll(doc.InlineStyles)
	batches = append(batches, batch{
		source:  Source{Kind: SourceInline, Location: fmt.Sprintf("%d attributes", len(doc.InlineStyles)), Colors: len(inline)},
		colours: inline,
	})

	var sheets, images []string
	if !h.cfg.SkipStylesheets {
		sheets = doc.Stylesheets
	}
	if !h.cfg.SkipImages {
		images = doc.FirstImages(h.cfg.MaxImages)
	}

	remote := make([]batch, len(sheets)+len(images))
	sem := make(chan struct{}, h.cfg.Parallelism)
	var wg sync.WaitGroup

	run := func(slot int, job func() batch) {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				remote[slot] = batch{source: Source{Error: ctx.Err().Error()}}
				return
			}
			defer func() { <-sem }()
			remote[slot] = job()
		})
	}

	for i, ref := range sheets {
		run(i, func() batch { return h.stylesheet(ctx, base, ref) })
	}
	for i, ref := range images {
		run(len(sheets)+i, func() batch { return h.image(ctx, base, ref) })
	}
	wg.Wait()

	// Cancelled jobs never learned their kind or location.
	for i := range remote {
		if remote[i].source.Kind == "" {
			if i < len(sheets) {
				remote[i].source.Kind, remote[i].source.Location = SourceStylesheet, page.Resolve(base, sheets[i])
			} else {
				remote[i].source.Kind, remote[i].source.Location = SourceImage, page.Resolve(base, images[i-len(sheets)])
			}
		}
	}

	return append(batches, remote...)
}

func (h *Harvester) stylesheet(ctx context.Context, base, ref string) batch {
	src := Source{Kind: SourceStylesheet, Location: page.Resolve(base, ref)}
	if page.IsInline(ref) {
		src.Location = ref
		src.Error = "inline stylesheet URLs are not supported"
		return batch{source: src}
	}

	data, err := h.cfg.Fetcher.FetchBytes(ctx, src.Location, h.cfg.ResourceTimeout)
	if err != nil {
		h.log.Debug("failed to fetch CSS file", "url", src.Location, "error", err)
		src.Error = err.Error()
		return batch{source: src}
	}

	found := colour.ScanText(string(data))
	src.Colors = len(found)
	h.log.Debug("scanned stylesheet", "url", src.Location, "colors", len(found))
	return batch{source: src, colours: found}
}

func (h *Harvester) image(ctx context.Context, base, ref string) batch {
	src := Source{Kind: SourceImage, Location: page.Resolve(base, ref)}
	if page.IsInline(ref) || imageutil.IsVectorURL(ref) {
		src.Location = ref
		src.Error = "unsupported image source"
		h.log.Debug("skipping image", "src", truncate(ref, 64))
		return batch{source: src}
	}

	data, err := h.cfg.Fetcher.FetchBytes(ctx, src.Location, h.cfg.ResourceTimeout)
	if err != nil {
		h.log.Debug("failed to fetch image", "url", src.Location, "error", err)
		src.Error = err.Error()
		return batch{source: src}
	}

	img, format, err := h.cfg.Sampler.Decode(data)
	if err != nil {
		h.log.Debug("failed to extract color from image", "url", src.Location, "error", err)
		src.Error = err.Error()
		return batch{source: src}
	}

	dominant, ok := h.cfg.Sampler.DominantColorOf(img)
	if !ok {
		h.log.Debug("image has too many colors to sample", "url", src.Location, "format", format)
		src.Error = "too many distinct colors"
		return batch{source: src}
	}

	h.log.Debug("sampled image", "url", src.Location, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "color", dominant)
	src.Colors = 1
	return batch{source: src, colours: []colour.Hex{dominant}}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
