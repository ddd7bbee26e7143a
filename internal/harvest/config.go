// Package harvest runs the website palette pipeline: fetch a page, collect
// colours from its styles and images, and rank them.
package harvest

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/webpalette/internal/colour"
	httputil "github.com/jmylchreest/webpalette/internal/util/http"
)

// Defaults used by DefaultConfig.
const (
	DefaultMaxColors       = 20
	DefaultMaxImages       = 10
	DefaultPageTimeout     = 10 * time.Second
	DefaultResourceTimeout = 5 * time.Second
	DefaultParallelism     = 4
)

// Config configures a Harvester.
type Config struct {
	// Policy decides which colours are dropped from the palette.
	Policy colour.FilterPolicy

	// MaxColors bounds the palette length.
	MaxColors int

	// MaxImages bounds how many <img> elements are sampled, in document order.
	MaxImages int

	// SkipImages disables image sampling entirely.
	SkipImages bool

	// SkipStylesheets disables fetching linked stylesheets.
	SkipStylesheets bool

	// PageTimeout bounds the page request; ResourceTimeout bounds each stylesheet or image request.
	PageTimeout     time.Duration
	ResourceTimeout time.Duration

	// Parallelism bounds concurrent resource fetches.
	Parallelism int

	// Fetcher retrieves pages and resources. Defaults to an httputil.Client.
	Fetcher httputil.Fetcher

	// Sampler finds the dominant colour of each image. Defaults to colour.NewSampler().
	Sampler *colour.Sampler

	// Logger receives progress and per-resource failures. Defaults to a null logger.
	Logger hclog.Logger
}

// DefaultConfig returns the default configuration: every filter enabled,
// twenty colours, the first ten images.
func DefaultConfig() Config {
	return Config{
		Policy:          colour.DefaultFilterPolicy(),
		MaxColors:       DefaultMaxColors,
		MaxImages:       DefaultMaxImages,
		PageTimeout:     DefaultPageTimeout,
		ResourceTimeout: DefaultResourceTimeout,
		Parallelism:     DefaultParallelism,
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.MaxImages < 0 {
		return fmt.Errorf("max images must not be negative, got %d", c.MaxImages)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism)
	}
	if c.PageTimeout < 0 || c.ResourceTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Fetcher == nil {
		c.Fetcher = httputil.NewClient("")
	}
	if c.Sampler == nil {
		c.Sampler = colour.NewSampler()
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.PageTimeout == 0 {
		c.PageTimeout = DefaultPageTimeout
	}
	if c.ResourceTimeout == 0 {
		c.ResourceTimeout = DefaultResourceTimeout
	}
	return c
}
