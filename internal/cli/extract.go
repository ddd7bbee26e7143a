package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/webpalette/internal/colour"
	"github.com/jmylchreest/webpalette/internal/harvest"
	"github.com/jmylchreest/webpalette/internal/report"
	"github.com/jmylchreest/webpalette/internal/security"
	httputil "github.com/jmylchreest/webpalette/internal/util/http"
)

// Environment variables that override flag defaults.
const (
	envUserAgent   = "WEBPALETTE_USER_AGENT"
	envParallelism = "WEBPALETTE_PARALLELISM"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// extractOptions holds the flag values for a single extract run.
type extractOptions struct {
	colors          int
	output          string
	keepGrayscale   bool
	keepWhite       bool
	keepBlack       bool
	keepAll         bool
	maxImages       int
	noImages        bool
	noStylesheets   bool
	timeout         time.Duration
	resourceTimeout time.Duration
	parallelism     int
	userAgent       string
	noHTML          bool
	noJSON          bool
	sources         bool
	preview         string
}

func newExtractOptions() *extractOptions {
	return &extractOptions{}
}

func (o *extractOptions) registerFlags(fs *pflag.FlagSet) {
	defaults := harvest.DefaultConfig()

	fs.IntVarP(&o.colors, "colors", "c", defaults.MaxColors, "maximum number of colours in the palette")
	fs.StringVarP(&o.output, "output", "o", "", "output base name (default derived from the URL)")

	fs.BoolVar(&o.keepGrayscale, "keep-grayscale", false, "keep grayscale colours")
	fs.BoolVar(&o.keepWhite, "keep-white", false, "keep near-white colours")
	fs.BoolVar(&o.keepBlack, "keep-black", false, "keep near-black colours")
	fs.BoolVar(&o.keepAll, "keep-all", false, "keep all colours (overrides the other keep flags)")

	fs.IntVar(&o.maxImages, "max-images", defaults.MaxImages, "maximum number of images to sample")
	fs.BoolVar(&o.noImages, "no-images", false, "skip image sampling")
	fs.BoolVar(&o.noStylesheets, "no-stylesheets", false, "skip linked stylesheets")
	fs.DurationVar(&o.timeout, "timeout", defaults.PageTimeout, "page request timeout")
	fs.DurationVar(&o.resourceTimeout, "resource-timeout", defaults.ResourceTimeout, "stylesheet and image request timeout")
	fs.IntVar(&o.parallelism, "parallelism", envInt(envParallelism, defaults.Parallelism), "concurrent resource fetches (env "+envParallelism+")")
	fs.StringVar(&o.userAgent, "user-agent", os.Getenv(envUserAgent), "HTTP User-Agent (env "+envUserAgent+")")

	fs.BoolVar(&o.noHTML, "no-html", false, "do not write the HTML visualization")
	fs.BoolVar(&o.noJSON, "no-json", false, "do not write the JSON record")
	fs.BoolVar(&o.sources, "sources", false, "include per-source details in the JSON record")
	fs.StringVar(&o.preview, "preview", previewAuto, "colour swatches in the summary (auto, always, never)")

	fs.SortFlags = false
}

// policy resolves the keep flags into a filter policy.
func (o *extractOptions) policy() colour.FilterPolicy {
	p := colour.DefaultFilterPolicy()
	if o.keepAll {
		return p.KeepAll()
	}
	p.FilterGrayscale = !o.keepGrayscale
	p.FilterWhite = !o.keepWhite
	p.FilterBlack = !o.keepBlack
	return p
}

func (o *extractOptions) validate() error {
	if o.colors < 1 {
		return fmt.Errorf("colors must be at least 1, got %d", o.colors)
	}
	switch o.preview {
	case previewAuto, previewAlways, previewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", o.preview)
	}
	return nil
}

func newExtractCmd() *cobra.Command {
	opts := newExtractOptions()

	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract a colour palette from a website",
		Long: `Extract a colour palette from a website.

Colours are collected from <style> blocks, inline style attributes, linked
stylesheets and the dominant colour of the first images on the page. They are
ranked by how often they occur. Grayscale, near-white and near-black colours
are filtered out unless kept with the --keep-* flags.

Examples:
  webpalette extract https://example.com
  webpalette extract https://example.com --colors 10 --keep-white
  webpalette extract https://example.com --keep-all -o example --no-html
  webpalette extract example.com --max-images 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	opts.registerFlags(cmd.Flags())

	return cmd
}

func runExtract(cmd *cobra.Command, rawURL string, opts *extractOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	pageURL, err := security.NormalizePageURL(rawURL)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	if host := security.PageHost(pageURL); security.IsLocalOrPrivateHost(host) {
		logger.Warn("target is a local or private host", "host", host)
	}

	cfg := harvest.DefaultConfig()
	cfg.Policy = opts.policy()
	cfg.MaxColors = opts.colors
	cfg.MaxImages = opts.maxImages
	cfg.SkipImages = opts.noImages
	cfg.SkipStylesheets = opts.noStylesheets
	cfg.PageTimeout = opts.timeout
	cfg.ResourceTimeout = opts.resourceTimeout
	cfg.Parallelism = opts.parallelism
	cfg.Fetcher = httputil.NewClient(opts.userAgent)
	cfg.Logger = logger

	h, err := harvest.New(cfg)
	if err != nil {
		return err
	}

	result, err := h.Run(cmd.Context(), pageURL)
	if err != nil {
		if errors.Is(err, harvest.ErrNoColors) {
			logger.Error("failed to extract colors from the website", "url", pageURL)
		} else {
			logger.Error("harvest failed", "url", pageURL, "error", err)
		}
		return err
	}

	paths := report.OutputPaths(pageURL, opts.output)
	written := report.Paths{}

	if !opts.noJSON {
		if err := report.SaveJSON(paths.JSON, report.NewRecord(result, opts.sources)); err != nil {
			return err
		}
		written.JSON = paths.JSON
		logger.Debug("wrote palette data", "path", paths.JSON)
	}
	if !opts.noHTML {
		if err := report.SaveHTML(paths.HTML, result); err != nil {
			return err
		}
		written.HTML = paths.HTML
		logger.Debug("wrote palette visualization", "path", paths.HTML)
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return nil
	}

	return report.WriteSummary(cmd.OutOrStdout(), result, report.SummaryOptions{
		Preview: opts.wantPreview(cmd),
		Paths:   &written,
	})
}

func (o *extractOptions) wantPreview(cmd *cobra.Command) bool {
	switch o.preview {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
