// Package image provides utilities for decoding and downscaling images.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"path"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// DefaultMaxPixels bounds the decoded size of a single image (50 megapixels).
const DefaultMaxPixels = 50_000_000

// ErrImageTooLarge is returned when an image header declares more pixels than allowed.
var ErrImageTooLarge = errors.New("image too large")

// Decode decodes an image from raw bytes, rejecting images larger than DefaultMaxPixels.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func Decode(data []byte) (image.Image, string, error) {
	return DecodeLimited(data, DefaultMaxPixels)
}

// DecodeLimited decodes an image from raw bytes after checking its declared
// dimensions against maxPixels. A maxPixels of zero or less uses DefaultMaxPixels.
func DecodeLimited(data []byte, maxPixels int) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("image data is empty")
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("failed to decode image config: %w", err)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, format, fmt.Errorf("invalid image dimensions %dx%d", config.Width, config.Height)
	}
	if int64(config.Width)*int64(config.Height) > int64(maxPixels) {
		return nil, format, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, config.Width, config.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, format, nil
}

// IsVectorURL reports whether the URL points at an SVG, which cannot be rasterised here.
func IsVectorURL(u string) bool {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	ext := strings.ToLower(path.Ext(u))
	return ext == ".svg" || ext == ".svgz" || strings.HasPrefix(u, "data:image/svg")
}
