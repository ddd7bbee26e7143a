package colour

import (
	"image"

	imageutil "github.com/jmylchreest/webpalette/internal/image"
)

// Sampler defaults.
const (
	DefaultSampleDimension = 100
	DefaultSampleColours   = 1000
)

// Sampler finds the dominant colour of an image.
type Sampler struct {
	// MaxDimension bounds both sides of the downscaled image.
	MaxDimension int

	// MaxColours is the number of distinct colours tracked before giving up.
	MaxColours int

	// MaxPixels bounds the declared size of an image before it is decoded.
	MaxPixels int

	// Interpolation selects the downscaling filter.
	Interpolation imageutil.Interpolation
}

// NewSampler creates a Sampler with default bounds.
func NewSampler() *Sampler {
	return &Sampler{
		MaxDimension:  DefaultSampleDimension,
		MaxColours:    DefaultSampleColours,
		MaxPixels:     imageutil.DefaultMaxPixels,
		Interpolation: imageutil.InterpolationCatmullRom,
	}
}

// DominantColor decodes data with the default sampler and returns its most frequent colour.
func DominantColor(data []byte) (Hex, bool) {
	return NewSampler().DominantColor(data)
}

// Decode decodes data, rejecting images whose header declares more than MaxPixels pixels.
func (s *Sampler) Decode(data []byte) (image.Image, string, error) {
	return imageutil.DecodeLimited(data, s.MaxPixels)
}

// DominantColor decodes data and returns its most frequent pixel colour.
// It returns false when the bytes cannot be decoded, the image is larger than
// MaxPixels, or the downscaled image has more than MaxColours distinct colours.
func (s *Sampler) DominantColor(data []byte) (Hex, bool) {
	img, _, err := s.Decode(data)
	if err != nil {
		return "", false
	}
	return s.DominantColorOf(img)
}

// DominantColorOf returns the most frequent pixel colour of a decoded image.
//
// Pixels are downscaled, then reduced to RGB by dropping alpha. Ties go to the
// colour that first reached the winning count in row-major scan order.
func (s *Sampler) DominantColorOf(img image.Image) (Hex, bool) {
	if img == nil || img.Bounds().Empty() {
		return "", false
	}

	maxDim := s.MaxDimension
	if maxDim <= 0 {
		maxDim = DefaultSampleDimension
	}
	maxColours := s.MaxColours
	if maxColours <= 0 {
		maxColours = DefaultSampleColours
	}

	thumb := imageutil.Thumbnail(img, maxDim, s.Interpolation)

	counts := make(map[RGB]int, 256)
	var best RGB
	bestCount := 0

	b := thumb.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := thumb.PixOffset(x, y)
			px := RGB{R: thumb.Pix[i], G: thumb.Pix[i+1], B: thumb.Pix[i+2]}

			n := counts[px] + 1
			counts[px] = n
			if len(counts) > maxColours {
				return "", false
			}
			if n > bestCount {
				best, bestCount = px, n
			}
		}
	}

	if bestCount == 0 {
		return "", false
	}
	return best.Hex(), true
}
