// Package imaging wraps github.com/nfnt/resize behind the small contract
// the quantizer's downscale step needs: resize(image, w, h, filter) ->
// image.
package imaging

import (
	"image"

	"github.com/nfnt/resize"
)

// Filter selects the resampling kernel used when downscaling an image
// before quantization.
type Filter int

const (
	// Lanczos3 is a high-quality, slower filter; the default, matching
	// vibrant-rs's FilterType::Lanczos3.
	Lanczos3 Filter = iota
	// Gaussian approximates a Gaussian resampling kernel. nfnt/resize has
	// no literal Gaussian kernel, so this maps to its closest neighbor,
	// Lanczos2, which like a Gaussian kernel trades some ringing for a
	// softer rolloff than Lanczos3.
	Gaussian
	// Bilinear is a cheap filter, useful for quick previews where
	// downscale quality matters less than speed.
	Bilinear
)

// Resize scales img to exactly width x height using the given filter.
func Resize(img image.Image, width, height int, filter Filter) image.Image {
	return resize.Resize(uint(width), uint(height), img, interpolationFunction(filter))
}

func interpolationFunction(f Filter) resize.InterpolationFunction {
	switch f {
	case Gaussian:
		return resize.Lanczos2
	case Bilinear:
		return resize.Bilinear
	default:
		return resize.Lanczos3
	}
}
