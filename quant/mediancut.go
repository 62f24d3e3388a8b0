package quant

import (
	"image"
	"math"

	"github.com/willibrandon/vibrant-go/pkg/imaging"
)

// MedianCut is the modified median-cut quantizer vibrant-rs's
// median_cut.rs describes: it divides the color cube to maximize
// distinct colors rather than minimum color error, using a two-phase
// priority queue (population, then population*volume).
type MedianCut struct {
	// ResizeFilter controls the downscale filter applied before
	// histogramming. Zero value selects imaging.Lanczos3.
	ResizeFilter imaging.Filter
}

// Quantize implements Quantizer.
func (m MedianCut) Quantize(img image.Image, colors, quality int, filter PixelFilter) ([]Swatch, error) {
	if err := validateBounds(colors, quality); err != nil {
		return nil, err
	}

	img = downscale(img, quality, m.ResizeFilter)

	h, distinct := buildHistogram(img, filter)
	if len(distinct) == 0 {
		return nil, nil
	}

	root := fromColors(distinct, h)
	queue := &boxQueue{boxes: []*vbox{root}, key: populationKey}

	phase1Target := int(0.75 * float64(colors))
	if phase1Target < 1 {
		phase1Target = 1
	}
	splitBoxes(queue, h, phase1Target)

	// Re-key the existing boxes under population*volume and rebuild the
	// heap in place; the boxes themselves are untouched.
	queue.key = populationVolumeKey
	heapify(queue)
	splitBoxes(queue, h, colors)

	swatches := make([]Swatch, len(queue.boxes))
	for i, b := range queue.boxes {
		swatches[i] = b.average(h)
	}
	return dedupe(swatches), nil
}

func downscale(img image.Image, quality int, filter imaging.Filter) image.Image {
	bounds := img.Bounds()
	factor := 1.0 / float64(quality)
	width := int(math.Round(float64(bounds.Dx()) * factor))
	height := int(math.Round(float64(bounds.Dy()) * factor))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, filter)
}
