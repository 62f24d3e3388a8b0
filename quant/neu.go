package quant

import "image"

// Neu is an optional second Quantizer, standing in for the third-party
// NeuQuant wrapper neu.rs adapts. No NeuQuant port ships in this module's
// dependency set, so Neu is built from the same Histogram/vbox primitives
// as MedianCut, single-phase under the population*volume key from the
// start (skipping the population-only warm-up phase). It is not intended
// to match any specific neural-network quantizer's output pixel for
// pixel, only to offer a faster, lower-fidelity alternative with the same
// Quantizer contract.
type Neu struct{}

// NeuColorRange and NeuQualityRange mirror the bounds neu.rs enforces for
// its third-party quantizer (64 to 265 colors and 1 to 30 quality, both
// inclusive), which differ
// from MedianCut's ColorRange/QualityRange.
var (
	NeuColorRange   = [2]int{64, 265}
	NeuQualityRange = [2]int{1, 30}
)

// Quantize implements Quantizer.
func (n Neu) Quantize(img image.Image, colors, quality int, filter PixelFilter) ([]Swatch, error) {
	if colors < NeuColorRange[0] || colors > NeuColorRange[1] {
		return nil, &ColorCountOutOfBoundsError{Requested: colors, Min: NeuColorRange[0], Max: NeuColorRange[1]}
	}
	if quality < NeuQualityRange[0] || quality > NeuQualityRange[1] {
		return nil, &QualityOutOfBoundsError{Requested: quality, Min: NeuQualityRange[0], Max: NeuQualityRange[1]}
	}

	resized := downscale(img, quality, 0)
	h, distinct := buildHistogram(resized, filter)
	if len(distinct) == 0 {
		return nil, nil
	}

	root := fromColors(distinct, h)
	queue := &boxQueue{boxes: []*vbox{root}, key: populationVolumeKey}
	splitBoxes(queue, h, colors)

	swatches := make([]Swatch, len(queue.boxes))
	for i, b := range queue.boxes {
		swatches[i] = b.average(h)
	}
	return dedupe(swatches), nil
}
