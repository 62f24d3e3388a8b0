package vibrant

import (
	"image"
	"sort"

	"github.com/willibrandon/vibrant-go/quant"
)

// Palette is an ordered collection of Swatches with no duplicate colors.
type Palette struct {
	Swatches []Swatch
}

// FromImage runs quantizer (or quant.MedianCut{} if nil) over img's pixels
// that pass the default filter, requesting up to colors distinct Swatches
// at the given downscale quality.
func FromImage(img image.Image, colors, quality int, quantizer quant.Quantizer) (*Palette, error) {
	if quantizer == nil {
		quantizer = quant.MedianCut{}
	}
	swatches, err := quantizer.Quantize(img, colors, quality, quant.DefaultFilter)
	if err != nil {
		return nil, err
	}
	return &Palette{Swatches: swatches}, nil
}

// SortedByFrequency returns a new Palette with swatches ordered by
// ascending population; ties keep their original relative order.
func (p *Palette) SortedByFrequency() *Palette {
	sorted := make([]Swatch, len(p.Swatches))
	copy(sorted, p.Swatches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population < sorted[j].Population
	})
	return &Palette{Swatches: sorted}
}
