package quant

import "image"

// histogram is a fixed-size frequency table over the reduced color space.
// It is built once and never mutated afterwards.
type histogram struct {
	counts [bucketCount]uint32
}

// buildHistogram consumes every pixel of img for which filter returns
// true, reduces its channels to BITS bits and increments the matching
// bucket. It returns the histogram together with the distinct QColors
// (non-zero buckets) in bucket-index order.
func buildHistogram(img image.Image, filter PixelFilter) (*histogram, []qcolor) {
	h := &histogram{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			r, g, b, a := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8), uint8(a16>>8)
			if !filter(r, g, b, a) {
				continue
			}
			h.insert(qcolor{quantize(r), quantize(g), quantize(b)})
		}
	}

	distinct := make([]qcolor, 0)
	for idx, count := range h.counts {
		if count != 0 {
			distinct = append(distinct, colorAtIndex(idx))
		}
	}
	return h, distinct
}

func (h *histogram) insert(c qcolor) {
	h.counts[c.index()]++
}

// countOf is an O(1) lookup of the population of a single quantized color.
func (h *histogram) countOf(c qcolor) uint32 {
	return h.counts[c.index()]
}
