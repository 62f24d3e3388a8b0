package quant

import (
	"math"
	"sort"
)

// dimension names an RGB axis. Order matters: ties in span length are
// broken R > G > B.
type dimension int

const (
	dimR dimension = iota
	dimG
	dimB
)

type minMax struct {
	min, max quantized
}

func (mm minMax) span() int {
	return int(mm.max) - int(mm.min) + 1
}

// vbox is an axis-aligned region of the reduced color space together with
// the slice of distinct colors inside it and their total population.
// The colors slice is a subrange of a single shared buffer; splitting a
// vbox partitions that buffer in place and hands out two disjoint
// subranges.
type vbox struct {
	r, g, b    minMax
	colors     []qcolor
	population uint32
}

// fromColors computes the tight bounding box and total population of a
// non-empty color slice by iterating it and summing histogram counts.
func fromColors(colors []qcolor, h *histogram) *vbox {
	if len(colors) == 0 {
		panic("quant: fromColors requires a non-empty slice")
	}
	first := colors[0]
	b := &vbox{
		r:      minMax{first.r, first.r},
		g:      minMax{first.g, first.g},
		b:      minMax{first.b, first.b},
		colors: colors,
	}
	for _, c := range colors {
		if c.r < b.r.min {
			b.r.min = c.r
		}
		if c.r > b.r.max {
			b.r.max = c.r
		}
		if c.g < b.g.min {
			b.g.min = c.g
		}
		if c.g > b.g.max {
			b.g.max = c.g
		}
		if c.b < b.b.min {
			b.b.min = c.b
		}
		if c.b > b.b.max {
			b.b.max = c.b
		}
		b.population += h.countOf(c)
	}
	return b
}

// volume is the product of per-channel span lengths.
func (b *vbox) volume() int {
	return b.r.span() * b.g.span() * b.b.span()
}

// longestDimension is the argmax of the three span lengths, ties broken
// in the fixed order R > G > B.
func (b *vbox) longestDimension() dimension {
	rs, gs, bs := b.r.span(), b.g.span(), b.b.span()
	if rs >= gs && rs >= bs {
		return dimR
	}
	if gs >= bs {
		return dimG
	}
	return dimB
}

// average computes the weighted centroid of the colors in this box using
// histogram counts as weights, and returns it together with the box's
// total population.
func (b *vbox) average(h *histogram) Swatch {
	var rSum, gSum, bSum, pop uint64
	for _, c := range b.colors {
		w := uint64(h.countOf(c))
		pop += w
		rSum += w * uint64(c.r.toChannel())
		gSum += w * uint64(c.g.toChannel())
		bSum += w * uint64(c.b.toChannel())
	}
	round := func(sum uint64) uint8 {
		if pop == 0 {
			return 0
		}
		return uint8(math.Round(float64(sum) / float64(pop)))
	}
	return Swatch{
		Color:      Color{R: round(rSum), G: round(gSum), B: round(bSum)},
		Population: uint32(pop),
	}
}

// split divides the box along its longest dimension at the first sorted
// position whose own histogram count reaches half the box's population,
// stepping one past it, then clamps the cut so both sides are non-empty
// when possible. A singleton box cannot be split.
func (b *vbox) split(h *histogram) (*vbox, *vbox) {
	if len(b.colors) == 1 {
		return b, nil
	}

	switch b.longestDimension() {
	case dimR:
		sort.Slice(b.colors, func(i, j int) bool {
			a, c := b.colors[i], b.colors[j]
			if a.r != c.r {
				return a.r < c.r
			}
			if a.g != c.g {
				return a.g < c.g
			}
			return a.b < c.b
		})
	case dimG:
		sort.Slice(b.colors, func(i, j int) bool {
			a, c := b.colors[i], b.colors[j]
			if a.g != c.g {
				return a.g < c.g
			}
			if a.r != c.r {
				return a.r < c.r
			}
			return a.b < c.b
		})
	default:
		sort.Slice(b.colors, func(i, j int) bool {
			a, c := b.colors[i], b.colors[j]
			if a.b != c.b {
				return a.b < c.b
			}
			if a.r != c.r {
				return a.r < c.r
			}
			return a.g < c.g
		})
	}

	half := b.population / 2
	splitPoint := len(b.colors)
	for i, c := range b.colors {
		if half <= h.countOf(c) {
			splitPoint = i + 1
			break
		}
	}
	if splitPoint > len(b.colors)-1 {
		splitPoint = len(b.colors) - 1
	}
	if splitPoint < 1 {
		splitPoint = 1
	}

	left := fromColors(b.colors[:splitPoint], h)
	right := fromColors(b.colors[splitPoint:], h)
	return left, right
}
