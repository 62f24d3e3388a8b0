package vibrant

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Vibrancy holds up to six named aesthetic color categories picked from a
// Palette. No two slots share a color.
type Vibrancy struct {
	Primary      *Swatch
	LightVibrant *Swatch
	DarkVibrant  *Swatch
	Muted        *Swatch
	LightMuted   *Swatch
	DarkMuted    *Swatch
}

// NewVibrancy selects the six vibrancy roles from p in the fixed order
// primary, light, dark, muted, light-muted, dark-muted -- each lookup
// excludes colors already assigned to an earlier role.
func NewVibrancy(p *Palette) *Vibrancy {
	v := &Vibrancy{}
	used := make(map[Color]bool)
	maxPop := maxPopulation(p.Swatches)

	assign := func(dst **Swatch, window hslWindow) {
		if s := findColorVariation(p.Swatches, used, maxPop, window); s != nil {
			*dst = s
			used[s.Color] = true
		}
	}

	assign(&v.Primary, primaryWindow)
	assign(&v.LightVibrant, lightWindow)
	assign(&v.DarkVibrant, darkWindow)
	assign(&v.Muted, mutedWindow)
	assign(&v.LightMuted, lightMuted)
	assign(&v.DarkMuted, darkMuted)

	return v
}

func maxPopulation(swatches []Swatch) uint32 {
	var max uint32
	for _, s := range swatches {
		if s.Population > max {
			max = s.Population
		}
	}
	return max
}

func hsl(c Color) (h, s, l float64) {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
}

func findColorVariation(swatches []Swatch, used map[Color]bool, maxPop uint32, w hslWindow) *Swatch {
	var best *Swatch
	var bestScore float64

	for i := range swatches {
		s := &swatches[i]
		if used[s.Color] || s.Population == 0 {
			continue
		}
		_, sat, l := hsl(s.Color)
		if sat < w.satMin || sat > w.satMax || l < w.lumaMin || l > w.lumaMax {
			continue
		}
		score := comparisonScore(sat, w.satTarget, l, w.lumaTarget, float64(s.Population), float64(maxPop))
		if best == nil || score > bestScore {
			best = s
			bestScore = score
		}
	}
	return best
}

func comparisonScore(sat, satTarget, luma, lumaTarget, population, maxPopulation float64) float64 {
	satScore := WeightSaturation * (1 - math.Abs(sat-satTarget))
	lumaScore := WeightLuma * (1 - math.Abs(luma-lumaTarget))
	popScore := WeightPopulation * (population / maxPopulation)
	return (satScore + lumaScore + popScore) / (WeightSaturation + WeightLuma + WeightPopulation)
}

// FillEmpty synthesizes missing primary/dark/light/muted roles from
// related ones already found, overriding HSL lightness (or saturation for
// the muted variants) to the missing role's target. This optional
// convenience pass is ported from vibrant-rs's generate_empty_swatches,
// whose fallback order it follows rather than inventing a new one.
func (v *Vibrancy) FillEmpty() {
	if v.Primary == nil && v.DarkVibrant == nil && v.LightVibrant == nil {
		if v.DarkVibrant == nil && v.DarkMuted != nil {
			v.DarkVibrant = withLuma(v.DarkMuted, darkWindow.lumaTarget)
		}
		if v.LightVibrant == nil && v.LightMuted != nil {
			v.LightVibrant = withLuma(v.LightMuted, lightWindow.lumaTarget)
		}
	}
	if v.Primary == nil && v.DarkVibrant != nil {
		v.Primary = withLuma(v.DarkVibrant, primaryWindow.lumaTarget)
	} else if v.Primary == nil && v.LightVibrant != nil {
		v.Primary = withLuma(v.LightVibrant, primaryWindow.lumaTarget)
	}
	if v.DarkVibrant == nil && v.Primary != nil {
		v.DarkVibrant = withLuma(v.Primary, darkWindow.lumaTarget)
	}
	if v.LightVibrant == nil && v.Primary != nil {
		v.LightVibrant = withLuma(v.Primary, lightWindow.lumaTarget)
	}
	if v.Muted == nil && v.Primary != nil {
		v.Muted = withSaturation(v.Primary, mutedWindow.satTarget)
	}
	if v.DarkMuted == nil && v.DarkVibrant != nil {
		v.DarkMuted = withSaturation(v.DarkVibrant, darkMuted.satTarget)
	}
	if v.LightMuted == nil && v.LightVibrant != nil {
		v.LightMuted = withSaturation(v.LightVibrant, lightMuted.satTarget)
	}
}

func withLuma(s *Swatch, luma float64) *Swatch {
	h, sat, _ := hsl(s.Color)
	return &Swatch{Color: fromHSL(h, sat, luma), Population: s.Population}
}

func withSaturation(s *Swatch, sat float64) *Swatch {
	h, _, l := hsl(s.Color)
	return &Swatch{Color: fromHSL(h, sat, l), Population: s.Population}
}

func fromHSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
