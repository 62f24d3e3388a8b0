package vibrant

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hslColor(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func TestNewVibrancy_AssignsEachRoleFromItsWindow(t *testing.T) {
	p := &Palette{Swatches: []Swatch{
		{Color: hslColor(0, 0.9, 0.5), Population: 100},   // primary
		{Color: hslColor(120, 0.9, 0.74), Population: 100}, // light vibrant
		{Color: hslColor(240, 0.9, 0.26), Population: 100}, // dark vibrant
		{Color: hslColor(60, 0.2, 0.5), Population: 100},   // muted
		{Color: hslColor(300, 0.2, 0.74), Population: 100}, // light muted
		{Color: hslColor(30, 0.2, 0.26), Population: 100},  // dark muted
	}}

	v := NewVibrancy(p)
	require.NotNil(t, v.Primary)
	require.NotNil(t, v.LightVibrant)
	require.NotNil(t, v.DarkVibrant)
	require.NotNil(t, v.Muted)
	require.NotNil(t, v.LightMuted)
	require.NotNil(t, v.DarkMuted)

	assert.Equal(t, p.Swatches[0].Color, v.Primary.Color)
	assert.Equal(t, p.Swatches[1].Color, v.LightVibrant.Color)
	assert.Equal(t, p.Swatches[2].Color, v.DarkVibrant.Color)
	assert.Equal(t, p.Swatches[3].Color, v.Muted.Color)
	assert.Equal(t, p.Swatches[4].Color, v.LightMuted.Color)
	assert.Equal(t, p.Swatches[5].Color, v.DarkMuted.Color)
}

func TestNewVibrancy_NoRoleReusesAnotherRolesColor(t *testing.T) {
	// The only candidate (lightness 0.6) lies in both the primary and the
	// light-vibrant windows; once primary claims it, light vibrant must not
	// reuse the same color even though it would otherwise qualify.
	shared := hslColor(0, 0.9, 0.6)
	p := &Palette{Swatches: []Swatch{
		{Color: shared, Population: 100},
	}}

	v := NewVibrancy(p)
	require.NotNil(t, v.Primary)
	assert.Nil(t, v.LightVibrant)
	assert.Nil(t, v.DarkVibrant)
}

func TestNewVibrancy_EmptyPaletteAssignsNothing(t *testing.T) {
	v := NewVibrancy(&Palette{})
	assert.Nil(t, v.Primary)
	assert.Nil(t, v.LightVibrant)
	assert.Nil(t, v.DarkVibrant)
	assert.Nil(t, v.Muted)
	assert.Nil(t, v.LightMuted)
	assert.Nil(t, v.DarkMuted)
}

func TestComparisonScore_PerfectMatchScoresOne(t *testing.T) {
	score := comparisonScore(1.0, 1.0, 0.5, 0.5, 100, 100)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestComparisonScore_PenalizesDistanceFromTargets(t *testing.T) {
	perfect := comparisonScore(1.0, 1.0, 0.5, 0.5, 100, 100)
	off := comparisonScore(0.5, 1.0, 0.5, 0.5, 100, 100)
	assert.Less(t, off, perfect)
}

func TestMaxPopulation_FindsLargest(t *testing.T) {
	swatches := []Swatch{
		{Population: 5}, {Population: 40}, {Population: 12},
	}
	assert.Equal(t, uint32(40), maxPopulation(swatches))
}

func TestFillEmpty_SynthesizesPrimaryFromDarkVibrant(t *testing.T) {
	v := &Vibrancy{
		DarkVibrant: &Swatch{Color: hslColor(200, 0.8, 0.26), Population: 50},
	}
	v.FillEmpty()

	require.NotNil(t, v.Primary)
	require.NotNil(t, v.LightVibrant)
	require.NotNil(t, v.Muted)
	require.NotNil(t, v.DarkMuted)

	_, _, l := hsl(v.Primary.Color)
	assert.InDelta(t, primaryWindow.lumaTarget, l, 0.05)
}

func TestFillEmpty_LeavesFullyPopulatedVibrancyUntouched(t *testing.T) {
	v := &Vibrancy{
		Primary:      &Swatch{Color: hslColor(0, 0.9, 0.5), Population: 1},
		LightVibrant: &Swatch{Color: hslColor(120, 0.9, 0.74), Population: 1},
		DarkVibrant:  &Swatch{Color: hslColor(240, 0.9, 0.26), Population: 1},
		Muted:        &Swatch{Color: hslColor(60, 0.2, 0.5), Population: 1},
		LightMuted:   &Swatch{Color: hslColor(300, 0.2, 0.74), Population: 1},
		DarkMuted:    &Swatch{Color: hslColor(30, 0.2, 0.26), Population: 1},
	}
	before := *v
	v.FillEmpty()
	assert.Equal(t, before, *v)
}
