package vibrant

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage_DefaultsToMedianCut(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 220, G: 30, B: 30, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 30, G: 30, B: 220, A: 255})
			}
		}
	}

	pal, err := FromImage(img, 4, 1, nil)
	require.NoError(t, err)
	require.NotNil(t, pal)
	assert.NotEmpty(t, pal.Swatches)
	assert.LessOrEqual(t, len(pal.Swatches), 4)
}

func TestPalette_SortedByFrequency_AscendingPopulation(t *testing.T) {
	p := &Palette{Swatches: []Swatch{
		{Color: Color{R: 1}, Population: 30},
		{Color: Color{R: 2}, Population: 10},
		{Color: Color{R: 3}, Population: 20},
	}}

	sorted := p.SortedByFrequency()
	require.Len(t, sorted.Swatches, 3)
	assert.Equal(t, uint32(10), sorted.Swatches[0].Population)
	assert.Equal(t, uint32(20), sorted.Swatches[1].Population)
	assert.Equal(t, uint32(30), sorted.Swatches[2].Population)

	// original palette is untouched
	assert.Equal(t, uint32(30), p.Swatches[0].Population)
}

func TestPalette_SortedByFrequency_StableOnTies(t *testing.T) {
	p := &Palette{Swatches: []Swatch{
		{Color: Color{R: 1}, Population: 10},
		{Color: Color{R: 2}, Population: 10},
	}}
	sorted := p.SortedByFrequency()
	assert.Equal(t, Color{R: 1}, sorted.Swatches[0].Color)
	assert.Equal(t, Color{R: 2}, sorted.Swatches[1].Color)
}
