package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestHistogram(colors []qcolor, counts []uint32) *histogram {
	h := &histogram{}
	for i, c := range colors {
		h.counts[c.index()] += counts[i]
	}
	return h
}

func TestVbox_FromColors_ComputesBoundsAndPopulation(t *testing.T) {
	colors := []qcolor{
		{r: 1, g: 2, b: 3},
		{r: 5, g: 0, b: 4},
	}
	h := buildTestHistogram(colors, []uint32{3, 7})

	b := fromColors(colors, h)
	assert.Equal(t, quantized(1), b.r.min)
	assert.Equal(t, quantized(5), b.r.max)
	assert.Equal(t, quantized(0), b.g.min)
	assert.Equal(t, quantized(2), b.g.max)
	assert.Equal(t, quantized(3), b.b.min)
	assert.Equal(t, quantized(4), b.b.max)
	assert.Equal(t, uint32(10), b.population)
}

func TestVbox_LongestDimension_BreaksTiesRGB(t *testing.T) {
	colors := []qcolor{{r: 0, g: 0, b: 0}, {r: 3, g: 3, b: 3}}
	h := buildTestHistogram(colors, []uint32{1, 1})
	b := fromColors(colors, h)
	assert.Equal(t, dimR, b.longestDimension())
}

func TestVbox_Volume_IsProductOfSpans(t *testing.T) {
	colors := []qcolor{{r: 0, g: 0, b: 0}, {r: 1, g: 2, b: 3}}
	h := buildTestHistogram(colors, []uint32{1, 1})
	b := fromColors(colors, h)
	assert.Equal(t, 2*3*4, b.volume())
}

func TestVbox_Average_WeightsByPopulation(t *testing.T) {
	colors := []qcolor{
		{r: quantize(0), g: quantize(0), b: quantize(0)},
		{r: quantize(248), g: quantize(248), b: quantize(248)},
	}
	h := buildTestHistogram(colors, []uint32{1, 3})
	b := fromColors(colors, h)

	avg := b.average(h)
	assert.Equal(t, uint32(4), avg.Population)
	// weighted mean leans toward the heavier (248,248,248) sample
	assert.Greater(t, int(avg.Color.R), 128)
}

func TestVbox_Split_SingletonReturnsNilRight(t *testing.T) {
	colors := []qcolor{{r: 1, g: 1, b: 1}}
	h := buildTestHistogram(colors, []uint32{5})
	b := fromColors(colors, h)

	left, right := b.split(h)
	assert.Same(t, b, left)
	assert.Nil(t, right)
}

func TestVbox_Split_PartitionsAllColors(t *testing.T) {
	colors := []qcolor{
		{r: 0, g: 0, b: 0},
		{r: 1, g: 0, b: 0},
		{r: 2, g: 0, b: 0},
		{r: 3, g: 0, b: 0},
	}
	h := buildTestHistogram(colors, []uint32{1, 1, 1, 1})
	b := fromColors(colors, h)

	left, right := b.split(h)
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, 4, len(left.colors)+len(right.colors))
	assert.NotEmpty(t, left.colors)
	assert.NotEmpty(t, right.colors)
}
