package quant

import "fmt"

// ColorCountOutOfBoundsError reports a requested palette size outside the
// quantizer's supported range.
type ColorCountOutOfBoundsError struct {
	Requested, Min, Max int
}

func (e *ColorCountOutOfBoundsError) Error() string {
	return fmt.Sprintf("color count %d out of bounds [%d, %d]", e.Requested, e.Min, e.Max)
}

// QualityOutOfBoundsError reports a requested downscale quality outside
// the quantizer's supported range.
type QualityOutOfBoundsError struct {
	Requested, Min, Max int
}

func (e *QualityOutOfBoundsError) Error() string {
	return fmt.Sprintf("quality %d out of bounds [%d, %d]", e.Requested, e.Min, e.Max)
}
