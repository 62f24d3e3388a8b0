package vibrant

import "github.com/willibrandon/vibrant-go/quant"

// Constants used by the vibrancy selector's scoring function and role
// windows. Grounded on vibrant-rs's vibrant.rs `settings` module, which
// held the same constants under the names MIN_NORMAL_LUMA,
// TARGET_VIBRANT_SATURATION, WEIGHT_LUMA, and so on.
const (
	// WeightSaturation, WeightLuma and WeightPopulation are the score
	// weights of the vibrancy-role scoring formula (see comparisonScore).
	WeightSaturation = 3.0
	WeightLuma       = 6.0
	WeightPopulation = 1.0

	// MinAlpha and MaxColor parameterize the default pixel filter.
	MinAlpha = quant.MinAlpha
	MaxColor = quant.MaxColor

	// BITS is the per-channel quantization width used by the histogram;
	// re-exported here since this is the package's single constants file.
	BITS = quant.BITS
)

var (
	primaryWindow = hslWindow{lumaMin: 0.3, lumaTarget: 0.5, lumaMax: 0.7, satMin: 0.35, satTarget: 1.0, satMax: 1.0}
	lightWindow   = hslWindow{lumaMin: 0.55, lumaTarget: 0.74, lumaMax: 1.0, satMin: 0.35, satTarget: 1.0, satMax: 1.0}
	darkWindow    = hslWindow{lumaMin: 0.0, lumaTarget: 0.26, lumaMax: 0.45, satMin: 0.35, satTarget: 1.0, satMax: 1.0}
	mutedWindow   = hslWindow{lumaMin: 0.3, lumaTarget: 0.5, lumaMax: 0.7, satMin: 0.0, satTarget: 0.3, satMax: 0.4}
	lightMuted    = hslWindow{lumaMin: 0.55, lumaTarget: 0.74, lumaMax: 1.0, satMin: 0.0, satTarget: 0.3, satMax: 0.4}
	darkMuted     = hslWindow{lumaMin: 0.0, lumaTarget: 0.26, lumaMax: 0.45, satMin: 0.0, satTarget: 0.3, satMax: 0.4}
)

// hslWindow is the minimum/target/maximum (MTM) acceptance range for one
// vibrancy role, for both luma and saturation.
type hslWindow struct {
	lumaMin, lumaTarget, lumaMax float64
	satMin, satTarget, satMax    float64
}
