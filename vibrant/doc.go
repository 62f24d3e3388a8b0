// Package vibrant extracts a small, perceptually meaningful palette from a
// raster image and classifies its colors into six vibrancy roles (primary,
// light, dark, muted, light-muted, dark-muted) suitable for theming a UI
// from an image.
//
// The heavy lifting -- the modified median-cut quantizer -- lives in the
// sibling quant package; this package wraps it with a Palette, a Vibrancy
// selector, and text formatting, mirroring the shape of vibrant-rs's
// crate root (palette::Palette, quantizer::*, vibrant::Vibrancy all
// re-exported from one place).
package vibrant

import "github.com/willibrandon/vibrant-go/quant"

// Color is a 24-bit RGB triple.
type Color = quant.Color

// Swatch pairs a Color with the number of pixels it represents.
type Swatch = quant.Swatch
