package vibrant

import (
	"fmt"
	"strings"
)

// Hex formats a color as "#RRGGBB".
func Hex(c Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String renders the palette as "Color Palette { #AABBCC, #... }".
func (p *Palette) String() string {
	parts := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		parts[i] = Hex(s.Color)
	}
	return fmt.Sprintf("Color Palette { %s }", strings.Join(parts, ", "))
}

// String renders the vibrancy record as a labeled, newline-separated
// block, one role per line.
func (v *Vibrancy) String() string {
	var b strings.Builder
	b.WriteString("Vibrant Colors {\n")
	writeRole(&b, "Primary Vibrant", v.Primary)
	writeRole(&b, "Light Vibrant", v.LightVibrant)
	writeRole(&b, "Dark Vibrant", v.DarkVibrant)
	writeRole(&b, "Muted", v.Muted)
	writeRole(&b, "Light Muted", v.LightMuted)
	writeRole(&b, "Dark Muted", v.DarkMuted)
	b.WriteString("}")
	return b.String()
}

func writeRole(b *strings.Builder, label string, s *Swatch) {
	b.WriteString("\t")
	b.WriteString(label)
	if s == nil {
		b.WriteString(" Color: None\n")
		return
	}
	fmt.Fprintf(b, " Color: %s\n", Hex(s.Color))
}
