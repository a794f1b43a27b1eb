package components

// sparkBlocks are the Unicode block characters from lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline maps values on the fixed scale [lo, hi] to block characters.
// Values outside the scale are clamped. A degenerate scale renders every
// value at mid height.
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	out := make([]rune, len(values))
	for i, v := range values {
		if hi <= lo {
			out[i] = sparkBlocks[len(sparkBlocks)/2]
			continue
		}
		norm := (v - lo) / (hi - lo)
		idx := int(norm*float64(len(sparkBlocks)-1) + 0.5)
		out[i] = sparkBlocks[max(0, min(idx, len(sparkBlocks)-1))]
	}
	return string(out)
}
