package color

import "math"

// sRGBToLinearLUT provides O(1) sRGB to linear conversion for 8-bit input.
// Pre-computed 256 entries, 2KB memory cost.
var sRGBToLinearLUT [256]float64

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = SRGBToLinearSlow(uint8(i))
	}
}

// SRGBToLinearFast converts an sRGB byte to a linear component using the
// lookup table. The result is identical to SRGBToLinearSlow.
//
// Example:
//
//	l := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(c uint8) float64 {
	return sRGBToLinearLUT[c]
}

// SRGBToLinearSlow converts an sRGB byte to a linear component using
// math.Pow. Bytes up to 10 are on the linear segment of the curve.
//
// This is the reference implementation used to build the table.
func SRGBToLinearSlow(c uint8) float64 {
	if c > 10 {
		const (
			a = 0.055 * 255.0
			d = 1.055 * 255.0
		)
		return math.Pow((float64(c)+a)/d, 2.4)
	}
	const d = 12.92 * 255.0
	return float64(c) / d
}
