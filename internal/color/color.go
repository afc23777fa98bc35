// Package color holds the scalar formulas behind colorconv's conversions.
//
// Everything here works on bare channel values; the value types and the
// routing between colorspaces live in the root package. Floating point work
// that involves powers or matrices is done in float64 and narrowed by the
// caller.
package color

// κ and ε as proposed by Bruce Lindbloom (see LContinuity), not the rounded
// CIE values, so that the Lab branches meet.
const (
	Kappa   = 24389.0 / 27.0
	Epsilon = 216.0 / 24389.0

	// CbrtEpsilon is ε^(1/3), the branch point on f-values in LabUncompress.
	CbrtEpsilon = 0.20689655172413796
)

// D65 reference white.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883
)

// JFIF luma weights (ITU-R BT.601).
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Offset8 is the chroma offset of 8-bit YCbCr; the normalized form is
// centered on zero.
const Offset8 = 128.0
