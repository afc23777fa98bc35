package color

import "math"

// LinearToSRGB applies the sRGB companding curve to a linear component.
// Formula: if l > 0.0031308: 1.055*pow(l, 1/2.4)-0.055; else: l*12.92
// The input is not clamped.
func LinearToSRGB(l float64) float64 {
	if l > 0.0031308 {
		return 1.055*math.Pow(l, 1.0/2.4) - 0.055
	}
	return 12.92 * l
}

// LinearToSRGBByte companding-encodes a linear component and rounds the
// result to the nearest byte, clamped to [0,255].
func LinearToSRGBByte(l float64) uint8 {
	return RoundU8(LinearToSRGB(l) * 255.0)
}

// LinearRGBToXYZ applies the sRGB/D65 matrix.
// See http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
func LinearRGBToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return
}

// XYZToLinearRGB applies the inverse sRGB/D65 matrix.
func XYZToLinearRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// LabCompress is the forward Lab map f(t) applied to a white-normalized
// tristimulus value.
func LabCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LabUncompress inverts LabCompress for the X and Z channels. The branch is
// taken on the f-value itself.
func LabUncompress(ft float64) float64 {
	if ft > CbrtEpsilon {
		return ft * ft * ft
	}
	return (116*ft - 16) / Kappa
}

// XYZToLab converts D65-referenced XYZ to CIE L*a*b*.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := LabCompress(x / WhiteX)
	fy := LabCompress(y / WhiteY)
	fz := LabCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LabToXYZ converts CIE L*a*b* to D65-referenced XYZ.
// The Y channel branches on L against ε·κ rather than on its f-value.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	var yr float64
	if l > Epsilon*Kappa {
		yr = fy * fy * fy
	} else {
		yr = l / Kappa
	}

	x = LabUncompress(fx) * WhiteX
	y = yr * WhiteY
	z = LabUncompress(fz) * WhiteZ
	return
}

// Luma returns the BT.601 weighted sum of r, g and b in whatever
// normalization the inputs use.
func Luma(r, g, b float32) float32 {
	return LumaR*r + LumaG*g + LumaB*b
}

// RGBToYCbCr is the JFIF forward transform. offset is Offset8 for 8-bit
// channel values and 0 for normalized ones.
func RGBToYCbCr(r, g, b, offset float32) (y, cb, cr float32) {
	y = LumaR*r + LumaG*g + LumaB*b
	cb = -0.1687*r - 0.3313*g + 0.5*b + offset
	cr = 0.5*r - 0.4187*g - 0.0813*b + offset
	return
}

// YCbCrToRGB is the JFIF inverse transform on normalized values, with Cb and
// Cr centered on zero. Each result is capped at 1.0; there is no lower clamp.
func YCbCrToRGB(y, cb, cr float32) (r, g, b float32) {
	r = min(y+1.402*cr, 1.0)
	g = min(y-0.344136*cb-0.714136*cr, 1.0)
	b = min(y+1.772*cb, 1.0)
	return
}

// TruncU8 converts v to a byte, truncating toward zero.
// NaN and negative values give 0, values of 255 and above give 255.
func TruncU8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// FloorU8 is like TruncU8 but rounds toward negative infinity first.
func FloorU8(v float64) uint8 {
	v = math.Floor(v)
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RoundU8 rounds v half away from zero and clamps it to [0,255].
// NaN gives 0.
func RoundU8(v float64) uint8 {
	v = math.Round(v)
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
