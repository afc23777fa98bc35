package colorconv

import "github.com/gogpu/colorconv/internal/color"

// XYZ returns c unchanged.
func (c XYZ) XYZ() XYZ { return c }

// Lab converts c to CIE L*a*b* against the D65 white point.
// See http://www.brucelindbloom.com/index.html?Eqn_XYZ_to_Lab.html
func (c XYZ) Lab() Lab {
	l, a, b := color.XYZToLab(float64(c.X), float64(c.Y), float64(c.Z))
	return Lab{L: float32(l), A: float32(a), B: float32(b)}
}

// DigitalRGB applies the inverse sRGB/D65 matrix and the sRGB companding.
// Unlike the other float to byte paths, each channel is rounded to the
// nearest byte before clamping to [0,255].
func (c XYZ) DigitalRGB() DigitalRGB {
	r, g, b := color.XYZToLinearRGB(float64(c.X), float64(c.Y), float64(c.Z))
	return DigitalRGB{
		R: color.LinearToSRGBByte(r),
		G: color.LinearToSRGBByte(g),
		B: color.LinearToSRGBByte(b),
	}
}

// NormalizedRGB converts c via DigitalRGB, so the result is quantized.
func (c XYZ) NormalizedRGB() NormalizedRGB {
	return c.DigitalRGB().NormalizedRGB()
}

// DigitalRGBA converts c via DigitalRGB; alpha is 255.
func (c XYZ) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA converts c via NormalizedRGB; alpha is 1.
func (c XYZ) NormalizedRGBA() NormalizedRGBA {
	return c.NormalizedRGB().NormalizedRGBA()
}

// DigitalYCbCr converts c via DigitalRGB.
func (c XYZ) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr converts c via DigitalRGB.
func (c XYZ) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalRGB().NormalizedYCbCr()
}

// DigitalGrayscale converts c via Lab.
func (c XYZ) DigitalGrayscale() DigitalGrayscale {
	return c.Lab().DigitalGrayscale()
}

// NormalizedGrayscale converts c via Lab.
func (c XYZ) NormalizedGrayscale() NormalizedGrayscale {
	return c.Lab().NormalizedGrayscale()
}

// Lab returns c unchanged.
func (c Lab) Lab() Lab { return c }

// XYZ converts c to D65-referenced XYZ.
// See http://www.brucelindbloom.com/index.html?Eqn_Lab_to_XYZ.html
func (c Lab) XYZ() XYZ {
	x, y, z := color.LabToXYZ(float64(c.L), float64(c.A), float64(c.B))
	return XYZ{X: float32(x), Y: float32(y), Z: float32(z)}
}

// DigitalRGB converts c via XYZ.
func (c Lab) DigitalRGB() DigitalRGB {
	return c.XYZ().DigitalRGB()
}

// NormalizedRGB converts c via DigitalRGB, so the result is quantized.
func (c Lab) NormalizedRGB() NormalizedRGB {
	return c.DigitalRGB().NormalizedRGB()
}

// DigitalRGBA converts c via DigitalRGB; alpha is 255.
func (c Lab) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA converts c via NormalizedRGB; alpha is 1.
func (c Lab) NormalizedRGBA() NormalizedRGBA {
	return c.NormalizedRGB().NormalizedRGBA()
}

// DigitalYCbCr converts c via DigitalRGB.
func (c Lab) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr converts c via DigitalRGB.
func (c Lab) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalRGB().NormalizedYCbCr()
}

// DigitalGrayscale scales L onto [0,255] and floors; the chroma channels
// are ignored.
func (c Lab) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: color.FloorU8(float64(c.L / 100 * 255))}
}

// NormalizedGrayscale returns L/100; the chroma channels are ignored.
func (c Lab) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: c.L / 100}
}
