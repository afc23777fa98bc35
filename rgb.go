package colorconv

import "github.com/gogpu/colorconv/internal/color"

// norm8 maps a byte onto [0,1].
func norm8(v uint8) float32 {
	return float32(v) / 255
}

// DigitalRGB returns c unchanged.
func (c DigitalRGB) DigitalRGB() DigitalRGB { return c }

// NormalizedRGB scales each channel into [0,1].
func (c DigitalRGB) NormalizedRGB() NormalizedRGB {
	return NormalizedRGB{R: norm8(c.R), G: norm8(c.G), B: norm8(c.B)}
}

// DigitalRGBA returns c as a fully opaque color.
func (c DigitalRGB) DigitalRGBA() DigitalRGBA {
	return DigitalRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// NormalizedRGBA returns c scaled into [0,1] with alpha 1.
func (c DigitalRGB) NormalizedRGBA() NormalizedRGBA {
	return NormalizedRGBA{R: norm8(c.R), G: norm8(c.G), B: norm8(c.B), A: 1}
}

// DigitalYCbCr applies the JFIF forward transform and truncates each channel.
// See https://www.w3.org/Graphics/JPEG/jfif3.pdf
func (c DigitalRGB) DigitalYCbCr() DigitalYCbCr {
	y, cb, cr := color.RGBToYCbCr(float32(c.R), float32(c.G), float32(c.B), color.Offset8)
	return DigitalYCbCr{Y: color.TruncU8(y), Cb: color.TruncU8(cb), Cr: color.TruncU8(cr)}
}

// NormalizedYCbCr goes through DigitalYCbCr, so the result is quantized.
func (c DigitalRGB) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalYCbCr().NormalizedYCbCr()
}

// DigitalGrayscale returns the truncated BT.601 luma of c.
func (c DigitalRGB) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: color.TruncU8(color.Luma(float32(c.R), float32(c.G), float32(c.B)))}
}

// NormalizedGrayscale returns the BT.601 luma of c scaled into [0,1].
func (c DigitalRGB) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: color.Luma(norm8(c.R), norm8(c.G), norm8(c.B))}
}

// XYZ decodes the sRGB companding and applies the sRGB/D65 matrix.
// See http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
func (c DigitalRGB) XYZ() XYZ {
	x, y, z := color.LinearRGBToXYZ(
		color.SRGBToLinearFast(c.R),
		color.SRGBToLinearFast(c.G),
		color.SRGBToLinearFast(c.B),
	)
	return XYZ{X: float32(x), Y: float32(y), Z: float32(z)}
}

// Lab converts c via XYZ.
func (c DigitalRGB) Lab() Lab {
	return c.XYZ().Lab()
}

// DigitalRGB scales each channel by 255 and truncates, saturating at 0 and 255.
func (c NormalizedRGB) DigitalRGB() DigitalRGB {
	return DigitalRGB{R: color.TruncU8(c.R * 255), G: color.TruncU8(c.G * 255), B: color.TruncU8(c.B * 255)}
}

// NormalizedRGB returns c unchanged.
func (c NormalizedRGB) NormalizedRGB() NormalizedRGB { return c }

// DigitalRGBA is like DigitalRGB with alpha 255.
func (c NormalizedRGB) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA returns c with alpha 1.
func (c NormalizedRGB) NormalizedRGBA() NormalizedRGBA {
	return NormalizedRGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// DigitalYCbCr converts c via DigitalRGB.
func (c NormalizedRGB) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr converts c via DigitalRGB and DigitalYCbCr.
func (c NormalizedRGB) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalYCbCr().NormalizedYCbCr()
}

// DigitalGrayscale returns the BT.601 luma of c scaled by 255 and truncated.
func (c NormalizedRGB) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: color.TruncU8(color.Luma(c.R, c.G, c.B) * 255)}
}

// NormalizedGrayscale returns the BT.601 luma of c.
func (c NormalizedRGB) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: color.Luma(c.R, c.G, c.B)}
}

// XYZ converts c via DigitalRGB.
func (c NormalizedRGB) XYZ() XYZ {
	return c.DigitalRGB().XYZ()
}

// Lab converts c via DigitalRGB and XYZ.
func (c NormalizedRGB) Lab() Lab {
	return c.XYZ().Lab()
}
