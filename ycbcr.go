package colorconv

import "github.com/gogpu/colorconv/internal/color"

// NormalizedYCbCr scales Y into [0,1] and re-centers Cb and Cr on zero.
func (c DigitalYCbCr) NormalizedYCbCr() NormalizedYCbCr {
	return NormalizedYCbCr{
		Y:  norm8(c.Y),
		Cb: norm8(c.Cb) - 0.5,
		Cr: norm8(c.Cr) - 0.5,
	}
}

// DigitalYCbCr returns c unchanged.
func (c DigitalYCbCr) DigitalYCbCr() DigitalYCbCr { return c }

// NormalizedRGB converts c via NormalizedYCbCr.
func (c DigitalYCbCr) NormalizedRGB() NormalizedRGB {
	return c.NormalizedYCbCr().NormalizedRGB()
}

// DigitalRGB converts c via NormalizedRGB.
func (c DigitalYCbCr) DigitalRGB() DigitalRGB {
	return c.NormalizedRGB().DigitalRGB()
}

// DigitalRGBA converts c via DigitalRGB; alpha is 255.
func (c DigitalYCbCr) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA converts c via NormalizedRGB; alpha is 1.
func (c DigitalYCbCr) NormalizedRGBA() NormalizedRGBA {
	return c.NormalizedRGB().NormalizedRGBA()
}

// DigitalGrayscale returns the Y channel.
func (c DigitalYCbCr) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: c.Y}
}

// NormalizedGrayscale returns the Y channel scaled into [0,1].
func (c DigitalYCbCr) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: norm8(c.Y)}
}

// XYZ converts c via DigitalRGB.
func (c DigitalYCbCr) XYZ() XYZ {
	return c.DigitalRGB().XYZ()
}

// Lab converts c via DigitalRGB and XYZ.
func (c DigitalYCbCr) Lab() Lab {
	return c.DigitalRGB().Lab()
}

// DigitalYCbCr scales by 255 and truncates, adding the 8-bit chroma offset
// back to Cb and Cr.
func (c NormalizedYCbCr) DigitalYCbCr() DigitalYCbCr {
	return DigitalYCbCr{
		Y:  color.TruncU8(c.Y * 255),
		Cb: color.TruncU8((c.Cb + 0.5) * 255),
		Cr: color.TruncU8((c.Cr + 0.5) * 255),
	}
}

// NormalizedYCbCr returns c unchanged.
func (c NormalizedYCbCr) NormalizedYCbCr() NormalizedYCbCr { return c }

// NormalizedRGB applies the JFIF inverse transform. Each channel is capped
// at 1.0; negative results are kept.
// See https://www.w3.org/Graphics/JPEG/jfif3.pdf
func (c NormalizedYCbCr) NormalizedRGB() NormalizedRGB {
	r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
	return NormalizedRGB{R: r, G: g, B: b}
}

// DigitalRGB converts c via NormalizedRGB.
func (c NormalizedYCbCr) DigitalRGB() DigitalRGB {
	return c.NormalizedRGB().DigitalRGB()
}

// DigitalRGBA converts c via DigitalRGB; alpha is 255.
func (c NormalizedYCbCr) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA converts c via NormalizedRGB; alpha is 1.
func (c NormalizedYCbCr) NormalizedRGBA() NormalizedRGBA {
	return c.NormalizedRGB().NormalizedRGBA()
}

// DigitalGrayscale returns Y scaled by 255 and truncated.
func (c NormalizedYCbCr) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: color.TruncU8(c.Y * 255)}
}

// NormalizedGrayscale returns the Y channel.
func (c NormalizedYCbCr) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: c.Y}
}

// XYZ converts c via DigitalRGB.
func (c NormalizedYCbCr) XYZ() XYZ {
	return c.DigitalRGB().XYZ()
}

// Lab converts c via DigitalRGB and XYZ.
func (c NormalizedYCbCr) Lab() Lab {
	return c.DigitalRGB().Lab()
}
