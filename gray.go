package colorconv

import "github.com/gogpu/colorconv/internal/color"

// NormalizedGrayscale scales V into [0,1].
func (c DigitalGrayscale) NormalizedGrayscale() NormalizedGrayscale {
	return NormalizedGrayscale{V: norm8(c.V)}
}

// DigitalGrayscale returns c unchanged.
func (c DigitalGrayscale) DigitalGrayscale() DigitalGrayscale { return c }

// DigitalRGB replicates V into all three channels.
func (c DigitalGrayscale) DigitalRGB() DigitalRGB {
	return DigitalRGB{R: c.V, G: c.V, B: c.V}
}

// NormalizedRGB replicates the scaled V into all three channels.
func (c DigitalGrayscale) NormalizedRGB() NormalizedRGB {
	return c.NormalizedGrayscale().NormalizedRGB()
}

// DigitalRGBA replicates V into all three channels with alpha 255.
func (c DigitalGrayscale) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA replicates the scaled V into all three channels with alpha 1.
func (c DigitalGrayscale) NormalizedRGBA() NormalizedRGBA {
	return c.NormalizedGrayscale().NormalizedRGBA()
}

// DigitalYCbCr converts c via DigitalRGB.
func (c DigitalGrayscale) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr converts c via DigitalRGB.
func (c DigitalGrayscale) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalRGB().NormalizedYCbCr()
}

// Lab maps V onto L in [0,100]; a and b are zero.
func (c DigitalGrayscale) Lab() Lab {
	return Lab{L: float32(c.V) / 255 * 100}
}

// XYZ converts c via Lab.
func (c DigitalGrayscale) XYZ() XYZ {
	return c.Lab().XYZ()
}

// DigitalGrayscale scales V by 255 and truncates.
func (c NormalizedGrayscale) DigitalGrayscale() DigitalGrayscale {
	return DigitalGrayscale{V: color.TruncU8(c.V * 255)}
}

// NormalizedGrayscale returns c unchanged.
func (c NormalizedGrayscale) NormalizedGrayscale() NormalizedGrayscale { return c }

// DigitalRGB converts c via DigitalGrayscale.
func (c NormalizedGrayscale) DigitalRGB() DigitalRGB {
	return c.DigitalGrayscale().DigitalRGB()
}

// NormalizedRGB replicates V into all three channels.
func (c NormalizedGrayscale) NormalizedRGB() NormalizedRGB {
	return NormalizedRGB{R: c.V, G: c.V, B: c.V}
}

// DigitalRGBA converts c via DigitalRGB; alpha is 255.
func (c NormalizedGrayscale) DigitalRGBA() DigitalRGBA {
	return c.DigitalRGB().DigitalRGBA()
}

// NormalizedRGBA replicates V into all three channels with alpha 1.
func (c NormalizedGrayscale) NormalizedRGBA() NormalizedRGBA {
	return NormalizedRGBA{R: c.V, G: c.V, B: c.V, A: 1}
}

// DigitalYCbCr converts c via DigitalRGB.
func (c NormalizedGrayscale) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr converts c via DigitalRGB.
func (c NormalizedGrayscale) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalRGB().NormalizedYCbCr()
}

// Lab maps V onto L = 100·V; a and b are zero.
func (c NormalizedGrayscale) Lab() Lab {
	return Lab{L: c.V * 100}
}

// XYZ converts c via Lab.
func (c NormalizedGrayscale) XYZ() XYZ {
	return c.Lab().XYZ()
}
