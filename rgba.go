package colorconv

import "github.com/gogpu/colorconv/internal/color"

// DigitalRGB drops the alpha channel.
func (c DigitalRGBA) DigitalRGB() DigitalRGB {
	return DigitalRGB{R: c.R, G: c.G, B: c.B}
}

// NormalizedRGB drops the alpha channel and scales into [0,1].
func (c DigitalRGBA) NormalizedRGB() NormalizedRGB {
	return NormalizedRGB{R: norm8(c.R), G: norm8(c.G), B: norm8(c.B)}
}

// DigitalRGBA returns c unchanged.
func (c DigitalRGBA) DigitalRGBA() DigitalRGBA { return c }

// NormalizedRGBA scales all four channels into [0,1].
func (c DigitalRGBA) NormalizedRGBA() NormalizedRGBA {
	return NormalizedRGBA{R: norm8(c.R), G: norm8(c.G), B: norm8(c.B), A: norm8(c.A)}
}

// DigitalYCbCr drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) DigitalYCbCr() DigitalYCbCr {
	return c.DigitalRGB().DigitalYCbCr()
}

// NormalizedYCbCr drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) NormalizedYCbCr() NormalizedYCbCr {
	return c.DigitalRGB().NormalizedYCbCr()
}

// DigitalGrayscale drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) DigitalGrayscale() DigitalGrayscale {
	return c.DigitalRGB().DigitalGrayscale()
}

// NormalizedGrayscale drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) NormalizedGrayscale() NormalizedGrayscale {
	return c.DigitalRGB().NormalizedGrayscale()
}

// XYZ drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) XYZ() XYZ {
	return c.DigitalRGB().XYZ()
}

// Lab drops alpha and converts via DigitalRGB.
func (c DigitalRGBA) Lab() Lab {
	return c.DigitalRGB().Lab()
}

// DigitalRGB drops alpha, scales by 255 and truncates.
func (c NormalizedRGBA) DigitalRGB() DigitalRGB {
	return DigitalRGB{R: color.TruncU8(c.R * 255), G: color.TruncU8(c.G * 255), B: color.TruncU8(c.B * 255)}
}

// NormalizedRGB drops the alpha channel.
func (c NormalizedRGBA) NormalizedRGB() NormalizedRGB {
	return NormalizedRGB{R: c.R, G: c.G, B: c.B}
}

// DigitalRGBA scales all four channels by 255 and truncates.
func (c NormalizedRGBA) DigitalRGBA() DigitalRGBA {
	return DigitalRGBA{
		R: color.TruncU8(c.R * 255),
		G: color.TruncU8(c.G * 255),
		B: color.TruncU8(c.B * 255),
		A: color.TruncU8(c.A * 255),
	}
}

// NormalizedRGBA returns c unchanged.
func (c NormalizedRGBA) NormalizedRGBA() NormalizedRGBA { return c }

// DigitalYCbCr drops alpha and converts via NormalizedRGB.
func (c NormalizedRGBA) DigitalYCbCr() DigitalYCbCr {
	return c.NormalizedRGB().DigitalYCbCr()
}

// NormalizedYCbCr drops alpha and converts via NormalizedRGB.
func (c NormalizedRGBA) NormalizedYCbCr() NormalizedYCbCr {
	return c.NormalizedRGB().NormalizedYCbCr()
}

// DigitalGrayscale drops alpha and converts via NormalizedRGB.
func (c NormalizedRGBA) DigitalGrayscale() DigitalGrayscale {
	return c.NormalizedRGB().DigitalGrayscale()
}

// NormalizedGrayscale drops alpha and converts via NormalizedRGB.
func (c NormalizedRGBA) NormalizedGrayscale() NormalizedGrayscale {
	return c.NormalizedRGB().NormalizedGrayscale()
}

// XYZ drops alpha and converts via DigitalRGB.
func (c NormalizedRGBA) XYZ() XYZ {
	return c.DigitalRGB().XYZ()
}

// Lab drops alpha and converts via DigitalRGB.
func (c NormalizedRGBA) Lab() Lab {
	return c.DigitalRGB().Lab()
}
