package colorconv

import (
	"fmt"
	"image/color"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Models for the digital types, for use with image.Image implementations
// and draw operations.
var (
	DigitalRGBModel       color.Model = color.ModelFunc(digitalRGBModel)
	DigitalRGBAModel      color.Model = color.ModelFunc(digitalRGBAModel)
	DigitalYCbCrModel     color.Model = color.ModelFunc(digitalYCbCrModel)
	DigitalGrayscaleModel color.Model = color.ModelFunc(digitalGrayscaleModel)
)

// RGBA implements color.Color. Alpha is always 0xffff.
func (c DigitalRGB) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to the standard library's opaque RGBA type.
func (c DigitalRGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color, returning alpha-premultiplied values.
func (c DigitalRGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to the standard library's non-premultiplied RGBA type.
func (c DigitalRGBA) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color using this package's JFIF inverse, so the
// result agrees with c.DigitalRGB() rather than with color.YCbCr.RGBA.
func (c DigitalYCbCr) RGBA() (r, g, b, a uint32) {
	return c.DigitalRGB().RGBA()
}

// Color converts c to the standard library's YCbCr type. Both use full-range
// JFIF channels, so the fields carry over unchanged.
func (c DigitalYCbCr) Color() color.YCbCr {
	return color.YCbCr{Y: c.Y, Cb: c.Cb, Cr: c.Cr}
}

// RGBA implements color.Color.
func (c DigitalGrayscale) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to the standard library's 8-bit gray type.
func (c DigitalGrayscale) Color() color.Gray {
	return color.Gray{Y: c.V}
}

// FromColor converts any color.Color to a DigitalRGBA with straight alpha.
// Colors from this package and color.NRGBA are taken over exactly; anything
// else goes through color.NRGBAModel.
func FromColor(c color.Color) DigitalRGBA {
	switch v := c.(type) {
	case DigitalRGBA:
		return v
	case DigitalRGB:
		return v.DigitalRGBA()
	case DigitalYCbCr:
		return v.DigitalRGBA()
	case DigitalGrayscale:
		return v.DigitalRGBA()
	case color.NRGBA:
		return DigitalRGBA{R: v.R, G: v.G, B: v.B, A: v.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return DigitalRGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func digitalRGBModel(c color.Color) color.Color {
	if v, ok := c.(DigitalRGB); ok {
		return v
	}
	return FromColor(c).DigitalRGB()
}

func digitalRGBAModel(c color.Color) color.Color {
	return FromColor(c)
}

func digitalYCbCrModel(c color.Color) color.Color {
	switch v := c.(type) {
	case DigitalYCbCr:
		return v
	case color.YCbCr:
		return DigitalYCbCr{Y: v.Y, Cb: v.Cb, Cr: v.Cr}
	}
	return FromColor(c).DigitalYCbCr()
}

func digitalGrayscaleModel(c color.Color) color.Color {
	switch v := c.(type) {
	case DigitalGrayscale:
		return v
	case color.Gray:
		return DigitalGrayscale{V: v.Y}
	}
	return FromColor(c).DigitalGrayscale()
}

// ParseName looks up an SVG 1.1 color keyword such as "CornflowerBlue".
// Case and spaces are ignored.
func ParseName(name string) (DigitalRGBA, bool) {
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), " ", "")
	c, ok := colornames.Map[key]
	if !ok {
		return DigitalRGBA{}, false
	}
	return DigitalRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each optionally
// prefixed with '#'. Colors without alpha are opaque.
func ParseHex(hex string) (DigitalRGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)
	var ok bool

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return DigitalRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return DigitalRGBA{
		R: safecast.MustConv[uint8](r),
		G: safecast.MustConv[uint8](g),
		B: safecast.MustConv[uint8](b),
		A: safecast.MustConv[uint8](a),
	}, nil
}

// parseHex reads one or two hex digits into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
