package colorconv

import "fortio.org/safecast"

// unpack32 splits a big-endian packed value into its four bytes.
func unpack32(v uint32) (b0, b1, b2, b3 uint8) {
	return safecast.MustConv[uint8](v >> 24),
		safecast.MustConv[uint8]((v >> 16) & 0xFF),
		safecast.MustConv[uint8]((v >> 8) & 0xFF),
		safecast.MustConv[uint8](v & 0xFF)
}

func pack32(b0, b1, b2, b3 uint8) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// =============================================================================
// RGB
// =============================================================================

// DigitalRGBFrom3 builds a color from R, G, B bytes.
func DigitalRGBFrom3(b [3]byte) DigitalRGB {
	return DigitalRGB{R: b[0], G: b[1], B: b[2]}
}

// DigitalRGBFrom4 builds a color from the first three of four bytes.
func DigitalRGBFrom4(b [4]byte) DigitalRGB {
	return DigitalRGB{R: b[0], G: b[1], B: b[2]}
}

// DigitalRGBFromBytes reads R, G, B from the start of b.
// It fails with ErrBufferTooSmall if b is shorter than 3 bytes.
func DigitalRGBFromBytes(b []byte) (DigitalRGB, error) {
	if err := checkLen(b, 3); err != nil {
		return DigitalRGB{}, err
	}
	return DigitalRGB{R: b[0], G: b[1], B: b[2]}, nil
}

// DigitalRGBFromUint32 unpacks 0xRRGGBBxx; the low byte is ignored.
func DigitalRGBFromUint32(v uint32) DigitalRGB {
	r, g, b, _ := unpack32(v)
	return DigitalRGB{R: r, G: g, B: b}
}

// Array3 returns the channels as R, G, B bytes.
func (c DigitalRGB) Array3() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}

// Array4 returns R, G, B, 255.
func (c DigitalRGB) Array4() [4]byte {
	return [4]byte{c.R, c.G, c.B, 255}
}

// Uint32 packs c as 0xRRGGBB00.
func (c DigitalRGB) Uint32() uint32 {
	return pack32(c.R, c.G, c.B, 0)
}

// AppendBytes appends R, G, B to dst.
func (c DigitalRGB) AppendBytes(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B)
}

// NormalizedRGBFrom3 builds a normalized color from R, G, B bytes.
func NormalizedRGBFrom3(b [3]byte) NormalizedRGB {
	return DigitalRGBFrom3(b).NormalizedRGB()
}

// NormalizedRGBFrom4 builds a normalized color from the first three of four bytes.
func NormalizedRGBFrom4(b [4]byte) NormalizedRGB {
	return DigitalRGBFrom4(b).NormalizedRGB()
}

// NormalizedRGBFromBytes is DigitalRGBFromBytes followed by normalization.
func NormalizedRGBFromBytes(b []byte) (NormalizedRGB, error) {
	c, err := DigitalRGBFromBytes(b)
	if err != nil {
		return NormalizedRGB{}, err
	}
	return c.NormalizedRGB(), nil
}

// NormalizedRGBFromUint32 unpacks 0xRRGGBBxx and normalizes it.
func NormalizedRGBFromUint32(v uint32) NormalizedRGB {
	return DigitalRGBFromUint32(v).NormalizedRGB()
}

// Array3 quantizes c and returns R, G, B bytes.
func (c NormalizedRGB) Array3() [3]byte { return c.DigitalRGB().Array3() }

// Array4 quantizes c and returns R, G, B, 255.
func (c NormalizedRGB) Array4() [4]byte { return c.DigitalRGB().Array4() }

// Uint32 quantizes c and packs it as 0xRRGGBB00.
func (c NormalizedRGB) Uint32() uint32 { return c.DigitalRGB().Uint32() }

// =============================================================================
// RGBA
// =============================================================================

// DigitalRGBAFrom3 builds an opaque color from R, G, B bytes.
func DigitalRGBAFrom3(b [3]byte) DigitalRGBA {
	return DigitalRGBA{R: b[0], G: b[1], B: b[2], A: 255}
}

// DigitalRGBAFrom4 builds a color from R, G, B, A bytes.
func DigitalRGBAFrom4(b [4]byte) DigitalRGBA {
	return DigitalRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// DigitalRGBAFromBytes reads R, G, B and, if present, A from the start of b.
// Three bytes give an opaque color. It fails with ErrBufferTooSmall if b is
// shorter than 3 bytes.
func DigitalRGBAFromBytes(b []byte) (DigitalRGBA, error) {
	if err := checkLen(b, 3); err != nil {
		return DigitalRGBA{}, err
	}
	if len(b) < 4 {
		return DigitalRGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
	}
	return DigitalRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// DigitalRGBAFromUint32 unpacks 0xRRGGBBAA.
func DigitalRGBAFromUint32(v uint32) DigitalRGBA {
	r, g, b, a := unpack32(v)
	return DigitalRGBA{R: r, G: g, B: b, A: a}
}

// Array3 returns R, G, B, dropping alpha.
func (c DigitalRGBA) Array3() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}

// Array4 returns R, G, B, A.
func (c DigitalRGBA) Array4() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// Uint32 packs c as 0xRRGGBBAA.
func (c DigitalRGBA) Uint32() uint32 {
	return pack32(c.R, c.G, c.B, c.A)
}

// AppendBytes appends R, G, B, A to dst.
func (c DigitalRGBA) AppendBytes(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B, c.A)
}

// NormalizedRGBAFrom3 builds an opaque normalized color from R, G, B bytes.
func NormalizedRGBAFrom3(b [3]byte) NormalizedRGBA {
	return DigitalRGBAFrom3(b).NormalizedRGBA()
}

// NormalizedRGBAFrom4 builds a normalized color from R, G, B, A bytes.
func NormalizedRGBAFrom4(b [4]byte) NormalizedRGBA {
	return DigitalRGBAFrom4(b).NormalizedRGBA()
}

// NormalizedRGBAFromBytes is DigitalRGBAFromBytes followed by normalization.
func NormalizedRGBAFromBytes(b []byte) (NormalizedRGBA, error) {
	c, err := DigitalRGBAFromBytes(b)
	if err != nil {
		return NormalizedRGBA{}, err
	}
	return c.NormalizedRGBA(), nil
}

// NormalizedRGBAFromUint32 unpacks 0xRRGGBBAA and normalizes it.
func NormalizedRGBAFromUint32(v uint32) NormalizedRGBA {
	return DigitalRGBAFromUint32(v).NormalizedRGBA()
}

// Array3 quantizes c and returns R, G, B.
func (c NormalizedRGBA) Array3() [3]byte { return c.DigitalRGBA().Array3() }

// Array4 quantizes c and returns R, G, B, A.
func (c NormalizedRGBA) Array4() [4]byte { return c.DigitalRGBA().Array4() }

// Uint32 quantizes c and packs it as 0xRRGGBBAA.
func (c NormalizedRGBA) Uint32() uint32 { return c.DigitalRGBA().Uint32() }

// =============================================================================
// YCbCr
// =============================================================================

// DigitalYCbCrFrom3 builds a color from Y, Cb, Cr bytes.
func DigitalYCbCrFrom3(b [3]byte) DigitalYCbCr {
	return DigitalYCbCr{Y: b[0], Cb: b[1], Cr: b[2]}
}

// DigitalYCbCrFrom4 builds a color from the first three of four bytes.
func DigitalYCbCrFrom4(b [4]byte) DigitalYCbCr {
	return DigitalYCbCr{Y: b[0], Cb: b[1], Cr: b[2]}
}

// DigitalYCbCrFromBytes reads Y, Cb, Cr from the start of b.
// It fails with ErrBufferTooSmall if b is shorter than 3 bytes.
func DigitalYCbCrFromBytes(b []byte) (DigitalYCbCr, error) {
	if err := checkLen(b, 3); err != nil {
		return DigitalYCbCr{}, err
	}
	return DigitalYCbCr{Y: b[0], Cb: b[1], Cr: b[2]}, nil
}

// DigitalYCbCrFromUint32 unpacks 0xYYBBRRxx; the low byte is ignored.
func DigitalYCbCrFromUint32(v uint32) DigitalYCbCr {
	y, cb, cr, _ := unpack32(v)
	return DigitalYCbCr{Y: y, Cb: cb, Cr: cr}
}

// Array3 returns Y, Cb, Cr.
func (c DigitalYCbCr) Array3() [3]byte {
	return [3]byte{c.Y, c.Cb, c.Cr}
}

// Array4 returns Y, Cb, Cr, 255.
func (c DigitalYCbCr) Array4() [4]byte {
	return [4]byte{c.Y, c.Cb, c.Cr, 255}
}

// Uint32 packs c as 0xYYBBRR00.
func (c DigitalYCbCr) Uint32() uint32 {
	return pack32(c.Y, c.Cb, c.Cr, 0)
}

// AppendBytes appends Y, Cb, Cr to dst.
func (c DigitalYCbCr) AppendBytes(dst []byte) []byte {
	return append(dst, c.Y, c.Cb, c.Cr)
}

// NormalizedYCbCrFrom3 builds a normalized color from Y, Cb, Cr bytes.
func NormalizedYCbCrFrom3(b [3]byte) NormalizedYCbCr {
	return DigitalYCbCrFrom3(b).NormalizedYCbCr()
}

// NormalizedYCbCrFrom4 builds a normalized color from the first three of four bytes.
func NormalizedYCbCrFrom4(b [4]byte) NormalizedYCbCr {
	return DigitalYCbCrFrom4(b).NormalizedYCbCr()
}

// NormalizedYCbCrFromBytes is DigitalYCbCrFromBytes followed by normalization.
func NormalizedYCbCrFromBytes(b []byte) (NormalizedYCbCr, error) {
	c, err := DigitalYCbCrFromBytes(b)
	if err != nil {
		return NormalizedYCbCr{}, err
	}
	return c.NormalizedYCbCr(), nil
}

// NormalizedYCbCrFromUint32 unpacks 0xYYBBRRxx and normalizes it.
func NormalizedYCbCrFromUint32(v uint32) NormalizedYCbCr {
	return DigitalYCbCrFromUint32(v).NormalizedYCbCr()
}

// Array3 quantizes c and returns Y, Cb, Cr.
func (c NormalizedYCbCr) Array3() [3]byte { return c.DigitalYCbCr().Array3() }

// Array4 quantizes c and returns Y, Cb, Cr, 255.
func (c NormalizedYCbCr) Array4() [4]byte { return c.DigitalYCbCr().Array4() }

// Uint32 quantizes c and packs it as 0xYYBBRR00.
func (c NormalizedYCbCr) Uint32() uint32 { return c.DigitalYCbCr().Uint32() }

// =============================================================================
// Grayscale
// =============================================================================

// DigitalGrayscaleFrom1 builds a gray level from a single byte array.
func DigitalGrayscaleFrom1(b [1]byte) DigitalGrayscale {
	return DigitalGrayscale{V: b[0]}
}

// DigitalGrayscaleFromByte builds a gray level from v.
func DigitalGrayscaleFromByte(v uint8) DigitalGrayscale {
	return DigitalGrayscale{V: v}
}

// DigitalGrayscaleFromBytes reads V from the first byte of b.
// It fails with ErrBufferTooSmall if b is empty.
func DigitalGrayscaleFromBytes(b []byte) (DigitalGrayscale, error) {
	if err := checkLen(b, 1); err != nil {
		return DigitalGrayscale{}, err
	}
	return DigitalGrayscale{V: b[0]}, nil
}

// Array1 returns V as a one byte array.
func (c DigitalGrayscale) Array1() [1]byte {
	return [1]byte{c.V}
}

// Byte returns V.
func (c DigitalGrayscale) Byte() uint8 {
	return c.V
}

// AppendBytes appends V to dst.
func (c DigitalGrayscale) AppendBytes(dst []byte) []byte {
	return append(dst, c.V)
}

// NormalizedGrayscaleFrom1 builds a normalized gray level from a single byte array.
func NormalizedGrayscaleFrom1(b [1]byte) NormalizedGrayscale {
	return DigitalGrayscaleFrom1(b).NormalizedGrayscale()
}

// NormalizedGrayscaleFromByte builds a normalized gray level from v.
func NormalizedGrayscaleFromByte(v uint8) NormalizedGrayscale {
	return DigitalGrayscaleFromByte(v).NormalizedGrayscale()
}

// NormalizedGrayscaleFromBytes is DigitalGrayscaleFromBytes followed by
// normalization.
func NormalizedGrayscaleFromBytes(b []byte) (NormalizedGrayscale, error) {
	c, err := DigitalGrayscaleFromBytes(b)
	if err != nil {
		return NormalizedGrayscale{}, err
	}
	return c.NormalizedGrayscale(), nil
}

// Array1 quantizes c and returns it as a one byte array.
func (c NormalizedGrayscale) Array1() [1]byte { return c.DigitalGrayscale().Array1() }

// Byte quantizes c.
func (c NormalizedGrayscale) Byte() uint8 { return c.DigitalGrayscale().Byte() }
