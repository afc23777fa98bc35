package colorconv

// DigitalRGB is an sRGB color with one byte per channel.
// It is the device-side hub: most conversions between non-CIE types pass
// through it.
type DigitalRGB struct {
	R, G, B uint8
}

// NormalizedRGB is an sRGB color with channels nominally in [0,1].
// Values outside that range are kept as they are.
type NormalizedRGB struct {
	R, G, B float32
}

// DigitalRGBA is an sRGB color with straight (non-premultiplied) alpha and
// one byte per channel. An alpha of 0 is fully transparent.
type DigitalRGBA struct {
	R, G, B, A uint8
}

// NormalizedRGBA is an sRGB color with straight alpha and channels nominally
// in [0,1].
type NormalizedRGBA struct {
	R, G, B, A float32
}

// DigitalYCbCr is a full-range JFIF YCbCr color with one byte per channel.
// Cb and Cr are offset by 128.
type DigitalYCbCr struct {
	Y, Cb, Cr uint8
}

// NormalizedYCbCr is a JFIF YCbCr color.
// Y is nominally in [0,1]; Cb and Cr are centered on zero, nominally in
// [-0.5,0.5]. None of the channels are clipped.
type NormalizedYCbCr struct {
	Y, Cb, Cr float32
}

// DigitalGrayscale is a one byte gray level.
type DigitalGrayscale struct {
	V uint8
}

// NormalizedGrayscale is a gray level nominally in [0,1].
type NormalizedGrayscale struct {
	V float32
}

// Lab is a CIE L*a*b* color relative to the D65 white point.
//
// L is nominally in [0,100], a and b roughly in [-100,100]; out of gamut
// values are valid. See http://www.colourphil.co.uk/lab_lch_colour_space.shtml
type Lab struct {
	L, A, B float32
}

// XYZ is a CIE 1931 XYZ color referenced to D65, with Y = 1 for white.
//
// X and Y are roughly in [0,1.5], Z in [0,2].
// See https://www.colourphil.co.uk/xyz_colour_space.shtml
type XYZ struct {
	X, Y, Z float32
}
