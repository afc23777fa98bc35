// Package colorconv converts single color samples between the colorspaces
// used in image pipelines.
//
// # Overview
//
// colorconv is a small, allocation-free conversion library for image codecs,
// renderers and color management code. It provides ten value types:
//
//   - DigitalRGB, NormalizedRGB
//   - DigitalRGBA, NormalizedRGBA
//   - DigitalYCbCr, NormalizedYCbCr (full-range JFIF)
//   - DigitalGrayscale, NormalizedGrayscale
//   - Lab, XYZ (CIE, D65 white point)
//
// Digital types hold one byte per channel; normalized types hold float32
// channels nominally in [0,1] (Cb and Cr in [-0.5,0.5]). Nominal ranges are
// not enforced; conversions clamp only where a float becomes a byte.
//
// # Quick Start
//
//	import "github.com/gogpu/colorconv"
//
//	c := colorconv.DigitalRGB{R: 127, G: 0, B: 0}
//	lab := c.Lab()           // {25.30 47.77 37.75}
//	back := lab.DigitalRGB() // {127 0 0}
//
// Every type has one method per target type, named after the target
// (DigitalRGB, NormalizedRGB, ..., Lab, XYZ).
//
// # Routing
//
// Rather than one formula per ordered pair, each type converts directly only
// to its nearest hub: DigitalRGB for device types and XYZ for CIE types.
// Other pairs compose at most two direct steps, so Lab → DigitalYCbCr is
// Lab → XYZ → DigitalRGB → DigitalYCbCr behind a single method call.
//
// # Rounding
//
// Float to byte conversions do not all round the same way:
//
//   - Normalized → digital RGB, RGBA, YCbCr and grayscale truncate.
//   - XYZ (and so Lab) → DigitalRGB rounds to nearest.
//   - Lab → DigitalGrayscale floors.
//
// All of them saturate at 0 and 255. Because of the mix, converting through
// an intermediate type can differ by one unit from a direct conversion.
//
// # Batches
//
// The capability interfaces (RGBConvertible, RGBAConvertible,
// YCbCrConvertible, LabConvertible, XYZConvertible, GrayscaleConvertible)
// are satisfied by every color type. ToRGB, ToLab and friends convert slices
// element-wise, optionally in parallel on a Pool; RGBSeq converts an
// iter.Seq lazily.
//
// # Interop
//
// The digital types implement image/color.Color, and DigitalRGBModel and
// friends are color.Model values. ParseHex and ParseName build colors from
// strings.
package colorconv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
