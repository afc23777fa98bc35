package colorconv

import "iter"

// RGBConvertible is implemented by every color type that converts to DigitalRGB.
type RGBConvertible interface {
	DigitalRGB() DigitalRGB
}

// RGBAConvertible is implemented by every color type that converts to DigitalRGBA.
type RGBAConvertible interface {
	DigitalRGBA() DigitalRGBA
}

// YCbCrConvertible is implemented by every color type that converts to DigitalYCbCr.
type YCbCrConvertible interface {
	DigitalYCbCr() DigitalYCbCr
}

// LabConvertible is implemented by every color type that converts to Lab.
type LabConvertible interface {
	Lab() Lab
}

// XYZConvertible is implemented by every color type that converts to XYZ.
type XYZConvertible interface {
	XYZ() XYZ
}

// GrayscaleConvertible is implemented by every color type that converts to
// DigitalGrayscale.
type GrayscaleConvertible interface {
	DigitalGrayscale() DigitalGrayscale
}

// Convert applies fn to every element of items and returns the results in
// the same order. The output always has len(items) elements.
//
// With WithPool the work is split into contiguous chunks that run
// concurrently; fn must then be safe to call from several goroutines, which
// all conversion methods in this package are.
func Convert[S, D any](items []S, fn func(S) D, opts ...BatchOption) []D {
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]D, len(items))
	if o.pool.running() && len(items) > o.chunkSize {
		chunks := o.pool.wp.ForRange(len(items), o.chunkSize, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				out[i] = fn(items[i])
			}
		})
		Logger().Debug("colorconv: parallel batch",
			"items", len(items), "chunks", chunks, "workers", o.pool.Workers())
		return out
	}

	for i, s := range items {
		out[i] = fn(s)
	}
	return out
}

// Map returns a sequence that yields fn(s) for each s of seq, in order and
// only when asked for. It holds no state of its own, so ranging over the
// result again restarts it whenever seq itself can be restarted.
func Map[S, D any](seq iter.Seq[S], fn func(S) D) iter.Seq[D] {
	return func(yield func(D) bool) {
		for s := range seq {
			if !yield(fn(s)) {
				return
			}
		}
	}
}

// ToRGB converts each element of items to DigitalRGB.
func ToRGB[S RGBConvertible](items []S, opts ...BatchOption) []DigitalRGB {
	return Convert(items, func(s S) DigitalRGB { return s.DigitalRGB() }, opts...)
}

// RGBSeq lazily converts each element of seq to DigitalRGB.
//
// Example:
//
//	for c := range colorconv.RGBSeq(slices.Values(labs)) {
//	    ...
//	}
func RGBSeq[S RGBConvertible](seq iter.Seq[S]) iter.Seq[DigitalRGB] {
	return Map(seq, func(s S) DigitalRGB { return s.DigitalRGB() })
}

// ToRGBA converts each element of items to DigitalRGBA.
func ToRGBA[S RGBAConvertible](items []S, opts ...BatchOption) []DigitalRGBA {
	return Convert(items, func(s S) DigitalRGBA { return s.DigitalRGBA() }, opts...)
}

// ToYCbCr converts each element of items to DigitalYCbCr.
func ToYCbCr[S YCbCrConvertible](items []S, opts ...BatchOption) []DigitalYCbCr {
	return Convert(items, func(s S) DigitalYCbCr { return s.DigitalYCbCr() }, opts...)
}

// ToLab converts each element of items to Lab.
func ToLab[S LabConvertible](items []S, opts ...BatchOption) []Lab {
	return Convert(items, func(s S) Lab { return s.Lab() }, opts...)
}

// ToXYZ converts each element of items to XYZ.
func ToXYZ[S XYZConvertible](items []S, opts ...BatchOption) []XYZ {
	return Convert(items, func(s S) XYZ { return s.XYZ() }, opts...)
}

// ToGrayscale converts each element of items to DigitalGrayscale.
func ToGrayscale[S GrayscaleConvertible](items []S, opts ...BatchOption) []DigitalGrayscale {
	return Convert(items, func(s S) DigitalGrayscale { return s.DigitalGrayscale() }, opts...)
}
