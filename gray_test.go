package colorconv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGrayscaleNormalization(t *testing.T) {
	if got := (DigitalGrayscale{V: 255}).NormalizedGrayscale(); got != (NormalizedGrayscale{V: 1.0}) {
		t.Errorf("NormalizedGrayscale() = %v, want {1}", got)
	}
	if got := (NormalizedGrayscale{V: 1.0}).DigitalGrayscale(); got != (DigitalGrayscale{V: 255}) {
		t.Errorf("DigitalGrayscale() = %v, want {255}", got)
	}
	if got := (NormalizedGrayscale{V: 0.5}).DigitalGrayscale(); got != (DigitalGrayscale{V: 127}) {
		t.Errorf("DigitalGrayscale() = %v, want {127}", got)
	}
	if got := (NormalizedGrayscale{V: -1}).DigitalGrayscale(); got != (DigitalGrayscale{V: 0}) {
		t.Errorf("DigitalGrayscale() = %v, want {0}", got)
	}
}

func TestGrayscaleToRGB(t *testing.T) {
	if got := (DigitalGrayscale{V: 42}).DigitalRGB(); got != (DigitalRGB{R: 42, G: 42, B: 42}) {
		t.Errorf("DigitalRGB() = %v", got)
	}
	if got := (DigitalGrayscale{V: 42}).DigitalRGBA(); got != (DigitalRGBA{R: 42, G: 42, B: 42, A: 255}) {
		t.Errorf("DigitalRGBA() = %v", got)
	}
	if got := (NormalizedGrayscale{V: 0.25}).NormalizedRGB(); got != (NormalizedRGB{R: 0.25, G: 0.25, B: 0.25}) {
		t.Errorf("NormalizedRGB() = %v", got)
	}
	if got := (NormalizedGrayscale{V: 0.25}).NormalizedRGBA(); got != (NormalizedRGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}) {
		t.Errorf("NormalizedRGBA() = %v", got)
	}
	if got := (NormalizedGrayscale{V: 0.5}).DigitalRGB(); got != (DigitalRGB{R: 127, G: 127, B: 127}) {
		t.Errorf("DigitalRGB() = %v", got)
	}
}

func TestGrayscaleToLab(t *testing.T) {
	tests := []struct {
		name string
		got  Lab
		want Lab
	}{
		{"digital white", DigitalGrayscale{V: 255}.Lab(), Lab{L: 100}},
		{"digital black", DigitalGrayscale{V: 0}.Lab(), Lab{}},
		{"normalized half", NormalizedGrayscale{V: 0.5}.Lab(), Lab{L: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !cmp.Equal(tt.got, tt.want, cmpopts.EquateApprox(0, 1e-4)) {
				t.Errorf("Lab() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestGrayscaleToXYZ(t *testing.T) {
	want := XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}
	got := DigitalGrayscale{V: 255}.XYZ()
	if !cmp.Equal(got, want, cmpopts.EquateApprox(0, 1e-5)) {
		t.Errorf("XYZ() mismatch (-want +got):\n%s", cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-5)))
	}
	if got := (NormalizedGrayscale{V: 0}).XYZ(); !cmp.Equal(got, XYZ{}, cmpopts.EquateApprox(0, 1e-9)) {
		t.Errorf("black XYZ() = %v, want zero", got)
	}
}

func TestGrayscaleToYCbCr(t *testing.T) {
	// Y follows the gray value; chroma stays at (or within one step of) neutral.
	for _, v := range []uint8{0, 64, 200} {
		got := DigitalGrayscale{V: v}.DigitalYCbCr()
		if d := int(got.Y) - int(v); d < -1 || d > 0 {
			t.Errorf("gray %d: Y = %d", v, got.Y)
		}
		if got.Cb < 127 || got.Cb > 128 || got.Cr < 127 || got.Cr > 128 {
			t.Errorf("gray %d: chroma = (%d, %d), want near 128", v, got.Cb, got.Cr)
		}
	}
}
