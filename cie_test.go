package colorconv

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// labColors pairs sRGB colors with their D65 L*a*b* values.
var labColors = []struct {
	rgb DigitalRGB
	lab Lab
}{
	{DigitalRGB{R: 127, G: 0, B: 0}, Lab{L: 25.301395, A: 47.77433, B: 37.754025}},
	{DigitalRGB{R: 0, G: 127, B: 0}, Lab{L: 45.87666, A: -51.40707, B: 49.615574}},
	{DigitalRGB{R: 0, G: 0, B: 127}, Lab{L: 12.808655, A: 47.23452, B: -64.33745}},
	{DigitalRGB{R: 0, G: 127, B: 127}, Lab{L: 47.8919, A: -28.683678, B: -8.42911}},
	{DigitalRGB{R: 127, G: 0, B: 127}, Lab{L: 29.52658, A: 58.595745, B: -36.281406}},
	{DigitalRGB{R: 255, G: 0, B: 0}, Lab{L: 53.240784, A: 80.09252, B: 67.203186}},
	{DigitalRGB{R: 0, G: 255, B: 0}, Lab{L: 87.73472, A: -86.18272, B: 83.17931}},
	{DigitalRGB{R: 0, G: 0, B: 255}, Lab{L: 32.29701, A: 79.187515, B: -107.86016}},
	{DigitalRGB{R: 0, G: 255, B: 255}, Lab{L: 91.11321, A: -48.08751, B: -14.131201}},
	{DigitalRGB{R: 255, G: 0, B: 255}, Lab{L: 60.32421, A: 98.23433, B: -60.824894}},
	{DigitalRGB{R: 255, G: 255, B: 0}, Lab{L: 97.13926, A: -21.553724, B: 94.47797}},

	{DigitalRGB{R: 0, G: 0, B: 0}, Lab{L: 0.0, A: 0.0, B: 0.0}},
	{DigitalRGB{R: 64, G: 64, B: 64}, Lab{L: 27.09341, A: 0.0, B: 0.0}},
	{DigitalRGB{R: 127, G: 127, B: 127}, Lab{L: 53.192772, A: 0.0, B: 0.0}},
	{DigitalRGB{R: 196, G: 196, B: 196}, Lab{L: 79.15698, A: 0.0, B: 0.0}},
	{DigitalRGB{R: 255, G: 255, B: 255}, Lab{L: 100.0, A: 0.0, B: 0.0}},
}

func TestDigitalRGBToLab(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-3)
	for _, tt := range labColors {
		got := tt.rgb.Lab()
		if diff := cmp.Diff(tt.lab, got, approx); diff != "" {
			t.Errorf("%v.Lab() mismatch (-want +got):\n%s", tt.rgb, diff)
		}
	}
}

func TestLabToDigitalRGB(t *testing.T) {
	for _, tt := range labColors {
		if got := tt.lab.DigitalRGB(); got != tt.rgb {
			t.Errorf("%v.DigitalRGB() = %v, want %v", tt.lab, got, tt.rgb)
		}
	}
}

func TestLabXYZ(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-5)

	white := Lab{L: 100}.XYZ()
	if want := (XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}); !cmp.Equal(white, want, approx) {
		t.Errorf("Lab{100,0,0}.XYZ() = %v, want %v", white, want)
	}
	if got := (XYZ{}).Lab(); !cmp.Equal(got, Lab{}, approx) {
		t.Errorf("XYZ{}.Lab() = %v, want zero", got)
	}

	// Low L takes the linear branch for Y.
	dark := Lab{L: 5}.XYZ()
	if want := float32(5 / (24389.0 / 27.0)); !floatNear(dark.Y, want, 1e-7) {
		t.Errorf("Lab{5,0,0}.XYZ().Y = %v, want %v", dark.Y, want)
	}

	for _, tt := range labColors {
		back := tt.lab.XYZ().Lab()
		if diff := cmp.Diff(tt.lab, back, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
			t.Errorf("%v XYZ round trip mismatch (-want +got):\n%s", tt.lab, diff)
		}
	}
}

func TestXYZToDigitalRGB(t *testing.T) {
	tests := []struct {
		name string
		in   XYZ
		want DigitalRGB
	}{
		{"white point", XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}, DigitalRGB{R: 255, G: 255, B: 255}},
		{"black", XYZ{}, DigitalRGB{}},
		{"NaN", XYZ{X: float32(math.NaN()), Y: float32(math.NaN()), Z: float32(math.NaN())}, DigitalRGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.DigitalRGB(); got != tt.want {
				t.Errorf("DigitalRGB() = %v, want %v", got, tt.want)
			}
		})
	}

	// Out of gamut: R far above 1, G far below 0.
	got := XYZ{X: 2}.DigitalRGB()
	if got.R != 255 || got.G != 0 {
		t.Errorf("XYZ{2,0,0}.DigitalRGB() = %v, want R=255 G=0", got)
	}
}

func TestLabToGrayscale(t *testing.T) {
	tests := []struct {
		in   Lab
		want uint8
	}{
		{Lab{L: 100}, 255},
		{Lab{L: 50, A: 20, B: -20}, 127},
		{Lab{L: 0}, 0},
		{Lab{L: -5}, 0},
		{Lab{L: 150}, 255},
	}
	for _, tt := range tests {
		if got := tt.in.DigitalGrayscale(); got.V != tt.want {
			t.Errorf("%v.DigitalGrayscale() = %d, want %d", tt.in, got.V, tt.want)
		}
	}
	if got := (Lab{L: 40}).NormalizedGrayscale(); !floatNear(got.V, 0.4, 1e-6) {
		t.Errorf("NormalizedGrayscale() = %v, want 0.4", got.V)
	}
	if got := (XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}).DigitalGrayscale(); got.V != 255 {
		t.Errorf("white XYZ DigitalGrayscale() = %d, want 255", got.V)
	}
}

// Every conversion that is not defined directly goes through a hub, so the
// direct method and the explicit composition must agree exactly.
func TestHubRouting(t *testing.T) {
	samples := []DigitalRGB{{}, {R: 255, G: 255, B: 255}, {R: 200, G: 100, B: 50}, {R: 3, G: 250, B: 128}}
	for _, rgb := range samples {
		n := rgb.NormalizedRGB()
		y := rgb.DigitalYCbCr()
		ny := rgb.NormalizedYCbCr()
		g := rgb.DigitalGrayscale()
		lab := rgb.Lab()
		xyz := rgb.XYZ()

		checks := []struct {
			name      string
			got, want any
		}{
			{"NormalizedRGB.Lab", n.Lab(), n.DigitalRGB().Lab()},
			{"NormalizedRGB.XYZ", n.XYZ(), n.DigitalRGB().XYZ()},
			{"DigitalRGB.Lab", rgb.Lab(), rgb.XYZ().Lab()},
			{"DigitalYCbCr.Lab", y.Lab(), y.DigitalRGB().Lab()},
			{"NormalizedYCbCr.XYZ", ny.XYZ(), ny.DigitalRGB().XYZ()},
			{"DigitalGrayscale.YCbCr", g.DigitalYCbCr(), g.DigitalRGB().DigitalYCbCr()},
			{"DigitalGrayscale.XYZ", g.XYZ(), g.Lab().XYZ()},
			{"Lab.DigitalRGB", lab.DigitalRGB(), lab.XYZ().DigitalRGB()},
			{"Lab.NormalizedRGB", lab.NormalizedRGB(), lab.DigitalRGB().NormalizedRGB()},
			{"XYZ.NormalizedRGBA", xyz.NormalizedRGBA(), xyz.DigitalRGB().NormalizedRGBA()},
			{"XYZ.DigitalYCbCr", xyz.DigitalYCbCr(), xyz.DigitalRGB().DigitalYCbCr()},
			{"XYZ.DigitalGrayscale", xyz.DigitalGrayscale(), xyz.Lab().DigitalGrayscale()},
			{"DigitalRGBA.Lab", rgb.DigitalRGBA().Lab(), rgb.Lab()},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%v: %s = %v, composition gives %v", rgb, c.name, c.got, c.want)
			}
		}
	}
}

func TestIdentityConversions(t *testing.T) {
	lab := Lab{L: 12.5, A: -3, B: 7}
	if lab.Lab() != lab {
		t.Error("Lab.Lab() changed the value")
	}
	xyz := XYZ{X: 0.1, Y: 0.2, Z: 0.3}
	if xyz.XYZ() != xyz {
		t.Error("XYZ.XYZ() changed the value")
	}
	rgb := DigitalRGB{R: 1, G: 2, B: 3}
	if rgb.DigitalRGB() != rgb {
		t.Error("DigitalRGB.DigitalRGB() changed the value")
	}
	n := NormalizedYCbCr{Y: 0.3, Cb: -0.1, Cr: 0.2}
	if n.NormalizedYCbCr() != n {
		t.Error("NormalizedYCbCr.NormalizedYCbCr() changed the value")
	}
}
