package model

import (
	"math"
	"testing"
)

func TestEffectiveDPI(t *testing.T) {
	// 900px over 3 inches (216pt) is 300 DPI on each axis.
	img := &Image{
		BBox:        BBox{X: 0, Y: 0, Width: 216, Height: 216},
		PixelWidth:  900,
		PixelHeight: 900,
	}

	x, y := img.EffectiveDPI()
	if math.Abs(x-300) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("EffectiveDPI = %.1f, %.1f, want 300, 300", x, y)
	}
	if got := img.MinEffectiveDPI(); math.Abs(got-300) > 1e-9 {
		t.Errorf("MinEffectiveDPI = %.1f, want 300", got)
	}
}

func TestMinEffectiveDPIPicksWorstAxis(t *testing.T) {
	img := &Image{
		BBox:        BBox{Width: 216, Height: 432}, // stretched vertically
		PixelWidth:  900,
		PixelHeight: 900,
	}
	if got := img.MinEffectiveDPI(); math.Abs(got-150) > 1e-9 {
		t.Errorf("MinEffectiveDPI = %.1f, want 150", got)
	}
}

func TestEffectiveDPIDegenerate(t *testing.T) {
	cases := []*Image{
		nil,
		// no pixels
		{BBox: BBox{Width: 216, Height: 216}},
		// flat box
		{BBox: BBox{Width: 0, Height: 216}, PixelWidth: 10, PixelHeight: 10},
	}
	for i, img := range cases {
		if x, y := img.EffectiveDPI(); x != 0 || y != 0 {
			t.Errorf("case %d: EffectiveDPI = %.1f, %.1f, want 0, 0", i, x, y)
		}
	}
}

func TestColorSpaceStrings(t *testing.T) {
	tests := []struct {
		cs   ColorSpace
		want string
	}{
		{ColorSpaceRGB, "rgb"},
		{ColorSpaceCMYK, "cmyk"},
		{ColorSpaceGray, "grayscale"},
		{ColorSpaceIndexed, "indexed"},
		{ColorSpaceUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cs.String(); got != tt.want {
			t.Errorf("ColorSpace(%d).String() = %q, want %q", tt.cs, got, tt.want)
		}
	}
}
