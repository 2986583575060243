// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func u32At(t *testing.T, buf []byte, off int) uint32 {
	t.Helper()
	if off+4 > len(buf) {
		t.Fatalf("offset %d out of range for %d-byte buffer", off, len(buf))
	}
	return binary.LittleEndian.Uint32(buf[off:])
}

func f32At(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	return math.Float32frombits(u32At(t, buf, off))
}

func TestEncodeParamsHeader(t *testing.T) {
	buf := EncodeParams("CIColorInvert", nil, 640, 480, Rect{})
	if len(buf) != 16 {
		t.Fatalf("header-only buffer length = %d, want 16", len(buf))
	}
	if w := u32At(t, buf, 0); w != 640 {
		t.Errorf("width = %d, want 640", w)
	}
	if h := u32At(t, buf, 4); h != 480 {
		t.Errorf("height = %d, want 480", h)
	}
	for i := 8; i < 16; i++ {
		if buf[i] != 0 {
			t.Errorf("padding byte %d = %#x, want 0", i, buf[i])
		}
	}
}

func TestEncodeParamsAllFiltersAligned(t *testing.T) {
	for _, name := range FilterNames() {
		buf := EncodeParams(name, nil, 256, 128, Rect{W: 256, H: 128})
		if len(buf) < 16 {
			t.Errorf("%s: buffer length %d < 16", name, len(buf))
		}
		if len(buf)%16 != 0 {
			t.Errorf("%s: buffer length %d not a multiple of 16", name, len(buf))
		}
		if w := u32At(t, buf, 0); w != 256 {
			t.Errorf("%s: width = %d, want 256", name, w)
		}
		if h := u32At(t, buf, 4); h != 128 {
			t.Errorf("%s: height = %d, want 128", name, h)
		}
	}
}

func TestEncodeParamsDeterministic(t *testing.T) {
	params := Params{
		"inputRadius": Scalar(4.5),
		"inputCenter": Vector(10, 20),
	}
	for _, name := range FilterNames() {
		a := EncodeParams(name, params, 800, 600, Rect{W: 800, H: 600})
		b := EncodeParams(name, params, 800, 600, Rect{W: 800, H: 600})
		if !bytes.Equal(a, b) {
			t.Errorf("%s: repeated encoding differs", name)
		}
	}
}

func TestEncodeParamsUnknownFilter(t *testing.T) {
	buf := EncodeParams("CINoSuchFilter", nil, 32, 32, Rect{})
	if len(buf) != 16 {
		t.Fatalf("unknown filter buffer length = %d, want 16", len(buf))
	}
	if IsSupported("CINoSuchFilter") {
		t.Error("IsSupported(CINoSuchFilter) = true")
	}
	if !IsSupported("CIGaussianBlur") {
		t.Error("IsSupported(CIGaussianBlur) = false")
	}
}

func TestEncodeGaussianBlurSigma(t *testing.T) {
	buf := EncodeParams("CIGaussianBlur", Params{"inputRadius": Scalar(9)}, 100, 100, Rect{})
	if got := f32At(t, buf, 8); got != 9 {
		t.Errorf("radius = %v, want 9", got)
	}
	if got := f32At(t, buf, 12); got != 3 {
		t.Errorf("sigma = %v, want 3", got)
	}
}

func TestEncodeCenterDefault(t *testing.T) {
	buf := EncodeParams("CIZoomBlur", nil, 640, 480, Rect{})
	if got := f32At(t, buf, 8); got != 320 {
		t.Errorf("default center x = %v, want 320", got)
	}
	if got := f32At(t, buf, 12); got != 240 {
		t.Errorf("default center y = %v, want 240", got)
	}
	if got := f32At(t, buf, 16); got != 20 {
		t.Errorf("default amount = %v, want 20", got)
	}
}

func TestEncodeConstantColorDefault(t *testing.T) {
	buf := EncodeParams("CIConstantColorGenerator", nil, 64, 64, Rect{})
	if len(buf) != 32 {
		t.Fatalf("buffer length = %d, want 32", len(buf))
	}
	// vec4 aligns past the 8-byte header to offset 16.
	for i, want := range []float32{1, 1, 1, 1} {
		if got := f32At(t, buf, 16+4*i); got != want {
			t.Errorf("color[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeColorMatrixLayout(t *testing.T) {
	buf := EncodeParams("CIColorMatrix", nil, 64, 64, Rect{})
	if len(buf) != 96 {
		t.Fatalf("buffer length = %d, want 96", len(buf))
	}
	// Five vec4 rows starting at offset 16: identity rows then zero bias.
	want := [5][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	for row := range want {
		for col := range want[row] {
			off := 16 + row*16 + col*4
			if got := f32At(t, buf, off); got != want[row][col] {
				t.Errorf("row %d col %d = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestEncodeConvolutionLayout(t *testing.T) {
	tests := []struct {
		name    string
		weights int
		length  int
	}{
		{"CIConvolution3X3", 9, 48},
		{"CIConvolution5X5", 25, 112},
		{"CIConvolution7X7", 49, 208},
		{"CIConvolution9Horizontal", 9, 48},
		{"CIConvolution9Vertical", 9, 48},
	}
	for _, tt := range tests {
		buf := EncodeParams(tt.name, nil, 64, 64, Rect{})
		if len(buf) != tt.length {
			t.Errorf("%s: length = %d, want %d", tt.name, len(buf), tt.length)
			continue
		}
		// Default is the identity kernel: 1 at the center tap.
		for i := 0; i < tt.weights; i++ {
			want := float32(0)
			if i == tt.weights/2 {
				want = 1
			}
			if got := f32At(t, buf, 8+4*i); got != want {
				t.Errorf("%s: weight %d = %v, want %v", tt.name, i, got, want)
			}
		}
		if got := f32At(t, buf, 8+4*tt.weights); got != 0 {
			t.Errorf("%s: bias = %v, want 0", tt.name, got)
		}
	}
}

func TestEncodeCropTextureLocal(t *testing.T) {
	extent := Rect{X: 100, Y: 50, W: 400, H: 300}
	params := Params{"inputRectangle": RectValue(Rect{X: 120, Y: 80, W: 200, H: 100})}
	buf := EncodeParams("CICrop", params, 400, 300, extent)
	want := []float32{20, 30, 200, 100}
	for i, w := range want {
		if got := f32At(t, buf, 8+4*i); got != w {
			t.Errorf("crop[%d] = %v, want %v", i, got, w)
		}
	}

	// Absent rectangle crops nothing: full extent, local origin.
	buf = EncodeParams("CICrop", nil, 400, 300, extent)
	want = []float32{0, 0, 400, 300}
	for i, w := range want {
		if got := f32At(t, buf, 8+4*i); got != w {
			t.Errorf("default crop[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeAffineTransformIdentity(t *testing.T) {
	buf := EncodeParams("CIAffineTransform", nil, 200, 100, Rect{W: 200, H: 100})
	if len(buf) != 32 {
		t.Fatalf("buffer length = %d, want 32", len(buf))
	}
	// Linear part (a, b, d, e) then translation (c, f).
	want := []float32{1, 0, 0, 1, 0, 0}
	for i, w := range want {
		if got := f32At(t, buf, 8+4*i); got != w {
			t.Errorf("coefficient %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeAffineTransformScale(t *testing.T) {
	params := Params{"inputTransform": TransformValue(Affine{A: 2, E: 2})}
	buf := EncodeParams("CIAffineTransform", params, 100, 100, Rect{W: 100, H: 100})
	// Shader maps output texels back through the inverse: scale 0.5.
	want := []float32{0.5, 0, 0, 0.5, 0, 0}
	for i, w := range want {
		if got := f32At(t, buf, 8+4*i); got != w {
			t.Errorf("coefficient %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodePerspectiveTransformIdentity(t *testing.T) {
	extent := Rect{W: 1, H: 1}
	buf := EncodeParams("CIPerspectiveTransform", nil, 1, 1, extent)
	if len(buf) != 64 {
		t.Fatalf("buffer length = %d, want 64", len(buf))
	}
	// Default corners are the extent corners of the unit square, so the
	// homography is the identity, stored as three padded rows at offset 16.
	want := [3][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
	for row := range want {
		for col := range want[row] {
			off := 16 + row*16 + col*4
			if got := f32At(t, buf, off); got != want[row][col] {
				t.Errorf("row %d col %d = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestEncodePerspectiveCorrectionCropFlag(t *testing.T) {
	buf := EncodeParams("CIPerspectiveCorrection", nil, 1, 1, Rect{W: 1, H: 1})
	if len(buf) != 80 {
		t.Fatalf("buffer length = %d, want 80", len(buf))
	}
	if got := u32At(t, buf, 64); got != 1 {
		t.Errorf("crop flag = %d, want 1", got)
	}

	buf = EncodeParams("CIPerspectiveCorrection", Params{"inputCrop": Int(0)}, 1, 1, Rect{W: 1, H: 1})
	if got := u32At(t, buf, 64); got != 0 {
		t.Errorf("crop flag = %d, want 0", got)
	}
}

func TestEncodeToneCurveDefaults(t *testing.T) {
	buf := EncodeParams("CIToneCurve", nil, 64, 64, Rect{})
	want := []float32{0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1}
	for i, w := range want {
		if got := f32At(t, buf, 8+4*i); got != w {
			t.Errorf("curve value %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeStripesColorAlignment(t *testing.T) {
	buf := EncodeParams("CIStripesGenerator", nil, 640, 480, Rect{})
	// Center occupies offsets 8..16, so the two colors land on 16-byte
	// boundaries with no padding.
	if got := f32At(t, buf, 16); got != 1 {
		t.Errorf("color0 r = %v, want 1", got)
	}
	if got := f32At(t, buf, 32); got != 0 {
		t.Errorf("color1 r = %v, want 0", got)
	}
	if got := f32At(t, buf, 44); got != 1 {
		t.Errorf("color1 a = %v, want 1", got)
	}
	if got := f32At(t, buf, 48); got != 80 {
		t.Errorf("width = %v, want 80", got)
	}
}

func TestFilterNamesSorted(t *testing.T) {
	names := FilterNames()
	if len(names) != len(filterEncoders) {
		t.Fatalf("FilterNames length = %d, want %d", len(names), len(filterEncoders))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
