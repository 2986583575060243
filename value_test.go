// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import "testing"

func TestParamsScalar(t *testing.T) {
	p := Params{
		"radius": Scalar(4.5),
		"level":  Int(3),
		"vec":    Vector(7, 8),
		"empty":  Vector(),
		"rect":   RectValue(Rect{W: 1, H: 1}),
	}
	tests := []struct {
		key  string
		def  float32
		want float32
	}{
		{"radius", 1, 4.5},
		{"level", 1, 3},
		{"vec", 1, 7},
		{"empty", 1, 1},
		{"rect", 1, 1},
		{"missing", 2.5, 2.5},
	}
	for _, tt := range tests {
		if got := p.scalar(tt.key, tt.def); got != tt.want {
			t.Errorf("scalar(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestParamsUint32(t *testing.T) {
	p := Params{
		"crop":     Int(1),
		"negative": Scalar(-3),
		"vec":      Vector(2),
	}
	if got := p.uint32Value("crop", 0); got != 1 {
		t.Errorf("crop = %d, want 1", got)
	}
	if got := p.uint32Value("negative", 7); got != 0 {
		t.Errorf("negative = %d, want 0 (clamped)", got)
	}
	if got := p.uint32Value("vec", 7); got != 7 {
		t.Errorf("vector falls back = %d, want 7", got)
	}
	if got := p.uint32Value("missing", 5); got != 5 {
		t.Errorf("missing = %d, want 5", got)
	}
}

func TestParamsVec4Partial(t *testing.T) {
	p := Params{"color": Vector(0.5, 0.25)}
	def := [4]float32{1, 1, 1, 1}
	got := p.vec4("color", def)
	want := [4]float32{0.5, 0.25, 1, 1}
	if got != want {
		t.Errorf("vec4 = %v, want %v", got, want)
	}
	if got := p.vec4("missing", def); got != def {
		t.Errorf("missing vec4 = %v, want default", got)
	}
}

func TestParamsVec2(t *testing.T) {
	p := Params{
		"pt":     Vector(3, 4),
		"short":  Vector(9),
		"scalar": Scalar(1),
	}
	if x, y := p.vec2("pt", 0, 0); x != 3 || y != 4 {
		t.Errorf("pt = (%v,%v), want (3,4)", x, y)
	}
	if x, y := p.vec2("short", 10, 20); x != 9 || y != 20 {
		t.Errorf("short = (%v,%v), want (9,20)", x, y)
	}
	if x, y := p.vec2("scalar", 10, 20); x != 10 || y != 20 {
		t.Errorf("scalar falls back = (%v,%v), want (10,20)", x, y)
	}
}

func TestParamsFloats(t *testing.T) {
	def := []float32{0, 0, 1, 0, 0}
	p := Params{"weights": Vector(2, 3)}
	got := p.floats("weights", def)
	want := []float32{2, 3, 1, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("floats[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Oversized input truncates to the schema width.
	p = Params{"weights": Vector(1, 2, 3, 4, 5, 6, 7)}
	if got := p.floats("weights", def); len(got) != len(def) {
		t.Errorf("floats length = %d, want %d", len(got), len(def))
	}
}

func TestParamsRect(t *testing.T) {
	def := Rect{X: 1, Y: 2, W: 3, H: 4}
	p := Params{
		"r":   RectValue(Rect{X: 5, Y: 6, W: 7, H: 8}),
		"vec": Vector(10, 20, 30, 40),
	}
	if got := p.rectValue("r", def); got != (Rect{X: 5, Y: 6, W: 7, H: 8}) {
		t.Errorf("rect = %+v", got)
	}
	if got := p.rectValue("vec", def); got != (Rect{X: 10, Y: 20, W: 30, H: 40}) {
		t.Errorf("vector rect = %+v", got)
	}
	if got := p.rectValue("missing", def); got != def {
		t.Errorf("missing rect = %+v, want default", got)
	}
}

func TestParamsAffine(t *testing.T) {
	want := Affine{A: 2, E: 2, C: 5}
	p := Params{
		"t":      TransformValue(want),
		"scalar": Scalar(1),
	}
	if got := p.affine("t", IdentityAffine()); got != want {
		t.Errorf("affine = %+v, want %+v", got, want)
	}
	if got := p.affine("scalar", IdentityAffine()); !got.IsIdentity() {
		t.Errorf("mistyped affine = %+v, want identity", got)
	}
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{Value{}, KindInvalid},
		{Scalar(1), KindScalar},
		{Int(1), KindInt},
		{Vector(1, 2), KindVector},
		{RectValue(Rect{}), KindRect},
		{TransformValue(IdentityAffine()), KindTransform},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.want {
			t.Errorf("Kind() = %d, want %d", got, tt.want)
		}
	}
}
