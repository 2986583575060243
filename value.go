// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Kind identifies the dynamic type of a filter parameter Value.
type Kind uint8

// Value kinds.
const (
	// KindInvalid is the zero Value; coercions treat it as absent.
	KindInvalid Kind = iota

	// KindScalar is a floating-point scalar.
	KindScalar

	// KindInt is an integer scalar.
	KindInt

	// KindVector is an ordered list of floats (point, color, weights).
	KindVector

	// KindRect is an axis-aligned rectangle in world space.
	KindRect

	// KindTransform is a 2D affine transform.
	KindTransform
)

// Value is a dynamically typed filter parameter. The zero Value is invalid
// and coerces to the call site's default, never to an error.
type Value struct {
	kind   Kind
	scalar float64
	vec    []float64
	rect   Rect
	affine Affine
}

// Scalar returns a floating-point scalar Value.
func Scalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Int returns an integer scalar Value.
func Int(v int64) Value {
	return Value{kind: KindInt, scalar: float64(v)}
}

// Vector returns an ordered float vector Value. Used for points, colors,
// tone-curve control points, and convolution weights.
func Vector(components ...float64) Value {
	return Value{kind: KindVector, vec: components}
}

// RectValue returns a rectangle Value.
func RectValue(r Rect) Value {
	return Value{kind: KindRect, rect: r}
}

// TransformValue returns an affine transform Value.
func TransformValue(t Affine) Value {
	return Value{kind: KindTransform, affine: t}
}

// Kind returns the dynamic type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Params is the per-call parameter set for one filter invocation.
// It is caller-owned and never mutated by the encoder.
type Params map[string]Value

// scalar coerces the named parameter to a float32, narrowing any numeric
// representation. Returns def when the parameter is absent or not numeric.
func (p Params) scalar(key string, def float32) float32 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch v.kind {
	case KindScalar, KindInt:
		return float32(v.scalar)
	case KindVector:
		if len(v.vec) > 0 {
			return float32(v.vec[0])
		}
	}
	return def
}

// uint32Value coerces the named parameter to a uint32 with a default.
// Negative values clamp to zero.
func (p Params) uint32Value(key string, def uint32) uint32 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch v.kind {
	case KindScalar, KindInt:
		if v.scalar <= 0 {
			return 0
		}
		return uint32(v.scalar)
	}
	return def
}

// vec2 coerces the named parameter to a 2-component point. A structured or
// generic vector supplies up to two components; missing trailing components
// keep the corresponding default.
func (p Params) vec2(key string, defX, defY float32) (float32, float32) {
	v, ok := p[key]
	if !ok || v.kind != KindVector {
		return defX, defY
	}
	x, y := defX, defY
	if len(v.vec) > 0 {
		x = float32(v.vec[0])
	}
	if len(v.vec) > 1 {
		y = float32(v.vec[1])
	}
	return x, y
}

// vec4 coerces the named parameter to a 4-component vector (color). Missing
// trailing components keep the corresponding component of def, so an absent
// parameter yields def exactly.
func (p Params) vec4(key string, def [4]float32) [4]float32 {
	v, ok := p[key]
	if !ok || v.kind != KindVector {
		return def
	}
	out := def
	n := len(v.vec)
	if n > 4 {
		n = 4
	}
	for i := 0; i < n; i++ {
		out[i] = float32(v.vec[i])
	}
	return out
}

// floats coerces the named parameter to exactly n float32 values, used for
// convolution weight arrays and tone-curve point lists. A supplied vector
// fills from the front; missing trailing entries keep the default values.
func (p Params) floats(key string, def []float32) []float32 {
	out := make([]float32, len(def))
	copy(out, def)
	v, ok := p[key]
	if !ok || v.kind != KindVector {
		return out
	}
	n := len(v.vec)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] = float32(v.vec[i])
	}
	return out
}

// rectValue coerces the named parameter to a rectangle, reading
// (x, y, width, height) in that order from a generic vector if needed.
func (p Params) rectValue(key string, def Rect) Rect {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch v.kind {
	case KindRect:
		return v.rect
	case KindVector:
		out := def
		if len(v.vec) > 0 {
			out.X = float32(v.vec[0])
		}
		if len(v.vec) > 1 {
			out.Y = float32(v.vec[1])
		}
		if len(v.vec) > 2 {
			out.W = float32(v.vec[2])
		}
		if len(v.vec) > 3 {
			out.H = float32(v.vec[3])
		}
		return out
	}
	return def
}

// affine coerces the named parameter to an affine transform with a default.
func (p Params) affine(key string, def Affine) Affine {
	v, ok := p[key]
	if !ok || v.kind != KindTransform {
		return def
	}
	return v.affine
}
