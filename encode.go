// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// encodeState carries one encoding pass: the output builder plus the
// invocation inputs every schema routine reads from.
type encodeState struct {
	*uniformBuilder
	params Params
	width  uint32
	height uint32
	extent Rect
}

// encoderFunc appends one filter's fixed field sequence after the dimension
// header. The field shape never varies with parameter values, only the field
// contents do.
type encoderFunc func(e *encodeState)

// EncodeParams encodes the parameters of one filter invocation into the
// uniform buffer layout the filter's compute shader declares.
//
// The returned buffer always starts with (width, height) as two little-endian
// uint32 values and its total length is a multiple of 16. The extent is the
// bounding rectangle of the input image in world space; it is read only by
// geometry-sensitive filters and may be the zero Rect otherwise.
//
// Encoding never fails: missing or mistyped parameters fall back to per-field
// default literals and an unrecognized filter name yields a header-only
// buffer. The buffer is freshly allocated on every call and owned by the
// caller.
func EncodeParams(name string, params Params, width, height uint32, extent Rect) []byte {
	e := &encodeState{
		uniformBuilder: newUniformBuilder(),
		params:         params,
		width:          width,
		height:         height,
		extent:         extent,
	}
	e.putUint32(width)
	e.putUint32(height)

	if enc, ok := filterEncoders[name]; ok {
		enc(e)
	} else {
		Logger().Warn("coreimage: unknown filter name, encoding header only", "filter", name)
	}

	return e.finish()
}

// putScalar appends one coerced scalar parameter.
func (e *encodeState) putScalar(key string, def float32) {
	e.putFloat32(e.params.scalar(key, def))
}

// putCenter appends the filter's 2-float center point, defaulting to the
// image midpoint (width/2, height/2).
func (e *encodeState) putCenter() {
	cx, cy := e.params.vec2("inputCenter", float32(e.width)/2, float32(e.height)/2)
	e.putFloats(cx, cy)
}

// putColor appends a 16-byte-aligned color parameter with the filter's
// documented default.
func (e *encodeState) putColor(key string, def [4]float32) {
	e.putVec4(e.params.vec4(key, def))
}

// putPoint appends a 2-float point parameter.
func (e *encodeState) putPoint(key string, defX, defY float32) {
	x, y := e.params.vec2(key, defX, defY)
	e.putFloats(x, y)
}

// encodeHeaderOnly is the schema routine for filters with no parameters
// beyond the dimension header: pure compositing operators, parameterless
// generators, and fixed color effects. The shader reads only width/height.
func encodeHeaderOnly(*encodeState) {}
