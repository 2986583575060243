// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import (
	"encoding/binary"
	"math"
)

// uniformAlignment is the GPU-imposed layout rule: 4-component vectors start
// at offsets divisible by 16 and the whole uniform block is a 16-byte
// multiple.
const uniformAlignment = 16

// uniformBuilder assembles the little-endian byte layout of one uniform
// buffer. The append primitives never fail; alignment is explicit so the
// produced bytes match the shader's declared struct field-for-field.
type uniformBuilder struct {
	buf []byte
}

// newUniformBuilder returns a builder with capacity for a typical filter
// uniform block.
func newUniformBuilder() *uniformBuilder {
	return &uniformBuilder{buf: make([]byte, 0, 64)}
}

// putUint32 appends a little-endian uint32.
func (b *uniformBuilder) putUint32(v uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
}

// putFloat32 appends a little-endian IEEE-754 float32.
func (b *uniformBuilder) putFloat32(v float32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(v))
}

// putFloats appends each value in order.
func (b *uniformBuilder) putFloats(vs ...float32) {
	for _, v := range vs {
		b.putFloat32(v)
	}
}

// putVec4 appends a 4-float vector, first zero-padding so the vector starts
// on a 16-byte boundary as WGSL vec4 layout requires.
func (b *uniformBuilder) putVec4(v [4]float32) {
	b.align(uniformAlignment)
	b.putFloats(v[0], v[1], v[2], v[3])
}

// align zero-pads the buffer to the next multiple of n bytes.
func (b *uniformBuilder) align(n int) {
	for len(b.buf)%n != 0 {
		b.buf = append(b.buf, 0)
	}
}

// finish zero-pads to a 16-byte multiple and returns the encoded buffer.
// The returned slice is freshly allocated per builder and owned by the
// caller.
func (b *uniformBuilder) finish() []byte {
	b.align(uniformAlignment)
	return b.buf
}
