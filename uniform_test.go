// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import (
	"bytes"
	"testing"
)

func TestUniformBuilderEmpty(t *testing.T) {
	b := newUniformBuilder()
	if got := b.finish(); len(got) != 0 {
		t.Errorf("empty builder produced %d bytes", len(got))
	}
}

func TestUniformBuilderPadsToSixteen(t *testing.T) {
	b := newUniformBuilder()
	b.putUint32(1)
	buf := b.finish()
	if len(buf) != 16 {
		t.Fatalf("length = %d, want 16", len(buf))
	}
	if !bytes.Equal(buf[4:], make([]byte, 12)) {
		t.Error("padding bytes are not zero")
	}
}

func TestUniformBuilderVec4Alignment(t *testing.T) {
	b := newUniformBuilder()
	b.putFloat32(1) // offset 0..4
	b.putVec4([4]float32{1, 2, 3, 4})
	buf := b.finish()
	if len(buf) != 32 {
		t.Fatalf("length = %d, want 32", len(buf))
	}
	// 12 pad bytes between the scalar and the vector.
	if !bytes.Equal(buf[4:16], make([]byte, 12)) {
		t.Error("vec4 not padded to a 16-byte boundary")
	}
}

func TestUniformBuilderLittleEndian(t *testing.T) {
	b := newUniformBuilder()
	b.putUint32(0x01020304)
	buf := b.finish()
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(buf[:4], want) {
		t.Errorf("bytes = %v, want %v", buf[:4], want)
	}
}
