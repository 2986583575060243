// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package transfer moves pixel data between host memory and GPU buffers.
//
// WebGPU imposes two layout constraints this package absorbs: texture-to-
// buffer copies pad each row to a 256-byte stride, and very large uploads
// are better split into bounded chunks so a single copy never monopolizes
// the queue. Everything here is pure byte-slice manipulation plus thin
// staging-buffer helpers; no call touches the GPU directly except through
// the hal handles the caller supplies.
package transfer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Transfer errors.
var (
	// ErrNilDevice is returned when a device handle is required but nil.
	ErrNilDevice = errors.New("transfer: device is nil")

	// ErrInvalidStride is returned when a padded stride is smaller than the
	// tight row size.
	ErrInvalidStride = errors.New("transfer: padded stride smaller than row size")

	// ErrShortData is returned when the source buffer is smaller than the
	// layout it claims to hold.
	ErrShortData = errors.New("transfer: source data shorter than layout")
)

// RowAlignment is the WebGPU buffer-copy row alignment in bytes.
const RowAlignment = 256

// DefaultChunkSize bounds one upload chunk. 16 MiB keeps per-copy latency
// low without fragmenting typical filter workloads.
const DefaultChunkSize = 16 << 20

// AlignedRowStride returns rowBytes rounded up to the copy row alignment.
func AlignedRowStride(rowBytes int) int {
	return (rowBytes + RowAlignment - 1) &^ (RowAlignment - 1)
}

// UnpadRows removes GPU row-alignment padding, compacting a padded readback
// into tight rows of rowBytes each. When the stride already equals rowBytes
// the src prefix is returned without copying.
func UnpadRows(src []byte, rowBytes, paddedStride, rows int) ([]byte, error) {
	if paddedStride < rowBytes {
		return nil, fmt.Errorf("%w: stride %d < row %d", ErrInvalidStride, paddedStride, rowBytes)
	}
	if rows <= 0 || rowBytes == 0 {
		return nil, nil
	}
	// The final row need not carry trailing padding.
	need := paddedStride*(rows-1) + rowBytes
	if len(src) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortData, len(src), need)
	}
	if paddedStride == rowBytes {
		return src[:rowBytes*rows], nil
	}

	dst := make([]byte, rowBytes*rows)
	for y := 0; y < rows; y++ {
		copy(dst[y*rowBytes:(y+1)*rowBytes], src[y*paddedStride:])
	}
	return dst, nil
}

// PadRows is the inverse of UnpadRows: it expands tight rows to the padded
// stride a texture upload requires, zero-filling the padding.
func PadRows(src []byte, rowBytes, paddedStride, rows int) ([]byte, error) {
	if paddedStride < rowBytes {
		return nil, fmt.Errorf("%w: stride %d < row %d", ErrInvalidStride, paddedStride, rowBytes)
	}
	if rows <= 0 || rowBytes == 0 {
		return nil, nil
	}
	if len(src) < rowBytes*rows {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortData, len(src), rowBytes*rows)
	}
	if paddedStride == rowBytes {
		return src[:rowBytes*rows], nil
	}

	dst := make([]byte, paddedStride*rows)
	for y := 0; y < rows; y++ {
		copy(dst[y*paddedStride:], src[y*rowBytes:(y+1)*rowBytes])
	}
	return dst, nil
}

// Chunk describes one bounded slice of a larger transfer.
type Chunk struct {
	// Offset is the byte offset of this chunk within the whole payload.
	Offset uint64

	// Data is the chunk's payload slice, aliasing the source buffer.
	Data []byte
}

// Chunks splits data into pieces of at most chunkSize bytes. A chunkSize of
// zero or less uses DefaultChunkSize. The returned chunks alias data.
func Chunks(data []byte, chunkSize int) []Chunk {
	if len(data) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	out := make([]Chunk, 0, (len(data)+chunkSize-1)/chunkSize)
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, Chunk{Offset: uint64(off), Data: data[off:end]})
	}
	return out
}

// StagingBuffer wraps a mappable buffer used to ferry bytes across the
// host/device boundary.
type StagingBuffer struct {
	device hal.Device
	buffer hal.Buffer
	size   uint64
	usage  gputypes.BufferUsage
}

// NewUploadBuffer creates a staging buffer for host-to-device transfers
// (MapWrite | CopySrc).
func NewUploadBuffer(device hal.Device, size uint64, label string) (*StagingBuffer, error) {
	return newStaging(device, size, label, gputypes.BufferUsageMapWrite|gputypes.BufferUsageCopySrc)
}

// NewReadbackBuffer creates a staging buffer for device-to-host transfers
// (MapRead | CopyDst).
func NewReadbackBuffer(device hal.Device, size uint64, label string) (*StagingBuffer, error) {
	return newStaging(device, size, label, gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst)
}

func newStaging(device hal.Device, size uint64, label string, usage gputypes.BufferUsage) (*StagingBuffer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if size == 0 {
		return nil, fmt.Errorf("transfer: staging buffer size is 0")
	}

	// Copy operations require 4-byte size alignment.
	const copyAlignment uint64 = 4
	aligned := (size + copyAlignment - 1) &^ (copyAlignment - 1)

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  aligned,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("transfer: create staging buffer: %w", err)
	}

	return &StagingBuffer{device: device, buffer: buf, size: aligned, usage: usage}, nil
}

// Size returns the aligned buffer size in bytes.
func (s *StagingBuffer) Size() uint64 { return s.size }

// Usage returns the buffer usage flags.
func (s *StagingBuffer) Usage() gputypes.BufferUsage { return s.usage }

// Raw returns the underlying buffer handle, or nil after Destroy.
func (s *StagingBuffer) Raw() hal.Buffer { return s.buffer }

// Destroy releases the buffer. Idempotent.
func (s *StagingBuffer) Destroy() {
	if s.buffer != nil && s.device != nil {
		s.device.DestroyBuffer(s.buffer)
		s.buffer = nil
	}
}
