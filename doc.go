// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package coreimage encodes declarative image-filter parameters into the
// byte-exact uniform buffers consumed by the engine's WGSL compute shaders.
//
// Each filter invocation supplies a loosely typed, named parameter set plus
// the dimensions of the image being processed and, for geometry-sensitive
// filters, the bounding rectangle ("extent") of the input image in an
// unbounded world coordinate space. EncodeParams turns that into a single
// little-endian binary block whose field order, alignment, and padding match
// the uniform struct declared in the companion shader for that filter:
//
//	buf := coreimage.EncodeParams("CIGaussianBlur", coreimage.Params{
//	    "inputRadius": coreimage.Scalar(9),
//	}, 1920, 1080, coreimage.Rect{})
//
// The first 8 bytes always encode (width, height) as two uint32 values and
// the total length is always a multiple of 16, as required for uniform
// binding. Missing or mistyped parameters fall back to per-field default
// literals, unknown filter names produce a header-only buffer, and degenerate
// geometry falls back to the identity transform; encoding never fails.
//
// The companion packages cover the neighboring concerns: pipeline dispatches
// the encoded buffer on a GPU compute pass, transfer moves raw pixel data
// between host and device memory, and imageio converts raw RGBA output into
// compressed image formats.
package coreimage
