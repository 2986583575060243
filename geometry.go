// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle describing where an image's texture-space
// origin sits within the unbounded world coordinate space.
type Rect struct {
	X, Y float32 // origin in world space
	W, H float32 // extent dimensions
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}

// Invert returns the inverse transformation.
// Returns the identity transform if the matrix is not invertible.
func (a Affine) Invert() Affine {
	det := a.A*a.E - a.B*a.D
	if math.Abs(float64(det)) < 1e-10 {
		return IdentityAffine()
	}

	invDet := 1.0 / det
	return Affine{
		A: a.E * invDet,
		B: -a.B * invDet,
		C: (a.B*a.F - a.C*a.E) * invDet,
		D: -a.D * invDet,
		E: a.A * invDet,
		F: (a.C*a.D - a.A*a.F) * invDet,
	}
}

// OutputExtent returns the axis-aligned bounding box of the input extent
// after forward transformation. This is the extent of the filter's output
// image in world space.
func (a Affine) OutputExtent(input Rect) Rect {
	x0, y0 := a.TransformPoint(input.X, input.Y)
	x1, y1 := a.TransformPoint(input.X+input.W, input.Y)
	x2, y2 := a.TransformPoint(input.X+input.W, input.Y+input.H)
	x3, y3 := a.TransformPoint(input.X, input.Y+input.H)

	minX := min4(x0, x1, x2, x3)
	minY := min4(y0, y1, y2, y3)
	maxX := max4(x0, x1, x2, x3)
	maxY := max4(y0, y1, y2, y3)

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// InverseRebase returns the inverse of the transform with its translation
// adjusted so the result maps output-texture-local coordinates directly to
// input-texture-local coordinates.
//
// World coordinates relate to texture coordinates by world = texture +
// extent.origin in both spaces, so for the inverse linear part L and
// inverse translation t:
//
//	inputTex = L·(outputTex + outputExtent.origin) + t − inputExtent.origin
//
// which folds into an adjusted translation per axis. A singular transform
// degrades to the identity (via Invert), never to an error.
func (a Affine) InverseRebase(input Rect) Affine {
	output := a.OutputExtent(input)
	inv := a.Invert()
	return Affine{
		A: inv.A, B: inv.B,
		C: inv.A*output.X + inv.B*output.Y + inv.C - input.X,
		D: inv.D, E: inv.E,
		F: inv.D*output.X + inv.E*output.Y + inv.F - input.Y,
	}
}

func min4(a, b, c, d float32) float32 {
	return min(min(a, b), min(c, d))
}

func max4(a, b, c, d float32) float32 {
	return max(max(a, b), max(c, d))
}
