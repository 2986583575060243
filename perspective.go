// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import "math"

// Matrix3 is a 3x3 projective transform in row-major order. Applying it to a
// point (x, y) yields homogeneous coordinates that the shader divides by the
// last component:
//
//	u = (M00*x + M01*y + M02) / (M20*x + M21*y + M22)
//	v = (M10*x + M11*y + M12) / (M20*x + M21*y + M22)
type Matrix3 struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

// IdentityMatrix3 returns the identity projective transform.
func IdentityMatrix3() Matrix3 {
	return Matrix3{M00: 1, M11: 1, M22: 1}
}

// degenerateEps bounds both the affine-case test and the Cramer denominator
// below which the corner configuration is treated as degenerate.
const degenerateEps = 1e-10

// PerspectiveMatrix computes the projective transform mapping the unit square
// corners (0,0), (1,0), (1,1), (0,1) to p0, p1, p2, p3 respectively.
//
// When the quadrilateral is a parallelogram the mapping collapses to an
// affine transform with a zero projective row. When the four points are
// collinear or otherwise degenerate the identity matrix is returned; the
// result is never NaN and the computation never divides by zero.
func PerspectiveMatrix(p0, p1, p2, p3 Point) Matrix3 {
	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	x3, y3 := float64(p3.X), float64(p3.Y)

	dx1 := x1 - x2
	dx2 := x3 - x2
	dx3 := x0 - x1 + x2 - x3
	dy1 := y1 - y2
	dy2 := y3 - y2
	dy3 := y0 - y1 + y2 - y3

	if math.Abs(dx3) < degenerateEps && math.Abs(dy3) < degenerateEps {
		// Parallelogram: plain affine mapping.
		return Matrix3{
			M00: float32(x1 - x0), M01: float32(x3 - x0), M02: float32(x0),
			M10: float32(y1 - y0), M11: float32(y3 - y0), M12: float32(y0),
			M20: 0, M21: 0, M22: 1,
		}
	}

	denom := dx1*dy2 - dx2*dy1
	if math.Abs(denom) <= degenerateEps {
		return IdentityMatrix3()
	}

	m20 := (dx3*dy2 - dx2*dy3) / denom
	m21 := (dx1*dy3 - dx3*dy1) / denom

	return Matrix3{
		M00: float32(x1 - x0 + m20*x1), M01: float32(x3 - x0 + m21*x3), M02: float32(x0),
		M10: float32(y1 - y0 + m20*y1), M11: float32(y3 - y0 + m21*y3), M12: float32(y0),
		M20: float32(m20), M21: float32(m21), M22: 1,
	}
}
