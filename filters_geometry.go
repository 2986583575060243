// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Geometry adjustment schema routines. These are the only routines that read
// the invocation extent: crop rectangles, affine transforms, and perspective
// corner points all arrive in world space and must be re-based to texel
// coordinates before the shader sees them.

// encodeCrop appends the crop rectangle translated into texture-local
// coordinates, so a shader indexing texels from (0,0) needs no knowledge of
// the image's world-space origin. Defaults to the full extent.
func encodeCrop(e *encodeState) {
	r := e.params.rectValue("inputRectangle", e.extent)
	e.putFloats(r.X-e.extent.X, r.Y-e.extent.Y, r.W, r.H)
}

// putInverseTransform appends the six coefficients of the inverse of the
// given forward transform, re-based so the shader maps output texels straight
// to input texels: linear part first (a, b, d, e), then translation (c, f).
func (e *encodeState) putInverseTransform(fwd Affine) {
	inv := fwd.InverseRebase(e.extent)
	e.putFloats(inv.A, inv.B, inv.D, inv.E, inv.C, inv.F)
}

func encodeAffineTransform(e *encodeState) {
	e.putInverseTransform(e.params.affine("inputTransform", IdentityAffine()))
}

func encodeAffineTile(e *encodeState) {
	e.putInverseTransform(e.params.affine("inputTransform", IdentityAffine()))
}

func encodeAffineClamp(e *encodeState) {
	e.putInverseTransform(e.params.affine("inputTransform", IdentityAffine()))
}

func encodeLanczosScaleTransform(e *encodeState) {
	e.putScalar("inputScale", 1)
	e.putScalar("inputAspectRatio", 1)
}

func encodeStraightenFilter(e *encodeState) {
	e.putScalar("inputAngle", 0)
}

// perspectiveCorners reads the four corner-point parameters, defaulting each
// to the matching corner of the extent (y-up: top is the larger y), and
// translates them to texture-local coordinates.
func (e *encodeState) perspectiveCorners() (bl, br, tr, tl Point) {
	ext := e.extent
	blX, blY := e.params.vec2("inputBottomLeft", ext.X, ext.Y)
	brX, brY := e.params.vec2("inputBottomRight", ext.X+ext.W, ext.Y)
	trX, trY := e.params.vec2("inputTopRight", ext.X+ext.W, ext.Y+ext.H)
	tlX, tlY := e.params.vec2("inputTopLeft", ext.X, ext.Y+ext.H)
	bl = Point{blX - ext.X, blY - ext.Y}
	br = Point{brX - ext.X, brY - ext.Y}
	tr = Point{trX - ext.X, trY - ext.Y}
	tl = Point{tlX - ext.X, tlY - ext.Y}
	return bl, br, tr, tl
}

// putMatrix3 appends a 3x3 matrix as three vec4-padded rows, matching WGSL
// mat3x3<f32> layout (each column/row slot occupies 16 bytes).
func (e *encodeState) putMatrix3(m Matrix3) {
	e.putVec4([4]float32{m.M00, m.M01, m.M02, 0})
	e.putVec4([4]float32{m.M10, m.M11, m.M12, 0})
	e.putVec4([4]float32{m.M20, m.M21, m.M22, 0})
}

func encodePerspectiveTransform(e *encodeState) {
	bl, br, tr, tl := e.perspectiveCorners()
	e.putMatrix3(PerspectiveMatrix(bl, br, tr, tl))
}

// encodePerspectiveCorrection appends the same homography plus the crop flag
// controlling whether the result is clipped to the corrected quad.
func encodePerspectiveCorrection(e *encodeState) {
	bl, br, tr, tl := e.perspectiveCorners()
	e.putMatrix3(PerspectiveMatrix(bl, br, tr, tl))
	e.putUint32(e.params.uint32Value("inputCrop", 1))
}
