// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Blur family schema routines. Radii are in pixels of the input texture.
// Default constants are part of the shader contract; changing one changes
// the rendered output of every invocation that omits the parameter.

// encodeGaussianBlur appends the blur radius followed by the derived Gaussian
// sigma. The shader samples a separable kernel sized from sigma = radius/3.
func encodeGaussianBlur(e *encodeState) {
	radius := e.params.scalar("inputRadius", 10)
	e.putFloat32(radius)
	e.putFloat32(radius / 3)
}

func encodeBoxBlur(e *encodeState) {
	e.putScalar("inputRadius", 10)
}

func encodeDiscBlur(e *encodeState) {
	e.putScalar("inputRadius", 8)
}

func encodeMotionBlur(e *encodeState) {
	e.putScalar("inputRadius", 20)
	e.putScalar("inputAngle", 0)
}

func encodeZoomBlur(e *encodeState) {
	e.putCenter()
	e.putScalar("inputAmount", 20)
}

// encodeMaskedVariableBlur appends only the maximum radius; the per-pixel
// blur mask is a secondary texture bound by the pipeline, not a uniform.
func encodeMaskedVariableBlur(e *encodeState) {
	e.putScalar("inputRadius", 10)
}

func encodeBokehBlur(e *encodeState) {
	e.putScalar("inputRadius", 21)
	e.putScalar("inputRingAmount", 0)
	e.putScalar("inputRingSize", 0.1)
	e.putScalar("inputSoftness", 1)
}

func encodeNoiseReduction(e *encodeState) {
	e.putScalar("inputNoiseLevel", 0.02)
	e.putScalar("inputSharpness", 0.4)
}

func encodeMorphologyMinimum(e *encodeState) {
	e.putScalar("inputRadius", 0)
}

func encodeMorphologyMaximum(e *encodeState) {
	e.putScalar("inputRadius", 0)
}

func encodeMorphologyGradient(e *encodeState) {
	e.putScalar("inputRadius", 5)
}
