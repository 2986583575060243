// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Stylize and halftone schema routines.

func encodeBloom(e *encodeState) {
	e.putScalar("inputRadius", 10)
	e.putScalar("inputIntensity", 0.5)
}

func encodeGloom(e *encodeState) {
	e.putScalar("inputRadius", 10)
	e.putScalar("inputIntensity", 0.5)
}

func encodeEdges(e *encodeState) {
	e.putScalar("inputIntensity", 1)
}

func encodeEdgeWork(e *encodeState) {
	e.putScalar("inputRadius", 3)
}

func encodeSharpenLuminance(e *encodeState) {
	e.putScalar("inputSharpness", 0.4)
	e.putScalar("inputRadius", 1.69)
}

func encodeUnsharpMask(e *encodeState) {
	e.putScalar("inputRadius", 2.5)
	e.putScalar("inputIntensity", 0.5)
}

func encodeHighlightShadowAdjust(e *encodeState) {
	e.putScalar("inputRadius", 0)
	e.putScalar("inputShadowAmount", 0)
	e.putScalar("inputHighlightAmount", 1)
}

func encodePixellate(e *encodeState) {
	e.putCenter()
	e.putScalar("inputScale", 8)
}

func encodeHexagonalPixellate(e *encodeState) {
	e.putCenter()
	e.putScalar("inputScale", 8)
}

func encodeCrystallize(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 20)
}

func encodePointillize(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 20)
}

func encodeDotScreen(e *encodeState) {
	e.putCenter()
	e.putScalar("inputAngle", 0)
	e.putScalar("inputWidth", 6)
	e.putScalar("inputSharpness", 0.7)
}

func encodeLineScreen(e *encodeState) {
	e.putCenter()
	e.putScalar("inputAngle", 0)
	e.putScalar("inputWidth", 6)
	e.putScalar("inputSharpness", 0.7)
}

// Circular screens have no angle; rings are rotation-invariant.
func encodeCircularScreen(e *encodeState) {
	e.putCenter()
	e.putScalar("inputWidth", 6)
	e.putScalar("inputSharpness", 0.7)
}

func encodeHatchedScreen(e *encodeState) {
	e.putCenter()
	e.putScalar("inputAngle", 0)
	e.putScalar("inputWidth", 6)
	e.putScalar("inputSharpness", 0.7)
}
