// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Gradient and generator schema routines. Generators ignore the input texture
// entirely; their coordinate parameters are in output pixels.

func encodeConstantColorGenerator(e *encodeState) {
	e.putColor("inputColor", colorWhite)
}

func encodeLinearGradient(e *encodeState) {
	e.putPoint("inputPoint0", 0, 0)
	e.putPoint("inputPoint1", 200, 200)
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorBlack)
}

func encodeSmoothLinearGradient(e *encodeState) {
	e.putPoint("inputPoint0", 0, 0)
	e.putPoint("inputPoint1", 200, 200)
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorBlack)
}

func encodeRadialGradient(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius0", 5)
	e.putScalar("inputRadius1", 100)
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorBlack)
}

// encodeGaussianGradient fades to transparency rather than to a second
// opaque stop, hence the (0,0,0,0) outer default.
func encodeGaussianGradient(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorTransparentBlack)
}

func encodeStripesGenerator(e *encodeState) {
	e.putCenter()
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorBlack)
	e.putScalar("inputWidth", 80)
	e.putScalar("inputSharpness", 1)
}

func encodeCheckerboardGenerator(e *encodeState) {
	e.putCenter()
	e.putColor("inputColor0", colorWhite)
	e.putColor("inputColor1", colorBlack)
	e.putScalar("inputWidth", 80)
	e.putScalar("inputSharpness", 1)
}
