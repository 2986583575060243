// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Color adjustment and color effect schema routines.

// Shared color default literals.
var (
	colorWhite            = [4]float32{1, 1, 1, 1}
	colorBlack            = [4]float32{0, 0, 0, 1}
	colorTransparentBlack = [4]float32{0, 0, 0, 0}
)

func encodeColorControls(e *encodeState) {
	e.putScalar("inputSaturation", 1)
	e.putScalar("inputBrightness", 0)
	e.putScalar("inputContrast", 1)
}

func encodeExposureAdjust(e *encodeState) {
	e.putScalar("inputEV", 0)
}

func encodeGammaAdjust(e *encodeState) {
	e.putScalar("inputPower", 1)
}

func encodeHueAdjust(e *encodeState) {
	e.putScalar("inputAngle", 0)
}

func encodeVibrance(e *encodeState) {
	e.putScalar("inputAmount", 0)
}

func encodeWhitePointAdjust(e *encodeState) {
	e.putColor("inputColor", colorWhite)
}

// encodeTemperatureAndTint appends the source and target neutral points as
// (temperature in kelvin, tint) pairs.
func encodeTemperatureAndTint(e *encodeState) {
	e.putPoint("inputNeutral", 6500, 0)
	e.putPoint("inputTargetNeutral", 6500, 0)
}

func encodeColorClamp(e *encodeState) {
	e.putColor("inputMinComponents", colorTransparentBlack)
	e.putColor("inputMaxComponents", colorWhite)
}

// encodeColorPolynomial appends one coefficient vector per channel. The
// default (0, 1, 0, 0) is the identity polynomial c = 0 + 1·x + 0·x² + 0·x³.
func encodeColorPolynomial(e *encodeState) {
	identity := [4]float32{0, 1, 0, 0}
	e.putColor("inputRedCoefficients", identity)
	e.putColor("inputGreenCoefficients", identity)
	e.putColor("inputBlueCoefficients", identity)
	e.putColor("inputAlphaCoefficients", identity)
}

// encodeColorMatrix appends the four channel row vectors followed by the bias
// vector. Defaults compose the identity matrix with zero bias.
func encodeColorMatrix(e *encodeState) {
	e.putColor("inputRVector", [4]float32{1, 0, 0, 0})
	e.putColor("inputGVector", [4]float32{0, 1, 0, 0})
	e.putColor("inputBVector", [4]float32{0, 0, 1, 0})
	e.putColor("inputAVector", [4]float32{0, 0, 0, 1})
	e.putColor("inputBiasVector", [4]float32{0, 0, 0, 0})
}

// encodeToneCurve appends five 2-float control points; the default ramp is
// the identity curve.
func encodeToneCurve(e *encodeState) {
	e.putPoint("inputPoint0", 0, 0)
	e.putPoint("inputPoint1", 0.25, 0.25)
	e.putPoint("inputPoint2", 0.5, 0.5)
	e.putPoint("inputPoint3", 0.75, 0.75)
	e.putPoint("inputPoint4", 1, 1)
}

func encodeSepiaTone(e *encodeState) {
	e.putScalar("inputIntensity", 1)
}

func encodeColorMonochrome(e *encodeState) {
	e.putColor("inputColor", [4]float32{0.6, 0.45, 0.3, 1})
	e.putScalar("inputIntensity", 1)
}

func encodeColorPosterize(e *encodeState) {
	e.putScalar("inputLevels", 6)
}

func encodeFalseColor(e *encodeState) {
	e.putColor("inputColor0", [4]float32{0.3, 0, 0, 1})
	e.putColor("inputColor1", [4]float32{1, 0.9, 0.8, 1})
}

func encodeVignette(e *encodeState) {
	e.putScalar("inputIntensity", 0)
	e.putScalar("inputRadius", 1)
}

func encodeVignetteEffect(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 150)
	e.putScalar("inputIntensity", 1)
	e.putScalar("inputFalloff", 0.5)
}

func encodeDither(e *encodeState) {
	e.putScalar("inputIntensity", 0.1)
}

func encodeDocumentEnhancer(e *encodeState) {
	e.putScalar("inputAmount", 1)
}
