// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import "math"

// Transition schema routines. Every transition carries inputTime in [0, 1];
// the target image is the pipeline's secondary texture binding.

func encodeDissolveTransition(e *encodeState) {
	e.putScalar("inputTime", 0)
}

func encodeSwipeTransition(e *encodeState) {
	e.putColor("inputColor", colorWhite)
	e.putScalar("inputTime", 0)
	e.putScalar("inputAngle", 0)
	e.putScalar("inputWidth", 300)
	e.putScalar("inputOpacity", 0)
}

func encodeBarsSwipeTransition(e *encodeState) {
	e.putScalar("inputAngle", math.Pi)
	e.putScalar("inputWidth", 30)
	e.putScalar("inputBarOffset", 10)
	e.putScalar("inputTime", 0)
}

func encodeModTransition(e *encodeState) {
	e.putCenter()
	e.putScalar("inputTime", 0)
	e.putScalar("inputAngle", 2)
	e.putScalar("inputRadius", 150)
	e.putScalar("inputCompression", 300)
}

func encodeFlashTransition(e *encodeState) {
	e.putCenter()
	e.putColor("inputColor", colorWhite)
	e.putScalar("inputTime", 0)
	e.putScalar("inputMaxStriationRadius", 2.58)
	e.putScalar("inputStriationStrength", 0.5)
	e.putScalar("inputStriationContrast", 1.375)
	e.putScalar("inputFadeThreshold", 0.85)
}
