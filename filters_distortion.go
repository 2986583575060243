// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import "math"

// Distortion schema routines.

func encodeBumpDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putScalar("inputScale", 0.5)
}

func encodeBumpDistortionLinear(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putScalar("inputAngle", 0)
	e.putScalar("inputScale", 0.5)
}

func encodeCircleSplashDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 150)
}

func encodeHoleDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 150)
}

func encodePinchDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putScalar("inputScale", 0.5)
}

func encodeTwirlDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putScalar("inputAngle", math.Pi)
}

// Default vortex angle is 56.55 radians, roughly nine full turns.
func encodeVortexDistortion(e *encodeState) {
	e.putCenter()
	e.putScalar("inputRadius", 300)
	e.putScalar("inputAngle", 56.549)
}

// encodeGlassDistortion appends only the displacement scale; the refraction
// texture is a secondary binding supplied by the pipeline.
func encodeGlassDistortion(e *encodeState) {
	e.putScalar("inputScale", 200)
}

func encodeDisplacementDistortion(e *encodeState) {
	e.putScalar("inputScale", 50)
}
