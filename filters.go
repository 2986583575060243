// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

import (
	"slices"
)

// filterEncoders is the total mapping from filter name to schema routine.
// Each routine appends a fixed, filter-specific field sequence whose order
// and padding must match the uniform struct declared in the filter's WGSL
// shader — that shader contract is external to this package and cannot be
// validated here. Names absent from the table encode a header-only buffer.
var filterEncoders = map[string]encoderFunc{
	// Blur and sharpen family.
	"CIGaussianBlur":       encodeGaussianBlur,
	"CIBoxBlur":            encodeBoxBlur,
	"CIDiscBlur":           encodeDiscBlur,
	"CIMotionBlur":         encodeMotionBlur,
	"CIZoomBlur":           encodeZoomBlur,
	"CIMaskedVariableBlur": encodeMaskedVariableBlur,
	"CIBokehBlur":          encodeBokehBlur,
	"CINoiseReduction":     encodeNoiseReduction,
	"CIMedianFilter":       encodeHeaderOnly,
	"CIMorphologyMinimum":  encodeMorphologyMinimum,
	"CIMorphologyMaximum":  encodeMorphologyMaximum,
	"CIMorphologyGradient": encodeMorphologyGradient,

	// Color adjustments.
	"CIColorControls":         encodeColorControls,
	"CIExposureAdjust":        encodeExposureAdjust,
	"CIGammaAdjust":           encodeGammaAdjust,
	"CIHueAdjust":             encodeHueAdjust,
	"CIVibrance":              encodeVibrance,
	"CIWhitePointAdjust":      encodeWhitePointAdjust,
	"CITemperatureAndTint":    encodeTemperatureAndTint,
	"CIColorClamp":            encodeColorClamp,
	"CIColorPolynomial":       encodeColorPolynomial,
	"CIColorMatrix":           encodeColorMatrix,
	"CIToneCurve":             encodeToneCurve,
	"CILinearToSRGBToneCurve": encodeHeaderOnly,
	"CISRGBToneCurveToLinear": encodeHeaderOnly,

	// Color effects.
	"CISepiaTone":           encodeSepiaTone,
	"CIColorMonochrome":     encodeColorMonochrome,
	"CIColorPosterize":      encodeColorPosterize,
	"CIFalseColor":          encodeFalseColor,
	"CIVignette":            encodeVignette,
	"CIVignetteEffect":      encodeVignetteEffect,
	"CIDither":              encodeDither,
	"CIDocumentEnhancer":    encodeDocumentEnhancer,
	"CIColorInvert":         encodeHeaderOnly,
	"CIMinimumComponent":    encodeHeaderOnly,
	"CIMaximumComponent":    encodeHeaderOnly,
	"CIMaskToAlpha":         encodeHeaderOnly,
	"CIPhotoEffectChrome":   encodeHeaderOnly,
	"CIPhotoEffectFade":     encodeHeaderOnly,
	"CIPhotoEffectInstant":  encodeHeaderOnly,
	"CIPhotoEffectMono":     encodeHeaderOnly,
	"CIPhotoEffectNoir":     encodeHeaderOnly,
	"CIPhotoEffectProcess":  encodeHeaderOnly,
	"CIPhotoEffectTonal":    encodeHeaderOnly,
	"CIPhotoEffectTransfer": encodeHeaderOnly,

	// Convolution kernels.
	"CIConvolution3X3":         encodeConvolution3X3,
	"CIConvolution5X5":         encodeConvolution5X5,
	"CIConvolution7X7":         encodeConvolution7X7,
	"CIConvolution9Horizontal": encodeConvolution9Horizontal,
	"CIConvolution9Vertical":   encodeConvolution9Vertical,

	// Gradients and generators.
	"CIConstantColorGenerator": encodeConstantColorGenerator,
	"CILinearGradient":         encodeLinearGradient,
	"CISmoothLinearGradient":   encodeSmoothLinearGradient,
	"CIRadialGradient":         encodeRadialGradient,
	"CIGaussianGradient":       encodeGaussianGradient,
	"CIStripesGenerator":       encodeStripesGenerator,
	"CICheckerboardGenerator":  encodeCheckerboardGenerator,
	"CIRandomGenerator":        encodeHeaderOnly,

	// Distortions.
	"CIBumpDistortion":         encodeBumpDistortion,
	"CIBumpDistortionLinear":   encodeBumpDistortionLinear,
	"CICircleSplashDistortion": encodeCircleSplashDistortion,
	"CIHoleDistortion":         encodeHoleDistortion,
	"CIPinchDistortion":        encodePinchDistortion,
	"CITwirlDistortion":        encodeTwirlDistortion,
	"CIVortexDistortion":       encodeVortexDistortion,
	"CIGlassDistortion":        encodeGlassDistortion,
	"CIDisplacementDistortion": encodeDisplacementDistortion,

	// Stylize.
	"CIBloom":                  encodeBloom,
	"CIGloom":                  encodeGloom,
	"CIEdges":                  encodeEdges,
	"CIEdgeWork":               encodeEdgeWork,
	"CISharpenLuminance":       encodeSharpenLuminance,
	"CIUnsharpMask":            encodeUnsharpMask,
	"CIHighlightShadowAdjust":  encodeHighlightShadowAdjust,
	"CIPixellate":              encodePixellate,
	"CIHexagonalPixellate":     encodeHexagonalPixellate,
	"CICrystallize":            encodeCrystallize,
	"CIPointillize":            encodePointillize,
	"CIDotScreen":              encodeDotScreen,
	"CILineScreen":             encodeLineScreen,
	"CICircularScreen":         encodeCircularScreen,
	"CIHatchedScreen":          encodeHatchedScreen,
	"CIComicEffect":            encodeHeaderOnly,
	"CIGaborGradients":         encodeHeaderOnly,

	// Geometry adjustments.
	"CICrop":                  encodeCrop,
	"CIAffineTransform":       encodeAffineTransform,
	"CIAffineTile":            encodeAffineTile,
	"CIAffineClamp":           encodeAffineClamp,
	"CILanczosScaleTransform": encodeLanczosScaleTransform,
	"CIStraightenFilter":      encodeStraightenFilter,
	"CIPerspectiveTransform":  encodePerspectiveTransform,
	"CIPerspectiveCorrection": encodePerspectiveCorrection,

	// Transitions.
	"CIDissolveTransition":  encodeDissolveTransition,
	"CISwipeTransition":     encodeSwipeTransition,
	"CIBarsSwipeTransition": encodeBarsSwipeTransition,
	"CIModTransition":       encodeModTransition,
	"CIFlashTransition":     encodeFlashTransition,

	// Compositing and blend operators carry no parameters of their own; the
	// shader reads both source textures and the dimension header.
	"CISourceOverCompositing":     encodeHeaderOnly,
	"CISourceInCompositing":       encodeHeaderOnly,
	"CISourceOutCompositing":      encodeHeaderOnly,
	"CISourceAtopCompositing":     encodeHeaderOnly,
	"CIAdditionCompositing":       encodeHeaderOnly,
	"CIMultiplyCompositing":       encodeHeaderOnly,
	"CIMaximumCompositing":        encodeHeaderOnly,
	"CIMinimumCompositing":        encodeHeaderOnly,
	"CIMultiplyBlendMode":         encodeHeaderOnly,
	"CIScreenBlendMode":           encodeHeaderOnly,
	"CIOverlayBlendMode":          encodeHeaderOnly,
	"CIDarkenBlendMode":           encodeHeaderOnly,
	"CILightenBlendMode":          encodeHeaderOnly,
	"CIColorDodgeBlendMode":       encodeHeaderOnly,
	"CIColorBurnBlendMode":        encodeHeaderOnly,
	"CISoftLightBlendMode":        encodeHeaderOnly,
	"CIHardLightBlendMode":        encodeHeaderOnly,
	"CIDifferenceBlendMode":       encodeHeaderOnly,
	"CIExclusionBlendMode":        encodeHeaderOnly,
	"CIHueBlendMode":              encodeHeaderOnly,
	"CISaturationBlendMode":       encodeHeaderOnly,
	"CIColorBlendMode":            encodeHeaderOnly,
	"CILuminosityBlendMode":       encodeHeaderOnly,
	"CIDivideBlendMode":           encodeHeaderOnly,
	"CISubtractBlendMode":         encodeHeaderOnly,
	"CILinearBurnBlendMode":       encodeHeaderOnly,
	"CILinearDodgeBlendMode":      encodeHeaderOnly,
	"CIPinLightBlendMode":         encodeHeaderOnly,
}

// FilterNames returns the sorted list of filter names the encoder recognizes.
func FilterNames() []string {
	names := make([]string, 0, len(filterEncoders))
	for name := range filterEncoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsSupported reports whether the encoder has a schema routine for name.
// Unsupported names still encode (to a header-only buffer); this exists so
// the dispatch layer can surface an unsupported-filter error to callers
// before touching the GPU.
func IsSupported(name string) bool {
	_, ok := filterEncoders[name]
	return ok
}
