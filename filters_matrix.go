// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

package coreimage

// Convolution kernel schema routines. Each encodes the full weight grid as
// consecutive floats followed by the bias term; the weight count is fixed by
// the filter name, so a short inputWeights vector is padded with the identity
// kernel's remaining entries and a long one is truncated.

// identityKernel returns an n-weight kernel with 1 at the center tap and 0
// elsewhere.
func identityKernel(n int) []float32 {
	w := make([]float32, n)
	w[n/2] = 1
	return w
}

func encodeConvolutionWeights(e *encodeState, n int) {
	weights := e.params.floats("inputWeights", identityKernel(n))
	e.putFloats(weights...)
	e.putScalar("inputBias", 0)
}

func encodeConvolution3X3(e *encodeState) {
	encodeConvolutionWeights(e, 9)
}

func encodeConvolution5X5(e *encodeState) {
	encodeConvolutionWeights(e, 25)
}

func encodeConvolution7X7(e *encodeState) {
	encodeConvolutionWeights(e, 49)
}

func encodeConvolution9Horizontal(e *encodeState) {
	encodeConvolutionWeights(e, 9)
}

func encodeConvolution9Vertical(e *encodeState) {
	encodeConvolutionWeights(e, 9)
}
