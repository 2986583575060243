// Copyright 2026 The OpenCoreImage Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imageio converts between the engine's raw RGBA pixel blocks and
// compressed image formats. The GPU side of the engine deals exclusively in
// tightly packed 8-bit RGBA; this package is the boundary where those bytes
// meet PNG, JPEG, and WebP files.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	webp "github.com/daanv2/go-webp"
	webpconfig "github.com/daanv2/go-webp/pkg/config"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP with image.Decode
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when pixel or file data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrBadDimensions is returned when pixel data does not match the stated
	// width and height.
	ErrBadDimensions = errors.New("imageio: pixel data does not match dimensions")
)

// Format identifies a compressed image format.
type Format int

// Supported formats.
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// EncodeOptions controls lossy encoders. The zero value selects defaults.
type EncodeOptions struct {
	// Quality is the lossy quality in [1, 100]. 0 means the format default
	// (JPEG 90, WebP 75). PNG ignores it.
	Quality int
}

func (o EncodeOptions) quality(def int) int {
	q := o.Quality
	if q == 0 {
		q = def
	}
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}

// EncodeRGBA compresses a tightly packed, non-premultiplied RGBA pixel block
// to the given format and writes the result to w.
func EncodeRGBA(w io.Writer, pix []byte, width, height int, format Format, opts EncodeOptions) error {
	if len(pix) == 0 {
		return ErrEmptyData
	}
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBadDimensions, len(pix), width, height)
	}

	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
		return nil
	case FormatJPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality(90)}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
		return nil
	case FormatWebP:
		conf := &webpconfig.Config{}
		if err := conf.Init(); err != nil {
			return fmt.Errorf("imageio: webp config: %w", err)
		}
		conf.Quality = float64(opts.quality(75))
		if err := webp.Encode(w, img, conf); err != nil {
			return fmt.Errorf("imageio: encode WebP: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// EncodeRGBAToBytes is EncodeRGBA into a fresh byte slice.
func EncodeRGBAToBytes(pix []byte, width, height int, format Format, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeRGBA(&buf, pix, width, height, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRGBA decodes a compressed image from r, auto-detecting the format,
// and returns tightly packed non-premultiplied RGBA bytes plus dimensions.
func DecodeRGBA(r io.Reader) ([]byte, int, int, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("imageio: decode: %w", err)
	}
	pix, w, h := toRGBA(img)
	return pix, w, h, nil
}

// DecodeRGBAFromBytes decodes from an in-memory encoded image.
func DecodeRGBAFromBytes(data []byte) ([]byte, int, int, error) {
	if len(data) == 0 {
		return nil, 0, 0, ErrEmptyData
	}
	return DecodeRGBA(bytes.NewReader(data))
}

// toRGBA flattens any decoded image into a tight NRGBA pixel block.
func toRGBA(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		return nrgba.Pix, width, height
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return dst.Pix, width, height
}
