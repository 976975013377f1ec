// Package testing provides image fixtures shared by the package tests.
// Import it aliased, e.g. imagetest "github.com/leeforge/imagefit/testing".
package testing

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/leeforge/imagefit/artifact"
)

// GradientImage builds a w×h RGBA image with a deterministic gradient, so
// encoded fixtures are reproducible across runs.
func GradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// PNGBytes encodes a gradient image of the given size as PNG.
func PNGBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, GradientImage(w, h)); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

// JPEGBytes encodes a gradient image of the given size as JPEG.
func JPEGBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, GradientImage(w, h), nil); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}
	return buf.Bytes()
}

// PNGHandle wraps a PNG gradient image as a named, rewindable handle.
func PNGHandle(t *testing.T, name string, w, h int) artifact.Handle {
	t.Helper()
	return artifact.Named(bytes.NewReader(PNGBytes(t, w, h)), name)
}

// JPEGHandle wraps a JPEG gradient image as a named, rewindable handle.
func JPEGHandle(t *testing.T, name string, w, h int) artifact.Handle {
	t.Helper()
	return artifact.Named(bytes.NewReader(JPEGBytes(t, w, h)), name)
}

// Position reports the current offset of a seeker without moving it.
func Position(t *testing.T, s io.Seeker) int64 {
	t.Helper()
	p, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("position check failed: %v", err)
	}
	return p
}

// DecodedSize decodes the handle and reports its pixel dimensions, leaving
// the handle rewound to the start.
func DecodedSize(t *testing.T, h artifact.Handle) (int, int) {
	t.Helper()
	if err := artifact.Rewind(h); err != nil {
		t.Fatalf("rewind failed: %v", err)
	}
	cfg, _, err := image.DecodeConfig(h)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if err := artifact.Rewind(h); err != nil {
		t.Fatalf("rewind failed: %v", err)
	}
	return cfg.Width, cfg.Height
}
