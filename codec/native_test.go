package codec

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/leeforge/imagefit/errors"
	imagetest "github.com/leeforge/imagefit/testing"
)

func TestNativeDecodeResizeEncodePNG(t *testing.T) {
	c := NewNative()
	data := imagetest.PNGBytes(t, 80, 60)

	d, err := c.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if d.Format != "png" {
		t.Errorf("decoded format = %q, want png", d.Format)
	}

	resized, err := c.Resize(d, 40, 30, nil)
	if err != nil {
		t.Fatalf("Resize returned error: %v", err)
	}
	if b := resized.Image.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("resized to %dx%d, want 40x30", b.Dx(), b.Dy())
	}

	var out bytes.Buffer
	if err := c.Encode(&out, resized, nil); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("re-decode of output failed: %v", err)
	}
	if format != "png" {
		t.Errorf("output format = %q, want png preserved", format)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("output dimensions = %dx%d, want 40x30", cfg.Width, cfg.Height)
	}
}

func TestNativeRoundTripPreservesFormat(t *testing.T) {
	c := NewNative()
	src := imagetest.GradientImage(50, 40)

	var jpegBuf, gifBuf, bmpBuf, tiffBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, src, nil); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}
	if err := gif.Encode(&gifBuf, src, nil); err != nil {
		t.Fatalf("gif encode failed: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp encode failed: %v", err)
	}
	if err := tiff.Encode(&tiffBuf, src, nil); err != nil {
		t.Fatalf("tiff encode failed: %v", err)
	}

	tests := []struct {
		format string
		data   []byte
	}{
		{"jpeg", jpegBuf.Bytes()},
		{"gif", gifBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
		{"tiff", tiffBuf.Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			d, err := c.Decode(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if d.Format != tt.format {
				t.Fatalf("decoded format = %q, want %q", d.Format, tt.format)
			}

			resized, err := c.Resize(d, 25, 20, nil)
			if err != nil {
				t.Fatalf("Resize returned error: %v", err)
			}

			var out bytes.Buffer
			if err := c.Encode(&out, resized, nil); err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}

			_, format, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
			if err != nil {
				t.Fatalf("re-decode of output failed: %v", err)
			}
			if format != tt.format {
				t.Errorf("output format = %q, want %q preserved", format, tt.format)
			}
		})
	}
}

func TestNativeWebPRoundTrip(t *testing.T) {
	c := NewNative()

	d := &Decoded{Image: imagetest.GradientImage(30, 20), Format: "webp"}
	var out bytes.Buffer
	if err := c.Encode(&out, d, Options{OptQuality: 90}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	back, err := c.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode of webp output failed: %v", err)
	}
	if back.Format != "webp" {
		t.Errorf("round-trip format = %q, want webp", back.Format)
	}
	if b := back.Image.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("round-trip dimensions = %dx%d, want 30x20", b.Dx(), b.Dy())
	}
}

func TestNativeAVIFRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("avif encoding is slow")
	}
	c := NewNative()

	d := &Decoded{Image: imagetest.GradientImage(16, 16), Format: "avif"}
	var out bytes.Buffer
	if err := c.Encode(&out, d, Options{OptSpeed: 10}); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	back, err := c.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode of avif output failed: %v", err)
	}
	if back.Format != "avif" {
		t.Errorf("round-trip format = %q, want avif", back.Format)
	}
}

func TestNativeUnknownFormatFallsBackToJPEG(t *testing.T) {
	c := NewNative()

	d := &Decoded{Image: imagetest.GradientImage(20, 20), Format: "heic"}
	var out bytes.Buffer
	if err := c.Encode(&out, d, nil); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("re-decode of output failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("fallback format = %q, want jpeg", format)
	}
}

func TestNativeResizeRejectsNonPositive(t *testing.T) {
	c := NewNative()
	d := &Decoded{Image: imagetest.GradientImage(10, 10), Format: "png"}

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resize(d, tt.w, tt.h, nil)
			if err == nil {
				t.Fatal("expected error for non-positive target")
			}
			if errors.TypeOf(err) != errors.ErrorTypeResize {
				t.Errorf("error type = %q, want resize", errors.TypeOf(err))
			}
		})
	}
}

func TestNativeResizeNilDecoded(t *testing.T) {
	c := NewNative()
	if _, err := c.Resize(nil, 10, 10, nil); err == nil {
		t.Error("expected error for nil decoded image")
	}
}

func TestNativeDecodeGarbage(t *testing.T) {
	c := NewNative()

	_, err := c.Decode(strings.NewReader("definitely not pixels"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.TypeOf(err) != errors.ErrorTypeDecode {
		t.Errorf("error type = %q, want decode", errors.TypeOf(err))
	}
}

func TestNativeResampleFilterOptions(t *testing.T) {
	c := NewNative()
	d := &Decoded{Image: imagetest.GradientImage(40, 40), Format: "png"}

	for _, filter := range []string{"nearest", "bilinear", "bicubic", "mitchell", "lanczos2", "lanczos3"} {
		t.Run(filter, func(t *testing.T) {
			resized, err := c.Resize(d, 20, 20, Options{OptFilter: filter})
			if err != nil {
				t.Fatalf("Resize with filter %q returned error: %v", filter, err)
			}
			if b := resized.Image.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
				t.Errorf("resized to %dx%d, want 20x20", b.Dx(), b.Dy())
			}
		})
	}
}

func TestNativeJPEGQualityOption(t *testing.T) {
	c := NewNative()
	d := &Decoded{Image: imagetest.GradientImage(100, 100), Format: "jpeg"}

	var high, low bytes.Buffer
	if err := c.Encode(&high, d, Options{OptQuality: 95}); err != nil {
		t.Fatalf("Encode quality 95 returned error: %v", err)
	}
	if err := c.Encode(&low, d, Options{OptQuality: 10}); err != nil {
		t.Fatalf("Encode quality 10 returned error: %v", err)
	}

	if low.Len() >= high.Len() {
		t.Errorf("quality 10 output (%d bytes) should be smaller than quality 95 (%d bytes)",
			low.Len(), high.Len())
	}
}
