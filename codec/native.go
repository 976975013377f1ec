package codec

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/leeforge/imagefit/errors"
)

// Default encode settings when the options bag does not override them.
const (
	DefaultQuality     = 85
	DefaultWebPQuality = 80
	DefaultAVIFQuality = 60
	DefaultAVIFSpeed   = 6
	DefaultNumColors   = 256
)

// Native implements Codec with per-format Go encoders
// No external image library (libvips) is required for deployment
type Native struct{}

func NewNative() *Native {
	return &Native{}
}

func init() {
	if err := Register(NewNative()); err != nil {
		panic(err)
	}
}

func (c *Native) Name() string {
	return "native"
}

func (c *Native) Decode(r io.Reader) (*Decoded, error) {
	// Decoders for every supported format are registered by the encoder
	// imports above (stdlib, x/image, webp, avif)
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeDecode, "image decode failed")
	}
	return &Decoded{Image: img, Format: format}, nil
}

func (c *Native) Resize(d *Decoded, width, height int, opts Options) (*Decoded, error) {
	if d == nil || d.Image == nil {
		return nil, errors.New(errors.ErrorTypeResize, "no decoded image to resize")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrorTypeResize,
			fmt.Sprintf("invalid target dimensions %dx%d", width, height))
	}

	img := resize.Resize(uint(width), uint(height), d.Image, resampleFilter(opts))
	return &Decoded{Image: img, Format: d.Format}, nil
}

func (c *Native) Encode(w io.Writer, d *Decoded, opts Options) error {
	if d == nil || d.Image == nil {
		return errors.New(errors.ErrorTypeEncode, "no decoded image to encode")
	}

	var err error
	switch d.Format {
	case "jpeg", "jpg":
		err = jpeg.Encode(w, d.Image, &jpeg.Options{Quality: opts.Int(OptQuality, DefaultQuality)})
	case "png":
		enc := &png.Encoder{CompressionLevel: pngCompression(opts)}
		err = enc.Encode(w, d.Image)
	case "gif":
		err = gif.Encode(w, d.Image, &gif.Options{NumColors: opts.Int(OptNumColors, DefaultNumColors)})
	case "bmp":
		err = bmp.Encode(w, d.Image)
	case "tiff":
		err = tiff.Encode(w, d.Image, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "webp":
		err = webp.Encode(w, d.Image, &webp.Options{
			Lossless: opts.Bool(OptLossless, false),
			Quality:  float32(opts.Int(OptQuality, DefaultWebPQuality)),
		})
	case "avif":
		quality := opts.Int(OptQuality, DefaultAVIFQuality)
		err = avif.Encode(w, d.Image, avif.Options{
			Quality:      quality,
			QualityAlpha: quality,
			Speed:        opts.Int(OptSpeed, DefaultAVIFSpeed),
		})
	default:
		// Unknown source formats re-encode as JPEG
		err = jpeg.Encode(w, d.Image, &jpeg.Options{Quality: opts.Int(OptQuality, DefaultQuality)})
	}

	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeEncode, "image encode failed")
	}
	return nil
}

// resampleFilter maps the filter option to an interpolation function.
// Lanczos3 is the default for quality.
func resampleFilter(opts Options) resize.InterpolationFunction {
	switch opts.String(OptFilter, "lanczos3") {
	case "nearest":
		return resize.NearestNeighbor
	case "bilinear":
		return resize.Bilinear
	case "bicubic":
		return resize.Bicubic
	case "mitchell":
		return resize.MitchellNetravali
	case "lanczos2":
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

// pngCompression maps the png_compression option to a compression level.
func pngCompression(opts Options) png.CompressionLevel {
	switch opts.String(OptPNGCompression, "default") {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

var _ Codec = (*Native)(nil)
