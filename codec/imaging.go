package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/leeforge/imagefit/errors"
)

// Imaging implements Codec on disintegration/imaging. Decoding applies EXIF
// auto-orientation, so rotated camera uploads stay upright after the EXIF
// block is dropped by re-encoding. Formats outside imaging's set (webp,
// avif) re-encode as JPEG.
type Imaging struct{}

func NewImaging() *Imaging {
	return &Imaging{}
}

func init() {
	if err := Register(NewImaging()); err != nil {
		panic(err)
	}
}

func (c *Imaging) Name() string {
	return "imaging"
}

func (c *Imaging) Decode(r io.Reader) (*Decoded, error) {
	// imaging.Decode does not report the format, so sniff it from the
	// buffered header first
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeDecode, "read image bytes failed")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeDecode, "image format detection failed")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeDecode, "image decode failed")
	}

	return &Decoded{Image: img, Format: format}, nil
}

func (c *Imaging) Resize(d *Decoded, width, height int, opts Options) (*Decoded, error) {
	if d == nil || d.Image == nil {
		return nil, errors.New(errors.ErrorTypeResize, "no decoded image to resize")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrorTypeResize,
			fmt.Sprintf("invalid target dimensions %dx%d", width, height))
	}

	img := imaging.Resize(d.Image, width, height, imagingResample(opts))
	return &Decoded{Image: img, Format: d.Format}, nil
}

func (c *Imaging) Encode(w io.Writer, d *Decoded, opts Options) error {
	if d == nil || d.Image == nil {
		return errors.New(errors.ErrorTypeEncode, "no decoded image to encode")
	}

	format := imagingFormat(d.Format)

	var encodeOpts []imaging.EncodeOption
	switch format {
	case imaging.JPEG:
		encodeOpts = append(encodeOpts, imaging.JPEGQuality(opts.Int(OptQuality, DefaultQuality)))
	case imaging.PNG:
		encodeOpts = append(encodeOpts, imaging.PNGCompressionLevel(pngCompression(opts)))
	case imaging.GIF:
		encodeOpts = append(encodeOpts, imaging.GIFNumColors(opts.Int(OptNumColors, DefaultNumColors)))
	}

	if err := imaging.Encode(w, d.Image, format, encodeOpts...); err != nil {
		return errors.Wrap(err, errors.ErrorTypeEncode, "image encode failed")
	}
	return nil
}

// imagingFormat maps a decode format name to an imaging target format.
func imagingFormat(name string) imaging.Format {
	switch name {
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "tiff":
		return imaging.TIFF
	case "bmp":
		return imaging.BMP
	default:
		return imaging.JPEG
	}
}

// imagingResample maps the filter option to an imaging resample filter.
func imagingResample(opts Options) imaging.ResampleFilter {
	switch opts.String(OptFilter, "lanczos3") {
	case "nearest":
		return imaging.NearestNeighbor
	case "bilinear":
		return imaging.Linear
	case "bicubic":
		return imaging.CatmullRom
	case "mitchell":
		return imaging.MitchellNetravali
	case "box":
		return imaging.Box
	default:
		return imaging.Lanczos
	}
}

var _ Codec = (*Imaging)(nil)
