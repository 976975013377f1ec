package codec

import (
	"image"
	"io"
)

// Decoded carries pixel data plus the format name reported by decoding,
// so re-encoding can preserve the source format.
type Decoded struct {
	Image  image.Image
	Format string
}

// Codec decodes, resizes and re-encodes images. Implementations must be
// safe for concurrent use; both shipped backends are stateless.
type Codec interface {
	// Name returns the backend identifier used for registry lookup.
	Name() string
	// Decode reads a complete image from r.
	Decode(r io.Reader) (*Decoded, error)
	// Resize scales d to exactly width x height. Non-positive targets
	// are rejected.
	Resize(d *Decoded, width, height int, opts Options) (*Decoded, error)
	// Encode writes d to w, preserving the source format where the
	// backend supports it.
	Encode(w io.Writer, d *Decoded, opts Options) error
}

// Dimensions probes the image header for width and height without decoding
// pixel data. The reader is consumed.
func Dimensions(r io.Reader) (int, int, error) {
	config, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	return config.Width, config.Height, nil
}
