package codec

import (
	"github.com/spf13/cast"

	"github.com/leeforge/imagefit/json"
)

// Option keys interpreted by the shipped backends. Backends ignore keys
// they do not understand, so one bag can configure several formats.
const (
	// OptQuality is the lossy quality, 1-100 (jpeg, webp, avif).
	OptQuality = "quality"
	// OptFilter names the resample filter (nearest, bilinear, bicubic,
	// mitchell, lanczos2, lanczos3).
	OptFilter = "filter"
	// OptPNGCompression selects the png compression level (default, none,
	// speed, best).
	OptPNGCompression = "png_compression"
	// OptLossless switches webp to lossless encoding.
	OptLossless = "lossless"
	// OptSpeed is the avif encoder speed, 0-10.
	OptSpeed = "speed"
	// OptNumColors is the gif palette size, 1-256.
	OptNumColors = "num_colors"
)

// Options is an opaque bag of encode and resize settings. The filter
// forwards it verbatim; only codec backends interpret it.
type Options map[string]any

// Int returns the value at key coerced to int, or def when the key is
// absent or not coercible.
func (o Options) Int(key string, def int) int {
	if v, ok := o[key]; ok {
		if i, err := cast.ToIntE(v); err == nil {
			return i
		}
	}
	return def
}

// String returns the value at key coerced to string, or def.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
	}
	return def
}

// Bool returns the value at key coerced to bool, or def.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return def
}

// Float returns the value at key coerced to float64, or def.
func (o Options) Float(key string, def float64) float64 {
	if v, ok := o[key]; ok {
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	return def
}

// JSON renders the bag for debug logging.
func (o Options) JSON() string {
	s, err := json.MarshalToString(o)
	if err != nil {
		return "{}"
	}
	return s
}

// Parse builds an Options from a JSON object. Empty input yields an empty
// bag.
func Parse(data []byte) (Options, error) {
	opts := Options{}
	if len(data) == 0 {
		return opts, nil
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
