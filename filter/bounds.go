package filter

// Bounds is the resize constraint. Zero (or negative) on an axis means
// that axis is unconstrained.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained reports whether neither axis is bounded.
func (b Bounds) Unconstrained() bool {
	return b.MaxWidth <= 0 && b.MaxHeight <= 0
}

// Exceeded reports whether an ow x oh image violates either bound.
func (b Bounds) Exceeded(ow, oh int) bool {
	if b.MaxWidth > 0 && ow > b.MaxWidth {
		return true
	}
	if b.MaxHeight > 0 && oh > b.MaxHeight {
		return true
	}
	return false
}

// Fit computes the bounded target size for an ow x oh image. The width cap
// is applied first; the height cap then checks the already-scaled height
// and recomputes width from the original aspect ratio. Integer division
// truncates. Extreme aspect ratios can truncate an axis to zero; codec
// resize rejects such targets.
func (b Bounds) Fit(ow, oh int) (int, int) {
	nw, nh := ow, oh

	if b.MaxWidth > 0 && ow > b.MaxWidth {
		nw = b.MaxWidth
		nh = oh * b.MaxWidth / ow
	}

	if b.MaxHeight > 0 && nh > b.MaxHeight {
		nh = b.MaxHeight
		nw = ow * b.MaxHeight / oh
	}

	return nw, nh
}

// Standard sizes
var (
	Thumbnail = Bounds{MaxWidth: 245, MaxHeight: 156}
	Small     = Bounds{MaxWidth: 500, MaxHeight: 500}
	Medium    = Bounds{MaxWidth: 750, MaxHeight: 750}
	Large     = Bounds{MaxWidth: 1000, MaxHeight: 1000}
)
