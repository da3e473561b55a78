package packpix

import (
	"log/slog"

	"github.com/gogpu/packpix/pixel"
)

// Range is an inclusive box over the three color channels, interpreted in
// whatever color space the image is in.
type Range struct {
	Lower [3]uint8
	Upper [3]uint8
}

// Contains reports whether every color channel of p lies within r.
func (r Range) Contains(p pixel.Pixel) bool {
	return r.Lower[0] <= p.A && p.A <= r.Upper[0] &&
		r.Lower[1] <= p.B && p.B <= r.Upper[1] &&
		r.Lower[2] <= p.C && p.C <= r.Upper[2]
}

// Threshold sets the mask of every pixel to in when its color lies within
// r and to out otherwise. It returns the number of pixels inside r.
func (img *Image) Threshold(r Range, in, out uint8) int {
	n := 0
	img.ForEach(func(p *pixel.Pixel) {
		if r.Contains(*p) {
			p.Mask = in
			n++
		} else {
			p.Mask = out
		}
	})

	Logger().Debug("threshold",
		slog.String("space", img.space.String()),
		slog.Int("inside", n),
		slog.Int("total", len(img.data)))
	return n
}
