package color

import "github.com/gogpu/packpix/pixel"

// RGBToHSV converts the color channels of p from (R, G, B) to (H, S, V) in
// place. The mask channel and coordinates are not touched.
//
// Gray pixels (max == min) get hue 0 and black gets saturation 0.
// Ties between dominant channels resolve in channel order A, B, C.
func RGBToHSV(p *pixel.Pixel) {
	r, g, b := int(p.A), int(p.B), int(p.C)

	v := max(r, g, b)
	delta := v - min(r, g, b)

	var h int
	switch {
	case delta == 0:
		h = 0
	case v == r:
		// 255*(g-b)/delta is in [-255, 255]; wrap negatives onto the top
		// of the wheel before scaling down.
		h = euclidMod(255*(g-b)/delta, hueSpan) / hueScale
	case v == g:
		h = (255*(b-r)/delta + greenOffset) / hueScale
	default:
		h = (255*(r-g)/delta + blueOffset) / hueScale
	}

	var s int
	if v != 0 {
		s = delta * maxChannel / v
	}

	p.A = uint8(h)
	p.B = uint8(s)
	p.C = uint8(v)
}

// HSVToRGB converts the color channels of p from (H, S, V) to (R, G, B) in
// place. The mask channel and coordinates are not touched.
func HSVToRGB(p *pixel.Pixel) {
	h, s, v := int(p.A), int(p.B), int(p.C)

	c := s * v / maxChannel
	x := c * (maxChannel - abs((hueScale*h)%rampSpan-maxChannel)) / maxChannel
	m := v - c

	var r, g, b int
	switch {
	case h <= bucketRedYellow:
		r, g, b = c, x, 0
	case h <= bucketYellowGreen:
		r, g, b = x, c, 0
	case h <= bucketGreenCyan:
		r, g, b = 0, c, x
	case h <= bucketCyanBlue:
		r, g, b = 0, x, c
	case h <= bucketBlueMagenta:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	// x <= c and c+m == v, so every channel stays within [0, v].
	p.A = uint8(r + m)
	p.B = uint8(g + m)
	p.C = uint8(b + m)
}

// euclidMod returns a mod n in [0, n).
func euclidMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
