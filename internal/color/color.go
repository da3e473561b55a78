// Package color provides integer RGB <-> HSV conversion for packed pixels.
//
// All three HSV components use the full 0-255 byte range. Hue is scaled so
// that one full turn of the color wheel is 256 steps: red starts at 0,
// green sits at 85 and blue at 170. No floating point is used anywhere.
package color

// Hue wheel constants. The wheel is worked at six times the byte scale so
// each of the three dominant-channel thirds is exactly 510 units wide.
const (
	// hueSpan is the size of the scaled hue wheel (6 * 255).
	hueSpan = 1530

	// hueScale divides a scaled hue back down to the byte range.
	hueScale = 6

	// Offsets of the green- and blue-dominant thirds on the scaled wheel.
	greenOffset = 510
	blueOffset  = 1020

	// rampSpan is the period of the triangular ramp used by HSVToRGB.
	rampSpan = 510

	maxChannel = 255
)

// Upper bounds of the six 43-wide hue buckets used by HSVToRGB.
// The last bucket runs to 255.
const (
	bucketRedYellow   = 42
	bucketYellowGreen = 85
	bucketGreenCyan   = 127
	bucketCyanBlue    = 170
	bucketBlueMagenta = 212
)
