package packpix

import "github.com/gogpu/packpix/pixel"

// Option configures an Image during creation.
//
// Example:
//
//	// Zeroed RGB image
//	img, err := packpix.NewImage(640, 480)
//
//	// Wrap already-packed HSV data
//	img, err := packpix.NewImage(640, 480,
//	    packpix.WithData(words),
//	    packpix.WithColorSpace(packpix.HSV))
type Option func(*imageOptions)

// imageOptions holds optional configuration for Image creation.
type imageOptions struct {
	data  []pixel.Word
	space ColorSpace
}

// defaultOptions returns the default image options.
func defaultOptions() imageOptions {
	return imageOptions{
		data:  nil, // zeroed storage is allocated if nil
		space: RGB,
	}
}

// WithData supplies initial packed pixel data in row-major order.
// The slice is copied; its length must be exactly width*height.
func WithData(data []pixel.Word) Option {
	return func(o *imageOptions) {
		o.data = data
	}
}

// WithColorSpace sets the color space the A/B/C channels are interpreted
// in. The default is RGB.
func WithColorSpace(cs ColorSpace) Option {
	return func(o *imageOptions) {
		o.space = cs
	}
}
