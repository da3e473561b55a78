package packpix

import "github.com/gogpu/packpix/pixel"

// Image is a fixed-size grid of packed pixels stored in row-major order.
//
// Width and height never change after construction. Coordinates outside
// [0, width) x [0, height) are a programming error: accessors panic rather
// than returning an error.
//
// Thread safety: Image is not safe for concurrent mutation. A single owner
// drives traversals; Snapshot gives an independent read-only copy.
type Image struct {
	width  int
	height int
	space  ColorSpace
	data   []pixel.Word
}

// NewImage creates an image with the given dimensions. Without WithData the
// pixels are zeroed (black, mask 0).
func NewImage(width, height int, opts ...Option) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data := make([]pixel.Word, width*height)
	if o.data != nil {
		if len(o.data) != len(data) {
			return nil, ErrDataSize
		}
		copy(data, o.data)
	}

	return &Image{
		width:  width,
		height: height,
		space:  o.space,
		data:   data,
	}, nil
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.height
}

// ColorSpace returns the current color space tag.
func (img *Image) ColorSpace() ColorSpace {
	return img.space
}

// Len returns the number of pixels, width*height.
func (img *Image) Len() int {
	return len(img.data)
}

// Data returns the packed pixel storage in row-major order.
// Modifying the slice modifies the image.
func (img *Image) Data() []pixel.Word {
	return img.data
}

// index returns the storage index of (x, y), panicking when out of range.
func (img *Image) index(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panicOutOfRange(x, y, img.width, img.height)
	}
	return y*img.width + x
}

// Word returns the packed pixel at (x, y).
func (img *Image) Word(x, y int) pixel.Word {
	return img.data[img.index(x, y)]
}

// SetWord stores a packed pixel at (x, y).
func (img *Image) SetWord(x, y int, w pixel.Word) {
	img.data[img.index(x, y)] = w
}

// Get returns the unpacked pixel at (x, y) with its coordinate attached.
func (img *Image) Get(x, y int) pixel.Pixel {
	return pixel.UnpackAt(img.Word(x, y), x, y)
}

// Set packs p and stores it at (x, y). The coordinate carried by p is
// ignored.
func (img *Image) Set(x, y int, p pixel.Pixel) {
	img.SetWord(x, y, pixel.Pack(p))
}

// Mask returns the mask channel at (x, y).
func (img *Image) Mask(x, y int) uint8 {
	return img.Word(x, y).Mask()
}

// SetMask replaces the mask channel at (x, y), keeping the color channels.
func (img *Image) SetMask(x, y int, m uint8) {
	i := img.index(x, y)
	img.data[i] = img.data[i].WithMask(m)
}

// Access returns the three color channels at (x, y) without the mask.
// This is the read-only view needed to marshal an image elsewhere.
func (img *Image) Access(x, y int) (a, b, c uint8) {
	return img.Word(x, y).Color()
}

// Clone returns a deep copy of the image, including its color space tag.
func (img *Image) Clone() *Image {
	data := make([]pixel.Word, len(img.data))
	copy(data, img.data)
	return &Image{
		width:  img.width,
		height: img.height,
		space:  img.space,
		data:   data,
	}
}

// Fill sets every pixel to p, including its mask.
func (img *Image) Fill(p pixel.Pixel) {
	w := pixel.Pack(p)
	for i := range img.data {
		img.data[i] = w
	}
}
