package packpix

import "github.com/gogpu/packpix/pixel"

// Snapshot is a read-only copy of an Image taken at a point in time.
// Later changes to the image are not reflected in the snapshot.
type Snapshot struct {
	width  int
	height int
	space  ColorSpace
	data   []pixel.Word
}

// Snapshot copies the current pixels of img.
func (img *Image) Snapshot() *Snapshot {
	return img.snapshotInto(make([]pixel.Word, len(img.data)))
}

// snapshotInto copies the pixels of img into data, which must have the
// same length as the image.
func (img *Image) snapshotInto(data []pixel.Word) *Snapshot {
	copy(data, img.data)
	return &Snapshot{
		width:  img.width,
		height: img.height,
		space:  img.space,
		data:   data,
	}
}

// Width returns the width of the snapshot in pixels.
func (s *Snapshot) Width() int { return s.width }

// Height returns the height of the snapshot in pixels.
func (s *Snapshot) Height() int { return s.height }

// ColorSpace returns the color space the image had when the snapshot was
// taken.
func (s *Snapshot) ColorSpace() ColorSpace { return s.space }

// Word returns the packed pixel at (x, y). Out-of-range coordinates panic.
func (s *Snapshot) Word(x, y int) pixel.Word {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panicOutOfRange(x, y, s.width, s.height)
	}
	return s.data[y*s.width+x]
}

// Get returns the unpacked pixel at (x, y) with its coordinate attached.
func (s *Snapshot) Get(x, y int) pixel.Pixel {
	return pixel.UnpackAt(s.Word(x, y), x, y)
}

// Mask returns the mask channel at (x, y).
func (s *Snapshot) Mask(x, y int) uint8 {
	return s.Word(x, y).Mask()
}

// Access returns the three color channels at (x, y).
func (s *Snapshot) Access(x, y int) (a, b, c uint8) {
	return s.Word(x, y).Color()
}
