package packpix

import (
	"github.com/gogpu/packpix/internal/scratch"
	"github.com/gogpu/packpix/pixel"
)

// Every traversal follows the same discipline for each visited cell:
// unpack the stored word, hand the pixel to the callback, pack the
// (possibly modified) pixel back into the same cell.

// ForEach visits every pixel in row-major order. The callback receives the
// unpacked channels only; X and Y are zero.
func (img *Image) ForEach(f func(p *pixel.Pixel)) {
	for i, w := range img.data {
		p := pixel.Unpack(w)
		f(&p)
		img.data[i] = pixel.Pack(p)
	}
}

// ForEachIndexed visits pixels with border <= x < width-border and
// border <= y < height-border in row-major order. The callback receives the
// pixel with X and Y set. Nothing is visited when the border leaves no
// interior. A negative border panics.
func (img *Image) ForEachIndexed(border int, f func(p *pixel.Pixel)) {
	x0, y0, x1, y1 := img.interior(border)
	for y := y0; y < y1; y++ {
		row := y * img.width
		for x := x0; x < x1; x++ {
			p := pixel.UnpackAt(img.data[row+x], x, y)
			f(&p)
			img.data[row+x] = pixel.Pack(p)
		}
	}
}

// ForEachBorrowing is ForEachIndexed with read access to the whole image.
//
// The Snapshot handed to the callback is taken once, before the first
// pixel is visited, and is shared by every call in the pass. Writes made by
// earlier callbacks are never visible through it, so the result does not
// depend on visiting order. The snapshot buffer is recycled once the pass
// returns, so callbacks must not retain src.
func (img *Image) ForEachBorrowing(border int, f func(p *pixel.Pixel, src *Snapshot)) {
	x0, y0, x1, y1 := img.interior(border)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	buf := scratch.Get(len(img.data))
	defer scratch.Put(buf)
	src := img.snapshotInto(buf)

	for y := y0; y < y1; y++ {
		row := y * img.width
		for x := x0; x < x1; x++ {
			p := pixel.UnpackAt(img.data[row+x], x, y)
			f(&p, src)
			img.data[row+x] = pixel.Pack(p)
		}
	}
}

// interior returns the half-open bounds [x0, x1) x [y0, y1) left after
// removing border pixels from every edge.
func (img *Image) interior(border int) (x0, y0, x1, y1 int) {
	if border < 0 {
		panicBorder(border)
	}
	return border, border, img.width - border, img.height - border
}
