package morph

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/packpix"
	"github.com/gogpu/packpix/pixel"
)

// neighborhood is the number of cells in the 3x3 structuring element.
const neighborhood = 9

// MaskReader gives read access to a mask field.
// Both *packpix.Image and *packpix.Snapshot implement it.
type MaskReader interface {
	Mask(x, y int) uint8
}

// CheckAdjacent counts the cells of the 3x3 neighborhood centered at
// (x, y), center included, whose mask equals target or secondary.
// The whole neighborhood must lie inside the image.
func CheckAdjacent(m MaskReader, x, y int, target, secondary uint8) int {
	n := 0
	for j := y - 1; j <= y+1; j++ {
		for i := x - 1; i <= x+1; i++ {
			v := m.Mask(i, j)
			if v == target || v == secondary {
				n++
			}
		}
	}
	return n
}

// Erode shrinks regions labelled target by one pixel. Every interior pixel
// whose neighborhood is not entirely target gets mask def.
func Erode(img *packpix.Image, target, def uint8) {
	checkNotSentinel("target", target)
	checkNotSentinel("default", def)

	marked := 0
	img.ForEachBorrowing(1, func(p *pixel.Pixel, src *packpix.Snapshot) {
		if CheckAdjacent(src, p.X, p.Y, target, pixel.Sentinel) != neighborhood {
			p.Mask = pixel.Sentinel
			marked++
		}
	})
	resolve(img, def)

	packpix.Logger().Debug("erode",
		slog.Int("target", int(target)),
		slog.Int("default", int(def)),
		slog.Int("marked", marked))
}

// Dilate grows regions labelled target by one pixel. Every interior pixel
// not already target that touches a target pixel becomes target.
func Dilate(img *packpix.Image, target uint8) {
	checkNotSentinel("target", target)

	marked := 0
	img.ForEachBorrowing(1, func(p *pixel.Pixel, src *packpix.Snapshot) {
		if p.Mask == target {
			return
		}
		if CheckAdjacent(src, p.X, p.Y, target, target) > 0 {
			p.Mask = pixel.Sentinel
			marked++
		}
	})
	resolve(img, target)

	packpix.Logger().Debug("dilate",
		slog.Int("target", int(target)),
		slog.Int("marked", marked))
}

// Open erodes n times and then dilates n times, removing target specks
// smaller than the eroded radius. n <= 0 does nothing.
func Open(img *packpix.Image, target, def uint8, n int) {
	for range n {
		Erode(img, target, def)
	}
	for range n {
		Dilate(img, target)
	}
}

// Close dilates n times and then erodes n times, filling gaps in target
// regions narrower than the dilated radius. n <= 0 does nothing.
func Close(img *packpix.Image, target, def uint8, n int) {
	for range n {
		Dilate(img, target)
	}
	for range n {
		Erode(img, target, def)
	}
}

// resolve replaces every sentinel mask with final.
func resolve(img *packpix.Image, final uint8) {
	img.ForEach(func(p *pixel.Pixel) {
		if p.Mask == pixel.Sentinel {
			p.Mask = final
		}
	})
}

func checkNotSentinel(name string, v uint8) {
	if v == pixel.Sentinel {
		panic(fmt.Sprintf("morph: %s mask %d collides with the sentinel", name, v))
	}
}
