package packpix

import (
	"log/slog"

	"github.com/gogpu/packpix/internal/color"
)

// ColorSpace tags how an Image's A/B/C channels are interpreted.
type ColorSpace uint8

const (
	// RGB means A, B and C hold red, green and blue.
	RGB ColorSpace = iota

	// HSV means A, B and C hold hue, saturation and value, each 0-255.
	HSV
)

// String returns the name of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case RGB:
		return "RGB"
	case HSV:
		return "HSV"
	default:
		return "Unknown"
	}
}

// ConvertColorSpace converts every pixel to the target color space and
// updates the image's tag. Mask values are untouched. Converting to the
// current color space is a no-op.
func (img *Image) ConvertColorSpace(target ColorSpace) {
	if img.space == target {
		return
	}

	Logger().Debug("convert color space",
		slog.String("from", img.space.String()),
		slog.String("to", target.String()),
		slog.Int("width", img.width),
		slog.Int("height", img.height))

	switch target {
	case HSV:
		img.ForEach(color.RGBToHSV)
	case RGB:
		img.ForEach(color.HSVToRGB)
	default:
		panic("packpix: unknown color space " + target.String())
	}
	img.space = target
}
