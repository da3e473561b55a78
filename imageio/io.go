// Package imageio moves images between Go's image package and
// packpix.Image.
//
// Decoding accepts any registered format. PNG, JPEG and GIF come from the
// standard library; BMP, TIFF and WebP are registered from golang.org/x/image.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/packpix"
	"github.com/gogpu/packpix/pixel"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrUnsupportedFormat is returned when no registered decoder
	// recognizes the data.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// Load reads and decodes the image file at path.
func Load(path string) (*packpix.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image held in memory.
func LoadBytes(data []byte) (*packpix.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format, and packs it
// into an RGB-tagged packpix.Image with every mask 0. The format name is
// returned as reported by image.Decode.
func Decode(r io.Reader) (*packpix.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}

	out, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}

	packpix.Logger().Debug("decoded image",
		slog.String("format", format),
		slog.Int("width", out.Width()),
		slog.Int("height", out.Height()))
	return out, format, nil
}

// FromImage packs the 8-bit RGB channels of img into a new packpix.Image.
// Alpha is dropped and every mask is 0.
func FromImage(img image.Image) (*packpix.Image, error) {
	bounds := img.Bounds()
	out, err := packpix.NewImage(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}

	data := out.Data()
	width := bounds.Dx()

	// Fast path for NRGBA/RGBA images, which cover most decoded PNGs.
	// RGBA rows are premultiplied; for opaque sources that is the same.
	switch src := img.(type) {
	case *image.NRGBA:
		packRows(data, width, bounds.Dy(), src.Pix, src.Stride)
		return out, nil
	case *image.RGBA:
		packRows(data, width, bounds.Dy(), src.Pix, src.Stride)
		return out, nil
	}

	// Generic slow path for any image type.
	for y := range bounds.Dy() {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			data[y*width+x] = pixel.New(c.R, c.G, c.B, 0)
		}
	}
	return out, nil
}

// packRows copies 4-byte-per-pixel rows into packed words, ignoring the
// fourth byte.
func packRows(dst []pixel.Word, width, height int, pix []uint8, stride int) {
	for y := range height {
		row := pix[y*stride:]
		for x := range width {
			o := x * 4
			dst[y*width+x] = pixel.New(row[o], row[o+1], row[o+2], 0)
		}
	}
}

// ToNRGBA renders the color channels of img as an opaque image.NRGBA.
// An HSV-tagged image is converted on a copy; img itself is not modified.
func ToNRGBA(img *packpix.Image) *image.NRGBA {
	src := img
	if src.ColorSpace() != packpix.RGB {
		src = img.Clone()
		src.ConvertColorSpace(packpix.RGB)
	}

	out := image.NewNRGBA(image.Rect(0, 0, src.Width(), src.Height()))
	for y := range src.Height() {
		for x := range src.Width() {
			r, g, b := src.Access(x, y)
			o := y*out.Stride + x*4
			out.Pix[o] = r
			out.Pix[o+1] = g
			out.Pix[o+2] = b
			out.Pix[o+3] = 255
		}
	}
	return out
}

// MaskImage renders the mask channel of img as a grayscale image.
func MaskImage(img *packpix.Image) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, img.Width(), img.Height()))
	for y := range img.Height() {
		for x := range img.Width() {
			out.Pix[y*out.Stride+x] = img.Mask(x, y)
		}
	}
	return out
}

// Resize scales src to width x height with bilinear filtering.
func Resize(src image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
