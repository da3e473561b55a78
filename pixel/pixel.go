// Package pixel implements the packed 32-bit pixel word used by packpix.
//
// A Word stores four 8-bit channels, most significant byte first:
//
//	bits 24-31  channel A (red or hue)
//	bits 16-23  channel B (green or saturation)
//	bits  8-15  channel C (blue or value)
//	bits  0-7   Mask
//
// Whether A/B/C hold RGB or HSV is tracked by the owning image, not by the
// word itself.
package pixel

import "fmt"

// Channel bit offsets within a Word.
const (
	AOffset    = 24
	BOffset    = 16
	COffset    = 8
	MaskOffset = 0

	// ByteMask selects the low eight bits of a shifted word.
	ByteMask Word = 0x000000FF
)

// Sentinel is the reserved Mask value used as scratch during a morphology
// pass. It must never be used as a target or default mask value.
const Sentinel uint8 = 0xFF

// Word is a single packed pixel.
type Word uint32

// Pixel is an unpacked Word, optionally carrying the coordinate it was read
// from. Pixels exist only for the duration of a traversal callback or a
// lookup; the image only stores Words.
type Pixel struct {
	A, B, C uint8
	Mask    uint8

	// X and Y are set by coordinate-aware traversals and lookups.
	X, Y int
}

// Unpack extracts the four channels of w. X and Y are left zero.
func Unpack(w Word) Pixel {
	return Pixel{
		A:    uint8((w >> AOffset) & ByteMask),
		B:    uint8((w >> BOffset) & ByteMask),
		C:    uint8((w >> COffset) & ByteMask),
		Mask: uint8((w >> MaskOffset) & ByteMask),
	}
}

// UnpackAt is Unpack with the originating coordinate attached.
func UnpackAt(w Word, x, y int) Pixel {
	p := Unpack(w)
	p.X, p.Y = x, y
	return p
}

// Pack combines the channels of p into a Word. Coordinates are discarded.
func Pack(p Pixel) Word {
	return Word(p.A)<<AOffset |
		Word(p.B)<<BOffset |
		Word(p.C)<<COffset |
		Word(p.Mask)<<MaskOffset
}

// New packs four channel values into a Word.
func New(a, b, c, mask uint8) Word {
	return Pack(Pixel{A: a, B: b, C: c, Mask: mask})
}

// Mask returns the mask channel of w without unpacking the color channels.
func (w Word) Mask() uint8 {
	return uint8((w >> MaskOffset) & ByteMask)
}

// WithMask returns w with its mask channel replaced by m.
func (w Word) WithMask(m uint8) Word {
	return w&^(ByteMask<<MaskOffset) | Word(m)<<MaskOffset
}

// Color returns the three color channels of w.
func (w Word) Color() (a, b, c uint8) {
	p := Unpack(w)
	return p.A, p.B, p.C
}

// String returns the word as 8 hex digits.
func (w Word) String() string {
	return fmt.Sprintf("%08X", uint32(w))
}

// Word packs p. Equivalent to Pack(p).
func (p Pixel) Word() Word {
	return Pack(p)
}

// SameChannels reports whether p and q have identical channel values,
// ignoring coordinates.
func (p Pixel) SameChannels(q Pixel) bool {
	return p.A == q.A && p.B == q.B && p.C == q.C && p.Mask == q.Mask
}
