package packpix

import (
	"errors"
	"fmt"
)

// Errors returned by NewImage.
var (
	// ErrInvalidDimensions is returned when width or height is less than 1.
	ErrInvalidDimensions = errors.New("packpix: invalid dimensions")

	// ErrDataSize is returned when caller-supplied data does not hold
	// exactly width*height words.
	ErrDataSize = errors.New("packpix: data length does not match dimensions")
)

// Contract violations are programming errors and panic instead of
// returning an error.

func panicOutOfRange(x, y, width, height int) {
	panic(fmt.Sprintf("packpix: coordinate (%d, %d) out of range for %dx%d image", x, y, width, height))
}

func panicBorder(border int) {
	panic(fmt.Sprintf("packpix: negative border %d", border))
}
