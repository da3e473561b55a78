// Package binding exports the color channels of an image as nested rows,
// the shape a host scripting runtime expects: rows[y][x] = {A, B, C}.
// The mask channel is not exported.
package binding

import (
	"encoding/json"
	"fmt"
	"io"
)

// Accessor is the read-only pixel access binding needs.
// *packpix.Image and *packpix.Snapshot implement it.
type Accessor interface {
	Width() int
	Height() int
	Access(x, y int) (a, b, c uint8)
}

// Rows returns the color channels of src in row-major order.
func Rows(src Accessor) [][][3]uint8 {
	rows := make([][][3]uint8, src.Height())
	for y := range rows {
		row := make([][3]uint8, src.Width())
		for x := range row {
			a, b, c := src.Access(x, y)
			row[x] = [3]uint8{a, b, c}
		}
		rows[y] = row
	}
	return rows
}

// Encode writes Rows(src) to w as a JSON array of arrays of triples,
// followed by a newline.
func Encode(w io.Writer, src Accessor) error {
	if err := json.NewEncoder(w).Encode(Rows(src)); err != nil {
		return fmt.Errorf("binding: encode: %w", err)
	}
	return nil
}
