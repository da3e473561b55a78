package packpix

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/packpix/pixel"
)

// mustImage creates an image or fails the test.
func mustImage(t *testing.T, w, h int, opts ...Option) *Image {
	t.Helper()
	img, err := NewImage(w, h, opts...)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) = %v", w, h, err)
	}
	return img
}

// expectPanic runs f and fails unless it panics with a message containing
// want.
func expectPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not contain %q", msg, want)
		}
	}()
	f()
}

func TestNewImage(t *testing.T) {
	img := mustImage(t, 4, 3)

	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("expected 4x3, got %dx%d", img.Width(), img.Height())
	}
	if img.Len() != 12 {
		t.Errorf("Len() = %d, want 12", img.Len())
	}
	if img.ColorSpace() != RGB {
		t.Errorf("default color space = %v, want RGB", img.ColorSpace())
	}
	for i, w := range img.Data() {
		if w != 0 {
			t.Fatalf("data[%d] = %v, want zero", i, w)
		}
	}
}

func TestNewImageErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		opts []Option
		want error
	}{
		{"zero width", 0, 5, nil, ErrInvalidDimensions},
		{"zero height", 5, 0, nil, ErrInvalidDimensions},
		{"negative", -1, 5, nil, ErrInvalidDimensions},
		{"short data", 2, 2, []Option{WithData(make([]pixel.Word, 3))}, ErrDataSize},
		{"long data", 2, 2, []Option{WithData(make([]pixel.Word, 5))}, ErrDataSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.w, tt.h, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewImage() error = %v, want %v", err, tt.want)
			}
			if img != nil {
				t.Error("expected nil image on error")
			}
		})
	}
}

func TestNewImageWithData(t *testing.T) {
	data := []pixel.Word{
		pixel.New(1, 2, 3, 4), pixel.New(5, 6, 7, 8),
		pixel.New(9, 10, 11, 12), pixel.New(13, 14, 15, 16),
	}
	img := mustImage(t, 2, 2, WithData(data), WithColorSpace(HSV))

	if img.ColorSpace() != HSV {
		t.Errorf("color space = %v, want HSV", img.ColorSpace())
	}
	if diff := cmp.Diff(data, img.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}

	// Row-major: (1, 0) is the second word, (0, 1) the third.
	if got := img.Word(1, 0); got != data[1] {
		t.Errorf("Word(1, 0) = %v, want %v", got, data[1])
	}
	if got := img.Word(0, 1); got != data[2] {
		t.Errorf("Word(0, 1) = %v, want %v", got, data[2])
	}

	// The caller's slice is copied.
	data[0] = 0
	if img.Word(0, 0) == 0 {
		t.Error("image should not alias caller data")
	}
}

func TestGetSet(t *testing.T) {
	img := mustImage(t, 3, 3)

	img.Set(2, 1, pixel.Pixel{A: 10, B: 20, C: 30, Mask: 40, X: 99, Y: 99})

	got := img.Get(2, 1)
	want := pixel.Pixel{A: 10, B: 20, C: 30, Mask: 40, X: 2, Y: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	if img.Mask(2, 1) != 40 {
		t.Errorf("Mask(2, 1) = %d, want 40", img.Mask(2, 1))
	}

	img.SetMask(2, 1, 7)
	if got := img.Get(2, 1); got.A != 10 || got.B != 20 || got.C != 30 || got.Mask != 7 {
		t.Errorf("SetMask changed color or failed: %+v", got)
	}

	a, b, c := img.Access(2, 1)
	if a != 10 || b != 20 || c != 30 {
		t.Errorf("Access(2, 1) = %d,%d,%d", a, b, c)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	img := mustImage(t, 3, 2)

	tests := []struct {
		name string
		f    func()
	}{
		{"Get negative x", func() { img.Get(-1, 0) }},
		{"Get x == width", func() { img.Get(3, 0) }},
		{"Get y == height", func() { img.Get(0, 2) }},
		{"Set", func() { img.Set(5, 5, pixel.Pixel{}) }},
		{"Word", func() { img.Word(0, -1) }},
		{"SetWord", func() { img.SetWord(3, 1, 0) }},
		{"SetMask", func() { img.SetMask(3, 1, 0) }},
		{"Access", func() { img.Access(0, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, "out of range", tt.f)
		})
	}
}

func TestClone(t *testing.T) {
	img := mustImage(t, 2, 2, WithColorSpace(HSV))
	img.Fill(pixel.Pixel{A: 1, B: 2, C: 3, Mask: 4})

	clone := img.Clone()
	img.Fill(pixel.Pixel{})

	if clone.ColorSpace() != HSV {
		t.Error("clone should keep the color space tag")
	}
	if got := clone.Get(1, 1); got.A != 1 || got.Mask != 4 {
		t.Errorf("clone should not be affected, got %+v", got)
	}
}

func TestFill(t *testing.T) {
	img := mustImage(t, 3, 2)
	img.Fill(pixel.Pixel{A: 9, B: 8, C: 7, Mask: 6})

	want := pixel.New(9, 8, 7, 6)
	for i, w := range img.Data() {
		if w != want {
			t.Fatalf("data[%d] = %v, want %v", i, w, want)
		}
	}
}
