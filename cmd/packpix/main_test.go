package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/packpix"
	"github.com/gogpu/packpix/imageio"
)

// writeBlockPNG writes an 8x8 red image with a green 4x4 block at (2,2).
func writeBlockPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			c := color.NRGBA{R: 220, G: 10, B: 10, A: 255}
			if x >= 2 && x <= 5 && y >= 2 && y <= 5 {
				c = color.NRGBA{R: 12, G: 200, B: 7, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, "in.png")
	if err := imageio.SavePNG(path, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		want    [3]uint8
		wantErr string
	}{
		{"valid", []int{1, 2, 255}, [3]uint8{1, 2, 255}, ""},
		{"too few", []int{1, 2}, [3]uint8{}, "exactly 3"},
		{"too many", []int{1, 2, 3, 4}, [3]uint8{}, "exactly 3"},
		{"negative", []int{-1, 2, 3}, [3]uint8{}, "out of range"},
		{"too large", []int{1, 256, 3}, [3]uint8{}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTriple("lower", tt.in)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("parseTriple() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTriple() = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseTriple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildMask(t *testing.T) {
	path := writeBlockPNG(t, t.TempDir())
	img, _, err := imageio.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	before, after := buildMask(img, maskOptions{
		Range:  packpix.Range{Lower: [3]uint8{70, 100, 50}, Upper: [3]uint8{100, 255, 255}},
		Target: 1,
		Erode:  1,
		Dilate: 1,
	})

	if before != 16 || after != 16 {
		t.Errorf("buildMask() = %d, %d; want 16, 16", before, after)
	}
	if img.ColorSpace() != packpix.HSV {
		t.Error("buildMask should leave the image in HSV")
	}
}

func TestMaskCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeBlockPNG(t, dir)
	out := filepath.Join(dir, "mask.png")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"mask", "-i", in, "-o", out,
		"--lower", "70,100,50", "--upper", "100,255,255"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("mask command: %v", err)
	}

	if !strings.Contains(stdout.String(), "Matched 16 of 64 pixels") {
		t.Errorf("unexpected summary:\n%s", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	m, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	gray, ok := m.(*image.Gray)
	if !ok {
		t.Fatalf("mask decoded as %T, want *image.Gray", m)
	}
	if gray.GrayAt(3, 3).Y != 255 || gray.GrayAt(0, 0).Y != 0 {
		t.Errorf("mask values: inside=%d outside=%d", gray.GrayAt(3, 3).Y, gray.GrayAt(0, 0).Y)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	in := filepath.Join(dir, "in.png")
	if err := imageio.SavePNG(in, src); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"export", "-i", in})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export command: %v", err)
	}

	if got, want := stdout.String(), "[[[1,2,3],[255,0,0]]]\n"; got != want {
		t.Errorf("export = %q, want %q", got, want)
	}
}
