package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/packpix"
	"github.com/gogpu/packpix/imageio"
	"github.com/gogpu/packpix/morph"
	"github.com/gogpu/packpix/pixel"
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Write a cleaned-up mask of all pixels inside an HSV range",
	RunE:  runMask,
}

func init() {
	maskCmd.Flags().StringP("input", "i", "", "Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	maskCmd.Flags().StringP("output", "o", "", "Output mask PNG")
	maskCmd.Flags().IntSlice("lower", []int{0, 0, 0}, "Lower HSV bound as h,s,v (0-255 each)")
	maskCmd.Flags().IntSlice("upper", []int{255, 255, 255}, "Upper HSV bound as h,s,v (0-255 each)")
	maskCmd.Flags().Int("target", 1, "Mask label for matching pixels (1-254)")
	maskCmd.Flags().Int("erode", 1, "Erosion passes")
	maskCmd.Flags().Int("dilate", 1, "Dilation passes")
	maskCmd.Flags().Int("width", 0, "Resize to this width before thresholding (0 keeps the original)")
	_ = maskCmd.MarkFlagRequired("input")
	_ = maskCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(maskCmd)
}

// maskOptions holds the parsed mask pipeline settings.
type maskOptions struct {
	Range  packpix.Range
	Target uint8
	Erode  int
	Dilate int
}

// buildMask thresholds img in HSV space and cleans the result up with
// erode and dilate passes. It returns the number of pixels labelled
// Target before and after morphology.
func buildMask(img *packpix.Image, opts maskOptions) (before, after int) {
	img.ConvertColorSpace(packpix.HSV)
	before = img.Threshold(opts.Range, opts.Target, 0)

	for range opts.Erode {
		morph.Erode(img, opts.Target, 0)
	}
	for range opts.Dilate {
		morph.Dilate(img, opts.Target)
	}
	return before, img.CountMask(opts.Target)
}

func runMask(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	lower, _ := cmd.Flags().GetIntSlice("lower")
	upper, _ := cmd.Flags().GetIntSlice("upper")
	target, _ := cmd.Flags().GetInt("target")
	erode, _ := cmd.Flags().GetInt("erode")
	dilate, _ := cmd.Flags().GetInt("dilate")
	width, _ := cmd.Flags().GetInt("width")

	lo, err := parseTriple("lower", lower)
	if err != nil {
		return err
	}
	hi, err := parseTriple("upper", upper)
	if err != nil {
		return err
	}
	if target < 1 || target >= int(pixel.Sentinel) {
		return fmt.Errorf("--target must be between 1 and %d, got %d", pixel.Sentinel-1, target)
	}

	img, format, err := imageio.Load(inputPath)
	if err != nil {
		return err
	}
	if width > 0 && width != img.Width() {
		img, err = resizeToWidth(img, width)
		if err != nil {
			return err
		}
	}

	before, after := buildMask(img, maskOptions{
		Range:  packpix.Range{Lower: lo, Upper: hi},
		Target: uint8(target),
		Erode:  erode,
		Dilate: dilate,
	})

	out := imageio.MaskImage(img.Isolate(uint8(target), 255, 0))
	if err := imageio.SavePNG(outputPath, out); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "Input:  %s (%s, %dx%d)\n", inputPath, format, img.Width(), img.Height())
	p.Fprintf(cmd.OutOrStdout(), "Matched %d of %d pixels, %d after %d erode / %d dilate passes\n",
		before, img.Len(), after, erode, dilate)
	p.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	return nil
}

// resizeToWidth scales img to width, keeping the aspect ratio.
func resizeToWidth(img *packpix.Image, width int) (*packpix.Image, error) {
	height := max(1, img.Height()*width/img.Width())
	return imageio.FromImage(imageio.Resize(imageio.ToNRGBA(img), width, height))
}

// parseTriple validates a three-component 0-255 flag value.
func parseTriple(name string, v []int) ([3]uint8, error) {
	var t [3]uint8
	if len(v) != 3 {
		return t, fmt.Errorf("--%s needs exactly 3 values, got %d", name, len(v))
	}
	for i, c := range v {
		if c < 0 || c > 255 {
			return t, fmt.Errorf("--%s value %d out of range 0-255", name, c)
		}
		t[i] = uint8(c)
	}
	return t, nil
}
