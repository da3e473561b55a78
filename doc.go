// Package packpix provides a packed-pixel image for color segmentation.
//
// # Overview
//
// Every pixel is a single 32-bit word holding three 8-bit color channels
// and an 8-bit mask (see package pixel). The color channels are read as RGB
// or HSV depending on the image's color space tag; the mask is a free label
// used to mark regions, for example the output of a color threshold.
//
// # Quick Start
//
//	img, err := packpix.NewImage(w, h, packpix.WithData(words))
//	if err != nil {
//	    return err
//	}
//
//	// Integer-only RGB -> HSV
//	img.ConvertColorSpace(packpix.HSV)
//
//	// Mark everything in a hue band with label 1
//	img.Threshold(packpix.Range{
//	    Lower: [3]uint8{20, 80, 80},
//	    Upper: [3]uint8{40, 255, 255},
//	}, 1, 0)
//
//	// Remove speckle: erode then dilate once (see package morph)
//	morph.Open(img, 1, 0, 1)
//
// # Traversal
//
// Pixel-wise work is expressed as a callback handed to one of the
// traversal methods. Each visited cell is unpacked, passed to the callback
// as a *pixel.Pixel, and packed back:
//
//   - ForEach: every pixel, no coordinates
//   - ForEachIndexed: pixels inside a border, with X and Y set
//   - ForEachBorrowing: like ForEachIndexed, plus a Snapshot of the image
//     taken before the pass for neighbor lookups
//
// # Contract Violations
//
// Out-of-range coordinates and negative borders panic. Constructor input
// errors are returned as errors.
//
// # Concurrency
//
// An Image is owned by one goroutine at a time. All operations are
// synchronous and run to completion.
package packpix
