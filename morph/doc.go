// Package morph provides binary morphology on the mask channel of a
// packpix.Image.
//
// The structuring element is the 3x3 square (Chebyshev ball of radius 1).
// Larger radii are obtained by repeating a pass; see Open and Close.
//
// Each operation runs in two passes:
//   - Pass 1 visits the interior (the outermost ring of the image is never
//     changed) and marks affected pixels with pixel.Sentinel. Neighbor
//     counts are read from a snapshot taken before the pass, so the result
//     does not depend on visiting order.
//   - Pass 2 replaces every Sentinel with the final mask value.
//
// Mask values equal to pixel.Sentinel are reserved. Passing the sentinel as
// a target or default value panics.
package morph
