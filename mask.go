package packpix

import "github.com/gogpu/packpix/pixel"

// The mask channel tags pixels for region bookkeeping independently of
// color. These helpers operate on it across the whole image.

// FillMask sets the mask of every pixel to m, keeping colors.
func (img *Image) FillMask(m uint8) {
	for i := range img.data {
		img.data[i] = img.data[i].WithMask(m)
	}
}

// CountMask returns the number of pixels whose mask equals m.
func (img *Image) CountMask(m uint8) int {
	n := 0
	for _, w := range img.data {
		if w.Mask() == m {
			n++
		}
	}
	return n
}

// Labels returns the distinct mask values present in the image, ascending.
func (img *Image) Labels() []uint8 {
	var seen [256]bool
	for _, w := range img.data {
		seen[w.Mask()] = true
	}

	var labels []uint8
	for v, ok := range seen {
		if ok {
			labels = append(labels, uint8(v))
		}
	}
	return labels
}

// Isolate returns a copy of img whose mask is on where the original mask
// equals label and off everywhere else. Colors are copied unchanged.
func (img *Image) Isolate(label, on, off uint8) *Image {
	out := img.Clone()
	out.ForEach(func(p *pixel.Pixel) {
		if p.Mask == label {
			p.Mask = on
		} else {
			p.Mask = off
		}
	})
	return out
}

// Separate returns one isolated copy per label present in the image, in
// ascending label order, each with mask on for that label and off elsewhere.
func (img *Image) Separate(on, off uint8) []*Image {
	labels := img.Labels()
	out := make([]*Image, 0, len(labels))
	for _, l := range labels {
		out = append(out, img.Isolate(l, on, off))
	}
	return out
}
