package imaging

import (
	"fmt"

	"github.com/pagedraw/pagedraw/draw"
)

// applyColorKey rewrites every pixel whose components all fall inside the
// inclusive [low,high] ranges of the 6-value color key to the key color (the
// three high bounds), and builds the alpha channel marking those pixels
// transparent. The bitmap's RGB data is modified in place.
func applyColorKey(bmp *draw.Bitmap, key []int) error {
	if len(key) != 6 {
		return fmt.Errorf("color key must have 6 entries, got %d", len(key))
	}
	r1, r9 := key[0], key[1]
	g1, g9 := key[2], key[3]
	b1, b9 := key[4], key[5]

	alpha := make([]byte, bmp.Width*bmp.Height)
	for i := range alpha {
		alpha[i] = 0xFF
	}

	for i := 0; i+2 < len(bmp.RGB); i += 3 {
		r := int(bmp.RGB[i])
		g := int(bmp.RGB[i+1])
		b := int(bmp.RGB[i+2])
		if r >= r1 && r <= r9 && g >= g1 && g <= g9 && b >= b1 && b <= b9 {
			bmp.RGB[i] = byte(r9)
			bmp.RGB[i+1] = byte(g9)
			bmp.RGB[i+2] = byte(b9)
			alpha[i/3] = 0
		}
	}

	bmp.Alpha = alpha
	return nil
}

// applyExplicitMask decodes a separate 1-bit mask image through the filter
// pipeline, deindexes it with the black/white palette, and marks every white
// mask pixel transparent in the target bitmap.
func applyExplicitMask(bmp *draw.Bitmap, mask *Resource) error {
	data, err := runFilters(mask.Data, mask.Filters, mask.DecodeParms)
	if err != nil {
		return fmt.Errorf("mask decode: %w", err)
	}

	rgb, err := deindex(data, mask.Width, mask.Height, 1, blackWhitePalette)
	if err != nil {
		return fmt.Errorf("mask deindex: %w", err)
	}

	if mask.Width != bmp.Width || mask.Height != bmp.Height {
		return fmt.Errorf("mask size %dx%d does not match image %dx%d",
			mask.Width, mask.Height, bmp.Width, bmp.Height)
	}

	alpha := make([]byte, bmp.Width*bmp.Height)
	for i := range alpha {
		// white means masked out
		if rgb[i*3] == 0xFF {
			alpha[i] = 0
		} else {
			alpha[i] = 0xFF
		}
	}
	bmp.Alpha = alpha
	return nil
}
