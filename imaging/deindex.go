package imaging

import (
	"fmt"
)

// Built-in grayscale palettes for images that declare a bit depth but no
// explicit palette: linear ramps from black to white, one 3-byte RGB chunk
// per sample value.
var (
	grayPalette1 = rgbRamp([]byte{0x00, 0xFF})
	grayPalette2 = rgbRamp([]byte{0x00, 0x55, 0xAA, 0xFF})
	grayPalette4 = rgbRamp([]byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	})
	grayPalette8 = rgbRamp(ramp256())
)

// blackWhitePalette is grayPalette1 under its conventional name: explicit
// 1-bit masks deindex through it.
var blackWhitePalette = grayPalette1

func ramp256() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// rgbRamp replicates each gray level into a 3-byte RGB chunk.
func rgbRamp(levels []byte) []byte {
	out := make([]byte, 0, len(levels)*3)
	for _, v := range levels {
		out = append(out, v, v, v)
	}
	return out
}

// grayPaletteFor returns the built-in ramp for a bit depth.
func grayPaletteFor(depth int) ([]byte, error) {
	switch depth {
	case 1:
		return grayPalette1, nil
	case 2:
		return grayPalette2, nil
	case 4:
		return grayPalette4, nil
	case 8:
		return grayPalette8, nil
	default:
		return nil, fmt.Errorf("no built-in palette for depth %d", depth)
	}
}

// deindex unpacks width×height samples of the given bit depth and replaces
// each by its 3-byte palette chunk, producing a packed RGB raster.
//
// Samples are big-endian within each byte: for depth 1, bit 7 is the first
// pixel. Rows are padded to a whole byte, so unpacking restarts on a byte
// boundary at each row.
func deindex(data []byte, width, height, depth int, palette []byte) ([]byte, error) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("cannot deindex depth %d", depth)
	}
	if len(palette)%3 != 0 || len(palette) == 0 {
		return nil, fmt.Errorf("palette length %d is not a whole number of RGB chunks", len(palette))
	}

	rowBytes := (width*depth + 7) / 8
	if len(data) < rowBytes*height {
		return nil, fmt.Errorf("image data too short: have %d bytes, need %d", len(data), rowBytes*height)
	}

	entries := len(palette) / 3
	perByte := 8 / depth
	mask := byte(1<<depth - 1)

	out := make([]byte, 0, width*height*3)
	for row := 0; row < height; row++ {
		rowData := data[row*rowBytes : (row+1)*rowBytes]
		for col := 0; col < width; col++ {
			b := rowData[col/perByte]
			shift := uint(8 - depth - (col%perByte)*depth)
			idx := int(b >> shift & mask)
			if idx >= entries {
				return nil, fmt.Errorf("sample value %d exceeds palette size %d", idx, entries)
			}
			out = append(out, palette[idx*3:idx*3+3]...)
		}
	}
	return out, nil
}

// expandGrayPalette turns a 1-byte-per-entry gray palette into RGB chunks.
func expandGrayPalette(gray []byte) []byte {
	return rgbRamp(gray)
}
