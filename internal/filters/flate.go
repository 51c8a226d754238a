package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/pagedraw/pagedraw/core"
)

// FlateDecode decompresses zlib/deflate compressed data and then undoes the
// predictor transform named in the decode parameters, if any.
func FlateDecode(data []byte, parms core.Dict) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}

	return undoPredictor(buf.Bytes(), parms)
}

// undoPredictor reverses the sample prediction applied before compression.
// Predictor 1 is the identity, 2 is TIFF horizontal differencing, and 10-15
// select the PNG row filters (the per-row filter byte decides the actual
// algorithm, so all PNG values decode the same way).
func undoPredictor(data []byte, parms core.Dict) ([]byte, error) {
	predictor := intParam(parms, "Predictor", 1)
	switch {
	case predictor == 1:
		return data, nil
	case predictor == 2:
		return undoTIFFPredictor(data, parms)
	case predictor >= 10 && predictor <= 15:
		return undoPNGPredictor(data, parms)
	default:
		return nil, fmt.Errorf("flate: unsupported predictor %d", predictor)
	}
}

func undoTIFFPredictor(data []byte, parms core.Dict) ([]byte, error) {
	columns := intParam(parms, "Columns", 1)
	colors := intParam(parms, "Colors", 1)
	bpc := intParam(parms, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("flate: TIFF predictor requires 8 bits per component, got %d", bpc)
	}
	rowSize := columns * colors
	if rowSize <= 0 || len(data)%rowSize != 0 {
		return nil, fmt.Errorf("flate: %d bytes is not a whole number of %d-byte rows", len(data), rowSize)
	}

	out := make([]byte, len(data))
	for row := 0; row < len(data)/rowSize; row++ {
		start := row * rowSize
		for i := 0; i < rowSize; i++ {
			if i < colors {
				out[start+i] = data[start+i]
			} else {
				out[start+i] = data[start+i] + out[start+i-colors]
			}
		}
	}
	return out, nil
}

func undoPNGPredictor(data []byte, parms core.Dict) ([]byte, error) {
	columns := intParam(parms, "Columns", 1)
	colors := intParam(parms, "Colors", 1)
	bpc := intParam(parms, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("flate: PNG predictor requires 8 bits per component, got %d", bpc)
	}

	bpp := colors
	rowSize := columns * colors
	// one filter-type byte leads each encoded row
	if rowSize <= 0 || len(data)%(rowSize+1) != 0 {
		return nil, fmt.Errorf("flate: %d bytes is not a whole number of %d-byte predicted rows", len(data), rowSize+1)
	}

	rows := len(data) / (rowSize + 1)
	out := make([]byte, rows*rowSize)
	prev := make([]byte, rowSize)

	for row := 0; row < rows; row++ {
		ft := data[row*(rowSize+1)]
		in := data[row*(rowSize+1)+1 : (row+1)*(rowSize+1)]
		cur := out[row*rowSize : (row+1)*rowSize]

		switch ft {
		case 0: // None
			copy(cur, in)
		case 1: // Sub
			for i := range in {
				var left byte
				if i >= bpp {
					left = cur[i-bpp]
				}
				cur[i] = in[i] + left
			}
		case 2: // Up
			for i := range in {
				cur[i] = in[i] + prev[i]
			}
		case 3: // Average
			for i := range in {
				var left byte
				if i >= bpp {
					left = cur[i-bpp]
				}
				cur[i] = in[i] + byte((int(left)+int(prev[i]))/2)
			}
		case 4: // Paeth
			for i := range in {
				var left, upLeft byte
				if i >= bpp {
					left = cur[i-bpp]
					upLeft = prev[i-bpp]
				}
				cur[i] = in[i] + paeth(left, prev[i], upLeft)
			}
		default:
			return nil, fmt.Errorf("flate: row %d has unknown PNG filter type %d", row, ft)
		}
		copy(prev, cur)
	}
	return out, nil
}

// paeth picks the neighbor closest to the linear prediction left+up-upLeft,
// as defined by the PNG specification.
func paeth(left, up, upLeft byte) byte {
	p := int(left) + int(up) - int(upLeft)
	pa := abs(p - int(left))
	pb := abs(p - int(up))
	pc := abs(p - int(upLeft))
	if pa <= pb && pa <= pc {
		return left
	}
	if pb <= pc {
		return up
	}
	return upLeft
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
