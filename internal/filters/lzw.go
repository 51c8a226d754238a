package filters

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"io"

	"github.com/pagedraw/pagedraw/core"
)

// LZWDecode decompresses LZW compressed data. Content streams use MSB-first
// bit packing with 8-bit literals. Only the default EarlyChange value of 1 is
// supported; a stream declaring EarlyChange 0 is a data error. Predictors are
// undone the same way as for Flate.
func LZWDecode(data []byte, parms core.Dict) ([]byte, error) {
	if ec := intParam(parms, "EarlyChange", 1); ec != 1 {
		return nil, fmt.Errorf("lzw: unsupported EarlyChange %d", ec)
	}

	lr := lzw.NewReader(bytes.NewReader(data), lzw.MSB, 8)
	defer lr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lr); err != nil {
		return nil, fmt.Errorf("lzw: %w", err)
	}

	return undoPredictor(buf.Bytes(), parms)
}
