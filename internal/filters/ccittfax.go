package filters

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/image/ccitt"

	"github.com/pagedraw/pagedraw/core"
)

// CCITTFaxDecode decodes CCITT Group 3/4 fax compressed data, used for
// bi-level scanned images.
//
// Decode parameters:
//   - K: group selector (<0 Group 4, otherwise Group 3)
//   - Columns: row width in pixels (default 1728)
//   - Rows: image height (0 means detect from the data)
//   - BlackIs1: sample polarity (default false)
//   - EncodedByteAlign: rows start on byte boundaries (default false)
func CCITTFaxDecode(data []byte, parms core.Dict) ([]byte, error) {
	columns := intParam(parms, "Columns", 1728)
	rows := intParam(parms, "Rows", 0)
	k := intParam(parms, "K", 0)

	sf := ccitt.Group3
	if k < 0 {
		sf = ccitt.Group4
	}
	if rows == 0 {
		rows = ccitt.AutoDetectHeight
	}
	opts := &ccitt.Options{
		Invert: boolParam(parms, "BlackIs1", false),
		Align:  boolParam(parms, "EncodedByteAlign", false),
	}

	r := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, rows, opts)
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ccitt: %w", err)
	}
	return out, nil
}
