package font

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts raw string-operand bytes to a Go string using Latin-1,
// which covers the byte values of the standard single-byte encodings well
// enough for layout. Multi-byte CID encodings are out of scope; their bytes
// pass through as individual characters.
func DecodeText(data []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 maps every byte; decoding cannot fail in practice
		return string(data)
	}
	return string(decoded)
}
