package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes hexadecimal encoded data. Whitespace between digits
// is ignored and > ends the data; an odd trailing digit is padded with zero.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	var out bytes.Buffer

	var hi byte
	haveHi := false
	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}
		d, err := hexDigit(c)
		if err != nil {
			return nil, err
		}
		if haveHi {
			out.WriteByte(hi<<4 | d)
			haveHi = false
		} else {
			hi = d
			haveHi = true
		}
	}
	if haveHi {
		out.WriteByte(hi << 4)
	}
	return out.Bytes(), nil
}

// ASCII85Decode decodes base-85 encoded data. Groups of five characters in
// the range !..u encode four bytes; z is shorthand for four zero bytes and
// ~> ends the data. A short final group of n characters yields n-1 bytes.
func ASCII85Decode(data []byte) ([]byte, error) {
	var out bytes.Buffer

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case isWhitespace(c):
			i++
			continue
		case c == '~':
			return out.Bytes(), nil
		case c == 'z':
			out.Write([]byte{0, 0, 0, 0})
			i++
			continue
		}

		// collect one group of up to five digits
		var digits [5]byte
		n := 0
		for n < 5 && i < len(data) {
			c := data[i]
			if isWhitespace(c) {
				i++
				continue
			}
			if c == '~' {
				break
			}
			if c < '!' || c > 'u' {
				return nil, fmt.Errorf("ascii85: invalid character %q", c)
			}
			digits[n] = c - '!'
			n++
			i++
		}
		if n == 0 {
			break
		}
		if n == 1 {
			return nil, fmt.Errorf("ascii85: truncated final group")
		}

		// pad the group with the highest digit so the leading bytes
		// decode unchanged
		for j := n; j < 5; j++ {
			digits[j] = 84
		}
		value := uint32(0)
		for _, d := range digits {
			value = value*85 + uint32(d)
		}
		for j := 0; j < n-1; j++ {
			out.WriteByte(byte(value >> (24 - j*8)))
		}
	}
	return out.Bytes(), nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("asciihex: invalid digit %q", c)
	}
}

// isWhitespace reports whether c is a content stream whitespace byte.
func isWhitespace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
