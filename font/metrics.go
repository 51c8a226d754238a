package font

import (
	"github.com/pagedraw/pagedraw/draw"
)

// defaultWidth is used for characters absent from a width table.
const defaultWidth = 500

// Width returns the advance width of text in text-space units for the face
// described by spec. Text is interpreted byte-wise in Latin-1; characters
// outside the tables use a default width. Word spacing and character spacing
// are the caller's concern.
func Width(text []byte, spec draw.FontSpec) float64 {
	primary, fallback := tablesFor(spec)

	units := 0.0
	for _, b := range text {
		r := rune(b)
		if w, ok := primary[r]; ok {
			units += w
			continue
		}
		if w, ok := fallback[r]; ok {
			units += w
			continue
		}
		units += defaultWidth
	}
	return units / 1000.0 * spec.Size
}

// Extent returns the ascent and descent of the face in text-space units at
// the descriptor's size. Descent is negative (below the baseline).
func Extent(spec draw.FontSpec) (ascent, descent float64) {
	var up, down float64
	switch spec.Family {
	case draw.FamilyModern:
		up, down = 629, -157
	case draw.FamilyRoman:
		up, down = 683, -217
	default:
		up, down = 718, -207
	}
	return up / 1000.0 * spec.Size, down / 1000.0 * spec.Size
}

// tablesFor picks the width table for a descriptor plus a fallback table
// consulted for characters the primary one lacks. The bold tables only
// cover letters, so their regular counterparts back them up.
func tablesFor(spec draw.FontSpec) (primary, fallback map[rune]float64) {
	switch spec.Family {
	case draw.FamilyModern:
		return courierWidths, nil
	case draw.FamilyRoman:
		if spec.Weight == draw.WeightBold {
			return timesBoldWidths, timesWidths
		}
		return timesWidths, nil
	case draw.FamilySwiss:
		if spec.Weight == draw.WeightBold {
			return helveticaBoldWidths, helveticaWidths
		}
		return helveticaWidths, nil
	default:
		switch spec.Face {
		case "Symbol":
			return symbolWidths, nil
		case "Wingdings":
			return zapfDingbatsWidths, nil
		}
		return helveticaWidths, nil
	}
}

// Helvetica widths in thousandths of an em, ASCII range
var helveticaWidths = map[rune]float64{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889,
	'&': 667, '\'': 191, '(': 333, ')': 333, '*': 389, '+': 584,
	',': 278, '-': 333, '.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556,
	'5': 556, '6': 556, '7': 556, '8': 556, '9': 556,
	':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556,
	'h': 556, 'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556,
	'o': 556, 'p': 556, 'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
}

// Helvetica-Bold letter widths; regular Helvetica backs up the rest
var helveticaBoldWidths = map[rune]float64{
	' ': 278,
	'A': 722, 'B': 722, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 722, 'I': 278, 'J': 556, 'K': 722, 'L': 611, 'M': 833, 'N': 722,
	'O': 778, 'P': 667, 'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722,
	'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'a': 556, 'b': 611, 'c': 556, 'd': 611, 'e': 556, 'f': 333, 'g': 611,
	'h': 611, 'i': 278, 'j': 278, 'k': 556, 'l': 278, 'm': 889, 'n': 611,
	'o': 611, 'p': 611, 'q': 611, 'r': 389, 's': 556, 't': 333, 'u': 611,
	'v': 556, 'w': 778, 'x': 556, 'y': 556, 'z': 500,
}

// Times-Roman letter widths
var timesWidths = map[rune]float64{
	' ': 250,
	'A': 722, 'B': 667, 'C': 667, 'D': 722, 'E': 611, 'F': 556, 'G': 722,
	'H': 722, 'I': 333, 'J': 389, 'K': 722, 'L': 611, 'M': 889, 'N': 722,
	'O': 722, 'P': 556, 'Q': 722, 'R': 667, 'S': 556, 'T': 611, 'U': 722,
	'V': 722, 'W': 944, 'X': 722, 'Y': 722, 'Z': 611,
	'a': 444, 'b': 500, 'c': 444, 'd': 500, 'e': 444, 'f': 333, 'g': 500,
	'h': 500, 'i': 278, 'j': 278, 'k': 500, 'l': 278, 'm': 778, 'n': 500,
	'o': 500, 'p': 500, 'q': 500, 'r': 333, 's': 389, 't': 278, 'u': 500,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 444,
}

// Times-Bold letter widths; Times-Roman backs up the rest
var timesBoldWidths = map[rune]float64{
	' ': 250,
	'A': 722, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778,
	'H': 778, 'I': 389, 'J': 500, 'K': 778, 'L': 667, 'M': 944, 'N': 722,
	'O': 778, 'P': 611, 'Q': 778, 'R': 722, 'S': 556, 'T': 667, 'U': 722,
	'V': 722, 'W': 1000, 'X': 722, 'Y': 722, 'Z': 667,
	'a': 500, 'b': 556, 'c': 444, 'd': 556, 'e': 444, 'f': 333, 'g': 500,
	'h': 556, 'i': 278, 'j': 333, 'k': 556, 'l': 278, 'm': 833, 'n': 556,
	'o': 500, 'p': 556, 'q': 556, 'r': 444, 's': 389, 't': 333, 'u': 556,
	'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 444,
}

// Courier is monospaced
var courierWidths = map[rune]float64{}

// Symbol and ZapfDingbats carry no per-character tables; a flat width keeps
// their advances plausible
var symbolWidths = map[rune]float64{}
var zapfDingbatsWidths = map[rune]float64{}

func init() {
	for r := rune(32); r <= 126; r++ {
		courierWidths[r] = 600
		symbolWidths[r] = defaultWidth
		zapfDingbatsWidths[r] = defaultWidth
	}
}
