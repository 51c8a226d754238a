package filters

import (
	"github.com/pagedraw/pagedraw/core"
)

// Canonical filter names after normalization.
const (
	ASCIIHex = "ASCIIHexDecode"
	ASCII85  = "ASCII85Decode"
	LZW      = "LZWDecode"
	Flate    = "FlateDecode"
	CCITTFax = "CCITTFaxDecode"
	DCT      = "DCTDecode"
)

// abbreviations maps the short filter names permitted in inline image
// dictionaries to their canonical equivalents.
var abbreviations = map[string]string{
	"AHx": ASCIIHex,
	"A85": ASCII85,
	"LZW": LZW,
	"Fl":  Flate,
	"CCF": CCITTFax,
	"DCT": DCT,
}

// Normalize returns the canonical form of a filter name, expanding the
// abbreviated names used by inline images. Unknown names pass through
// unchanged so the caller can report them.
func Normalize(name string) string {
	if full, ok := abbreviations[name]; ok {
		return full
	}
	return name
}

// intParam reads an integer decode parameter, falling back to def when the
// key is absent or not numeric.
func intParam(parms core.Dict, key string, def int) int {
	if parms == nil {
		return def
	}
	if v, ok := core.AsInt(parms.Get(key)); ok {
		return v
	}
	return def
}

// boolParam reads a boolean decode parameter, falling back to def when the
// key is absent or not a boolean.
func boolParam(parms core.Dict, key string, def bool) bool {
	if parms == nil {
		return def
	}
	if v, ok := core.AsBool(parms.Get(key)); ok {
		return v
	}
	return def
}
