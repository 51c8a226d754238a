// Package filters implements the stream decode filters used by image and
// form resources: Flate (with PNG/TIFF predictors), LZW, ASCIIHex, ASCII85,
// and CCITT Group 3/4 fax.
//
// Each decoder is a pure function from encoded bytes (plus an optional decode
// parameter dictionary) to decoded bytes. A decode failure is a data error
// reported to the caller; it never panics. Filter names are matched after
// normalization, so the abbreviated forms used by inline images (AHx, A85,
// LZW, Fl, CCF, DCT) resolve to the same decoders as the full names.
package filters
