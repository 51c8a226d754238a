// Package imaging decodes image XObjects and inline images into packed RGB
// bitmaps ready for a DrawBitmap command.
//
// Decoding is a fixed pipeline: the declared filter chain is applied in the
// order LZW, ASCII85, Flate, CCITT-Fax (each stage only when named), then the
// samples are resolved to RGB according to the declared color space and bit
// depth, then an optional mask (color-key range or explicit 1-bit stream) is
// converted to a per-pixel alpha channel. JPEG-compressed images skip sample
// resolution entirely; the JPEG stream is self-describing.
//
// Unsupported color spaces surface as *UnsupportedError so the caller can
// report them once and continue without a bitmap; every other failure is a
// plain data error scoped to the single image.
package imaging
