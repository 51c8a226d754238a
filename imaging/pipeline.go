package imaging

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/pagedraw/pagedraw/core"
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/internal/filters"
)

// Resource describes one image to decode: an image XObject, an inline
// image, or the 1-bit stream referenced as an explicit mask.
type Resource struct {
	Width            int
	Height           int
	BitsPerComponent int
	ColorSpace       ColorSpace

	// Filters holds the declared filter chain, already normalized to the
	// canonical names. DecodeParms applies to the stages that accept
	// parameters (Flate and CCITT).
	Filters     []string
	DecodeParms core.Dict

	// Data is the raw, still-encoded payload.
	Data []byte

	// ColorKey is a 6-value inclusive range mask (low/high per channel),
	// or nil. MaskResource references an explicit 1-bit mask stream, or
	// nil. The two are mutually exclusive.
	ColorKey     []int
	MaskResource *Resource
}

// UnsupportedError marks an image the pipeline cannot resolve (an exotic
// color space, an unusable bit depth). The caller reports it once per
// distinct reason and skips the image; it is not a data corruption error.
type UnsupportedError struct {
	Reason string
}

func (e *UnsupportedError) Error() string {
	return "unsupported image: " + e.Reason
}

// FromInlineDict builds a Resource from an inline image parameter
// dictionary and its raw sample bytes. Both the abbreviated keys (W, H,
// BPC, CS, F, DP, IM) and the full names are accepted.
func FromInlineDict(d core.Dict, data []byte) *Resource {
	res := &Resource{Data: data, DecodeParms: nil}

	if v, ok := core.AsInt(d.GetAny("W", "Width")); ok {
		res.Width = v
	}
	if v, ok := core.AsInt(d.GetAny("H", "Height")); ok {
		res.Height = v
	}
	if v, ok := core.AsInt(d.GetAny("BPC", "BitsPerComponent")); ok {
		res.BitsPerComponent = v
	}
	res.ColorSpace = ParseColorSpace(d.GetAny("CS", "ColorSpace"))

	// a stencil mask is a 1-bit black/white image with no color space
	if v, ok := core.AsBool(d.GetAny("IM", "ImageMask")); ok && v {
		res.BitsPerComponent = 1
		res.ColorSpace = ColorSpace{Kind: KindNone}
	}

	res.Filters = FilterNames(d.GetAny("F", "Filter"))
	if parms, ok := d.GetAny("DP", "DecodeParms").(core.Dict); ok {
		res.DecodeParms = parms
	}
	return res
}

// FilterNames normalizes a filter declaration, which may be a single name,
// an array of names, or absent.
func FilterNames(obj core.Object) []string {
	switch v := obj.(type) {
	case core.Name:
		return []string{filters.Normalize(string(v))}
	case core.Array:
		names := make([]string, 0, len(v))
		for _, el := range v {
			if name, ok := core.AsName(el); ok {
				names = append(names, filters.Normalize(name))
			}
		}
		return names
	default:
		return nil
	}
}

// Decode runs the full pipeline for one image resource and returns a packed
// RGB bitmap with optional alpha. A nil error with the returned bitmap is
// the only success shape; *UnsupportedError asks the caller to skip the
// image quietly after reporting the reason once.
func Decode(res *Resource) (*draw.Bitmap, error) {
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("image has degenerate size %dx%d", res.Width, res.Height)
	}

	data, err := runFilters(res.Data, res.Filters, res.DecodeParms)
	if err != nil {
		return nil, err
	}

	bmp, err := resolveSamples(res, data)
	if err != nil {
		return nil, err
	}

	switch {
	case res.ColorKey != nil:
		if err := applyColorKey(bmp, res.ColorKey); err != nil {
			return nil, err
		}
	case res.MaskResource != nil:
		if err := applyExplicitMask(bmp, res.MaskResource); err != nil {
			return nil, err
		}
	}
	return bmp, nil
}

// runFilters applies the declared decode filters in the fixed order LZW,
// ASCII85, Flate, CCITT-Fax. Each stage runs only when its name appears in
// the chain; declaration order is deliberately ignored. DCT is left alone
// here; the JPEG decoder consumes it downstream.
func runFilters(data []byte, names []string, parms core.Dict) ([]byte, error) {
	has := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	var err error
	if has(filters.LZW) {
		if data, err = filters.LZWDecode(data, parms); err != nil {
			return nil, err
		}
	}
	if has(filters.ASCII85) {
		if data, err = filters.ASCII85Decode(data); err != nil {
			return nil, err
		}
	}
	if has(filters.Flate) {
		if data, err = filters.FlateDecode(data, parms); err != nil {
			return nil, err
		}
	}
	if has(filters.CCITTFax) {
		if data, err = filters.CCITTFaxDecode(data, parms); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// resolveSamples interprets the filtered bytes according to the declared
// color space and bit depth.
func resolveSamples(res *Resource, data []byte) (*draw.Bitmap, error) {
	for _, name := range res.Filters {
		if name == filters.DCT {
			return decodeJPEG(data)
		}
	}

	cs := res.ColorSpace
	depth := res.BitsPerComponent

	switch cs.Kind {
	case KindDeviceRGB:
		if depth != 8 {
			return nil, &UnsupportedError{Reason: fmt.Sprintf("DeviceRGB at depth %d", depth)}
		}
		need := res.Width * res.Height * 3
		if len(data) < need {
			return nil, fmt.Errorf("RGB data too short: have %d bytes, need %d", len(data), need)
		}
		return &draw.Bitmap{Width: res.Width, Height: res.Height, RGB: data[:need]}, nil

	case KindIndexed:
		palette := cs.Palette
		if cs.Base == KindDeviceGray {
			palette = expandGrayPalette(palette)
		}
		if need := (cs.HiVal + 1) * 3; len(palette) < need {
			return nil, fmt.Errorf("indexed palette has %d bytes, hival %d needs %d",
				len(palette), cs.HiVal, need)
		}
		rgb, err := deindex(data, res.Width, res.Height, depth, palette)
		if err != nil {
			return nil, err
		}
		return &draw.Bitmap{Width: res.Width, Height: res.Height, RGB: rgb}, nil

	case KindDeviceGray:
		palette, err := grayPaletteFor(depth)
		if err != nil {
			return nil, &UnsupportedError{Reason: fmt.Sprintf("DeviceGray at depth %d", depth)}
		}
		rgb, err := deindex(data, res.Width, res.Height, depth, palette)
		if err != nil {
			return nil, err
		}
		return &draw.Bitmap{Width: res.Width, Height: res.Height, RGB: rgb}, nil

	case KindNone:
		// only 1-bit black and white can be resolved without a color space
		if depth != 1 {
			return nil, &UnsupportedError{Reason: fmt.Sprintf("no color space at depth %d", depth)}
		}
		rgb, err := deindex(data, res.Width, res.Height, 1, blackWhitePalette)
		if err != nil {
			return nil, err
		}
		return &draw.Bitmap{Width: res.Width, Height: res.Height, RGB: rgb}, nil

	default:
		return nil, &UnsupportedError{Reason: fmt.Sprintf("color space %s", cs.Name)}
	}
}

// decodeJPEG hands a self-describing JPEG stream to the stdlib decoder and
// converts the result to packed RGB.
func decodeJPEG(data []byte) (*draw.Bitmap, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("jpeg: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, 0, w*h*3)

	// fast path for the YCbCr images the stdlib decoder usually returns
	// is not worth the complexity; At() is fine at page-image sizes
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return &draw.Bitmap{Width: w, Height: h, RGB: rgb}, nil
}
