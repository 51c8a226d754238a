package imaging

import (
	"bytes"
	"compress/zlib"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pagedraw/pagedraw/core"
	"github.com/pagedraw/pagedraw/internal/filters"
)

// TestDecodeRawRGB tests the pass-through path for 8-bit DeviceRGB
func TestDecodeRawRGB(t *testing.T) {
	res := &Resource{
		Width: 2, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{Kind: KindDeviceRGB},
		Data:       []byte{255, 0, 0, 0, 0, 255},
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bmp.Width != 2 || bmp.Height != 1 {
		t.Errorf("size %dx%d, want 2x1", bmp.Width, bmp.Height)
	}
	if !bytes.Equal(bmp.RGB, res.Data) {
		t.Errorf("RGB = %v, want raw data", bmp.RGB)
	}
	if bmp.Alpha != nil {
		t.Error("unmasked image must be opaque (nil alpha)")
	}
}

// TestDecodeFlateRGB tests that the Flate stage feeds sample resolution
func TestDecodeFlateRGB(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5, 6}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(raw)
	zw.Close()

	res := &Resource{
		Width: 2, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{Kind: KindDeviceRGB},
		Filters:    []string{filters.Flate},
		Data:       buf.Bytes(),
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(bmp.RGB, raw) {
		t.Errorf("RGB = %v, want %v", bmp.RGB, raw)
	}
}

// TestDecodeFixedFilterOrder tests that the chain runs ASCII85 before Flate
// no matter how the names were declared
func TestDecodeFixedFilterOrder(t *testing.T) {
	raw := []byte{9, 8, 7}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(raw)
	zw.Close()

	var enc bytes.Buffer
	encodeASCII85(&enc, buf.Bytes())

	res := &Resource{
		Width: 1, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{Kind: KindDeviceRGB},
		// declared backwards: Flate first, ASCII85 second
		Filters: []string{filters.Flate, filters.ASCII85},
		Data:    enc.Bytes(),
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(bmp.RGB, raw) {
		t.Errorf("RGB = %v, want %v", bmp.RGB, raw)
	}
}

// encodeASCII85 is a minimal encoder for test fixtures.
func encodeASCII85(buf *bytes.Buffer, data []byte) {
	for len(data) > 0 {
		var group [4]byte
		n := copy(group[:], data)
		data = data[n:]

		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])
		var digits [5]byte
		for i := 4; i >= 0; i-- {
			digits[i] = byte(v%85) + '!'
			v /= 85
		}
		buf.Write(digits[:n+1])
	}
	buf.WriteString("~>")
}

// TestDecodeIndexedRGB tests palette lookup with an RGB base
func TestDecodeIndexedRGB(t *testing.T) {
	res := &Resource{
		Width: 2, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{
			Kind: KindIndexed, Base: KindDeviceRGB, HiVal: 1,
			Palette: []byte{255, 0, 0, 0, 255, 0},
		},
		Data: []byte{1, 0},
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []byte{0, 255, 0, 255, 0, 0}
	if !bytes.Equal(bmp.RGB, want) {
		t.Errorf("RGB = %v, want %v", bmp.RGB, want)
	}
}

// TestDecodeIndexedGrayBase tests that a gray palette expands to RGB chunks
func TestDecodeIndexedGrayBase(t *testing.T) {
	res := &Resource{
		Width: 2, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{
			Kind: KindIndexed, Base: KindDeviceGray, HiVal: 1,
			Palette: []byte{0x10, 0xF0},
		},
		Data: []byte{0, 1},
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []byte{0x10, 0x10, 0x10, 0xF0, 0xF0, 0xF0}
	if !bytes.Equal(bmp.RGB, want) {
		t.Errorf("RGB = %v, want %v", bmp.RGB, want)
	}
}

// TestDecodeIndexedPaletteTooShort tests that a palette with fewer entries
// than the declared hival requires is a decode error, not a silent lookup
// into whatever bytes happen to follow
func TestDecodeIndexedPaletteTooShort(t *testing.T) {
	res := &Resource{
		Width: 1, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{
			Kind: KindIndexed, Base: KindDeviceRGB, HiVal: 3,
			Palette: []byte{255, 0, 0, 0, 255, 0},
		},
		Data: []byte{0},
	}

	if _, err := Decode(res); err == nil {
		t.Fatal("expected an error for a palette shorter than hival+1 entries")
	}
}

// TestDecodeBareGray tests built-in ramps for DeviceGray without a palette
func TestDecodeBareGray(t *testing.T) {
	res := &Resource{
		Width: 4, Height: 1, BitsPerComponent: 2,
		ColorSpace: ColorSpace{Kind: KindDeviceGray},
		Data:       []byte{0x1B}, // samples 0,1,2,3
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x55, 0x55, 0x55,
		0xAA, 0xAA, 0xAA, 0xFF, 0xFF, 0xFF,
	}
	if !bytes.Equal(bmp.RGB, want) {
		t.Errorf("RGB = %v, want %v", bmp.RGB, want)
	}
}

// TestDecodeNoColorSpaceOneBit tests the black/white fallback
func TestDecodeNoColorSpaceOneBit(t *testing.T) {
	res := &Resource{
		Width: 8, Height: 1, BitsPerComponent: 1,
		ColorSpace: ColorSpace{Kind: KindNone},
		Data:       []byte{0xFF},
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, b := range bmp.RGB {
		if b != 0xFF {
			t.Fatalf("byte %d = %#x, want white", i, b)
		}
	}
}

// TestDecodeUnsupportedColorSpace tests that exotic spaces surface as
// UnsupportedError, not a generic failure
func TestDecodeUnsupportedColorSpace(t *testing.T) {
	res := &Resource{
		Width: 1, Height: 1, BitsPerComponent: 8,
		ColorSpace: ColorSpace{Kind: KindUnsupported, Name: "DeviceCMYK"},
		Data:       []byte{0, 0, 0},
	}

	_, err := Decode(res)
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
	if unsupported.Reason != "color space DeviceCMYK" {
		t.Errorf("reason = %q", unsupported.Reason)
	}
}

// TestDecodeJPEG tests the self-describing DCT path end to end
func TestDecodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	res := &Resource{
		Width: 8, Height: 8, BitsPerComponent: 8,
		ColorSpace: ColorSpace{Kind: KindDeviceRGB},
		Filters:    []string{filters.DCT},
		Data:       buf.Bytes(),
	}

	bmp, err := Decode(res)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bmp.Width != 8 || bmp.Height != 8 || len(bmp.RGB) != 8*8*3 {
		t.Fatalf("unexpected bitmap %dx%d with %d bytes", bmp.Width, bmp.Height, len(bmp.RGB))
	}
	// lossy compression: accept a tolerance around the source color
	r, g, b := int(bmp.RGB[0]), int(bmp.RGB[1]), int(bmp.RGB[2])
	if abs(r-200) > 16 || abs(g-100) > 16 || abs(b-50) > 16 {
		t.Errorf("first pixel (%d,%d,%d) too far from (200,100,50)", r, g, b)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestFromInlineDict tests abbreviated inline image keys
func TestFromInlineDict(t *testing.T) {
	d := core.Dict{
		"W":   core.Int(4),
		"H":   core.Int(2),
		"BPC": core.Int(1),
		"CS":  core.Name("G"),
		"F":   core.Name("Fl"),
	}

	res := FromInlineDict(d, []byte{0xAB})

	if res.Width != 4 || res.Height != 2 || res.BitsPerComponent != 1 {
		t.Errorf("unexpected geometry %+v", res)
	}
	if res.ColorSpace.Kind != KindDeviceGray {
		t.Errorf("color space kind = %v, want DeviceGray", res.ColorSpace.Kind)
	}
	if diff := cmp.Diff([]string{filters.Flate}, res.Filters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

// TestFromInlineDictImageMask tests the stencil mask flag
func TestFromInlineDictImageMask(t *testing.T) {
	d := core.Dict{
		"W":  core.Int(8),
		"H":  core.Int(8),
		"IM": core.Bool(true),
	}
	res := FromInlineDict(d, nil)
	if res.BitsPerComponent != 1 || res.ColorSpace.Kind != KindNone {
		t.Errorf("stencil mask must force 1-bit no-color-space, got %+v", res)
	}
}

// TestFilterNames tests single-name and array declarations
func TestFilterNames(t *testing.T) {
	got := FilterNames(core.Name("AHx"))
	if diff := cmp.Diff([]string{filters.ASCIIHex}, got); diff != "" {
		t.Errorf("single name mismatch (-want +got):\n%s", diff)
	}

	got = FilterNames(core.Array{core.Name("A85"), core.Name("FlateDecode")})
	if diff := cmp.Diff([]string{filters.ASCII85, filters.Flate}, got); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}

	if FilterNames(nil) != nil {
		t.Error("absent filter entry must yield nil")
	}
}
