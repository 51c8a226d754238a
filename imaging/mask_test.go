package imaging

import (
	"bytes"
	"testing"

	"github.com/pagedraw/pagedraw/draw"
)

// TestApplyColorKey tests range matching, key replacement, and alpha
func TestApplyColorKey(t *testing.T) {
	bmp := &draw.Bitmap{
		Width:  2,
		Height: 1,
		RGB: []byte{
			252, 2, 1, // inside the key range
			100, 100, 100, // outside
		},
	}

	// R in [250,255], G in [0,5], B in [0,5]
	if err := applyColorKey(bmp, []int{250, 255, 0, 5, 0, 5}); err != nil {
		t.Fatalf("applyColorKey failed: %v", err)
	}

	// matched pixel rewritten to the key color (the high bounds)
	if !bytes.Equal(bmp.RGB[0:3], []byte{255, 5, 5}) {
		t.Errorf("matched pixel = %v, want key color [255 5 5]", bmp.RGB[0:3])
	}
	if !bytes.Equal(bmp.RGB[3:6], []byte{100, 100, 100}) {
		t.Errorf("unmatched pixel modified: %v", bmp.RGB[3:6])
	}
	if bmp.Alpha[0] != 0 {
		t.Error("matched pixel must be transparent")
	}
	if bmp.Alpha[1] != 0xFF {
		t.Error("unmatched pixel must stay opaque")
	}
}

// TestApplyColorKeyPartialMatch tests that all three channels must be in
// range for a pixel to be masked
func TestApplyColorKeyPartialMatch(t *testing.T) {
	bmp := &draw.Bitmap{
		Width:  1,
		Height: 1,
		RGB:    []byte{252, 100, 1}, // G out of range
	}
	if err := applyColorKey(bmp, []int{250, 255, 0, 5, 0, 5}); err != nil {
		t.Fatalf("applyColorKey failed: %v", err)
	}
	if bmp.Alpha[0] != 0xFF {
		t.Error("pixel with one channel out of range must stay opaque")
	}
}

// TestApplyColorKeyMalformed tests rejection of a key that is not 6 values
func TestApplyColorKeyMalformed(t *testing.T) {
	bmp := &draw.Bitmap{Width: 1, Height: 1, RGB: []byte{0, 0, 0}}
	if err := applyColorKey(bmp, []int{1, 2, 3}); err == nil {
		t.Error("expected error for malformed color key")
	}
}

// TestApplyExplicitMask tests a raw 1-bit mask where white means transparent
func TestApplyExplicitMask(t *testing.T) {
	bmp := &draw.Bitmap{
		Width:  4,
		Height: 1,
		RGB: []byte{
			10, 10, 10, 20, 20, 20, 30, 30, 30, 40, 40, 40,
		},
	}
	// mask bits 1010: pixels 0 and 2 are white in the mask
	mask := &Resource{
		Width:  4,
		Height: 1,
		Data:   []byte{0xA0},
	}

	if err := applyExplicitMask(bmp, mask); err != nil {
		t.Fatalf("applyExplicitMask failed: %v", err)
	}
	want := []byte{0, 0xFF, 0, 0xFF}
	if !bytes.Equal(bmp.Alpha, want) {
		t.Errorf("alpha = %v, want %v", bmp.Alpha, want)
	}
}

// TestApplyExplicitMaskSizeMismatch tests rejection of a mask whose size
// differs from the image
func TestApplyExplicitMaskSizeMismatch(t *testing.T) {
	bmp := &draw.Bitmap{Width: 2, Height: 2, RGB: make([]byte, 12)}
	mask := &Resource{Width: 4, Height: 1, Data: []byte{0xA0}}
	if err := applyExplicitMask(bmp, mask); err == nil {
		t.Error("expected error for mask size mismatch")
	}
}
