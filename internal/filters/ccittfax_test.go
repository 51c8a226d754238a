package filters

import (
	"testing"

	"github.com/pagedraw/pagedraw/core"
)

// TestCCITTFaxDecodeCorrupt tests that malformed fax data surfaces as a
// decode error rather than a panic
func TestCCITTFaxDecodeCorrupt(t *testing.T) {
	parms := core.Dict{
		"K":       core.Int(-1),
		"Columns": core.Int(8),
		"Rows":    core.Int(8),
	}
	if _, err := CCITTFaxDecode([]byte{0xFF, 0xFF, 0xFF, 0xFF}, parms); err == nil {
		t.Error("expected error for corrupt fax data")
	}
}

// TestCCITTFaxDecodeGroup4Blank tests a minimal Group 4 stream: rows with no
// code bits beyond EOFB decode to all-white scanlines
func TestCCITTFaxDecodeGroup4Blank(t *testing.T) {
	// Vertical-mode V0 codes (1 bit each) copy the all-white reference row.
	// One V0 per row for 4 rows, then EOFB (000000000001 twice), MSB packed:
	// 1111 0000 0000 0100 0000 0000 01xx
	data := []byte{0xF0, 0x04, 0x00, 0x40}
	parms := core.Dict{
		"K":       core.Int(-1),
		"Columns": core.Int(8),
		"Rows":    core.Int(4),
	}

	out, err := CCITTFaxDecode(data, parms)
	if err != nil {
		t.Fatalf("CCITTFaxDecode failed: %v", err)
	}
	// 8 columns at 1 bit per pixel is one byte per row
	if len(out) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			t.Errorf("row %d = %#x, want every blank row identical to row 0 (%#x)", i, out[i], out[0])
		}
	}
}
