package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pagedraw/pagedraw/draw"
)

func TestResolveStandardFamilies(t *testing.T) {
	tests := []struct {
		name     string
		baseFont string
		want     draw.FontSpec
	}{
		{
			name:     "courier",
			baseFont: "Courier",
			want:     draw.FontSpec{Face: "Courier New", Family: draw.FamilyModern, Size: 12},
		},
		{
			name:     "helvetica",
			baseFont: "Helvetica",
			want:     draw.FontSpec{Face: "Arial", Family: draw.FamilySwiss, Size: 12},
		},
		{
			name:     "times bold italic",
			baseFont: "Times-BoldItalic",
			want: draw.FontSpec{
				Face: "Times New Roman", Family: draw.FamilyRoman,
				Weight: draw.WeightBold, Style: draw.StyleItalic, Size: 12,
			},
		},
		{
			name:     "helvetica oblique",
			baseFont: "Helvetica-Oblique",
			want: draw.FontSpec{
				Face: "Arial", Family: draw.FamilySwiss,
				Style: draw.StyleItalic, Size: 12,
			},
		},
		{
			name:     "subset prefix still matches",
			baseFont: "ABCDEF+Helvetica-Bold",
			want: draw.FontSpec{
				Face: "Arial", Family: draw.FamilySwiss,
				Weight: draw.WeightBold, Size: 12,
			},
		},
		{
			name:     "symbol",
			baseFont: "Symbol",
			want:     draw.FontSpec{Face: "Symbol", Family: draw.FamilyDefault, Size: 12},
		},
		{
			name:     "zapf dingbats",
			baseFont: "ZapfDingbats",
			want:     draw.FontSpec{Face: "Wingdings", Family: draw.FamilyDefault, Size: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			got, known := r.Resolve(tt.baseFont, 12)
			if !known {
				t.Errorf("Resolve(%q) reported unknown", tt.baseFont)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.baseFont, diff)
			}
			if len(r.MissingFonts()) != 0 {
				t.Errorf("known font recorded as missing: %v", r.MissingFonts())
			}
		})
	}
}

func TestResolveUnknownFont(t *testing.T) {
	r := NewResolver()

	got, known := r.Resolve("Fancy-Display", 10)
	if known {
		t.Error("expected unknown font to report known=false")
	}
	if got.Face != "Arial" || got.Family != draw.FamilySwiss {
		t.Errorf("expected Swiss fallback, got %+v", got)
	}

	// repeated and differently-cased lookups collapse to one entry that
	// keeps the spelling seen first
	r.Resolve("fancy-display", 10)
	r.Resolve("FANCY-DISPLAY", 14)
	r.Resolve("Other-Face", 10)

	want := []string{"Fancy-Display", "Other-Face"}
	if diff := cmp.Diff(want, r.MissingFonts()); diff != "" {
		t.Errorf("missing set mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveSizeFloor(t *testing.T) {
	r := NewResolver()
	got, _ := r.Resolve("Helvetica", 0.5)
	if got.Size != 1 {
		t.Errorf("expected size floor of 1, got %f", got.Size)
	}
}
