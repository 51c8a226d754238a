package font

import (
	"sort"
	"strings"

	"github.com/pagedraw/pagedraw/draw"
)

// Resolver maps declared base-font names to concrete font descriptors. It
// remembers every name it failed to recognize so the owning session can
// report each missing font once. A Resolver is not safe for concurrent use.
type Resolver struct {
	// missing keys the lowercased name for case-insensitive dedup; the
	// value keeps the declared spelling for reporting.
	missing map[string]string
}

// NewResolver returns a Resolver with an empty missing-font set.
func NewResolver() *Resolver {
	return &Resolver{missing: make(map[string]string)}
}

// Resolve guesses a font descriptor from a declared base-font name. The
// returned known flag is false when the name matched no standard family; in
// that case the descriptor falls back to a Swiss sans face and the name is
// added to the missing set.
func (r *Resolver) Resolve(baseFont string, size float64) (draw.FontSpec, bool) {
	lower := strings.ToLower(baseFont)

	spec := draw.FontSpec{Size: size}
	if spec.Size < 1 {
		spec.Size = 1
	}

	known := true
	switch {
	case strings.Contains(lower, "courier"):
		spec.Family = draw.FamilyModern
		spec.Face = "Courier New"
	case strings.Contains(lower, "helvetica"):
		spec.Family = draw.FamilySwiss
		spec.Face = "Arial"
	case strings.Contains(lower, "times"):
		spec.Family = draw.FamilyRoman
		spec.Face = "Times New Roman"
	case strings.Contains(lower, "zapfdingbats"):
		spec.Family = draw.FamilyDefault
		spec.Face = "Wingdings"
	case strings.Contains(lower, "symbol"):
		spec.Family = draw.FamilyDefault
		spec.Face = "Symbol"
	default:
		if _, dup := r.missing[lower]; !dup {
			r.missing[lower] = baseFont
		}
		known = false
		spec.Family = draw.FamilySwiss
		spec.Face = "Arial"
	}

	if strings.Contains(lower, "bold") {
		spec.Weight = draw.WeightBold
	}
	if strings.Contains(lower, "oblique") || strings.Contains(lower, "italic") {
		spec.Style = draw.StyleItalic
	}

	return spec, known
}

// MissingFonts returns the sorted base-font names that failed to resolve
// since the Resolver was created, in their declared spelling. Names that
// differ only by case count once, keeping the spelling seen first.
func (r *Resolver) MissingFonts() []string {
	names := make([]string, 0, len(r.missing))
	for _, name := range r.missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
