// Package font resolves declared base-font names to concrete font
// descriptors and provides advance-width metrics for the standard fonts.
//
// Resolution is a guess by name: the base-font string is matched against the
// well known families (Courier, Helvetica, Times, Symbol, ZapfDingbats) and
// mapped to a family, face, weight, and style. Names that match no family
// fall back to a Swiss sans face and are accumulated in the resolver's
// missing set, which the owning session can surface once per document.
//
// Width metrics cover the standard faces in thousandths of an em. Hosts with
// access to real font files can layer a more precise measurer on top; the
// metrics here are the preferred source whenever the face is one we know.
package font
