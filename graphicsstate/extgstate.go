package graphicsstate

import (
	"github.com/pagedraw/pagedraw/core"
)

// ApplyExtGState applies the recognized keys of an ExtGState resource
// dictionary to the state. Key names follow the PDF parameter dictionary
// (CA/ca are stroke/fill transparency, LW line width, and so on).
//
// The returned slice lists keys that were present but not applied, so the
// caller can report each distinct key once.
func (s *State) ApplyExtGState(d core.Dict) []string {
	var unsupported []string

	for key, value := range d {
		switch key {
		case "Type":
			// value should be /ExtGState; nothing to apply
		case "SA":
			if b, ok := core.AsBool(value); ok {
				s.StrokeAdjust = b
			}
		case "CA":
			if v, ok := core.AsFloat(value); ok {
				s.StrokeAlpha = v
			}
		case "ca":
			if v, ok := core.AsFloat(value); ok {
				s.FillAlpha = v
			}
		case "LW":
			if v, ok := core.AsFloat(value); ok {
				s.SetLineWidth(v)
			}
		case "LC":
			if v, ok := core.AsInt(value); ok {
				if cap, valid := CapFromCode(v); valid {
					s.LineCap = cap
				}
			}
		case "LJ":
			if v, ok := core.AsInt(value); ok {
				if join, valid := JoinFromCode(v); valid {
					s.LineJoin = join
				}
			}
		case "ML":
			if v, ok := core.AsFloat(value); ok {
				s.MiterLimit = v
			}
		case "D":
			// [[dashArray] phase]
			if arr, ok := value.(core.Array); ok && len(arr) == 2 {
				if inner, ok := arr[0].(core.Array); ok {
					dashes := make([]float64, 0, len(inner))
					for _, el := range inner {
						if v, ok := core.AsFloat(el); ok {
							dashes = append(dashes, v)
						}
					}
					s.DashArray = dashes
				}
				if phase, ok := core.AsFloat(arr[1]); ok {
					s.DashPhase = phase
				}
			}
		case "OP":
			if b, ok := core.AsBool(value); ok {
				s.Overprint = b
			}
		case "op":
			if b, ok := core.AsBool(value); ok {
				s.OverprintNS = b
			}
		case "OPM":
			if v, ok := core.AsInt(value); ok {
				s.OverprintMode = v
			}
		case "BM":
			// blend modes are stored but never acted on
			if name, ok := core.AsName(value); ok {
				s.BlendMode = name
			}
		default:
			unsupported = append(unsupported, key)
		}
	}

	return unsupported
}
