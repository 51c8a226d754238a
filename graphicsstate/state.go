package graphicsstate

import (
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/model"
)

// TextState holds the text-specific part of the graphics state
type TextState struct {
	// Text matrices
	Matrix     model.Matrix
	LineMatrix model.Matrix

	// Spacing parameters
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling as a fraction (1.0 = 100%)
	Scaling float64

	// Leading (line spacing)
	Leading float64

	// Current font: resolved base font name and size
	Font     string
	FontSize float64

	// Text rise and rendering mode
	Rise       float64
	RenderMode int
}

// State holds the graphics parameters affecting subsequent content stream
// operators. It is a plain value type with no shared mutable substructure,
// so saving is a structural copy and restoring is an assignment.
type State struct {
	// Line attributes
	LineWidth float64
	LineCap   draw.CapStyle
	LineJoin  draw.JoinStyle
	DashArray []float64
	DashPhase float64

	MiterLimit   float64
	StrokeAdjust bool

	// Overprint flags carry printer-only semantics; they are stored but
	// never acted on by the interpreter.
	Overprint     bool
	OverprintNS   bool
	OverprintMode int

	// Blend mode name from ExtGState, stored only
	BlendMode string

	// Colors with independent transparency (1.0 = opaque). Transparency is
	// composed at read time, never baked into the stored RGB.
	StrokeColor model.RGB
	FillColor   model.RGB
	StrokeAlpha float64
	FillAlpha   float64

	// Clipping path, recorded when W/W* precedes a paint operator but never
	// intersected against subsequent painting.
	Clip     []draw.Command
	ClipRule draw.FillRule

	Text TextState
}

// New returns a graphics state with content stream defaults
func New() State {
	return State{
		LineWidth:   1.0,
		LineCap:     draw.CapButt,
		LineJoin:    draw.JoinMiter,
		MiterLimit:  10.0,
		StrokeColor: model.Black,
		FillColor:   model.Black,
		StrokeAlpha: 1.0,
		FillAlpha:   1.0,
		Text: TextState{
			Matrix:     model.Identity(),
			LineMatrix: model.Identity(),
			Scaling:    1.0,
		},
	}
}

// Clone returns a fully independent copy of the state. Slice-valued fields
// are duplicated so no mutable substructure is shared with the original.
func (s State) Clone() State {
	c := s
	if s.DashArray != nil {
		c.DashArray = append([]float64(nil), s.DashArray...)
	}
	if s.Clip != nil {
		c.Clip = append([]draw.Command(nil), s.Clip...)
	}
	return c
}

// StrokeColorWithAlpha composes the stroke color with the stroke transparency
func (s *State) StrokeColorWithAlpha() model.Color {
	return s.StrokeColor.WithAlpha(s.StrokeAlpha)
}

// FillColorWithAlpha composes the fill color with the fill transparency
func (s *State) FillColorWithAlpha() model.Color {
	return s.FillColor.WithAlpha(s.FillAlpha)
}

// Pen builds the stroke pen implied by the current state
func (s *State) Pen() draw.Pen {
	p := draw.Pen{
		Color: s.StrokeColorWithAlpha(),
		Width: s.LineWidth,
		Cap:   s.LineCap,
		Join:  s.LineJoin,
	}
	if len(s.DashArray) > 0 {
		p.Dashes = append([]float64(nil), s.DashArray...)
		p.DashPhase = s.DashPhase
	}
	return p
}

// Brush builds the fill brush implied by the current state
func (s *State) Brush() draw.Brush {
	return draw.Brush{Color: s.FillColorWithAlpha()}
}

// SetLineWidth sets the stroke width, clamped to a floor of 1.0 so hairlines
// stay visible at reduced zoom
func (s *State) SetLineWidth(w float64) {
	if w < 1.0 {
		w = 1.0
	}
	s.LineWidth = w
}

// CapFromCode maps the integer operand of the line cap operator
func CapFromCode(code int) (draw.CapStyle, bool) {
	switch code {
	case 0:
		return draw.CapButt, true
	case 1:
		return draw.CapRound, true
	case 2:
		return draw.CapProjecting, true
	default:
		return draw.CapButt, false
	}
}

// JoinFromCode maps the integer operand of the line join operator
func JoinFromCode(code int) (draw.JoinStyle, bool) {
	switch code {
	case 0:
		return draw.JoinMiter, true
	case 1:
		return draw.JoinRound, true
	case 2:
		return draw.JoinBevel, true
	default:
		return draw.JoinMiter, false
	}
}

// BeginText resets both text matrices to identity
func (s *State) BeginText() {
	s.Text.Matrix = model.Identity()
	s.Text.LineMatrix = model.Identity()
}

// SetTextMatrix sets both the text matrix and the text line matrix
func (s *State) SetTextMatrix(m model.Matrix) {
	s.Text.Matrix = m
	s.Text.LineMatrix = m
}

// TranslateText offsets the line matrix translation components and copies it
// into the text matrix. Rotation and skew composition is intentionally not
// performed; offsets are translation-only.
func (s *State) TranslateText(tx, ty float64) {
	s.Text.LineMatrix[4] += tx
	s.Text.LineMatrix[5] += ty
	s.Text.Matrix = s.Text.LineMatrix
}

// NextLine advances to the next text line using the current leading
func (s *State) NextLine() {
	s.TranslateText(0, -s.Text.Leading)
}
