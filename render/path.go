package render

import (
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/graphicsstate"
	"github.com/pagedraw/pagedraw/model"
)

// pathAccumulator collects path construction segments until a painting
// operator resolves them. Coordinates are flipped to the top-left device
// convention as they arrive, so the stored segments are already in final
// form and clipping can snapshot them directly.
type pathAccumulator struct {
	segments []draw.Command

	// current is the device-space current point, used to synthesize the
	// elided control points of the v and y curve forms.
	current    model.Point
	hasCurrent bool
}

func (p *pathAccumulator) empty() bool { return len(p.segments) == 0 }

func (p *pathAccumulator) reset() {
	p.segments = p.segments[:0]
	p.hasCurrent = false
}

func (p *pathAccumulator) moveTo(x, y float64) {
	pt := model.Point{X: x, Y: -y}
	p.segments = append(p.segments, draw.MoveTo(pt))
	p.current = pt
	p.hasCurrent = true
}

func (p *pathAccumulator) lineTo(x, y float64) {
	pt := model.Point{X: x, Y: -y}
	p.segments = append(p.segments, draw.LineTo(pt))
	p.current = pt
	p.hasCurrent = true
}

// curveTo appends a cubic segment with both control points explicit.
func (p *pathAccumulator) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	c1 := model.Point{X: x1, Y: -y1}
	c2 := model.Point{X: x2, Y: -y2}
	end := model.Point{X: x3, Y: -y3}
	p.segments = append(p.segments, draw.CurveTo(c1, c2, end))
	p.current = end
	p.hasCurrent = true
}

// curveToV appends a cubic segment whose first control point is the current
// point. Without a current point the segment degenerates to start at the
// end point, which matches treating the subpath as freshly opened there.
func (p *pathAccumulator) curveToV(x2, y2, x3, y3 float64) {
	c1 := p.current
	if !p.hasCurrent {
		c1 = model.Point{X: x3, Y: -y3}
	}
	c2 := model.Point{X: x2, Y: -y2}
	end := model.Point{X: x3, Y: -y3}
	p.segments = append(p.segments, draw.CurveTo(c1, c2, end))
	p.current = end
	p.hasCurrent = true
}

// curveToY appends a cubic segment whose second control point coincides
// with the end point.
func (p *pathAccumulator) curveToY(x1, y1, x3, y3 float64) {
	c1 := model.Point{X: x1, Y: -y1}
	end := model.Point{X: x3, Y: -y3}
	p.segments = append(p.segments, draw.CurveTo(c1, end, end))
	p.current = end
	p.hasCurrent = true
}

// rectangle appends a whole-rectangle subpath. The device-space rect hangs
// below the flipped anchor, and normalization absorbs negative extents.
func (p *pathAccumulator) rectangle(x, y, w, h float64) {
	r := model.NewRect(x, -y-h, w, h).Normalized()
	p.segments = append(p.segments, draw.AddRectangle(r))
	p.current = model.Point{X: r.X, Y: r.Y}
	p.hasCurrent = true
}

func (p *pathAccumulator) closePath() {
	p.segments = append(p.segments, draw.ClosePath())
}

// snapshot returns an independent copy of the accumulated segments, used
// when a clipping operator records the pending path.
func (p *pathAccumulator) snapshot() []draw.Command {
	return append([]draw.Command(nil), p.segments...)
}

// paintSpec describes how one painting operator consumes the accumulated
// path.
type paintSpec struct {
	stroke bool
	fill   bool
	close  bool
	rule   draw.FillRule
}

var paintSpecs = map[opcode]paintSpec{
	opStroke:                 {stroke: true},
	opCloseStroke:            {stroke: true, close: true},
	opFill:                   {fill: true, rule: draw.WindingRule},
	opFillEvenOdd:            {fill: true, rule: draw.EvenOddRule},
	opFillStroke:             {stroke: true, fill: true, rule: draw.WindingRule},
	opCloseFillStroke:        {stroke: true, fill: true, close: true, rule: draw.WindingRule},
	opFillStrokeEvenOdd:      {stroke: true, fill: true, rule: draw.EvenOddRule},
	opCloseFillStrokeEvenOdd: {stroke: true, fill: true, close: true, rule: draw.EvenOddRule},
	opEndPath:                {},
}

// resolve turns the accumulated path plus one painting operator into draw
// commands. The no-op painter still emits the full sequence with both pen
// and brush transparent, which keeps backends that track path state simple.
// The accumulator is cleared afterwards in every case.
func (p *pathAccumulator) resolve(op opcode, state *graphicsstate.State) []draw.Command {
	spec := paintSpecs[op]

	pen := draw.Pen{Transparent: true}
	if spec.stroke {
		pen = state.Pen()
	}
	brush := draw.Brush{Transparent: true}
	if spec.fill {
		brush = state.Brush()
	}

	out := make([]draw.Command, 0, len(p.segments)+5)
	out = append(out, draw.SetPen(pen), draw.SetBrush(brush), draw.CreatePath())
	out = append(out, p.segments...)
	if spec.close && len(p.segments) > 0 {
		out = append(out, draw.ClosePath())
	}
	out = append(out, draw.DrawPath(spec.rule))

	p.reset()
	return out
}
