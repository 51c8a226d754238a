package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/graphicsstate"
	"github.com/pagedraw/pagedraw/model"
)

// TestRectangleFlipsAndNormalizes verifies re anchors the flipped rect at
// its top-left corner and absorbs negative extents.
func TestRectangleFlipsAndNormalizes(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       model.Rect
	}{
		{"positive extents", 10, 20, 30, 40, model.Rect{X: 10, Y: -60, Width: 30, Height: 40}},
		{"negative height", 10, 20, 30, -40, model.Rect{X: 10, Y: -20, Width: 30, Height: 40}},
		{"negative width", 10, 20, -30, 40, model.Rect{X: -20, Y: -60, Width: 30, Height: 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p pathAccumulator
			p.rectangle(tc.x, tc.y, tc.w, tc.h)
			if len(p.segments) != 1 || p.segments[0].Op != draw.OpAddRectangle {
				t.Fatalf("segments = %v", p.segments)
			}
			if diff := cmp.Diff(tc.want, p.segments[0].Rect); diff != "" {
				t.Errorf("rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRectangleNegativeHeightEquivalence verifies a negative-height
// rectangle produces the same device rect as its positive-height form with
// the origin moved down by the height.
func TestRectangleNegativeHeightEquivalence(t *testing.T) {
	var neg, pos pathAccumulator
	neg.rectangle(10, 20, 30, -40)
	pos.rectangle(10, -20, 30, 40)
	if diff := cmp.Diff(pos.segments[0].Rect, neg.segments[0].Rect); diff != "" {
		t.Errorf("rect mismatch (-positive +negative):\n%s", diff)
	}
}

// TestCurveVariants verifies the elided control points of v and y come
// from the current point and the end point respectively.
func TestCurveVariants(t *testing.T) {
	var p pathAccumulator
	p.moveTo(1, 2)
	p.curveToV(3, 4, 5, 6)
	p.curveToY(7, 8, 9, 10)

	if len(p.segments) != 3 {
		t.Fatalf("segment count = %d, want 3", len(p.segments))
	}

	v := p.segments[1]
	if want := (model.Point{X: 1, Y: -2}); v.P1 != want {
		t.Errorf("v first control = %v, want current point %v", v.P1, want)
	}
	if want := (model.Point{X: 3, Y: -4}); v.P2 != want {
		t.Errorf("v second control = %v, want %v", v.P2, want)
	}

	y := p.segments[2]
	if want := (model.Point{X: 9, Y: -10}); y.P2 != want || y.P3 != want {
		t.Errorf("y control/end = %v/%v, want both %v", y.P2, y.P3, want)
	}
	// the current point followed the first curve's end
	if want := (model.Point{X: 7, Y: -8}); y.P1 != want {
		t.Errorf("y first control = %v, want %v", y.P1, want)
	}
}

// TestPaintOperatorTable exercises every painting operator against the
// stroke/fill/close/rule table.
func TestPaintOperatorTable(t *testing.T) {
	tests := []struct {
		operator   string
		stroke     bool
		fill       bool
		close      bool
		rule       draw.FillRule
	}{
		{"S", true, false, false, draw.WindingRule},
		{"s", true, false, true, draw.WindingRule},
		{"f", false, true, false, draw.WindingRule},
		{"F", false, true, false, draw.WindingRule},
		{"f*", false, true, false, draw.EvenOddRule},
		{"B", true, true, false, draw.WindingRule},
		{"b", true, true, true, draw.WindingRule},
		{"B*", true, true, false, draw.EvenOddRule},
		{"b*", true, true, true, draw.EvenOddRule},
		{"n", false, false, false, draw.WindingRule},
	}

	for _, tc := range tests {
		t.Run(tc.operator, func(t *testing.T) {
			var p pathAccumulator
			p.moveTo(0, 0)
			p.lineTo(10, 10)
			state := graphicsstate.New()

			cmds := p.resolve(lookupOpcode(tc.operator), &state)

			if cmds[0].Op != draw.OpSetPen || cmds[1].Op != draw.OpSetBrush || cmds[2].Op != draw.OpCreatePath {
				t.Fatalf("prologue = %v %v %v, want SetPen SetBrush CreatePath", cmds[0].Op, cmds[1].Op, cmds[2].Op)
			}
			last := cmds[len(cmds)-1]
			if last.Op != draw.OpDrawPath || last.Rule != tc.rule {
				t.Errorf("final command = %v rule %v, want DrawPath rule %v", last.Op, last.Rule, tc.rule)
			}

			var pen *draw.Pen
			var brush *draw.Brush
			closes := 0
			for i := range cmds {
				switch cmds[i].Op {
				case draw.OpSetPen:
					pen = &cmds[i].Pen
				case draw.OpSetBrush:
					brush = &cmds[i].Brush
				case draw.OpClosePath:
					closes++
				}
			}
			if pen == nil || brush == nil {
				t.Fatal("every paint emits both pen and brush")
			}
			if pen.Transparent == tc.stroke {
				t.Errorf("pen transparent = %v with stroke = %v", pen.Transparent, tc.stroke)
			}
			if brush.Transparent == tc.fill {
				t.Errorf("brush transparent = %v with fill = %v", brush.Transparent, tc.fill)
			}
			wantCloses := 0
			if tc.close {
				wantCloses = 1
			}
			if closes != wantCloses {
				t.Errorf("ClosePath count = %d, want %d", closes, wantCloses)
			}

			if !p.empty() {
				t.Error("accumulator not cleared after resolve")
			}
		})
	}
}

// TestNoOpPainterStillEmits verifies n with an empty path still produces
// the full transparent paint sequence.
func TestNoOpPainterStillEmits(t *testing.T) {
	var p pathAccumulator
	state := graphicsstate.New()
	cmds := p.resolve(opEndPath, &state)

	wantOps := []draw.Op{draw.OpSetPen, draw.OpSetBrush, draw.OpCreatePath, draw.OpDrawPath}
	if len(cmds) != len(wantOps) {
		t.Fatalf("command count = %d, want %d", len(cmds), len(wantOps))
	}
	for i, op := range wantOps {
		if cmds[i].Op != op {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Op, op)
		}
	}
	if !cmds[0].Pen.Transparent || !cmds[1].Brush.Transparent {
		t.Error("pen and brush should both be transparent")
	}
}

// TestStrokeUsesStatePen verifies the resolved pen reflects the state's
// line attributes and stroke color.
func TestStrokeUsesStatePen(t *testing.T) {
	state := graphicsstate.New()
	state.SetLineWidth(3)
	state.StrokeColor = model.RGB{R: 1}
	state.DashArray = []float64{4, 2}

	var p pathAccumulator
	p.moveTo(0, 0)
	p.lineTo(5, 0)
	cmds := p.resolve(opStroke, &state)

	var pen draw.Pen
	for _, c := range cmds {
		if c.Op == draw.OpSetPen {
			pen = c.Pen
		}
	}
	if pen.Width != 3 || pen.Color.R != 1 {
		t.Errorf("pen = %+v", pen)
	}
	if diff := cmp.Diff([]float64{4, 2}, pen.Dashes); diff != "" {
		t.Errorf("dashes mismatch (-want +got):\n%s", diff)
	}
}
