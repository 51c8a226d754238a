package render

import (
	"errors"
	"fmt"

	"github.com/pagedraw/pagedraw/contentstream"
	"github.com/pagedraw/pagedraw/core"
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/font"
	"github.com/pagedraw/pagedraw/graphicsstate"
	"github.com/pagedraw/pagedraw/imaging"
	"github.com/pagedraw/pagedraw/model"
)

// Options tunes one interpreter session. The zero value is usable: both
// scales default to 1 and measurement falls back to the built-in tables.
type Options struct {
	// MetricsScale multiplies font sizes used for text measurement only.
	MetricsScale float64

	// SizeScale multiplies font sizes carried on emitted SetFont commands.
	SizeScale float64

	// Measurer measures text for fonts outside the standard families.
	Measurer TextMeasurer
}

// Interpreter turns content stream operations into draw command lists. One
// interpreter spans a session: the form cache, the missing-font set, and
// the warning list all accumulate across pages.
type Interpreter struct {
	opts  Options
	fonts *font.Resolver
	forms *FormCache

	// expanding holds the forms currently mid-expansion so a form whose
	// content references its own name cannot recurse without bound
	expanding map[formKey]struct{}

	warnings []Warning
	seen     map[string]struct{}
}

// New creates an interpreter session.
func New(opts Options) *Interpreter {
	if opts.MetricsScale == 0 {
		opts.MetricsScale = 1
	}
	if opts.SizeScale == 0 {
		opts.SizeScale = 1
	}
	return &Interpreter{
		opts:      opts,
		fonts:     font.NewResolver(),
		forms:     NewFormCache(),
		expanding: make(map[formKey]struct{}),
		seen:      make(map[string]struct{}),
	}
}

// Warnings returns every warning accumulated so far, in emission order.
func (in *Interpreter) Warnings() []Warning { return in.warnings }

// MissingFonts returns the sorted base-font names that resolved to no
// standard family during this session.
func (in *Interpreter) MissingFonts() []string { return in.fonts.MissingFonts() }

// FormExpansions reports how many distinct forms were expanded.
func (in *Interpreter) FormExpansions() int { return in.forms.Expansions() }

// RunPage interprets one page's operations under the given resource scope
// and returns the finished command list. scope identifies the page for form
// caching; distinct pages must pass distinct scope values.
func (in *Interpreter) RunPage(scope string, ops []contentstream.Operation, res Resources) []draw.Command {
	return draw.FoldBitmapTransforms(in.run(scope, ops, res))
}

// warnOnce records a warning unless an identical message was already
// recorded this session.
func (in *Interpreter) warnOnce(kind WarningKind, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if _, dup := in.seen[msg]; dup {
		return
	}
	in.seen[msg] = struct{}{}
	in.warnings = append(in.warnings, Warning{Kind: kind, Message: msg})
}

// floats extracts exactly n numeric operands, reporting a structural
// warning when the operand shape is wrong.
func (in *Interpreter) floats(op contentstream.Operation, n int) ([]float64, bool) {
	vals, ok := core.Floats(op.Operands, n)
	if !ok {
		in.warnOnce(WarnStructural, "operator %s with malformed operands", op.Operator)
	}
	return vals, ok
}

func (in *Interpreter) run(scope string, ops []contentstream.Operation, res Resources) []draw.Command {
	state := graphicsstate.New()
	var stack []graphicsstate.State
	path := &pathAccumulator{}
	var out []draw.Command

	for _, op := range ops {
		switch lookupOpcode(op.Operator) {

		case opSaveState:
			stack = append(stack, state.Clone())
			out = append(out, draw.PushState())

		case opRestoreState:
			if len(stack) == 0 {
				// a restore below the stream's own saves would pop
				// the caller's state; reset to defaults instead
				in.warnOnce(WarnStructural, "restore without matching save")
				state = graphicsstate.New()
				continue
			}
			state = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, draw.PopState())

		case opConcatMatrix:
			if v, ok := in.floats(op, 6); ok {
				out = append(out, draw.ConcatTransform(flipMatrix(v)))
			}

		case opExtGState:
			name, ok := core.AsName(operand(op, 0))
			if !ok {
				in.warnOnce(WarnStructural, "operator gs with malformed operands")
				continue
			}
			d, found := res.ExtGState(name)
			if !found {
				in.warnOnce(WarnMissingResource, "graphics state resource /%s", name)
				continue
			}
			for _, key := range state.ApplyExtGState(d) {
				in.warnOnce(WarnUnsupported, "graphics state parameter /%s", key)
			}

		case opStrokeRGB:
			if v, ok := in.floats(op, 3); ok {
				state.StrokeColor = model.RGBFromComponents(v[0], v[1], v[2])
			}
		case opFillRGB:
			if v, ok := in.floats(op, 3); ok {
				state.FillColor = model.RGBFromComponents(v[0], v[1], v[2])
			}
		case opStrokeCMYK:
			if v, ok := in.floats(op, 4); ok {
				state.StrokeColor = model.RGBFromCMYK(v[0], v[1], v[2], v[3])
			}
		case opFillCMYK:
			if v, ok := in.floats(op, 4); ok {
				state.FillColor = model.RGBFromCMYK(v[0], v[1], v[2], v[3])
			}
		case opStrokeGray:
			if v, ok := in.floats(op, 1); ok {
				state.StrokeColor = model.RGBFromGray(v[0])
			}
		case opFillGray:
			if v, ok := in.floats(op, 1); ok {
				state.FillColor = model.RGBFromGray(v[0])
			}

		case opLineWidth:
			if v, ok := in.floats(op, 1); ok {
				state.SetLineWidth(v[0])
			}
		case opLineCap:
			if code, ok := core.AsInt(operand(op, 0)); ok {
				if cap, valid := graphicsstate.CapFromCode(code); valid {
					state.LineCap = cap
				}
			}
		case opLineJoin:
			if code, ok := core.AsInt(operand(op, 0)); ok {
				if join, valid := graphicsstate.JoinFromCode(code); valid {
					state.LineJoin = join
				}
			}
		case opDash:
			arr, aok := operand(op, 0).(core.Array)
			phase, pok := core.AsFloat(operand(op, 1))
			if !aok || !pok {
				in.warnOnce(WarnStructural, "operator d with malformed operands")
				continue
			}
			dashes := make([]float64, 0, len(arr))
			for _, el := range arr {
				if v, ok := core.AsFloat(el); ok {
					dashes = append(dashes, v)
				}
			}
			state.DashArray = dashes
			state.DashPhase = phase

		case opMoveTo:
			if v, ok := in.floats(op, 2); ok {
				path.moveTo(v[0], v[1])
			}
		case opLineTo:
			if v, ok := in.floats(op, 2); ok {
				path.lineTo(v[0], v[1])
			}
		case opCurveTo:
			if v, ok := in.floats(op, 6); ok {
				path.curveTo(v[0], v[1], v[2], v[3], v[4], v[5])
			}
		case opCurveToV:
			if v, ok := in.floats(op, 4); ok {
				path.curveToV(v[0], v[1], v[2], v[3])
			}
		case opCurveToY:
			if v, ok := in.floats(op, 4); ok {
				path.curveToY(v[0], v[1], v[2], v[3])
			}
		case opRectangle:
			if v, ok := in.floats(op, 4); ok {
				path.rectangle(v[0], v[1], v[2], v[3])
			}
		case opClosePath:
			path.closePath()

		case opClip:
			state.Clip = path.snapshot()
			state.ClipRule = draw.WindingRule
		case opClipEvenOdd:
			state.Clip = path.snapshot()
			state.ClipRule = draw.EvenOddRule

		case opStroke, opCloseStroke, opFill, opFillEvenOdd,
			opFillStroke, opCloseFillStroke, opFillStrokeEvenOdd,
			opCloseFillStrokeEvenOdd, opEndPath:
			out = append(out, path.resolve(lookupOpcode(op.Operator), &state)...)

		case opBeginText:
			state.BeginText()
		case opEndText:
			// nothing to unwind; the text matrices are only read between
			// BT and ET

		case opSetTextMatrix:
			if v, ok := in.floats(op, 6); ok {
				state.SetTextMatrix(model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})
			}
		case opTextMove:
			if v, ok := in.floats(op, 2); ok {
				state.TranslateText(v[0], v[1])
			}
		case opTextMoveSetLeading:
			if v, ok := in.floats(op, 2); ok {
				state.Text.Leading = -v[1]
				state.TranslateText(v[0], v[1])
			}
		case opNextLine:
			state.NextLine()
		case opSetLeading:
			if v, ok := in.floats(op, 1); ok {
				state.Text.Leading = v[0]
			}
		case opSetCharSpacing:
			if v, ok := in.floats(op, 1); ok {
				state.Text.CharSpacing = v[0]
			}
		case opSetWordSpacing:
			if v, ok := in.floats(op, 1); ok {
				state.Text.WordSpacing = v[0]
			}
		case opSetHorizScale:
			if v, ok := in.floats(op, 1); ok {
				state.Text.Scaling = v[0] / 100
			}
		case opSetTextRise:
			if v, ok := in.floats(op, 1); ok {
				state.Text.Rise = v[0]
			}
		case opSetRenderMode:
			if v, ok := core.AsInt(operand(op, 0)); ok {
				state.Text.RenderMode = v
			}

		case opSetFont:
			name, nok := core.AsName(operand(op, 0))
			size, sok := core.AsFloat(operand(op, 1))
			if !nok || !sok {
				in.warnOnce(WarnStructural, "operator Tf with malformed operands")
				continue
			}
			base, found := res.Font(name)
			if !found {
				in.warnOnce(WarnMissingResource, "font resource /%s", name)
				base = name
			}
			state.Text.Font = base
			state.Text.FontSize = size

		case opShowText:
			if text, ok := core.AsString(operand(op, 0)); ok {
				out = append(out, in.showText(&state, text)...)
			}

		case opNextLineShowText:
			state.NextLine()
			if text, ok := core.AsString(operand(op, 0)); ok {
				out = append(out, in.showText(&state, text)...)
			}

		case opSpacingShowText:
			aw, awok := core.AsFloat(operand(op, 0))
			ac, acok := core.AsFloat(operand(op, 1))
			if awok {
				state.Text.WordSpacing = aw
			}
			if acok {
				state.Text.CharSpacing = ac
			}
			state.NextLine()
			if text, ok := core.AsString(operand(op, 2)); ok {
				out = append(out, in.showText(&state, text)...)
			}

		case opShowTextAdjusted:
			arr, ok := operand(op, 0).(core.Array)
			if !ok {
				in.warnOnce(WarnStructural, "operator TJ with malformed operands")
				continue
			}
			// the interleaved adjustment numbers tune inter-glyph gaps
			// the measured advances already approximate; skip them
			for _, el := range arr {
				if text, isStr := core.AsString(el); isStr {
					out = append(out, in.showText(&state, text)...)
				}
			}

		case opXObject:
			name, ok := core.AsName(operand(op, 0))
			if !ok {
				in.warnOnce(WarnStructural, "operator Do with malformed operands")
				continue
			}
			out = append(out, in.insertXObject(scope, name, res)...)

		case opInlineImage:
			d, dok := operand(op, 0).(core.Dict)
			data, sok := core.AsString(operand(op, 1))
			if !dok || !sok {
				in.warnOnce(WarnStructural, "inline image with malformed operands")
				continue
			}
			out = append(out, in.drawImage("inline image", imaging.FromInlineDict(d, data))...)

		case opUnknown:
			in.warnOnce(WarnUnsupported, "operator %s", op.Operator)
		}
	}

	// close saves the stream never restored so caller state balances
	if len(stack) > 0 {
		in.warnOnce(WarnStructural, "content stream ended with unrestored saves")
		for range stack {
			out = append(out, draw.PopState())
		}
	}

	return out
}

// insertXObject expands one Do reference: images decode to a unit-square
// bitmap draw and forms splice their cached expansion.
func (in *Interpreter) insertXObject(scope, name string, res Resources) []draw.Command {
	xobj, found := res.XObject(name)
	if !found {
		in.warnOnce(WarnMissingResource, "xobject resource /%s", name)
		return nil
	}

	switch x := xobj.(type) {
	case ImageXObject:
		return in.drawImage("/"+name, x.Resource)
	case FormXObject:
		if cached, hit := in.forms.Get(scope, name); hit {
			return append([]draw.Command(nil), cached...)
		}
		key := formKey{scope, name}
		if _, busy := in.expanding[key]; busy {
			in.warnOnce(WarnStructural, "form /%s references itself", name)
			return nil
		}
		in.expanding[key] = struct{}{}
		expanded := in.expandForm(scope, x, res)
		delete(in.expanding, key)
		in.forms.Put(scope, name, expanded)
		return append([]draw.Command(nil), expanded...)
	}
	return nil
}

// expandForm interprets a form's sub-stream bracketed by a state save and
// the form matrix. The form's own resource scope wins when it has one.
func (in *Interpreter) expandForm(scope string, form FormXObject, res Resources) []draw.Command {
	inner := res
	if form.Resources != nil {
		inner = form.Resources
	}

	out := []draw.Command{draw.PushState()}
	if len(form.Matrix) == 6 {
		m := flipMatrix(form.Matrix)
		if !m.IsIdentity() {
			out = append(out, draw.ConcatTransform(m))
		}
	}
	out = append(out, in.run(scope, form.Content, inner)...)
	out = append(out, draw.PopState())
	return out
}

// drawImage decodes one image resource and places it on the unit square;
// the transform fold pass later moves the surrounding scale onto the
// bitmap's destination rectangle. label names the image in warnings.
func (in *Interpreter) drawImage(label string, res *imaging.Resource) []draw.Command {
	bmp, err := imaging.Decode(res)
	if err != nil {
		var unsupported *imaging.UnsupportedError
		if errors.As(err, &unsupported) {
			in.warnOnce(WarnUnsupported, "%s: %s", label, unsupported.Reason)
		} else {
			in.warnOnce(WarnDecodeFailure, "%s: %v", label, err)
		}
		return nil
	}
	return []draw.Command{draw.DrawBitmap(bmp, 0, -1, 1, 1)}
}

// flipMatrix converts a content stream matrix to the top-left device
// convention by negating the vertical shear and translation terms.
func flipMatrix(v []float64) model.Matrix {
	return model.Matrix{v[0], -v[1], -v[2], v[3], v[4], -v[5]}
}

// operand fetches one positional operand, or nil when absent.
func operand(op contentstream.Operation, i int) core.Object {
	if i >= len(op.Operands) {
		return nil
	}
	return op.Operands[i]
}
