package render

import (
	"bytes"

	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/font"
	"github.com/pagedraw/pagedraw/graphicsstate"
)

// TextMeasurer measures a string in host units for a font the built-in
// width tables do not cover. The supplied spec carries the metrics-scaled
// size. When nil, the built-in tables measure everything.
type TextMeasurer func(text string, spec draw.FontSpec) float64

// showText lays out one shown string: it selects the font once, then emits
// one positioned DrawText per word run and advances the text matrix by each
// run's measured width.
//
// Two differently sized specs are in play. The emitted SetFont carries the
// size-scale hook so the backend draws at the adjusted size; measurement
// uses the metrics-scale hook so advances track the layout the producer
// assumed. The two scales default to 1 and then the specs coincide.
func (in *Interpreter) showText(state *graphicsstate.State, data []byte) []draw.Command {
	if len(data) == 0 {
		return nil
	}
	ts := &state.Text

	spec, known := in.fonts.Resolve(ts.Font, ts.FontSize)
	sizeSpec := scaledSpec(spec, ts.FontSize*in.opts.SizeScale)
	metricsSpec := scaledSpec(spec, ts.FontSize*in.opts.MetricsScale)

	out := []draw.Command{draw.SetFont(sizeSpec, state.FillColorWithAlpha())}

	// Positive word spacing applies per space character, so the string is
	// drawn word by word with the advance stretched between runs. Each run
	// keeps its trailing space so the backend renders the gap too.
	var runs [][]byte
	spacing := ts.WordSpacing > 0
	if spacing {
		for _, word := range bytes.Split(data, []byte{' '}) {
			run := make([]byte, 0, len(word)+1)
			run = append(run, word...)
			run = append(run, ' ')
			runs = append(runs, run)
		}
	} else {
		runs = [][]byte{data}
	}

	ascent, _ := font.Extent(metricsSpec)
	for _, run := range runs {
		text := font.DecodeText(run)
		x := ts.Matrix[4]
		y := -(ts.Matrix[5] + ts.Rise) - ascent
		out = append(out, draw.DrawText(text, x, y))

		// word spacing joins the advance once per run whatever its sign;
		// a negative Tw tightens runs even though it never splits them
		width := in.measure(run, text, metricsSpec, known)
		ts.Matrix[4] += width + ts.WordSpacing
	}
	return out
}

// measure picks the width source for one run: built-in tables for the
// standard families, the host measurer for everything else, and the tables'
// default widths as the last resort.
func (in *Interpreter) measure(run []byte, text string, spec draw.FontSpec, known bool) float64 {
	if known || in.opts.Measurer == nil {
		return font.Width(run, spec)
	}
	return in.opts.Measurer(text, spec)
}

func scaledSpec(spec draw.FontSpec, size float64) draw.FontSpec {
	if size < 1 {
		size = 1
	}
	spec.Size = size
	return spec
}
