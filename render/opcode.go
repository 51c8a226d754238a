package render

// opcode identifies a content stream operator. Dispatch switches over the
// enum rather than raw operator strings so that every recognized operator
// has exactly one arm and anything else lands in opUnknown.
type opcode int

const (
	opUnknown opcode = iota

	// Graphics state.
	opSaveState    // q
	opRestoreState // Q
	opConcatMatrix // cm
	opExtGState    // gs

	// Color.
	opStrokeRGB // RG
	opFillRGB   // rg
	opStrokeCMYK // K
	opFillCMYK   // k
	opStrokeGray // G
	opFillGray   // g

	// Line parameters.
	opLineWidth // w
	opLineCap   // J
	opLineJoin  // j
	opDash      // d

	// Path construction.
	opMoveTo    // m
	opLineTo    // l
	opCurveTo   // c
	opCurveToV  // v
	opCurveToY  // y
	opRectangle // re
	opClosePath // h

	// Clipping.
	opClip        // W
	opClipEvenOdd // W*

	// Path painting.
	opStroke            // S
	opCloseStroke       // s
	opFill              // f, F
	opFillEvenOdd       // f*
	opFillStroke        // B
	opCloseFillStroke   // b
	opFillStrokeEvenOdd // B*
	opCloseFillStrokeEvenOdd // b*
	opEndPath           // n

	// Text state and positioning.
	opBeginText     // BT
	opEndText       // ET
	opSetTextMatrix // Tm
	opTextMove      // Td
	opTextMoveSetLeading // TD
	opNextLine      // T*
	opSetLeading    // TL
	opSetCharSpacing // Tc
	opSetWordSpacing // Tw
	opSetHorizScale  // Tz
	opSetTextRise    // Ts
	opSetFont        // Tf
	opSetRenderMode  // Tr

	// Text showing.
	opShowText          // Tj
	opNextLineShowText  // '
	opSpacingShowText   // "
	opShowTextAdjusted  // TJ

	// External and inline objects.
	opXObject     // Do
	opInlineImage // BI
)

var opcodes = map[string]opcode{
	"q":  opSaveState,
	"Q":  opRestoreState,
	"cm": opConcatMatrix,
	"gs": opExtGState,

	"RG": opStrokeRGB,
	"rg": opFillRGB,
	"K":  opStrokeCMYK,
	"k":  opFillCMYK,
	"G":  opStrokeGray,
	"g":  opFillGray,

	"w": opLineWidth,
	"J": opLineCap,
	"j": opLineJoin,
	"d": opDash,

	"m":  opMoveTo,
	"l":  opLineTo,
	"c":  opCurveTo,
	"v":  opCurveToV,
	"y":  opCurveToY,
	"re": opRectangle,
	"h":  opClosePath,

	"W":  opClip,
	"W*": opClipEvenOdd,

	"S":  opStroke,
	"s":  opCloseStroke,
	"f":  opFill,
	"F":  opFill,
	"f*": opFillEvenOdd,
	"B":  opFillStroke,
	"b":  opCloseFillStroke,
	"B*": opFillStrokeEvenOdd,
	"b*": opCloseFillStrokeEvenOdd,
	"n":  opEndPath,

	"BT": opBeginText,
	"ET": opEndText,
	"Tm": opSetTextMatrix,
	"Td": opTextMove,
	"TD": opTextMoveSetLeading,
	"T*": opNextLine,
	"TL": opSetLeading,
	"Tc": opSetCharSpacing,
	"Tw": opSetWordSpacing,
	"Tz": opSetHorizScale,
	"Ts": opSetTextRise,
	"Tf": opSetFont,
	"Tr": opSetRenderMode,

	"Tj": opShowText,
	"'":  opNextLineShowText,
	"\"": opSpacingShowText,
	"TJ": opShowTextAdjusted,

	"Do": opXObject,
	"BI": opInlineImage,
}

func lookupOpcode(name string) opcode {
	if op, ok := opcodes[name]; ok {
		return op
	}
	return opUnknown
}
