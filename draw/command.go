package draw

import (
	"github.com/pagedraw/pagedraw/model"
)

// Op identifies a draw command. The set is closed: a rendering backend must
// handle every opcode listed here and nothing else.
type Op int

const (
	OpConcatTransform Op = iota
	OpPushState
	OpPopState
	OpSetFont
	OpSetPen
	OpSetBrush
	OpDrawText
	OpDrawBitmap
	OpCreatePath
	OpMoveTo
	OpLineTo
	OpCurveTo
	OpAddRectangle
	OpClosePath
	OpDrawPath
)

// String returns the opcode name
func (op Op) String() string {
	switch op {
	case OpConcatTransform:
		return "ConcatTransform"
	case OpPushState:
		return "PushState"
	case OpPopState:
		return "PopState"
	case OpSetFont:
		return "SetFont"
	case OpSetPen:
		return "SetPen"
	case OpSetBrush:
		return "SetBrush"
	case OpDrawText:
		return "DrawText"
	case OpDrawBitmap:
		return "DrawBitmap"
	case OpCreatePath:
		return "CreatePath"
	case OpMoveTo:
		return "MoveToPoint"
	case OpLineTo:
		return "AddLineToPoint"
	case OpCurveTo:
		return "AddCurveToPoint"
	case OpAddRectangle:
		return "AddRectangle"
	case OpClosePath:
		return "CloseSubpath"
	case OpDrawPath:
		return "DrawPath"
	default:
		return "Unknown"
	}
}

// FillRule selects the winding rule used when filling a path
type FillRule int

const (
	WindingRule FillRule = iota
	EvenOddRule
)

// CapStyle selects the line cap used when stroking
type CapStyle int

const (
	CapButt CapStyle = iota
	CapRound
	CapProjecting
)

// JoinStyle selects the line join used when stroking
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// Pen describes stroke appearance. A transparent pen suppresses stroking
// entirely; its remaining fields are ignored by the backend.
type Pen struct {
	Color       model.Color
	Width       float64
	Cap         CapStyle
	Join        JoinStyle
	Dashes      []float64
	DashPhase   float64
	Transparent bool
}

// Brush describes fill appearance. A transparent brush suppresses filling.
type Brush struct {
	Color       model.Color
	Transparent bool
}

// FontFamily is a coarse family classification used when the backend has to
// substitute an installed font for a PDF base font.
type FontFamily int

const (
	FamilyDefault FontFamily = iota
	FamilyModern             // fixed pitch (Courier)
	FamilySwiss              // sans serif (Helvetica/Arial)
	FamilyRoman              // serif (Times)
)

// FontStyle is the slant of a font face
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// FontWeight is the weight of a font face
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontSpec describes the font a SetFont command selects. Size carries the
// size-scale hook already applied; the metrics-scale hook only affects text
// advance computation and never appears in the emitted command.
type FontSpec struct {
	Face   string
	Family FontFamily
	Style  FontStyle
	Weight FontWeight
	Size   float64
}

// Bitmap is a decoded raster image in packed RGB form with an optional
// per-pixel mask. Alpha, when present, holds one byte per pixel where zero
// means fully transparent; nil means the bitmap is opaque.
type Bitmap struct {
	Width  int
	Height int
	RGB    []byte
	Alpha  []byte
}

// Command is one backend-agnostic drawing instruction. Only the fields
// relevant to Op are populated; the rest stay zero.
type Command struct {
	Op     Op
	Matrix model.Matrix // ConcatTransform
	Font   FontSpec     // SetFont
	Color  model.Color  // SetFont text color
	Pen    Pen          // SetPen
	Brush  Brush        // SetBrush
	Text   string       // DrawText
	X, Y   float64      // DrawText position; DrawBitmap destination origin
	W, H   float64      // DrawBitmap destination size
	P1     model.Point  // MoveTo/LineTo point; CurveTo first control point
	P2     model.Point  // CurveTo second control point
	P3     model.Point  // CurveTo end point
	Rect   model.Rect   // AddRectangle
	Rule   FillRule     // DrawPath
	Bitmap *Bitmap      // DrawBitmap
}

// ConcatTransform appends a coordinate transform to the backend state
func ConcatTransform(m model.Matrix) Command {
	return Command{Op: OpConcatTransform, Matrix: m}
}

// PushState saves the backend graphics state
func PushState() Command {
	return Command{Op: OpPushState}
}

// PopState restores the backend graphics state
func PopState() Command {
	return Command{Op: OpPopState}
}

// SetFont selects the font and text color for subsequent DrawText commands
func SetFont(font FontSpec, color model.Color) Command {
	return Command{Op: OpSetFont, Font: font, Color: color}
}

// SetPen selects the stroke pen for subsequent DrawPath commands
func SetPen(pen Pen) Command {
	return Command{Op: OpSetPen, Pen: pen}
}

// SetBrush selects the fill brush for subsequent DrawPath commands
func SetBrush(brush Brush) Command {
	return Command{Op: OpSetBrush, Brush: brush}
}

// DrawText draws a text run at a device-space position
func DrawText(text string, x, y float64) Command {
	return Command{Op: OpDrawText, Text: text, X: x, Y: y}
}

// DrawBitmap draws a decoded raster at a device-space destination rectangle
func DrawBitmap(bmp *Bitmap, x, y, w, h float64) Command {
	return Command{Op: OpDrawBitmap, Bitmap: bmp, X: x, Y: y, W: w, H: h}
}

// CreatePath opens a new path object in the backend
func CreatePath() Command {
	return Command{Op: OpCreatePath}
}

// MoveTo starts a new subpath of the open path
func MoveTo(p model.Point) Command {
	return Command{Op: OpMoveTo, P1: p}
}

// LineTo appends a line segment to the open path
func LineTo(p model.Point) Command {
	return Command{Op: OpLineTo, P1: p}
}

// CurveTo appends a cubic Bézier segment to the open path
func CurveTo(c1, c2, end model.Point) Command {
	return Command{Op: OpCurveTo, P1: c1, P2: c2, P3: end}
}

// AddRectangle appends a rectangle subpath to the open path
func AddRectangle(r model.Rect) Command {
	return Command{Op: OpAddRectangle, Rect: r}
}

// ClosePath closes the current subpath of the open path
func ClosePath() Command {
	return Command{Op: OpClosePath}
}

// DrawPath paints the open path with the selected pen and brush, closing
// its lifetime in the backend
func DrawPath(rule FillRule) Command {
	return Command{Op: OpDrawPath, Rule: rule}
}
