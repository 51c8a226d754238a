// Package draw defines the backend-agnostic drawing instructions produced by
// the content stream interpreter.
//
// A rendering backend consumes a []Command sequentially. Path commands share
// a path-object lifetime: CreatePath opens a path, MoveTo/LineTo/CurveTo/
// AddRectangle/ClosePath mutate it, and DrawPath paints and discards it.
// All coordinates are device space with y growing downward.
//
// The package also provides FoldBitmapTransforms, the post-processing pass
// that merges image-sizing transforms into adjacent DrawBitmap commands.
package draw
