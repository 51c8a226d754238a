// Package graphicsstate models the graphics and text state of a content
// stream scope.
//
// The State type is a plain value: saving (q) clones it onto a stack owned
// by the interpreter and restoring (Q) assigns the popped value back. After
// a restore no alias to the popped state remains observable.
//
// Transparency is stored separately from color and composed on read via
// FillColorWithAlpha/StrokeColorWithAlpha. The clipping path is recorded on
// the state but never intersected against painting; the field is kept so a
// later implementation can complete clipping without re-deriving the state
// shape.
package graphicsstate
