// Package core provides the PDF object model for content stream operands.
//
// Content stream operators take operands drawn from the standard PDF object
// types: numbers, strings, names, arrays, dictionaries, booleans, and null.
// This package defines those types together with the coercion helpers the
// interpreter uses to read them:
//
//	w, ok := core.AsFloat(op.Operands[0])
//	vals, ok := core.Floats(op.Operands, 6)
//
// Indirect references and streams never appear inline in content streams,
// so they are not represented here.
package core
