// Package render interprets tokenized content stream operations into an
// ordered, backend-agnostic draw command list.
//
// The interpreter is a sequential fold over (operands, operator) pairs: it
// owns one graphics state stack per scope, accumulates path segments until a
// paint operator resolves them, lays out shown text into positioned DrawText
// commands, decodes image XObjects and inline images through the imaging
// pipeline, and re-enters itself for form XObjects with a per-session
// expansion cache. After a scope is fully interpreted, a single peephole
// pass folds coordinate scales into adjacent bitmap draws.
//
// Nothing here aborts a page: unknown operators, missing resources, and
// undecodable images become warnings, each distinct cause reported once,
// and interpretation continues.
package render
