// Package pagedraw provides a fluent API for interpreting PDF content
// streams into backend-agnostic draw command lists.
//
// Basic usage:
//
//	cmds, warnings, err := pagedraw.Interpret(content, resources)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagedraw.FormatWarnings(warnings))
//	}
//
// With options, and across several pages of one document:
//
//	session := pagedraw.NewSession().
//	    SizeScale(1.5).
//	    Measurer(hostMeasure)
//	for _, page := range pages {
//	    cmds, _, err := session.Interpret(page.Content, page.Resources)
//	    // hand cmds to the rendering backend
//	}
//
// For advanced use cases, the lower-level render package is also available.
package pagedraw

import (
	"strings"

	"github.com/pagedraw/pagedraw/render"
)

// Warning is a non-fatal problem recorded during interpretation, such as an
// unknown operator or an image that could not be decoded. Each distinct
// cause is reported once per session.
type Warning = render.Warning

// Resources resolves the font, graphics state, and XObject names a content
// stream references. See the render package for the concrete XObject kinds.
type Resources = render.Resources

// EmptyResources is a scope with no entries.
type EmptyResources = render.EmptyResources

// TextMeasurer measures text for fonts outside the built-in width tables.
type TextMeasurer = render.TextMeasurer

// Interpret runs one content stream with default options and returns the
// draw commands, any warnings, and a tokenizer error if the stream bytes
// were malformed.
//
// Example:
//
//	cmds, warnings, err := pagedraw.Interpret(content, resources)
func Interpret(content []byte, res Resources) ([]Command, []Warning, error) {
	return NewSession().Interpret(content, res)
}

// FormatWarnings renders warnings as a single semicolon-separated line for
// logging.
//
// Example:
//
//	log.Println("Warnings:", pagedraw.FormatWarnings(warnings))
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustInterpret wraps a call returning (T, []Warning, error), panics on a
// non-nil error, and discards the warnings.
//
// Example:
//
//	cmds := pagedraw.MustInterpret(pagedraw.Interpret(content, resources))
func MustInterpret[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
