package render

import (
	"github.com/pagedraw/pagedraw/contentstream"
	"github.com/pagedraw/pagedraw/core"
	"github.com/pagedraw/pagedraw/imaging"
)

// Resources resolves the names a content stream references against the
// resource scope it executes under. Implementations come from the caller;
// the interpreter only looks names up and never enumerates a scope.
type Resources interface {
	// Font maps a font resource name (the operand of Tf) to its base
	// font name, such as "Helvetica-Bold".
	Font(name string) (baseFont string, ok bool)

	// ExtGState maps a graphics state parameter name (the operand of
	// gs) to its parameter dictionary.
	ExtGState(name string) (core.Dict, bool)

	// XObject maps an XObject name (the operand of Do) to either an
	// ImageXObject or a FormXObject.
	XObject(name string) (XObject, bool)
}

// XObject is an external object a Do operator can reference. The two
// concrete kinds are ImageXObject and FormXObject.
type XObject interface {
	xobject()
}

// ImageXObject is a raster image drawn by Do.
type ImageXObject struct {
	Resource *imaging.Resource
}

// FormXObject is a reusable sub-stream expanded in place by Do. Matrix is
// the optional form matrix (6 entries, identity when nil). BBox is the
// declared bounding box (4 entries); it is carried but not clipped against,
// the same way recorded clip paths are never intersected. Resources is the
// scope the form's own operators resolve against; a nil Resources falls
// back to the invoking scope.
type FormXObject struct {
	Name      string
	Content   []contentstream.Operation
	Matrix    []float64
	BBox      []float64
	Resources Resources
}

func (ImageXObject) xobject() {}
func (FormXObject) xobject()  {}

// EmptyResources is a Resources with no entries, convenient for streams
// that reference nothing.
type EmptyResources struct{}

func (EmptyResources) Font(string) (string, bool)        { return "", false }
func (EmptyResources) ExtGState(string) (core.Dict, bool) { return nil, false }
func (EmptyResources) XObject(string) (XObject, bool)    { return nil, false }
