package render

import "fmt"

// WarningKind classifies a non-fatal problem encountered while
// interpreting a content stream.
type WarningKind int

const (
	// WarnUnsupported marks a construct the interpreter recognizes but
	// does not implement (operators, color spaces, ExtGState keys).
	WarnUnsupported WarningKind = iota
	// WarnDecodeFailure marks an image whose sample data could not be
	// decoded. The image is skipped.
	WarnDecodeFailure
	// WarnMissingResource marks a name the content stream referenced
	// that the resource scope does not define.
	WarnMissingResource
	// WarnStructural marks a malformed stream shape, such as an
	// unbalanced state stack.
	WarnStructural
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnsupported:
		return "unsupported"
	case WarnDecodeFailure:
		return "decode failure"
	case WarnMissingResource:
		return "missing resource"
	case WarnStructural:
		return "structural"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning records one non-fatal interpretation problem.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}
