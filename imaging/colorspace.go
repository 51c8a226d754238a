package imaging

import (
	"fmt"

	"github.com/pagedraw/pagedraw/core"
)

// ColorSpaceKind classifies the color spaces the pipeline can resolve.
type ColorSpaceKind int

const (
	// KindNone means no color space was declared. Only 1-bit images can be
	// resolved in that case (as black and white).
	KindNone ColorSpaceKind = iota
	KindDeviceRGB
	KindDeviceGray
	KindIndexed
	// KindUnsupported covers CMYK, Lab, ICCBased, CalRGB, CalGray, and
	// anything else the pipeline cannot turn into RGB.
	KindUnsupported
)

// ColorSpace is the resolved color space declaration of one image.
type ColorSpace struct {
	Kind ColorSpaceKind

	// Name is the declared name, kept for diagnostics.
	Name string

	// Indexed fields: the base space, the highest palette index, and the
	// raw palette bytes (3 bytes per entry for an RGB base, 1 for gray).
	Base    ColorSpaceKind
	HiVal   int
	Palette []byte
}

// ParseColorSpace resolves a color space operand: a name, or the Indexed
// array form [/Indexed base hival palette]. A nil object yields KindNone.
func ParseColorSpace(obj core.Object) ColorSpace {
	switch v := obj.(type) {
	case nil, core.Null:
		return ColorSpace{Kind: KindNone}
	case core.Name:
		return namedColorSpace(string(v))
	case core.Array:
		return indexedColorSpace(v)
	default:
		return ColorSpace{Kind: KindUnsupported, Name: obj.String()}
	}
}

func namedColorSpace(name string) ColorSpace {
	switch name {
	case "DeviceRGB", "RGB":
		return ColorSpace{Kind: KindDeviceRGB, Name: name}
	case "DeviceGray", "G":
		return ColorSpace{Kind: KindDeviceGray, Name: name}
	default:
		return ColorSpace{Kind: KindUnsupported, Name: name}
	}
}

func indexedColorSpace(arr core.Array) ColorSpace {
	if len(arr) == 0 {
		return ColorSpace{Kind: KindUnsupported, Name: "[]"}
	}
	head, _ := core.AsName(arr[0])
	if head != "Indexed" && head != "I" {
		// a one-element array wrapping a name is legal
		if len(arr) == 1 {
			if name, ok := core.AsName(arr[0]); ok {
				return namedColorSpace(name)
			}
		}
		return ColorSpace{Kind: KindUnsupported, Name: arr.String()}
	}
	if len(arr) != 4 {
		return ColorSpace{Kind: KindUnsupported, Name: arr.String()}
	}

	cs := ColorSpace{Kind: KindIndexed, Name: "Indexed"}

	base := ParseColorSpace(arr[1])
	switch base.Kind {
	case KindDeviceRGB, KindDeviceGray:
		cs.Base = base.Kind
	default:
		cs.Kind = KindUnsupported
		cs.Name = fmt.Sprintf("Indexed(%s)", base.Name)
		return cs
	}

	if hival, ok := core.AsInt(arr[2]); ok {
		cs.HiVal = hival
	}
	if pal, ok := core.AsString(arr[3]); ok {
		cs.Palette = pal
	}
	return cs
}
