package imaging

import (
	"testing"

	"github.com/pagedraw/pagedraw/core"
)

func TestParseColorSpace(t *testing.T) {
	tests := []struct {
		name string
		obj  core.Object
		want ColorSpaceKind
	}{
		{"nil", nil, KindNone},
		{"null", core.Null{}, KindNone},
		{"device rgb", core.Name("DeviceRGB"), KindDeviceRGB},
		{"inline rgb", core.Name("RGB"), KindDeviceRGB},
		{"device gray", core.Name("DeviceGray"), KindDeviceGray},
		{"inline gray", core.Name("G"), KindDeviceGray},
		{"cmyk", core.Name("DeviceCMYK"), KindUnsupported},
		{"lab", core.Name("Lab"), KindUnsupported},
		{"iccbased", core.Name("ICCBased"), KindUnsupported},
		{"calrgb", core.Name("CalRGB"), KindUnsupported},
		{"calgray", core.Name("CalGray"), KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColorSpace(tt.obj); got.Kind != tt.want {
				t.Errorf("kind = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestParseColorSpaceIndexed(t *testing.T) {
	arr := core.Array{
		core.Name("Indexed"),
		core.Name("DeviceRGB"),
		core.Int(1),
		core.String("\xFF\x00\x00\x00\xFF\x00"),
	}

	cs := ParseColorSpace(arr)
	if cs.Kind != KindIndexed || cs.Base != KindDeviceRGB {
		t.Fatalf("unexpected color space %+v", cs)
	}
	if cs.HiVal != 1 {
		t.Errorf("hival = %d, want 1", cs.HiVal)
	}
	if len(cs.Palette) != 6 {
		t.Errorf("palette length = %d, want 6", len(cs.Palette))
	}
}

func TestParseColorSpaceIndexedExoticBase(t *testing.T) {
	arr := core.Array{
		core.Name("Indexed"),
		core.Name("DeviceCMYK"),
		core.Int(0),
		core.String("\x00\x00\x00\x00"),
	}
	cs := ParseColorSpace(arr)
	if cs.Kind != KindUnsupported {
		t.Errorf("Indexed with CMYK base must be unsupported, got %+v", cs)
	}
}

func TestParseColorSpaceWrappedName(t *testing.T) {
	cs := ParseColorSpace(core.Array{core.Name("DeviceGray")})
	if cs.Kind != KindDeviceGray {
		t.Errorf("single-element array must unwrap, got %+v", cs)
	}
}
