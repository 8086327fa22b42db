package domain

import "fmt"

// PropertyType is the low 16 bits of a property tag.
type PropertyType uint16

const (
	PtypNull            PropertyType = 0x0001
	PtypInteger16       PropertyType = 0x0002
	PtypInteger32       PropertyType = 0x0003
	PtypFloating32      PropertyType = 0x0004
	PtypFloating64      PropertyType = 0x0005
	PtypErrorCode       PropertyType = 0x000A
	PtypBoolean         PropertyType = 0x000B
	PtypInteger64       PropertyType = 0x0014
	PtypString8         PropertyType = 0x001E
	PtypString          PropertyType = 0x001F
	PtypTime            PropertyType = 0x0040
	PtypGuid            PropertyType = 0x0048
	PtypBinary          PropertyType = 0x0102
	PtypMultipleString8 PropertyType = 0x101E
	PtypMultipleString  PropertyType = 0x101F
	PtypMultipleBinary  PropertyType = 0x1102
)

var propertyTypeNames = map[PropertyType]string{
	PtypNull:            "PT_NULL",
	PtypInteger16:       "PT_I2",
	PtypInteger32:       "PT_LONG",
	PtypFloating32:      "PT_R4",
	PtypFloating64:      "PT_DOUBLE",
	PtypErrorCode:       "PT_ERROR",
	PtypBoolean:         "PT_BOOLEAN",
	PtypInteger64:       "PT_I8",
	PtypString8:         "PT_STRING8",
	PtypString:          "PT_UNICODE",
	PtypTime:            "PT_SYSTIME",
	PtypGuid:            "PT_CLSID",
	PtypBinary:          "PT_BINARY",
	PtypMultipleString8: "PT_MV_STRING8",
	PtypMultipleString:  "PT_MV_UNICODE",
	PtypMultipleBinary:  "PT_MV_BINARY",
}

var propertyTypeKinds = map[PropertyType]ValueKind{
	PtypNull:            KindAbsent,
	PtypInteger16:       KindInteger16,
	PtypInteger32:       KindInteger32,
	PtypFloating32:      KindFloating32,
	PtypFloating64:      KindFloating64,
	PtypErrorCode:       KindErrorCode,
	PtypBoolean:         KindBoolean,
	PtypInteger64:       KindInteger64,
	PtypString8:         KindString8,
	PtypString:          KindUnicode,
	PtypTime:            KindTime,
	PtypGuid:            KindGUID,
	PtypBinary:          KindBinary,
	PtypMultipleString8: KindMultipleString8,
	PtypMultipleString:  KindMultipleUnicode,
	PtypMultipleBinary:  KindMultipleBinary,
}

func (t PropertyType) String() string {
	if name, ok := propertyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PT_UNKNOWN(0x%04X)", uint16(t))
}

// Supported reports whether the decoder knows how to read values of this type.
func (t PropertyType) Supported() bool {
	_, ok := propertyTypeKinds[t]
	return ok
}

// Static reports whether the whole value lives inside the 8-byte union slot.
func (t PropertyType) Static() bool {
	switch t {
	case PtypNull, PtypInteger16, PtypInteger32, PtypFloating32, PtypFloating64,
		PtypBoolean, PtypTime, PtypInteger64, PtypErrorCode:
		return true
	}
	return false
}

// ValueKind returns the value variant produced for this type. ok is false for
// unsupported types.
func (t PropertyType) ValueKind() (ValueKind, bool) {
	k, ok := propertyTypeKinds[t]
	return k, ok
}

// PropertyTag packs the property type (bits 0-15) and identifier (bits 16-31).
type PropertyTag struct {
	Type PropertyType
	ID   uint16
}

func NewPropertyTag(raw uint32) PropertyTag {
	return PropertyTag{
		Type: PropertyType(raw & 0xFFFF),
		ID:   uint16(raw >> 16),
	}
}

func (t PropertyTag) Uint32() uint32 {
	return uint32(t.ID)<<16 | uint32(t.Type)
}

func (t PropertyTag) String() string {
	return fmt.Sprintf("0x%08X", t.Uint32())
}
