package nk2

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/stream"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	string8TerminatorSize = 1
	unicodeTerminatorSize = 2
	minStringSize         = 4
)

// DecodeProperty reads one property: tag, reserved word, the 8-byte value
// union and, for dynamic types, the value data that follows it.
func (d *Decoder) DecodeProperty(c *stream.Cursor) (domain.PropertyTag, domain.Value, error) {
	start := c.Position()
	raw, err := c.ReadUint32()
	if err != nil {
		return domain.PropertyTag{}, domain.Value{}, err
	}
	tag := domain.NewPropertyTag(raw)

	// reserved, never validated
	if err := c.Skip(4); err != nil {
		return tag, domain.Value{}, err
	}

	slot, err := c.ReadArray8()
	if err != nil {
		return tag, domain.Value{}, err
	}

	if tag.Type.Static() {
		return tag, staticValue(tag.Type, slot), nil
	}

	var value domain.Value
	switch tag.Type {
	case domain.PtypString8:
		var s string
		s, err = readString(c, d.string8, string8TerminatorSize)
		value = domain.String8Value(s)
	case domain.PtypString:
		var s string
		s, err = readString(c, d.unicode, unicodeTerminatorSize)
		value = domain.UnicodeValue(s)
	case domain.PtypGuid:
		var b [16]byte
		b, err = c.ReadArray16()
		value = domain.GUIDValue(domain.GUIDFromBytes(b))
	case domain.PtypBinary:
		var b []byte
		b, err = readBinary(c)
		value = domain.BinaryValue(b)
	case domain.PtypMultipleBinary:
		var bs [][]byte
		bs, err = readMultipleBinary(c)
		value = domain.MultipleBinaryValue(bs)
	case domain.PtypMultipleString8:
		var ss []string
		ss, err = readMultipleString(c, d.string8, string8TerminatorSize)
		value = domain.MultipleString8Value(ss)
	case domain.PtypMultipleString:
		var ss []string
		ss, err = readMultipleString(c, d.unicode, unicodeTerminatorSize)
		value = domain.MultipleUnicodeValue(ss)
	default:
		return tag, domain.Value{}, domain.UnsupportedPropertyType(tag.Type, start)
	}
	if err != nil {
		return tag, domain.Value{}, err
	}
	return tag, value, nil
}

// staticValue interprets the meaningful prefix of the union slot. Bytes past
// that prefix are ignored whatever they contain.
func staticValue(t domain.PropertyType, slot [8]byte) domain.Value {
	switch t {
	case domain.PtypInteger16:
		return domain.Integer16Value(binary.LittleEndian.Uint16(slot[:2]))
	case domain.PtypInteger32:
		return domain.Integer32Value(binary.LittleEndian.Uint32(slot[:4]))
	case domain.PtypFloating32:
		return domain.Floating32Value(math.Float32frombits(binary.LittleEndian.Uint32(slot[:4])))
	case domain.PtypFloating64:
		return domain.Floating64Value(math.Float64frombits(binary.LittleEndian.Uint64(slot[:])))
	case domain.PtypBoolean:
		return domain.BooleanValue(binary.LittleEndian.Uint16(slot[:2]) != 0)
	case domain.PtypTime:
		return domain.TimeValue(domain.TimeFromFiletime(binary.LittleEndian.Uint64(slot[:])))
	case domain.PtypInteger64:
		return domain.Integer64Value(binary.LittleEndian.Uint64(slot[:]))
	case domain.PtypErrorCode:
		return domain.ErrorCodeValue(binary.LittleEndian.Uint32(slot[:4]))
	}
	return domain.AbsentValue()
}

// readString reads a counted string whose byte count includes the terminator.
// Exactly 4+n bytes are consumed.
func readString(c *stream.Cursor, charset stream.Charset, terminator int) (string, error) {
	start := c.Position()
	n, err := c.ReadUint32()
	if err != nil {
		return "", err
	}
	if int64(n) < int64(terminator) {
		return "", domain.InvalidTextEncoding(start,
			fmt.Sprintf("byte count %d shorter than %d byte terminator", n, terminator))
	}
	s, err := c.ReadString(int(n)-terminator, charset)
	if err != nil {
		return "", err
	}
	if err := c.Skip(terminator); err != nil {
		return "", err
	}
	return s, nil
}

func readMultipleString(c *stream.Cursor, charset stream.Charset, terminator int) ([]string, error) {
	count, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, capacityHint(count, c, minStringSize))
	for i := uint32(0); i < count; i++ {
		s, err := readString(c, charset, terminator)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

func readBinary(c *stream.Cursor) ([]byte, error) {
	n, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

func readMultipleBinary(c *stream.Cursor) ([][]byte, error) {
	count, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, capacityHint(count, c, minStringSize))
	for i := uint32(0); i < count; i++ {
		b, err := readBinary(c)
		if err != nil {
			return nil, err
		}
		values = append(values, b)
	}
	return values, nil
}
