// Package nk2test builds autocomplete streams for tests.
package nk2test

import (
	"NK2Reader/internal/domain"
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"

	"github.com/google/uuid"
)

const (
	// filler for slot bytes the decoder must not look at
	Garbage byte = 0xCC
	// filler for the union slot of dynamic values
	Placeholder byte = 0xAB
)

// Property is one encoded property: tag, reserved word, union slot and the
// value data that follows it.
type Property struct {
	ID       uint16
	Type     domain.PropertyType
	Reserved uint32
	Slot     [8]byte
	Data     []byte
}

type Row []Property

func (p Property) Bytes() []byte {
	var buf bytes.Buffer
	writeUint32(&buf, domain.PropertyTag{Type: p.Type, ID: p.ID}.Uint32())
	writeUint32(&buf, p.Reserved)
	buf.Write(p.Slot[:])
	buf.Write(p.Data)
	return buf.Bytes()
}

func (r Row) Bytes() []byte {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(r)))
	for _, p := range r {
		buf.Write(p.Bytes())
	}
	return buf.Bytes()
}

// File assembles a complete stream with the standard signature.
type File struct {
	Signature        uint32
	MajorVersion     uint32
	MinorVersion     uint32
	Rows             []Row
	ExtraInformation []byte
	Filetime         uint64
}

func NewFile(rows ...Row) *File {
	return &File{
		Signature:    domain.FileSignature,
		MajorVersion: 1,
		Rows:         rows,
	}
}

func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	writeUint32(&buf, f.Signature)
	writeUint32(&buf, f.MajorVersion)
	writeUint32(&buf, f.MinorVersion)
	writeUint32(&buf, uint32(len(f.Rows)))
	for _, r := range f.Rows {
		buf.Write(r.Bytes())
	}
	writeUint32(&buf, uint32(len(f.ExtraInformation)))
	buf.Write(f.ExtraInformation)
	var ft [8]byte
	binary.LittleEndian.PutUint64(ft[:], f.Filetime)
	buf.Write(ft[:])
	return buf.Bytes()
}

// Slot encodes a static value into its 8-byte union slot. Bytes beyond the
// meaningful prefix are filled with Garbage.
func Slot(v domain.Value) [8]byte {
	var s [8]byte
	for i := range s {
		s[i] = Garbage
	}
	switch v.Kind() {
	case domain.KindInteger16:
		n, _ := v.Integer16()
		binary.LittleEndian.PutUint16(s[:], n)
	case domain.KindBoolean:
		b, _ := v.Boolean()
		var n uint16
		if b {
			n = 1
		}
		binary.LittleEndian.PutUint16(s[:], n)
	case domain.KindInteger32:
		n, _ := v.Integer32()
		binary.LittleEndian.PutUint32(s[:], n)
	case domain.KindErrorCode:
		n, _ := v.ErrorCode()
		binary.LittleEndian.PutUint32(s[:], n)
	case domain.KindFloating32:
		f, _ := v.Floating32()
		binary.LittleEndian.PutUint32(s[:], math.Float32bits(f))
	case domain.KindFloating64:
		f, _ := v.Floating64()
		binary.LittleEndian.PutUint64(s[:], math.Float64bits(f))
	case domain.KindInteger64:
		n, _ := v.Integer64()
		binary.LittleEndian.PutUint64(s[:], n)
	case domain.KindTime:
		t, _ := v.Time()
		binary.LittleEndian.PutUint64(s[:], domain.FiletimeFromTime(t))
	}
	return s
}

func Static(id uint16, t domain.PropertyType, v domain.Value) Property {
	return Property{ID: id, Type: t, Slot: Slot(v)}
}

func Integer16(id uint16, v uint16) Property {
	return Static(id, domain.PtypInteger16, domain.Integer16Value(v))
}

func Integer32(id uint16, v uint32) Property {
	return Static(id, domain.PtypInteger32, domain.Integer32Value(v))
}

func Boolean(id uint16, v bool) Property {
	return Static(id, domain.PtypBoolean, domain.BooleanValue(v))
}

func Null(id uint16) Property {
	return Static(id, domain.PtypNull, domain.AbsentValue())
}

func Dynamic(id uint16, t domain.PropertyType, data []byte) Property {
	return Property{ID: id, Type: t, Slot: placeholder(), Data: data}
}

func String8(id uint16, s string) Property {
	return Dynamic(id, domain.PtypString8, String8Data(s))
}

func Unicode(id uint16, s string) Property {
	return Dynamic(id, domain.PtypString, UnicodeData(s))
}

func Binary(id uint16, b []byte) Property {
	return Dynamic(id, domain.PtypBinary, BinaryData(b))
}

func GUID(id uint16, g uuid.UUID) Property {
	b := domain.GUIDToBytes(g)
	return Dynamic(id, domain.PtypGuid, b[:])
}

func MultipleBinary(id uint16, bs ...[]byte) Property {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(bs)))
	for _, b := range bs {
		buf.Write(BinaryData(b))
	}
	return Dynamic(id, domain.PtypMultipleBinary, buf.Bytes())
}

func MultipleString8(id uint16, ss ...string) Property {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(ss)))
	for _, s := range ss {
		buf.Write(String8Data(s))
	}
	return Dynamic(id, domain.PtypMultipleString8, buf.Bytes())
}

func MultipleUnicode(id uint16, ss ...string) Property {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(ss)))
	for _, s := range ss {
		buf.Write(UnicodeData(s))
	}
	return Dynamic(id, domain.PtypMultipleString, buf.Bytes())
}

// String8Data is the counted layout of an 8-bit string: u32 n, n-1 text bytes
// and a NUL terminator. s is written byte for byte.
func String8Data(s string) []byte {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(s)+1))
	buf.WriteString(s)
	buf.WriteByte(0)
	return buf.Bytes()
}

// UnicodeData is the counted layout of a UTF-16LE string including its
// 2-byte terminator.
func UnicodeData(s string) []byte {
	units := utf16.Encode([]rune(s))
	var buf bytes.Buffer
	writeUint32(&buf, uint32(2*len(units)+2))
	for _, u := range units {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], u)
		buf.Write(b[:])
	}
	buf.Write([]byte{0, 0})
	return buf.Bytes()
}

func BinaryData(b []byte) []byte {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(b)))
	buf.Write(b)
	return buf.Bytes()
}

// Contact builds a row with the properties Outlook writes for a recipient.
func Contact(displayName, email string) Row {
	return Row{
		Unicode(domain.PidTagDisplayName, displayName),
		Unicode(domain.PidTagAddressType, "SMTP"),
		Unicode(domain.PidTagEmailAddress, email),
		Unicode(domain.PidTagSmtpAddress, email),
		Binary(domain.PidTagEntryID, []byte{0x00, 0x00, 0x00, 0x00, 0x81, 0x2B, 0x1F, 0xA4}),
		Integer32(domain.PidTagObjectType, 6),
		Integer32(domain.PidTagDisplayType, 0),
	}
}

func placeholder() [8]byte {
	var s [8]byte
	for i := range s {
		s[i] = Placeholder
	}
	return s
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
