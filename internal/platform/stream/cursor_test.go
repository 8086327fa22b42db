package stream

import (
	"NK2Reader/internal/domain"
	"errors"
	"math"
	"testing"
)

func TestCursor_ReadsLittleEndian(t *testing.T) {
	c := NewCursor([]byte{
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01,
		0x00, 0x00, 0x80, 0x3F,
	})

	u16, err := c.ReadUint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadUint16 = 0x%X, %v", u16, err)
	}
	u32, err := c.ReadUint32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("ReadUint32 = 0x%X, %v", u32, err)
	}
	u64, err := c.ReadUint64()
	if err != nil || u64 != 0x0123456789ABCDEF {
		t.Fatalf("ReadUint64 = 0x%X, %v", u64, err)
	}
	f, err := c.ReadFloat32()
	if err != nil || f != 1.0 {
		t.Fatalf("ReadFloat32 = %v, %v", f, err)
	}
	if c.Position() != 18 || c.Remaining() != 0 {
		t.Errorf("position %d remaining %d", c.Position(), c.Remaining())
	}
}

func TestCursor_ReadFloat64(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x7F})
	f, err := c.ReadFloat64()
	if err != nil {
		t.Fatal(err)
	}
	if math.Float64bits(f) != 0x7FF8000000000001 {
		t.Errorf("NaN payload lost: 0x%X", math.Float64bits(f))
	}
}

func TestCursor_ReadBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := NewCursor(data)
	b, err := c.ReadBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	b[0] = 99
	if data[0] != 1 {
		t.Errorf("ReadBytes returned a view of the buffer")
	}

	empty, err := c.ReadBytes(0)
	if err != nil || len(empty) != 0 || empty == nil {
		t.Errorf("ReadBytes(0) = %v, %v", empty, err)
	}
}

func TestCursor_EndOfStream(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if err := c.Skip(1); err != nil {
		t.Fatal(err)
	}

	_, err := c.ReadUint32()
	if !errors.Is(err, domain.ErrUnexpectedEndOfStream) {
		t.Fatalf("expected end of stream, got %v", err)
	}
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Offset != 1 {
		t.Errorf("unexpected error %#v", err)
	}
	if c.Position() != 1 {
		t.Errorf("failed read moved the cursor to %d", c.Position())
	}

	if _, err := c.ReadBytes(-1); !errors.Is(err, domain.ErrUnexpectedEndOfStream) {
		t.Errorf("negative length accepted: %v", err)
	}
	if _, err := c.ReadArray16(); !errors.Is(err, domain.ErrUnexpectedEndOfStream) {
		t.Errorf("short ReadArray16 accepted: %v", err)
	}
	if _, err := c.ReadArray8(); !errors.Is(err, domain.ErrUnexpectedEndOfStream) {
		t.Errorf("short ReadArray8 accepted: %v", err)
	}
}

func TestCursor_ReadStringReportsStartOffset(t *testing.T) {
	c := NewCursor([]byte{'o', 'k', 0xE9})
	if err := c.Skip(2); err != nil {
		t.Fatal(err)
	}
	_, err := c.ReadString(1, ASCII())
	if !errors.Is(err, domain.ErrInvalidTextEncoding) {
		t.Fatalf("expected invalid text encoding, got %v", err)
	}
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Offset != 2 {
		t.Errorf("unexpected error %#v", err)
	}
}
