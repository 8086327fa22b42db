package stream

import (
	"NK2Reader/internal/domain"
	"encoding/binary"
	"math"
)

// Cursor reads little-endian fields from an in-memory buffer. The position
// only moves forward. A Cursor is not safe for concurrent use.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position is the absolute offset of the next unread byte.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining is the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// next returns the following n bytes without copying them.
func (c *Cursor) next(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, domain.UnexpectedEndOfStream(c.pos, n, c.Remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes returns a copy of the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadArray8 reads a fixed 8-byte block.
func (c *Cursor) ReadArray8() ([8]byte, error) {
	var out [8]byte
	b, err := c.next(8)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadArray16 reads a fixed 16-byte block.
func (c *Cursor) ReadArray16() ([16]byte, error) {
	var out [16]byte
	b, err := c.next(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadString decodes the next n bytes with charset.
func (c *Cursor) ReadString(n int, charset Charset) (string, error) {
	start := c.pos
	b, err := c.next(n)
	if err != nil {
		return "", err
	}
	s, err := charset.DecodeText(b)
	if err != nil {
		return "", domain.InvalidTextEncoding(start, err.Error())
	}
	return s, nil
}

// Skip advances past n bytes without looking at them.
func (c *Cursor) Skip(n int) error {
	_, err := c.next(n)
	return err
}
