package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	KindAbsent ValueKind = iota
	KindInteger16
	KindInteger32
	KindFloating32
	KindFloating64
	KindBoolean
	KindTime
	KindInteger64
	KindErrorCode
	KindString8
	KindUnicode
	KindGUID
	KindBinary
	KindMultipleBinary
	KindMultipleString8
	KindMultipleUnicode
)

var kindNames = [...]string{
	KindAbsent:          "absent",
	KindInteger16:       "integer16",
	KindInteger32:       "integer32",
	KindFloating32:      "floating32",
	KindFloating64:      "floating64",
	KindBoolean:         "boolean",
	KindTime:            "time",
	KindInteger64:       "integer64",
	KindErrorCode:       "error_code",
	KindString8:         "string8",
	KindUnicode:         "unicode",
	KindGUID:            "guid",
	KindBinary:          "binary",
	KindMultipleBinary:  "multiple_binary",
	KindMultipleString8: "multiple_string8",
	KindMultipleUnicode: "multiple_unicode",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a decoded property value. The zero Value is absent.
//
// Numeric variants keep their bits in num (floats via math.Float*bits), so a
// Value is comparable by kind and bits rather than by float equality.
type Value struct {
	kind  ValueKind
	num   uint64
	text  string
	data  []byte
	time  time.Time
	guid  uuid.UUID
	texts []string
	blobs [][]byte
}

func AbsentValue() Value { return Value{} }

func Integer16Value(v uint16) Value { return Value{kind: KindInteger16, num: uint64(v)} }

func Integer32Value(v uint32) Value { return Value{kind: KindInteger32, num: uint64(v)} }

func Floating32Value(v float32) Value {
	return Value{kind: KindFloating32, num: uint64(math.Float32bits(v))}
}

func Floating64Value(v float64) Value {
	return Value{kind: KindFloating64, num: math.Float64bits(v)}
}

func BooleanValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBoolean, num: n}
}

func TimeValue(v time.Time) Value { return Value{kind: KindTime, time: v} }

func Integer64Value(v uint64) Value { return Value{kind: KindInteger64, num: v} }

func ErrorCodeValue(v uint32) Value { return Value{kind: KindErrorCode, num: uint64(v)} }

func String8Value(v string) Value { return Value{kind: KindString8, text: v} }

func UnicodeValue(v string) Value { return Value{kind: KindUnicode, text: v} }

func GUIDValue(v uuid.UUID) Value { return Value{kind: KindGUID, guid: v} }

func BinaryValue(v []byte) Value { return Value{kind: KindBinary, data: v} }

func MultipleBinaryValue(v [][]byte) Value { return Value{kind: KindMultipleBinary, blobs: v} }

func MultipleString8Value(v []string) Value { return Value{kind: KindMultipleString8, texts: v} }

func MultipleUnicodeValue(v []string) Value { return Value{kind: KindMultipleUnicode, texts: v} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

func (v Value) Integer16() (uint16, bool) {
	return uint16(v.num), v.kind == KindInteger16
}

func (v Value) Integer32() (uint32, bool) {
	return uint32(v.num), v.kind == KindInteger32
}

func (v Value) Floating32() (float32, bool) {
	if v.kind != KindFloating32 {
		return 0, false
	}
	return math.Float32frombits(uint32(v.num)), true
}

func (v Value) Floating64() (float64, bool) {
	if v.kind != KindFloating64 {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

func (v Value) Boolean() (bool, bool) {
	return v.num != 0, v.kind == KindBoolean
}

func (v Value) Time() (time.Time, bool) {
	return v.time, v.kind == KindTime
}

func (v Value) Integer64() (uint64, bool) {
	return v.num, v.kind == KindInteger64
}

func (v Value) ErrorCode() (uint32, bool) {
	return uint32(v.num), v.kind == KindErrorCode
}

func (v Value) String8() (string, bool) {
	return v.text, v.kind == KindString8
}

func (v Value) Unicode() (string, bool) {
	return v.text, v.kind == KindUnicode
}

// Text returns the value of either string variant.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindString8 || v.kind == KindUnicode
}

func (v Value) GUID() (uuid.UUID, bool) {
	return v.guid, v.kind == KindGUID
}

func (v Value) Binary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return v.data, true
}

func (v Value) MultipleBinary() ([][]byte, bool) {
	if v.kind != KindMultipleBinary {
		return nil, false
	}
	return v.blobs, true
}

func (v Value) MultipleString8() ([]string, bool) {
	if v.kind != KindMultipleString8 {
		return nil, false
	}
	return v.texts, true
}

func (v Value) MultipleUnicode() ([]string, bool) {
	if v.kind != KindMultipleUnicode {
		return nil, false
	}
	return v.texts, true
}

// Interface returns the held value as a plain Go value, nil when absent.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInteger16:
		return uint16(v.num)
	case KindInteger32, KindErrorCode:
		return uint32(v.num)
	case KindFloating32:
		return math.Float32frombits(uint32(v.num))
	case KindFloating64:
		return math.Float64frombits(v.num)
	case KindBoolean:
		return v.num != 0
	case KindTime:
		return v.time
	case KindInteger64:
		return v.num
	case KindString8, KindUnicode:
		return v.text
	case KindGUID:
		return v.guid
	case KindBinary:
		return v.data
	case KindMultipleBinary:
		return v.blobs
	case KindMultipleString8, KindMultipleUnicode:
		return v.texts
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindString8, KindUnicode:
		return fmt.Sprintf("%q", v.text)
	case KindTime:
		return v.time.Format(time.RFC3339Nano)
	case KindBinary:
		return fmt.Sprintf("% X", v.data)
	case KindErrorCode:
		return fmt.Sprintf("0x%08X", uint32(v.num))
	}
	return fmt.Sprint(v.Interface())
}
