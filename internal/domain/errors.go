package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignature is returned when the stream does not start with FileSignature.
	ErrInvalidSignature = errors.New("nk2: invalid signature")

	// ErrUnexpectedEndOfStream is returned when a read runs past the end of the buffer.
	ErrUnexpectedEndOfStream = errors.New("nk2: unexpected end of stream")

	// ErrUnsupportedPropertyType is returned for a type code outside both dispatch tables.
	ErrUnsupportedPropertyType = errors.New("nk2: unsupported property type")

	// ErrInvalidTextEncoding is returned when string bytes are not valid in their charset.
	ErrInvalidTextEncoding = errors.New("nk2: invalid text encoding")

	// ErrDuplicateProperty is returned in strict mode when a row repeats an identifier.
	ErrDuplicateProperty = errors.New("nk2: duplicate property")
)

// DecodeError carries the position of a decoding failure. Err is one of the
// sentinels above; Value holds the offending signature, type code or identifier.
type DecodeError struct {
	Err    error
	Offset int
	Value  uint32
	Detail string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
	switch e.Err {
	case ErrInvalidSignature:
		msg = fmt.Sprintf("%s: 0x%08X at offset %d", e.Err, e.Value, e.Offset)
	case ErrUnsupportedPropertyType:
		msg = fmt.Sprintf("%s: 0x%04X at offset %d", e.Err, e.Value, e.Offset)
	case ErrDuplicateProperty:
		msg = fmt.Sprintf("%s: 0x%04X at offset %d", e.Err, e.Value, e.Offset)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func InvalidSignature(actual uint32, offset int) error {
	return &DecodeError{Err: ErrInvalidSignature, Offset: offset, Value: actual}
}

func UnsupportedPropertyType(code PropertyType, offset int) error {
	return &DecodeError{Err: ErrUnsupportedPropertyType, Offset: offset, Value: uint32(code)}
}

func DuplicateProperty(id uint16, offset int) error {
	return &DecodeError{Err: ErrDuplicateProperty, Offset: offset, Value: uint32(id)}
}

func UnexpectedEndOfStream(offset, need, remaining int) error {
	return &DecodeError{
		Err:    ErrUnexpectedEndOfStream,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", need, remaining),
	}
}

func InvalidTextEncoding(offset int, detail string) error {
	return &DecodeError{Err: ErrInvalidTextEncoding, Offset: offset, Detail: detail}
}
