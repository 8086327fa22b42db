// Package nk2 decodes autocomplete name-cache streams (.NK2 files and the
// Stream_Autocomplete attachments that replaced them).
//
// Layout, all integers little-endian:
//
//	File     := u32 signature(0xBAADF00D) | u32 major | u32 minor
//	            | u32 rowCount | Row{rowCount}
//	            | u32 extraInfoLen | u8 extraInfo[extraInfoLen]
//	            | u8 filetime[8]
//	Row      := u32 propCount | Property{propCount}
//	Property := u32 tag | u32 reserved | u8 union[8] | value data (dynamic types only)
//
// Decoding is a single forward pass over an in-memory buffer. Any failure
// aborts the whole decode; no partial File is returned.
package nk2

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/stream"

	"go.uber.org/zap"
)

const DefaultCodepage = "windows-1252"

type Options struct {
	// Codepage used for PT_STRING8 values. Defaults to DefaultCodepage.
	Codepage string
	// StrictDuplicates rejects rows that repeat a property identifier
	// instead of keeping the last value.
	StrictDuplicates bool
	Logger           *zap.Logger
}

// Decoder is immutable once built and may be shared between goroutines.
type Decoder struct {
	string8 stream.Charset
	unicode stream.Charset
	strict  bool
	logger  *zap.Logger
}

func NewDecoder(opts Options) (*Decoder, error) {
	codepage := opts.Codepage
	if codepage == "" {
		codepage = DefaultCodepage
	}
	string8, err := stream.Codepage(codepage)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{
		string8: string8,
		unicode: stream.UTF16LE(),
		strict:  opts.StrictDuplicates,
		logger:  logger,
	}, nil
}

var defaultDecoder, _ = NewDecoder(Options{})

// Decode decodes data with the default options.
func Decode(data []byte) (domain.File, error) {
	return defaultDecoder.Decode(data)
}

func (d *Decoder) Decode(data []byte) (domain.File, error) {
	return d.DecodeFile(stream.NewCursor(data))
}

// Codepage is the charset name used for PT_STRING8 values.
func (d *Decoder) Codepage() string {
	return d.string8.Name()
}
