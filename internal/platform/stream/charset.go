package stream

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Charset turns the text bytes of a string property into a Go string.
type Charset interface {
	Name() string
	DecodeText(b []byte) (string, error)
}

// ASCII rejects any byte above 0x7F.
func ASCII() Charset {
	return asciiCharset{}
}

// UTF16LE decodes little-endian UTF-16 and rejects odd lengths and unpaired
// surrogates. A leading byte order mark is kept as U+FEFF.
func UTF16LE() Charset {
	return utf16Charset{enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
}

// Codepage looks up a single-byte charset by its WHATWG label, e.g.
// "windows-1252" or "iso-8859-2". "ascii" selects the strict ASCII charset.
func Codepage(name string) (Charset, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "ascii" || label == "us-ascii-strict" {
		return ASCII(), nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown codepage %q: %w", name, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}
	return codepageCharset{name: canonical, enc: enc}, nil
}

type asciiCharset struct{}

func (asciiCharset) Name() string { return "ascii" }

func (asciiCharset) DecodeText(b []byte) (string, error) {
	for i, c := range b {
		if c > 0x7F {
			return "", fmt.Errorf("byte 0x%02X at index %d is not ascii", c, i)
		}
	}
	return string(b), nil
}

type codepageCharset struct {
	name string
	enc  encoding.Encoding
}

func (c codepageCharset) Name() string { return c.name }

func (c codepageCharset) DecodeText(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	return string(out), nil
}

type utf16Charset struct {
	enc encoding.Encoding
}

func (utf16Charset) Name() string { return "utf-16le" }

func (c utf16Charset) DecodeText(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("odd utf-16 byte count %d", len(b))
	}
	if i := unpairedSurrogate(b); i >= 0 {
		return "", fmt.Errorf("unpaired utf-16 surrogate at index %d", i)
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// unpairedSurrogate returns the byte index of the first lone surrogate, or -1.
func unpairedSurrogate(b []byte) int {
	n := len(b) / 2
	for i := 0; i < n; i++ {
		u := rune(binary.LittleEndian.Uint16(b[2*i:]))
		if !utf16.IsSurrogate(u) {
			continue
		}
		// high surrogate followed by a low one
		if u < 0xDC00 && i+1 < n {
			next := rune(binary.LittleEndian.Uint16(b[2*i+2:]))
			if next >= 0xDC00 && next <= 0xDFFF {
				i++
				continue
			}
		}
		return 2 * i
	}
	return -1
}
