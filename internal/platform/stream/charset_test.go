package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepage_Lookup(t *testing.T) {
	cases := map[string]string{
		"windows-1252": "windows-1252",
		"CP1252":       "windows-1252",
		" latin1 ":     "windows-1252",
		"iso-8859-2":   "iso-8859-2",
		"ascii":        "ascii",
		"ASCII":        "ascii",
	}
	for label, name := range cases {
		cs, err := Codepage(label)
		require.NoError(t, err, label)
		assert.Equal(t, name, cs.Name(), label)
	}

	_, err := Codepage("klingon")
	assert.Error(t, err)
}

func TestCodepage_Windows1252(t *testing.T) {
	cs, err := Codepage("windows-1252")
	require.NoError(t, err)

	s, err := cs.DecodeText([]byte{'c', 'a', 'f', 0xE9, ' ', 0x80})
	require.NoError(t, err)
	assert.Equal(t, "café €", s)
}

func TestASCII_RejectsHighBytes(t *testing.T) {
	s, err := ASCII().DecodeText([]byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", s)

	_, err = ASCII().DecodeText([]byte{'a', 0x80})
	assert.EqualError(t, err, "byte 0x80 at index 1 is not ascii")
}

func TestUTF16LE(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"ascii", []byte{'H', 0, 'i', 0}, "Hi"},
		{"bmp", []byte{0xAC, 0x20}, "€"},
		{"surrogate pair", []byte{0x3D, 0xD8, 0x00, 0xDE}, "😀"},
		{"bom kept", []byte{0xFF, 0xFE, 'a', 0}, "\ufeffa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := UTF16LE().DecodeText(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestUTF16LE_Invalid(t *testing.T) {
	cases := map[string][]byte{
		"odd length":          {'a', 0, 'b'},
		"lone high surrogate": {0x3D, 0xD8, 'a', 0},
		"trailing high":       {'a', 0, 0x3D, 0xD8},
		"lone low surrogate":  {0x00, 0xDE},
		"reversed pair":       {0x00, 0xDE, 0x3D, 0xD8},
	}
	for name, in := range cases {
		_, err := UTF16LE().DecodeText(in)
		assert.Error(t, err, name)
	}
}
