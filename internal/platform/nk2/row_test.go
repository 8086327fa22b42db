package nk2

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/nk2/nk2test"
	"NK2Reader/internal/platform/stream"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRow_Empty(t *testing.T) {
	c := stream.NewCursor(nk2test.Row{}.Bytes())
	row, err := newTestDecoder(t, Options{}).DecodeRow(c)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Len())
	assert.Empty(t, row.IDs())
	assert.Equal(t, 4, c.Position())
}

func TestDecodeRow_Contact(t *testing.T) {
	c := stream.NewCursor(nk2test.Contact("Jane Doe", "jane@example.com").Bytes())
	row, err := newTestDecoder(t, Options{}).DecodeRow(c)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Remaining())

	assert.Equal(t, 7, row.Len())
	assert.Equal(t, []uint16{
		domain.PidTagDisplayName, domain.PidTagAddressType, domain.PidTagEmailAddress,
		domain.PidTagSmtpAddress, domain.PidTagEntryID, domain.PidTagObjectType, domain.PidTagDisplayType,
	}, row.IDs())

	name, ok := row.Unicode(domain.PidTagDisplayName)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	objectType, ok := row.Integer32(domain.PidTagObjectType)
	require.True(t, ok)
	assert.Equal(t, uint32(6), objectType)
}

func TestDecodeRow_DuplicateLastWriteWins(t *testing.T) {
	r := nk2test.Row{
		nk2test.Unicode(0x3001, "first"),
		nk2test.Integer32(0x3A40, 1),
		nk2test.String8(0x3001, "second"),
	}
	row, err := newTestDecoder(t, Options{}).DecodeRow(stream.NewCursor(r.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 2, row.Len())
	assert.Equal(t, []uint16{0x3001, 0x3A40}, row.IDs())

	_, ok := row.Unicode(0x3001)
	assert.False(t, ok, "earlier unicode value must be replaced")
	s, ok := row.String8(0x3001)
	require.True(t, ok)
	assert.Equal(t, "second", s)
}

func TestDecodeRow_StrictRejectsDuplicates(t *testing.T) {
	r := nk2test.Row{
		nk2test.Integer32(0x3A40, 1),
		nk2test.Integer32(0x3A40, 2),
	}
	_, err := newTestDecoder(t, Options{StrictDuplicates: true}).DecodeRow(stream.NewCursor(r.Bytes()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateProperty))

	var decodeErr *domain.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, uint32(0x3A40), decodeErr.Value)
	assert.Equal(t, 4+16, decodeErr.Offset)
}

func TestDecodeRow_PropagatesPropertyErrors(t *testing.T) {
	r := nk2test.Row{
		nk2test.Integer32(0x3A40, 1),
		{ID: 0x3001, Type: 0x0007},
	}
	_, err := newTestDecoder(t, Options{}).DecodeRow(stream.NewCursor(r.Bytes()))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedPropertyType))
}

func TestDecodeRow_CountLargerThanData(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	data = append(data, nk2test.Integer32(1, 1).Bytes()...)
	_, err := newTestDecoder(t, Options{}).DecodeRow(stream.NewCursor(data))
	assert.True(t, errors.Is(err, domain.ErrUnexpectedEndOfStream))
}
