package service

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/nk2"
	"NK2Reader/internal/platform/nk2/nk2test"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	events []domain.FileDecodedEvent
	err    error
}

func (p *recordingPublisher) PublishFileDecoded(event domain.FileDecodedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func newDecodeFileService(t *testing.T, publisher domain.FileDecodedPublisher, maxFileSize int64) *DecodeFileService {
	t.Helper()
	decoder, err := nk2.NewDecoder(nk2.Options{})
	require.NoError(t, err)
	return NewDecodeFileService(decoder, publisher, config.Config{MaxFileSize: maxFileSize}, zap.NewNop())
}

func TestDecodeFileService_Data(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newDecodeFileService(t, publisher, 0)

	data := nk2test.NewFile(nk2test.Contact("Jane", "jane@example.com")).Bytes()
	result := svc.Execute(DecodeFileCommand{Source: "upload", Data: data})

	require.NoError(t, result.Err)
	assert.Len(t, result.File.Rows(), 1)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "upload", publisher.events[0].Source)
	assert.Equal(t, 1, publisher.events[0].Rows)
}

func TestDecodeFileService_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Outlook.NK2")
	data := nk2test.NewFile(nk2test.Contact("a", "a@x"), nk2test.Contact("b", "b@x")).Bytes()
	require.NoError(t, os.WriteFile(path, data, 0o600))

	publisher := &recordingPublisher{}
	result := newDecodeFileService(t, publisher, 0).Execute(DecodeFileCommand{Path: path})

	require.NoError(t, result.Err)
	assert.Len(t, result.File.Rows(), 2)
	assert.Equal(t, path, publisher.events[0].Source)
}

func TestDecodeFileService_MissingFile(t *testing.T) {
	result := newDecodeFileService(t, nil, 0).Execute(DecodeFileCommand{
		Path: filepath.Join(t.TempDir(), "missing.nk2"),
	})
	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, os.ErrNotExist))
}

func TestDecodeFileService_TooLarge(t *testing.T) {
	data := nk2test.NewFile(nk2test.Contact("Jane", "jane@example.com")).Bytes()
	svc := newDecodeFileService(t, nil, int64(len(data)-1))

	result := svc.Execute(DecodeFileCommand{Data: data})
	assert.True(t, errors.Is(result.Err, ErrFileTooLarge))

	path := filepath.Join(t.TempDir(), "big.nk2")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	result = svc.Execute(DecodeFileCommand{Path: path})
	assert.True(t, errors.Is(result.Err, ErrFileTooLarge))
}

func TestDecodeFileService_DecodeErrorKeepsSentinel(t *testing.T) {
	publisher := &recordingPublisher{}
	result := newDecodeFileService(t, publisher, 0).Execute(DecodeFileCommand{
		Source: "junk",
		Data:   []byte{0xEF, 0xBE, 0xAD, 0xDE},
	})

	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, domain.ErrInvalidSignature))
	var decodeErr *domain.DecodeError
	assert.True(t, errors.As(result.Err, &decodeErr))
	assert.Contains(t, result.Err.Error(), "decoding junk")
	assert.Empty(t, publisher.events)
}

func TestDecodeFileService_PublishFailureIsNotFatal(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("socket closed")}
	data := nk2test.NewFile().Bytes()

	result := newDecodeFileService(t, publisher, 0).Execute(DecodeFileCommand{Data: data})
	assert.NoError(t, result.Err)
	assert.Len(t, publisher.events, 1)
}
