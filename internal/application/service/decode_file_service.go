package service

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/nk2"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrFileTooLarge = errors.New("nk2: file too large")

type DecodeFileService struct {
	decoder     *nk2.Decoder
	publisher   domain.FileDecodedPublisher
	maxFileSize int64
	sugar       *zap.SugaredLogger
}

func NewDecodeFileService(decoder *nk2.Decoder,
	publisher domain.FileDecodedPublisher,
	conf config.Config,
	logger *zap.Logger) *DecodeFileService {
	maxFileSize := conf.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = config.DefaultMaxFileSize
	}
	return &DecodeFileService{
		decoder:     decoder,
		publisher:   publisher,
		maxFileSize: maxFileSize,
		sugar:       logger.Sugar(),
	}
}

// DecodeFileCommand names the input either by Path or by its contents. Source
// labels the input in logs and events and defaults to Path.
type DecodeFileCommand struct {
	Source string
	Path   string
	Data   []byte
}

type DecodeFileResult struct {
	File domain.File
	Err  error
}

func (s *DecodeFileService) Execute(command DecodeFileCommand) DecodeFileResult {
	source := command.Source
	if source == "" {
		source = command.Path
	}

	data := command.Data
	if command.Path != "" {
		var err error
		if data, err = s.readFile(command.Path); err != nil {
			return DecodeFileResult{Err: err}
		}
	}
	if int64(len(data)) > s.maxFileSize {
		return DecodeFileResult{Err: errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", source, s.maxFileSize)}
	}

	file, err := s.decoder.Decode(data)
	if err != nil {
		s.sugar.Errorw("nk2 decode failed", "source", source, "bytes", len(data), "error", err)
		return DecodeFileResult{Err: errors.Wrapf(err, "decoding %s", source)}
	}
	s.sugar.Infow("nk2 file decoded",
		"source", source,
		"rows", len(file.Rows()),
		"major_version", file.MajorVersion(),
		"minor_version", file.MinorVersion())

	if s.publisher != nil {
		if err := s.publisher.PublishFileDecoded(domain.NewFileDecodedEvent(source, file)); err != nil {
			s.sugar.Warnw("could not publish decode event", "source", source, "error", err)
		}
	}
	return DecodeFileResult{File: file}
}

func (s *DecodeFileService) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, s.maxFileSize)
	}
	return data, nil
}
