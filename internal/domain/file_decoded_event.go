package domain

import "time"

type FileDecodedEvent struct {
	Source               string
	Rows                 int
	MajorVersion         uint32
	MinorVersion         uint32
	LastModificationTime time.Time
	DecodedAt            time.Time
}

func NewFileDecodedEvent(source string, file File) FileDecodedEvent {
	return FileDecodedEvent{
		Source:               source,
		Rows:                 len(file.Rows()),
		MajorVersion:         file.MajorVersion(),
		MinorVersion:         file.MinorVersion(),
		LastModificationTime: file.LastModificationTime(),
		DecodedAt:            time.Now(),
	}
}

type FileDecodedPublisher interface {
	PublishFileDecoded(event FileDecodedEvent) error
}
