package message

import (
	"NK2Reader/internal/domain"
	"time"
)

type FileDecodedMessage struct {
	Source               string    `json:"source"`
	Rows                 int       `json:"rows"`
	MajorVersion         uint32    `json:"major_version"`
	MinorVersion         uint32    `json:"minor_version"`
	LastModificationTime time.Time `json:"last_modification_time"`
	DecodedAt            time.Time `json:"decoded_at"`
	Topic                string    `json:"-"`
}

func FileDecodedMessageFrom(event domain.FileDecodedEvent) FileDecodedMessage {
	return FileDecodedMessage{
		Source:               event.Source,
		Rows:                 event.Rows,
		MajorVersion:         event.MajorVersion,
		MinorVersion:         event.MinorVersion,
		LastModificationTime: event.LastModificationTime,
		DecodedAt:            event.DecodedAt,
	}
}

func (m *FileDecodedMessage) ToEvent() domain.FileDecodedEvent {
	return domain.FileDecodedEvent{
		Source:               m.Source,
		Rows:                 m.Rows,
		MajorVersion:         m.MajorVersion,
		MinorVersion:         m.MinorVersion,
		LastModificationTime: m.LastModificationTime,
		DecodedAt:            m.DecodedAt,
	}
}
