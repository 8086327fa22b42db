package listener

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/messaging/zeromq/message"
	"NK2Reader/internal/platform/messaging/zeromq/publisher"
	"context"
	"errors"
	"fmt"
	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
	"time"
)

// FileDecodedListener subscribes to the decode events of a server or relay.
type FileDecodedListener struct {
	sub      zmq4.Socket
	endpoint string
}

func NewFileDecodedListener(ctx context.Context, endpoint string) *FileDecodedListener {
	sub := zmq4.NewSub(ctx,
		zmq4.WithAutomaticReconnect(true),
		zmq4.WithDialerRetry(time.Second*5))
	return &FileDecodedListener{
		sub:      sub,
		endpoint: endpoint,
	}
}

// Listen calls handle for every event until the context ends or the socket is
// closed. Malformed messages are reported to handleErr and skipped.
func (l *FileDecodedListener) Listen(handle func(domain.FileDecodedEvent), handleErr func(error)) error {
	if err := l.sub.Dial(l.endpoint); err != nil {
		return fmt.Errorf("failed to dial %s: %w", l.endpoint, err)
	}
	if err := l.sub.SetOption(zmq4.OptionSubscribe, publisher.FILE_DECODED_TOPIC); err != nil {
		return err
	}

	for {
		msg, err := l.sub.Recv()
		if err != nil {
			if errors.Is(err, zmq4.ErrClosedConn) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		m, err := UnmarshalFileDecodedMessage(msg.Frames)
		if err != nil {
			if handleErr != nil {
				handleErr(err)
			}
			continue
		}
		handle(m.ToEvent())
	}
}

func (l *FileDecodedListener) Close() error {
	return l.sub.Close()
}

// UnmarshalFileDecodedMessage parses the topic and payload frames of a
// published event.
func UnmarshalFileDecodedMessage(frames [][]byte) (message.FileDecodedMessage, error) {
	if len(frames) != 2 {
		return message.FileDecodedMessage{}, fmt.Errorf("expected topic and payload frames, got %d", len(frames))
	}
	var m message.FileDecodedMessage
	if err := json.Unmarshal(frames[1], &m); err != nil {
		return message.FileDecodedMessage{}, fmt.Errorf("error unmarshalling file decoded message: %w", err)
	}
	m.Topic = string(frames[0])
	return m, nil
}
