package publisher

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/messaging/zeromq/message"
	"context"
	"fmt"
	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
	"sync"
	"time"
)

const FILE_DECODED_TOPIC = "nk2.decoded"

// ZeroMQFileDecodedPublisher announces decoded files. With a relay endpoint it
// pushes bare payloads to the relay; with an event port it publishes topic and
// payload on its own PUB socket. With neither it drops events.
type ZeroMQFileDecodedPublisher struct {
	socket zmq4.Socket
	topic  bool
	mu     sync.Mutex
	sugar  *zap.SugaredLogger
}

func NewZeroMQFileDecodedPublisher(conf config.Config, logger *zap.Logger) (*ZeroMQFileDecodedPublisher, error) {
	z := &ZeroMQFileDecodedPublisher{sugar: logger.Sugar()}
	switch {
	case conf.ZmqEventRelay != "":
		z.socket = zmq4.NewPush(context.Background(),
			zmq4.WithAutomaticReconnect(true),
			zmq4.WithDialerRetry(time.Second*5))
		if err := z.socket.Dial(conf.ZmqEventRelay); err != nil {
			return nil, fmt.Errorf("failed to dial event relay %s: %w", conf.ZmqEventRelay, err)
		}
		z.sugar.Infow("pushing decode events to relay", "endpoint", conf.ZmqEventRelay)
	case conf.ZmqEventPort > 0:
		z.socket = zmq4.NewPub(context.Background())
		z.topic = true
		address := fmt.Sprintf("tcp://*:%d", conf.ZmqEventPort)
		if err := z.socket.Listen(address); err != nil {
			return nil, fmt.Errorf("failed to start event publisher on %s: %w", address, err)
		}
		z.sugar.Infow("publishing decode events", "address", address, "topic", FILE_DECODED_TOPIC)
	}
	return z, nil
}

func (z *ZeroMQFileDecodedPublisher) Enabled() bool {
	return z.socket != nil
}

func (z *ZeroMQFileDecodedPublisher) PublishFileDecoded(event domain.FileDecodedEvent) error {
	if z.socket == nil {
		return nil
	}
	payload, err := MarshalFileDecodedMessage(message.FileDecodedMessageFrom(event))
	if err != nil {
		return err
	}

	msg := zmq4.NewMsg(payload)
	if z.topic {
		msg = zmqMessage(FILE_DECODED_TOPIC, payload)
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.socket.Send(msg)
}

func (z *ZeroMQFileDecodedPublisher) Close() error {
	if z.socket == nil {
		return nil
	}
	return z.socket.Close()
}

func zmqMessage(topic string, payload []byte) zmq4.Msg {
	return zmq4.NewMsgFrom(
		[][]byte{
			[]byte(topic),
			payload,
		}...,
	)
}

func MarshalFileDecodedMessage(msg message.FileDecodedMessage) ([]byte, error) {
	return json.Marshal(msg)
}
