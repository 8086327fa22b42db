package main

import (
	"NK2Reader/internal/platform/messaging/zeromq/publisher"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/go-zeromq/zmq4"
	"go.uber.org/zap"
)

// Relay fans in decode events pushed by several servers and republishes them
// on a single PUB socket under the decode topic.
type Relay struct {
	pub      zmq4.Socket
	pull     zmq4.Socket
	events   chan zmq4.Msg
	pubPort  int
	pullPort int
	sugar    *zap.SugaredLogger
}

func NewRelay(ctx context.Context, pubPort, pullPort int, logger *zap.Logger) *Relay {
	return &Relay{
		pub:      zmq4.NewPub(ctx),
		pull:     zmq4.NewPull(ctx),
		events:   make(chan zmq4.Msg, 30000),
		pubPort:  pubPort,
		pullPort: pullPort,
		sugar:    logger.Sugar(),
	}
}

func (r *Relay) Listen() error {
	pubAddr := fmt.Sprintf("tcp://*:%d", r.pubPort)
	if err := r.pub.Listen(pubAddr); err != nil {
		return fmt.Errorf("failed to start pub socket on %s: %w", pubAddr, err)
	}
	pullAddr := fmt.Sprintf("tcp://*:%d", r.pullPort)
	if err := r.pull.Listen(pullAddr); err != nil {
		return fmt.Errorf("failed to start pull socket on %s: %w", pullAddr, err)
	}
	r.sugar.Infow("relay listening", "pub", pubAddr, "pull", pullAddr)

	go func() {
		defer close(r.events)
		for {
			msg, err := r.pull.Recv()
			if err != nil {
				if errors.Is(err, zmq4.ErrClosedConn) || errors.Is(err, context.Canceled) {
					r.sugar.Info("pull socket closed")
					return
				}
				r.sugar.Warnw("error receiving event", "error", err)
				continue
			}
			r.events <- msg
		}
	}()

	for msg := range r.events {
		err := r.pub.Send(zmq4.NewMsgFrom(
			[][]byte{
				[]byte(publisher.FILE_DECODED_TOPIC),
				msg.Bytes(),
			}...,
		))
		if err != nil {
			return fmt.Errorf("error publishing event: %w", err)
		}
	}
	return nil
}

func main() {
	pubPort := flag.Int("pub-port", 7000, "Port for PUB socket")
	pullPort := flag.Int("pull-port", 7001, "Port for PULL socket")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *pubPort <= 0 || *pullPort <= 0 {
		logger.Error("ports must be positive integers")
		os.Exit(1)
	}

	if err := NewRelay(context.Background(), *pubPort, *pullPort, logger).Listen(); err != nil {
		logger.Fatal("relay stopped", zap.Error(err))
	}
}
