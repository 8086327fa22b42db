package bootstrap

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/api/zmq"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/logger"
	"NK2Reader/internal/platform/messaging/zeromq/publisher"
	"NK2Reader/internal/platform/nk2"
	"NK2Reader/internal/platform/server"
	"NK2Reader/internal/platform/server/handler/nk2file"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

func Run() (bool, error) {
	container, err := NewContainer()
	if err != nil {
		return false, err
	}
	err = container.Invoke(func(s server.Server,
		api *zmq.ZmqApi,
		pub *publisher.ZeroMQFileDecodedPublisher,
		conf config.Config,
		log *zap.Logger) error {
		defer log.Sync()
		defer pub.Close()

		if conf.ZmqApiPort > 0 {
			defer api.Close()
			go func() {
				if err := api.Listen(); err != nil {
					log.Error("zmq api stopped", zap.Error(err))
				}
			}()
		}
		return s.Run()
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// NewContainer registers every constructor of the decode server.
func NewContainer() (*dig.Container, error) {
	container := dig.New()
	serviceConstructors := []interface{}{
		config.LoadConfig,
		logger.NewLogger,
		decoder,
		publisher.NewZeroMQFileDecodedPublisher,
		fileDecodedPublisher,
		service.NewDecodeFileService,
		service.NewListContactsService,
		service.NewDumpFileService,
		nk2file.NewNk2FileHandler,
		server.NewServer,
		zmq.NewZmqApi,
	}
	for _, service := range serviceConstructors {
		if err := container.Provide(service); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func decoder(conf config.Config, log *zap.Logger) (*nk2.Decoder, error) {
	return nk2.NewDecoder(nk2.Options{
		Codepage:         conf.Codepage,
		StrictDuplicates: conf.StrictDuplicates,
		Logger:           log,
	})
}

func fileDecodedPublisher(p *publisher.ZeroMQFileDecodedPublisher) domain.FileDecodedPublisher {
	return p
}
