package zmq

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/platform/api/dto"
	"NK2Reader/internal/platform/config"
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-zeromq/zmq4"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// ZmqApi serves decode requests over a REP socket. Requests are handed to a
// worker pool; when the pool is saturated the listener decodes inline.
type ZmqApi struct {
	socket     zmq4.Socket
	config     config.Config
	services   *Services
	sugar      *zap.SugaredLogger
	ctx        context.Context
	cancel     context.CancelFunc
	workerPool chan Job
	numWorkers int
}

type Job struct {
	Request  *ApiRequest
	Response chan<- ApiResponse
}

type Services struct {
	decode   *service.DecodeFileService
	contacts *service.ListContactsService
	dump     *service.DumpFileService
}

const (
	DECODE   = "DECODE"
	CONTACTS = "CONTACTS"
	DUMP     = "DUMP"
)

const defaultSource = "zmq"

func NewZmqApi(decode *service.DecodeFileService, contacts *service.ListContactsService,
	dump *service.DumpFileService, conf config.Config, logger *zap.Logger) *ZmqApi {

	ctx, cancel := context.WithCancel(context.Background())

	numWorkers := runtime.NumCPU() * 2
	return &ZmqApi{
		socket: zmq4.NewRep(ctx),
		config: conf,
		services: &Services{
			decode:   decode,
			contacts: contacts,
			dump:     dump,
		},
		sugar:      logger.Sugar(),
		ctx:        ctx,
		cancel:     cancel,
		workerPool: make(chan Job, 1024),
		numWorkers: numWorkers,
	}
}

// Listen blocks until Close is called.
func (z *ZmqApi) Listen() error {
	address := fmt.Sprintf("tcp://*:%d", z.config.ZmqApiPort)
	if err := z.socket.Listen(address); err != nil {
		return fmt.Errorf("binding zmq api on %s: %w", address, err)
	}

	for i := 0; i < z.numWorkers; i++ {
		go z.workerRoutine(i)
	}
	go z.socketListener()

	z.sugar.Infow("ZMQ API listening", "address", address, "workers", z.numWorkers)
	<-z.ctx.Done()
	z.sugar.Info("ZMQ API shutting down")
	return nil
}

func (z *ZmqApi) socketListener() {
	for {
		msg, err := z.socket.Recv()
		if err != nil {
			if z.ctx.Err() != nil || errors.Is(err, zmq4.ErrClosedConn) {
				return
			}
			z.sugar.Warnw("zmq recv failed", "error", err)
			continue
		}

		var req ApiRequest
		if err := json.Unmarshal(msg.Bytes(), &req); err != nil {
			z.send(ApiResponse{Error: "malformed request: " + err.Error()})
			continue
		}

		resp, ok := z.dispatch(&req)
		if !ok {
			return
		}
		z.send(resp)
	}
}

// dispatch hands req to the worker pool, or decodes inline when the pool is
// full. It reports false once the api is shutting down.
func (z *ZmqApi) dispatch(req *ApiRequest) (ApiResponse, bool) {
	respChan := make(chan ApiResponse, 1)
	select {
	case z.workerPool <- Job{Request: req, Response: respChan}:
	case <-z.ctx.Done():
		return ApiResponse{}, false
	default:
		return z.processRequest(req), true
	}

	select {
	case resp := <-respChan:
		return resp, true
	case <-z.ctx.Done():
		return ApiResponse{}, false
	}
}

func (z *ZmqApi) workerRoutine(id int) {
	defer z.sugar.Debugw("zmq worker stopped", "worker", id)
	for {
		select {
		case job := <-z.workerPool:
			job.Response <- z.processRequest(job.Request)
		case <-z.ctx.Done():
			return
		}
	}
}

func (z *ZmqApi) processRequest(req *ApiRequest) ApiResponse {
	switch req.Action {
	case DECODE, CONTACTS, DUMP:
	default:
		z.sugar.Warnw("unknown zmq action", "action", req.Action)
		return ApiResponse{Error: fmt.Sprintf("unknown action %q", req.Action)}
	}

	source := req.Name
	if source == "" {
		source = defaultSource
	}
	result := z.services.decode.Execute(service.DecodeFileCommand{Source: source, Data: req.Data})
	if result.Err != nil {
		return ApiResponse{Error: result.Err.Error()}
	}

	switch req.Action {
	case CONTACTS:
		contacts := z.services.contacts.Execute(service.ListContactsQuery{File: result.File})
		return ApiResponse{Contacts: dto.MapToContactResponses(contacts.Contacts), Success: true}
	case DUMP:
		dump := z.services.dump.Execute(service.DumpFileQuery{File: result.File, Format: req.Format})
		if dump.Err != nil {
			return ApiResponse{Error: dump.Err.Error()}
		}
		return ApiResponse{Dump: dump.Text, Success: true}
	}
	file := dto.MapToFileResponse(result.File)
	return ApiResponse{File: &file, Success: true}
}

func (z *ZmqApi) send(response ApiResponse) {
	if err := z.socket.Send(z.marshal(response)); err != nil {
		z.sugar.Warnw("zmq send failed", "error", err)
	}
}

func (z *ZmqApi) marshal(response ApiResponse) zmq4.Msg {
	payload, err := json.Marshal(response)
	if err != nil {
		z.sugar.Errorw("marshalling zmq response", "error", err)
		payload = []byte(`{"success":false}`)
	}
	return zmq4.NewMsg(payload)
}

func (z *ZmqApi) Close() error {
	z.cancel()
	return z.socket.Close()
}
