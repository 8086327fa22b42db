package nk2file

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/api/dto"
	"NK2Reader/internal/platform/config"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultSource = "http"

type Nk2FileHandler struct {
	decodeService   *service.DecodeFileService
	contactsService *service.ListContactsService
	dumpService     *service.DumpFileService
	maxFileSize     int64
	sugar           *zap.SugaredLogger
}

func NewNk2FileHandler(decodeService *service.DecodeFileService,
	contactsService *service.ListContactsService,
	dumpService *service.DumpFileService,
	conf config.Config,
	logger *zap.Logger) *Nk2FileHandler {
	maxFileSize := conf.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = config.DefaultMaxFileSize
	}
	return &Nk2FileHandler{
		decodeService:   decodeService,
		contactsService: contactsService,
		dumpService:     dumpService,
		maxFileSize:     maxFileSize,
		sugar:           logger.Sugar(),
	}
}

// Decode answers POST /files/decode with the whole decoded file.
func (h *Nk2FileHandler) Decode(w http.ResponseWriter, r *http.Request) {
	file, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.MapToFileResponse(file))
}

// Contacts answers POST /files/contacts with one contact per row.
func (h *Nk2FileHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	file, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result := h.contactsService.Execute(service.ListContactsQuery{File: file})
	writeJSON(w, http.StatusOK, dto.MapToContactResponses(result.Contacts))
}

// Dump answers POST /files/dump?format=text|spew with a plain text dump.
func (h *Nk2FileHandler) Dump(w http.ResponseWriter, r *http.Request) {
	file, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result := h.dumpService.Execute(service.DumpFileQuery{
		File:   file,
		Format: r.URL.Query().Get("format"),
	})
	if result.Err != nil {
		writeError(w, http.StatusBadRequest, result.Err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, result.Text)
}

func (h *Nk2FileHandler) decodeBody(w http.ResponseWriter, r *http.Request) (domain.File, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxFileSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errors.Wrapf(service.ErrFileTooLarge, "limit is %d bytes", tooLarge.Limit))
			return domain.File{}, false
		}
		writeError(w, http.StatusBadRequest, err)
		return domain.File{}, false
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("empty request body"))
		return domain.File{}, false
	}

	source := r.URL.Query().Get("name")
	if source == "" {
		source = defaultSource
	}
	result := h.decodeService.Execute(service.DecodeFileCommand{Source: source, Data: body})
	if result.Err != nil {
		writeError(w, StatusFor(result.Err), result.Err)
		return domain.File{}, false
	}
	return result.File, true
}

// StatusFor maps a decode failure to its HTTP status.
func StatusFor(err error) int {
	var decodeErr *domain.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	output, err := json.Marshal(body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(output)
}

func writeError(w http.ResponseWriter, status int, err error) {
	output, _ := json.Marshal(dto.ErrorResponse{Error: err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(output)
}
