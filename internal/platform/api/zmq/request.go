package zmq

import (
	"NK2Reader/internal/platform/api/dto"
)

// ApiRequest carries the raw stream base64 encoded in Data.
type ApiRequest struct {
	Action string `json:"action,omitempty"`
	Name   string `json:"name,omitempty"`
	Data   []byte `json:"data,omitempty"`
	Format string `json:"format,omitempty"`
}

type ApiResponse struct {
	File     *dto.FileResponse     `json:"file,omitempty"`
	Contacts []dto.ContactResponse `json:"contacts,omitempty"`
	Dump     string                `json:"dump,omitempty"`
	Error    string                `json:"error,omitempty"`
	Success  bool                  `json:"success"`
}
