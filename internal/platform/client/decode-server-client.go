package client

import (
	"NK2Reader/internal/platform/api/dto"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	decode_endpoint   = "/files/decode"
	contacts_endpoint = "/files/contacts"
	dump_endpoint     = "/files/dump"
)

// ApiError is a non-2xx answer from the decode API.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("decode api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("decode api: %s (status %d)", e.Message, e.StatusCode)
}

// DecodeServerClient talks to the HTTP decode API.
type DecodeServerClient struct {
	client    *resty.Client
	serverUrl string
}

func NewDecodeServerClient(serverUrl string) *DecodeServerClient {
	return &DecodeServerClient{
		client:    resty.New(),
		serverUrl: serverUrl,
	}
}

func (c *DecodeServerClient) DecodeFile(name string, data []byte) (*dto.FileResponse, error) {
	var resp dto.FileResponse
	if _, err := c.post(c.request(name, data).SetResult(&resp), decode_endpoint); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *DecodeServerClient) ListContacts(name string, data []byte) ([]dto.ContactResponse, error) {
	var resp []dto.ContactResponse
	if _, err := c.post(c.request(name, data).SetResult(&resp), contacts_endpoint); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *DecodeServerClient) DumpFile(name string, data []byte, format string) (string, error) {
	req := c.request(name, data)
	if format != "" {
		req.SetQueryParam("format", format)
	}
	resp, err := c.post(req, dump_endpoint)
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (c *DecodeServerClient) request(name string, data []byte) *resty.Request {
	req := c.client.R().
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetError(&dto.ErrorResponse{})
	if name != "" {
		req.SetQueryParam("name", name)
	}
	return req
}

func (c *DecodeServerClient) post(req *resty.Request, endpoint string) (*resty.Response, error) {
	resp, err := req.Post(c.serverUrl + endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", endpoint)
	}
	if resp.IsError() {
		apiErr := &ApiError{StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*dto.ErrorResponse); ok {
			apiErr.Message = body.Error
		}
		return nil, apiErr
	}
	return resp, nil
}
