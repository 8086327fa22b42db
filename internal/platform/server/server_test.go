package server

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/platform/api/dto"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/nk2"
	"NK2Reader/internal/platform/nk2/nk2test"
	"NK2Reader/internal/platform/server/handler/nk2file"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, maxFileSize int64) *httptest.Server {
	t.Helper()
	conf := config.Config{MaxFileSize: maxFileSize}
	decoder, err := nk2.NewDecoder(nk2.Options{})
	require.NoError(t, err)
	logger := zap.NewNop()

	files := nk2file.NewNk2FileHandler(
		service.NewDecodeFileService(decoder, nil, conf, logger),
		service.NewListContactsService(),
		service.NewDumpFileService(),
		conf, logger)
	srv := NewServer(conf, files, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url string, body []byte) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/octet-stream", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func sampleFile() []byte {
	return nk2test.NewFile(nk2test.Contact("Jane Doe", "jane@example.com")).Bytes()
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDecodeEndpoint(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, body := post(t, ts.URL+"/files/decode?name=Outlook.NK2", sampleFile())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var file dto.FileResponse
	require.NoError(t, jsoniter.Unmarshal(body, &file))
	assert.Equal(t, "0xBAADF00D", file.Signature)
	assert.Equal(t, uint32(1), file.MajorVersion)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "0x3001", file.Rows[0].Properties[0].ID)
	assert.Equal(t, "Jane Doe", file.Rows[0].Properties[0].Value)
}

func TestContactsEndpoint(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, body := post(t, ts.URL+"/files/contacts", sampleFile())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var contacts []dto.ContactResponse
	require.NoError(t, jsoniter.Unmarshal(body, &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "jane@example.com", contacts[0].SmtpAddress)
}

func TestDumpEndpoint(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, body := post(t, ts.URL+"/files/dump", sampleFile())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "version 1.0, 1 rows"))

	resp, _ = post(t, ts.URL+"/files/dump?format=xml", sampleFile())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDecodeEndpoint_Errors(t *testing.T) {
	ts := newTestServer(t, 64)

	resp, body := post(t, ts.URL+"/files/decode", []byte{0xEF, 0xBE, 0xAD, 0xDE})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "nk2: invalid signature")

	resp, _ = post(t, ts.URL+"/files/decode", sampleFile())
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, _ = post(t, ts.URL+"/files/decode", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
