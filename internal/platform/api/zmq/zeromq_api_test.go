package zmq

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/nk2"
	"NK2Reader/internal/platform/nk2/nk2test"
	"strings"
	"testing"
	"time"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApi(t *testing.T) *ZmqApi {
	t.Helper()
	decoder, err := nk2.NewDecoder(nk2.Options{})
	require.NoError(t, err)
	conf := config.Config{}
	logger := zap.NewNop()
	api := NewZmqApi(
		service.NewDecodeFileService(decoder, nil, conf, logger),
		service.NewListContactsService(),
		service.NewDumpFileService(),
		conf, logger)
	t.Cleanup(func() { _ = api.Close() })
	return api
}

func TestProcessRequest_Decode(t *testing.T) {
	api := newTestApi(t)
	data := nk2test.NewFile(nk2test.Contact("Jane", "jane@example.com")).Bytes()

	resp := api.processRequest(&ApiRequest{Action: DECODE, Data: data})
	require.True(t, resp.Success, resp.Error)
	require.NotNil(t, resp.File)
	assert.Len(t, resp.File.Rows, 1)
}

func TestProcessRequest_Contacts(t *testing.T) {
	api := newTestApi(t)
	data := nk2test.NewFile(nk2test.Contact("Jane", "jane@example.com")).Bytes()

	resp := api.processRequest(&ApiRequest{Action: CONTACTS, Data: data})
	require.True(t, resp.Success, resp.Error)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "Jane", resp.Contacts[0].DisplayName)
}

func TestProcessRequest_Dump(t *testing.T) {
	api := newTestApi(t)
	data := nk2test.NewFile().Bytes()

	resp := api.processRequest(&ApiRequest{Action: DUMP, Data: data})
	require.True(t, resp.Success, resp.Error)
	assert.True(t, strings.HasPrefix(resp.Dump, "version 1.0, 0 rows"))

	resp = api.processRequest(&ApiRequest{Action: DUMP, Data: data, Format: "xml"})
	assert.False(t, resp.Success)
}

func TestProcessRequest_Errors(t *testing.T) {
	api := newTestApi(t)

	resp := api.processRequest(&ApiRequest{Action: "SAVE"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown action")

	resp = api.processRequest(&ApiRequest{Action: DECODE, Data: []byte{1, 2, 3, 4}})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "nk2: invalid signature")
}

func TestApiRequest_DataIsBase64(t *testing.T) {
	var req ApiRequest
	require.NoError(t, json.Unmarshal([]byte(`{"action":"DECODE","data":"DfCtug=="}`), &req))
	assert.Equal(t, []byte{0x0D, 0xF0, 0xAD, 0xBA}, req.Data)
}

func TestDispatch_Inline(t *testing.T) {
	api := newTestApi(t)
	api.workerPool = make(chan Job)
	data := nk2test.NewFile().Bytes()

	resp, ok := api.dispatch(&ApiRequest{Action: DECODE, Data: data})
	require.True(t, ok)
	assert.True(t, resp.Success, resp.Error)
}

func TestDispatch_ReturnsWhenStoppedWithQueuedJob(t *testing.T) {
	api := newTestApi(t)
	// no workers are running, so a queued job is never answered
	api.cancel()

	done := make(chan bool)
	go func() {
		_, ok := api.dispatch(&ApiRequest{Action: DECODE})
		done <- ok
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not return after shutdown")
	}
}
