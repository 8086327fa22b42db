package message

import (
	"NK2Reader/internal/domain"
	"testing"
	"time"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDecodedMessage(t *testing.T) {
	event := domain.FileDecodedEvent{
		Source:               "Outlook.NK2",
		Rows:                 3,
		MajorVersion:         12,
		MinorVersion:         0,
		LastModificationTime: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		DecodedAt:            time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC),
	}
	msg := FileDecodedMessageFrom(event)
	msg.Topic = "nk2.decoded"

	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"source":"Outlook.NK2"`)
	assert.NotContains(t, string(payload), "nk2.decoded")

	var decoded FileDecodedMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, event, decoded.ToEvent())
}
