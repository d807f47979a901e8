// Package broadcastdto - test decode vote payload (fail-closed).
package broadcastdto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVotePayload_Valid(t *testing.T) {
	payload, err := DecodeVotePayload(json.RawMessage(`{"notificationId":"abc123","PollChoices":"0,2"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", payload.NotificationID)
	assert.Equal(t, "0,2", payload.PollChoices)
}

func TestDecodeVotePayload_FailClosed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"rỗng", ``},
		{"không phải JSON", `{{{`},
		{"thiếu notificationId", `{"PollChoices":"0"}`},
		{"thiếu PollChoices", `{"notificationId":"abc123"}`},
		{"field toàn whitespace", `{"notificationId":"  ","PollChoices":"0"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeVotePayload(json.RawMessage(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestRedirectParams_Validate(t *testing.T) {
	valid := RedirectParams{URL: "https://x", NotificationID: "abc", UserID: "u"}
	assert.NoError(t, valid.Validate())

	for _, params := range []RedirectParams{
		{NotificationID: "abc", UserID: "u"},
		{URL: "https://x", UserID: "u"},
		{URL: "https://x", NotificationID: "abc"},
		{URL: "  ", NotificationID: "abc", UserID: "u"},
	} {
		assert.Error(t, params.Validate())
	}
}
