package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID string `json:"_id"`
}

func TestDecodeList_Envelopes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []item
	}{
		{name: "bare array", raw: `[{"_id":"1"}]`, want: []item{{ID: "1"}}},
		{name: "data array", raw: `{"success":true,"data":[{"_id":"1"}]}`, want: []item{{ID: "1"}}},
		{name: "data.data", raw: `{"data":{"data":[{"_id":"2"}]}}`, want: []item{{ID: "2"}}},
		{name: "data.tickets", raw: `{"data":{"tickets":[{"_id":"3"}]}}`, want: []item{{ID: "3"}}},
		{name: "data.results", raw: `{"data":{"results":[{"_id":"4"}]}}`, want: []item{{ID: "4"}}},
		{name: "data.users", raw: `{"data":{"users":[{"_id":"5"}]}}`, want: []item{{ID: "5"}}},
		{name: "data.bookings", raw: `{"data":{"bookings":[{"_id":"6"}]}}`, want: []item{{ID: "6"}}},
		{name: "unknown shape", raw: `{"items":[{"_id":"7"}]}`, want: []item{}},
		{name: "empty body", raw: ``, want: []item{}},
		{name: "null data", raw: `{"data":null}`, want: []item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList[item](json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeList_BadElements(t *testing.T) {
	_, err := DecodeList[item](json.RawMessage(`[1,2]`))
	require.ErrorContains(t, err, "failed to decode list")
}

func TestDecodeItem(t *testing.T) {
	got, err := DecodeItem[item](json.RawMessage(`{"data":{"_id":"9"}}`))
	require.NoError(t, err)
	assert.Equal(t, "9", got.ID)

	got, err = DecodeItem[item](json.RawMessage(`{"_id":"8"}`))
	require.NoError(t, err)
	assert.Equal(t, "8", got.ID)

	_, err = DecodeItem[item](json.RawMessage(`nope`))
	require.Error(t, err)
}
