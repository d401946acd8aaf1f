package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotesEmpty(t *testing.T) {
	notes, err := ParseNotes("")
	require.NoError(t, err)
	assert.Empty(t, notes.KustomOrderID)
	assert.Empty(t, notes.Processor)
}

func TestParseNotesInvalid(t *testing.T) {
	_, err := ParseNotes("{not json")
	assert.Error(t, err)
}

func TestMergeNotesPreservesUnknownKeys(t *testing.T) {
	existing := `{"processor":"kustom","warehouse_batch":"WB-17","kustom_status":"created"}`

	merged, err := MergeNotes(existing, map[string]any{
		"kustom_status":  "captured",
		"last_synced_at": "2026-08-30T10:00:00Z",
	})
	require.NoError(t, err)

	var bag map[string]any
	require.NoError(t, json.Unmarshal([]byte(merged), &bag))

	// key this code never defined survives the merge
	assert.Equal(t, "WB-17", bag["warehouse_batch"])
	assert.Equal(t, "captured", bag["kustom_status"])
	assert.Equal(t, "kustom", bag["processor"])
	assert.Equal(t, "2026-08-30T10:00:00Z", bag["last_synced_at"])
}

func TestMergeNotesFromEmpty(t *testing.T) {
	merged, err := MergeNotes("", map[string]any{"processor": "kustom"})
	require.NoError(t, err)

	notes, err := ParseNotes(merged)
	require.NoError(t, err)
	assert.Equal(t, "kustom", notes.Processor)
}

func TestMergeNotesRoundTripsTypedView(t *testing.T) {
	merged, err := MergeNotes("", map[string]any{
		"kustom_order_id":    "ko_123",
		"kustom_order_token": "tok_abc",
		"confirmation":       json.RawMessage(`{"status":"captured"}`),
	})
	require.NoError(t, err)

	notes, err := ParseNotes(merged)
	require.NoError(t, err)
	assert.Equal(t, "ko_123", notes.KustomOrderID)
	assert.Equal(t, "tok_abc", notes.KustomOrderToken)
	assert.JSONEq(t, `{"status":"captured"}`, string(notes.Confirmation))
}
