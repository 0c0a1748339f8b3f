package audit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Record(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf))

	logger.Record("order_created", map[string]any{
		"orderId": "o-1",
		"status":  "pending",
	})

	var entry map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "business", entry["type"])
	assert.Equal(t, "order_created", entry["event"])
	assert.Equal(t, "o-1", entry["orderId"])
	assert.Equal(t, "pending", entry["status"])
}

func TestLogger_RecordNilData(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf))

	logger.Record("order_search", nil)

	var entry map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "order_search", entry["event"])
}
