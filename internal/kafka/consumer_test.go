package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAuditEvent(t *testing.T) {
	payload := []byte(`{"type":"flight_registered","entity_type":"flight","entity_id":42,"actor":"dispatcher","detail":"flight AV202 on 2025-07-10","occurred_at":"2025-07-10T08:00:00Z"}`)

	event, err := decodeAuditEvent(payload)

	assert.NoError(t, err)
	assert.Equal(t, "flight_registered", event.Type)
	assert.Equal(t, "flight", event.EntityType)
	assert.Equal(t, int64(42), event.EntityID)
	assert.Equal(t, "dispatcher", event.Actor)
	assert.Equal(t, time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC), event.OccurredAt)
}

func TestDecodeAuditEvent_BadPayload(t *testing.T) {
	_, err := decodeAuditEvent([]byte(`not json`))

	assert.Error(t, err)
}
