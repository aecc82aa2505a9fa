package kstream

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropconnect-backend/internal/model"
)

func TestDecodeOrderPlaced(t *testing.T) {
	evt, err := DecodeOrderPlaced(kafka.Message{Value: []byte(`{"order_id":"ord_1","seller_name":"Ram Kumar","total_amount":3000,"status":"Blocked"}`)})
	require.NoError(t, err)
	assert.Equal(t, "ord_1", evt.OrderID)
	assert.Equal(t, model.OrderBlocked, evt.Status)
	assert.Equal(t, 3000.0, evt.TotalAmount)

	_, err = DecodeOrderPlaced(kafka.Message{Value: []byte(`{"seller_name":"x"}`)})
	assert.Error(t, err)

	_, err = DecodeOrderPlaced(kafka.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestNewPublisherTopics(t *testing.T) {
	p := NewPublisher("localhost:9092")
	assert.Equal(t, TopicOrdersPlaced, p.orders.Topic)
	assert.Equal(t, TopicWalletAdjusted, p.wallet.Topic)
	assert.NoError(t, p.Close())
}
