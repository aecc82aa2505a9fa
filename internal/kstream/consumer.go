// Package kstream wraps segmentio/kafka-go for the marketplace event topics.
package kstream

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"cropconnect-backend/internal/model"
)

// KafkaReader creates a Kafka consumer using segmentio/kafka-go library.
// kafka.Reader provides consumer group functionality with automatic offset management.
func KafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{broker}, // segmentio/kafka-go: Kafka broker addresses
		Topic:          topic,            // segmentio/kafka-go: Topic to consume from
		GroupID:        groupID,          // segmentio/kafka-go: Consumer group ID (enables load balancing)
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second, // segmentio/kafka-go: Auto-commit interval for offsets
	})
}

// DecodeOrderPlaced parses an orders.placed message.
func DecodeOrderPlaced(msg kafka.Message) (model.OrderPlaced, error) {
	var evt model.OrderPlaced
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return model.OrderPlaced{}, fmt.Errorf("kstream: decode order event: %w", err)
	}
	if evt.OrderID == "" {
		return model.OrderPlaced{}, fmt.Errorf("kstream: order event without order_id")
	}
	return evt, nil
}
