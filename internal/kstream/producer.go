package kstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"cropconnect-backend/internal/model"
)

const (
	TopicOrdersPlaced   = "orders.placed"
	TopicWalletAdjusted = "wallet.adjusted"
)

// kafkaWriter constructs a Kafka producer using segmentio/kafka-go library.
// kafka.Writer provides async message publishing with automatic batching and retries.
func kafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),   // segmentio/kafka-go: TCP address for Kafka broker
		Topic:        topic,               // Target Kafka topic name
		Balancer:     &kafka.Hash{},       // same key -> same partition, keeps a seller's orders ordered
		RequiredAcks: kafka.RequireOne,    // segmentio/kafka-go: Wait for leader ack only
		Async:        true,                // segmentio/kafka-go: Non-blocking writes
		BatchTimeout: 50 * time.Millisecond,
	}
}

// Publisher sends buyer-side events. It satisfies session.EventSink.
type Publisher struct {
	orders *kafka.Writer
	wallet *kafka.Writer
}

// NewPublisher creates one writer per topic against broker.
func NewPublisher(broker string) *Publisher {
	return &Publisher{
		orders: kafkaWriter(broker, TopicOrdersPlaced),
		wallet: kafkaWriter(broker, TopicWalletAdjusted),
	}
}

// PublishOrderPlaced sends an OrderPlaced event keyed by seller name.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, evt model.OrderPlaced) error {
	return publish(ctx, p.orders, evt.SellerName, evt)
}

// PublishWalletAdjusted sends a WalletAdjusted event.
func (p *Publisher) PublishWalletAdjusted(ctx context.Context, evt model.WalletAdjusted) error {
	return publish(ctx, p.wallet, evt.EventID, evt)
}

func publish(ctx context.Context, w *kafka.Writer, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// segmentio/kafka-go: Key is used for partitioning (same key -> same partition for ordering).
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	return w.WriteMessages(ctx, msg)
}

// Close flushes pending messages.
func (p *Publisher) Close() error {
	err := p.orders.Close()
	if werr := p.wallet.Close(); err == nil {
		err = werr
	}
	return err
}
