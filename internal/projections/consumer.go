package projections

import (
	"context"
	"log"
	"sort"

	"cropconnect-backend/internal/kstream"
	"cropconnect-backend/internal/model"
)

// ConsumeOrderTopic runs the projector against orders.placed until ctx ends.
func ConsumeOrderTopic(ctx context.Context, broker string, p *Projector) error {
	reader := kstream.KafkaReader(broker, kstream.TopicOrdersPlaced, "projectors-group")
	defer reader.Close()

	log.Printf("Projectors: consuming from %s", kstream.TopicOrdersPlaced)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		evt, err := kstream.DecodeOrderPlaced(msg)
		if err != nil {
			log.Printf("Projectors: %v", err)
			continue
		}
		if err := p.Apply(ctx, evt); err != nil {
			log.Printf("Projectors: order %s: %v", evt.OrderID, err)
		}
	}
}

func sortByOrderID(orders []model.OrderPlaced) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
}
