// Package projections maintains Redis read models of placed orders for the
// seller side: who sold what, the order snapshot, and recent activity.
package projections

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"cropconnect-backend/internal/model"
)

const activityTTL = 5 * time.Minute // Short TTL for the activity feed

// Deduper remembers which orders have been projected. HasOrder must not
// record anything; MarkOrder is called only once every projection succeeded.
type Deduper interface {
	HasOrder(ctx context.Context, orderID string) bool
	MarkOrder(ctx context.Context, orderID string)
}

// Projector applies OrderPlaced events to Redis.
type Projector struct {
	rdb   *redis.Client
	dedup Deduper
}

// NewProjector creates a Projector. dedup may be nil.
func NewProjector(rdb *redis.Client, dedup Deduper) *Projector {
	return &Projector{rdb: rdb, dedup: dedup}
}

// Apply runs every projection for one event. Duplicates are skipped. A failed
// event is not marked, so its redelivery is projected again.
func (p *Projector) Apply(ctx context.Context, evt model.OrderPlaced) error {
	if p.dedup != nil && p.dedup.HasOrder(ctx, evt.OrderID) {
		log.Printf("Projectors: duplicate order %s, skipping", evt.OrderID)
		return nil
	}
	if err := p.updateSellerIndex(ctx, evt); err != nil {
		return fmt.Errorf("seller index: %w", err)
	}
	if err := p.updateOrderShard(ctx, evt); err != nil {
		return fmt.Errorf("order shard: %w", err)
	}
	if err := p.updateActivity(ctx, evt); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if p.dedup != nil {
		p.dedup.MarkOrder(ctx, evt.OrderID)
	}
	return nil
}

func sellerKey(seller string) string { return "idx:seller:" + seller }
func orderKey(id string) string      { return "order:" + id }

// updateSellerIndex adds the order to the seller's set and the seller to the
// freshness ZSET scored by event time.
func (p *Projector) updateSellerIndex(ctx context.Context, evt model.OrderPlaced) error {
	// redis/go-redis/v9: SAdd adds member to Redis Set. Used for Index: seller -> orders.
	if err := p.rdb.SAdd(ctx, sellerKey(evt.SellerName), evt.OrderID).Err(); err != nil {
		return err
	}
	score := float64(time.Now().UnixMilli())
	if ts, err := time.Parse(time.RFC3339Nano, evt.Timestamp); err == nil {
		score = float64(ts.UnixMilli())
	}
	// redis/go-redis/v9: ZAdd keeps sellers sorted by latest order time.
	if err := p.rdb.ZAdd(ctx, "freshness:sellers", redis.Z{Score: score, Member: evt.SellerName}).Err(); err != nil {
		return err
	}
	log.Printf("Index Projector: seller %s += %s", evt.SellerName, evt.OrderID)
	return nil
}

// updateOrderShard stores the order snapshot, TTL=0.
func (p *Projector) updateOrderShard(ctx context.Context, evt model.OrderPlaced) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, orderKey(evt.OrderID), data, 0).Err()
}

// updateActivity writes a short-lived entry for the farmer's "new orders" badge.
func (p *Projector) updateActivity(ctx context.Context, evt model.OrderPlaced) error {
	key := fmt.Sprintf("activity:%s:%s", evt.SellerName, evt.OrderID)
	// redis/go-redis/v9: Set with TTL; entries expire on their own.
	return p.rdb.Set(ctx, key, evt.Timestamp, activityTTL).Err()
}

// SellerOrders reads back every projected order for a seller, sorted by id.
func (p *Projector) SellerOrders(ctx context.Context, seller string) ([]model.OrderPlaced, error) {
	ids, err := p.rdb.SMembers(ctx, sellerKey(seller)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.OrderPlaced, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = orderKey(id)
	}
	vals, err := p.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var evt model.OrderPlaced
		if err := json.Unmarshal([]byte(s), &evt); err != nil {
			continue
		}
		out = append(out, evt)
	}
	sortByOrderID(out)
	return out, nil
}
