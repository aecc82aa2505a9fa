package bloom

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// bloomKey is the RedisBloom filter key for order event deduplication.
const bloomKey = "cc:orders"

// Filter de-duplicates order events with a RedisBloom filter.
type Filter struct {
	client *redis.Client
}

// NewFilter reserves the Bloom filter if it does not exist yet.
func NewFilter(ctx context.Context, client *redis.Client) *Filter {
	// RedisBloom (redis/go-redis/v9): BF.RESERVE with error rate 0.001 and capacity 1M.
	// This uses the RedisBloom module (via redis-stack-server), not standard Redis commands.
	if err := client.Do(ctx, "BF.RESERVE", bloomKey, 0.001, 1_000_000).Err(); err != nil {
		log.Printf("bloom: reserve orders (may already exist): %v", err)
	}
	return &Filter{client: client}
}

// HasOrder reports whether orderID was probably marked before. Errors count
// as "not seen" so a missing module never drops events.
func (f *Filter) HasOrder(ctx context.Context, orderID string) bool {
	if f == nil || f.client == nil {
		return false
	}
	res := f.client.Do(ctx, "BF.EXISTS", bloomKey, orderID)
	if res.Err() != nil {
		log.Printf("bloom: BF.EXISTS error: %v", res.Err())
		return false
	}
	return replyTrue(res)
}

// MarkOrder records orderID as projected.
func (f *Filter) MarkOrder(ctx context.Context, orderID string) {
	if f == nil || f.client == nil {
		return
	}
	if err := f.client.Do(ctx, "BF.ADD", bloomKey, orderID).Err(); err != nil {
		log.Printf("bloom: BF.ADD error: %v", err)
	}
}

// replyTrue reads a RedisBloom reply, which is an int (0/1) or a bool
// depending on the Redis version.
func replyTrue(res *redis.Cmd) bool {
	val, err := res.Int()
	if err == nil {
		return val == 1
	}
	b, berr := res.Bool()
	if berr != nil {
		log.Printf("bloom: reply type error (not int or bool): %v", err)
		return false
	}
	return b
}
