package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"cropconnect-backend/internal/bloom"
	"cropconnect-backend/internal/catalog"
	"cropconnect-backend/internal/config"
	"cropconnect-backend/internal/farmer"
	"cropconnect-backend/internal/httpapi"
	"cropconnect-backend/internal/kstream"
	"cropconnect-backend/internal/projections"
	"cropconnect-backend/internal/registration"
	"cropconnect-backend/internal/session"
	"cropconnect-backend/internal/store"
)

const redisPingTimeout = 2 * time.Second

// app is the wired service. rdb and projector are nil when Redis was
// unreachable at startup; kv is then in-memory.
type app struct {
	cfg       *config.Config
	kv        store.KV
	rdb       *redis.Client
	publisher *kstream.Publisher
	projector *projections.Projector
	server    *httpapi.Server
}

// newApp wires every component. Storage problems are logged and degrade to
// in-memory state; they never stop startup.
func newApp(ctx context.Context, cfg *config.Config) *app {
	a := &app{cfg: cfg}
	a.kv, a.rdb = openStore(ctx, cfg)

	var events session.EventSink = session.NopSink{}
	if cfg.EventsEnabled {
		a.publisher = kstream.NewPublisher(cfg.KafkaBroker)
		events = a.publisher
	}

	a.server = &httpapi.Server{
		Catalog:      catalog.New(catalog.Seed()),
		Session:      session.Load(ctx, a.kv, cfg.SessionKey, events, session.State{Orders: session.DemoOrders()}),
		Accounts:     farmer.NewAccounts(a.kv, cfg.SimDelay),
		Listings:     farmer.NewListings(a.kv),
		Registration: registration.Options{VerifyDelay: cfg.SimDelay, InitialWallet: cfg.InitialWallet},
	}
	if a.rdb != nil {
		// Bloom filter reservation is idempotent.
		a.projector = projections.NewProjector(a.rdb, bloom.NewFilter(ctx, a.rdb))
		a.server.SellerOrders = a.projector
	}
	return a
}

// openStore returns a Redis-backed KV, or a MemoryKV when Redis does not
// answer a ping.
func openStore(ctx context.Context, cfg *config.Config) (store.KV, *redis.Client) {
	rdb := store.NewRedisClient(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("Store: redis %s unreachable, using in-memory store: %v", cfg.RedisAddr, err)
		_ = rdb.Close()
		return store.NewMemoryKV(), nil
	}
	return store.NewRedisKV(rdb, cfg.StorePrefix), rdb
}

// startConsumers runs the order projector when both events and Redis are
// available.
func (a *app) startConsumers(ctx context.Context) {
	if a.publisher == nil || a.projector == nil {
		log.Println("Projectors: disabled")
		return
	}
	go func() {
		log.Println("Starting order projector consumer...")
		if err := projections.ConsumeOrderTopic(ctx, a.cfg.KafkaBroker, a.projector); err != nil {
			log.Printf("Projector consumer error: %v", err)
		}
	}()
}

func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			log.Printf("Kafka: close publisher: %v", err)
		}
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
