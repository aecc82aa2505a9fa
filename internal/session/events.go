package session

import (
	"context"

	"cropconnect-backend/internal/model"
)

// EventSink receives notifications after the session has saved a change.
type EventSink interface {
	PublishOrderPlaced(ctx context.Context, evt model.OrderPlaced) error
	PublishWalletAdjusted(ctx context.Context, evt model.WalletAdjusted) error
}

// NopSink drops events.
type NopSink struct{}

func (NopSink) PublishOrderPlaced(context.Context, model.OrderPlaced) error       { return nil }
func (NopSink) PublishWalletAdjusted(context.Context, model.WalletAdjusted) error { return nil }
