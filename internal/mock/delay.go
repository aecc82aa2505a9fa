// Package mock holds the stand-ins for services the demo does not call:
// network round-trips are a fixed pause and the OTP is a fixed code.
package mock

import (
	"context"
	"time"
)

// OTP is the only code the verification step accepts.
const OTP = "123456"

// Pause waits d, or returns early with the context's error.
// It always succeeds otherwise; there is no retry to model.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
