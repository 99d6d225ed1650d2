package initializers

import (
	"context"
	"time"

	"github.com/Kariqs/amexan-checkout/checkout"
)

var Sessions *checkout.Registry

func InitSessions(cfg *AppConfig) {
	Sessions = checkout.NewRegistry(cfg.SessionTTL, checkout.StubPlacer{}, Logger)
}

// SweepSessions evicts idle sessions until ctx is done.
func SweepSessions(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			Sessions.Sweep()
		}
	}
}
