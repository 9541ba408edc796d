package ordering

import (
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// Progress messages derived from order age.
const (
	StatusReady     = "Ready for pickup!"
	StatusReceived  = "Barista received your order."
	StatusPreparing = "Drinks are being prepared."
	StatusAlmost    = "Almost ready..."
)

// Status derives the friendly progress message for an order at the given
// instant. It is a pure function of (now, placed_at, ready_at) and is
// recomputed on every query, never cached.
func Status(order storage.Order, now time.Time) string {
	if order.ReadyAt != nil {
		return StatusReady
	}

	elapsed := now.Sub(order.PlacedAt)
	if elapsed < 2*time.Minute {
		return StatusReceived
	}
	if elapsed < 5*time.Minute {
		return StatusPreparing
	}
	return StatusAlmost
}
