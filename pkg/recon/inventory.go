package recon

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Query describes an available local numbers lookup.
type Query struct {
	Country      string // ISO country code, e.g. "US"
	AreaCode     string
	Contains     string
	SMSEnabled   bool
	VoiceEnabled bool
	Limit        int
}

// Inventory is a number inventory provider (Twilio, Vonage, etc.).
// AvailableLocal returns the matching numbers in provider order.
type Inventory interface {
	AvailableLocal(ctx context.Context, q Query) ([]string, error)
}

// InventoryFunc adapts a function to the Inventory interface.
type InventoryFunc func(ctx context.Context, q Query) ([]string, error)

// AvailableLocal calls f(ctx, q).
func (f InventoryFunc) AvailableLocal(ctx context.Context, q Query) ([]string, error) {
	return f(ctx, q)
}

// DefaultPacing is the delay kept between successive provider calls.
const DefaultPacing = 700 * time.Millisecond

type pacedInventory struct {
	next    Inventory
	limiter *rate.Limiter
}

// Paced wraps inv so that successive calls are spaced at least interval apart.
// The first call is not delayed. A non-positive interval returns inv unchanged.
func Paced(inv Inventory, interval time.Duration) Inventory {
	if interval <= 0 {
		return inv
	}
	return &pacedInventory{
		next:    inv,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (p *pacedInventory) AvailableLocal(ctx context.Context, q Query) ([]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pacing: %w", err)
	}
	return p.next.AvailableLocal(ctx, q)
}
