// Package unlock gates the premium stats view behind a daily unlock.
// The mobile shell funds the unlock with a rewarded ad; server-side the
// flow reduces to a Provider that either grants or reports unavailable.
// Unlock state is keyed by calendar date, so it resets at midnight.
// The calculation engine knows nothing about any of this.
package unlock

import (
	"context"
	"sync"
	"time"
)

// Provider performs the unlock request against whatever funds it.
type Provider interface {
	// RequestUnlock returns true on success and false when the unlock
	// source is unavailable (e.g. no ad inventory).
	RequestUnlock(ctx context.Context) (bool, error)
}

// HouseProvider always grants the unlock. Used when no ad SDK host is
// present.
type HouseProvider struct{}

func (HouseProvider) RequestUnlock(ctx context.Context) (bool, error) {
	return true, nil
}

// UnavailableProvider never grants the unlock, standing in for an ad
// host with no inventory.
type UnavailableProvider struct{}

func (UnavailableProvider) RequestUnlock(ctx context.Context) (bool, error) {
	return false, nil
}

// NewProvider picks a provider by configured mode. Any value other than
// "unavailable" yields the house provider.
func NewProvider(mode string) Provider {
	if mode == "unavailable" {
		return UnavailableProvider{}
	}
	return HouseProvider{}
}

// Gate tracks which calendar dates have been unlocked.
type Gate struct {
	mu       sync.Mutex
	unlocked map[string]bool
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{unlocked: make(map[string]bool)}
}

// Unlock marks the date containing ref as unlocked.
func (g *Gate) Unlock(ref time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unlocked[dateKey(ref)] = true
}

// IsUnlocked reports whether the date containing ref has been unlocked.
// Past dates are never consulted again, so stale keys are harmless.
func (g *Gate) IsUnlocked(ref time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked[dateKey(ref)]
}

func dateKey(ref time.Time) string {
	return ref.Format("2006-01-02")
}
