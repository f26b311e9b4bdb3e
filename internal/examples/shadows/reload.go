package shadows

import (
	"sync"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/config"
)

// Reloads hands configs from the watcher goroutine to the frame loop. Only
// the newest unclaimed config is kept.
type Reloads struct {
	mu      sync.Mutex
	pending *config.Config
}

// NewReloads creates an empty mailbox.
func NewReloads() *Reloads {
	return &Reloads{}
}

// Offer stores cfg, replacing any config not yet taken.
func (r *Reloads) Offer(cfg *config.Config) {
	r.mu.Lock()
	r.pending = cfg
	r.mu.Unlock()
}

// Take returns the pending config, if any, and clears it.
func (r *Reloads) Take() (*config.Config, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg := r.pending
	r.pending = nil
	return cfg, cfg != nil
}
