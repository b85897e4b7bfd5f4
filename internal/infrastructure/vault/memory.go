package vault

import (
	"context"
	"sync"

	"github.com/trackeo/trackeo-web/internal/core/ports"
)

// MemoryVault is the fallback when Redis is not configured or unreachable.
// Preferences survive for the process lifetime only.
type MemoryVault struct {
	mu    sync.RWMutex
	prefs map[string]ports.Preferences
}

func NewMemoryVault() *MemoryVault {
	return &MemoryVault{prefs: make(map[string]ports.Preferences)}
}

func (v *MemoryVault) Load(_ context.Context, visitorID string) ports.Preferences {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.prefs[visitorID]
}

func (v *MemoryVault) Save(_ context.Context, visitorID string, prefs ports.Preferences) {
	if visitorID == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.prefs[visitorID] = prefs
}

var _ ports.PreferenceVault = (*MemoryVault)(nil)
