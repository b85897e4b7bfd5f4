package ports

import (
	"context"

	"github.com/trackeo/trackeo-web/internal/core/domain"
)

// Preferences is the per-visitor state the original client kept in browser
// localStorage: the auth token with its expiry and tier, and the UI locale.
type Preferences struct {
	Token  domain.AuthToken
	Locale string
}

// PreferenceVault persists visitor preferences keyed by visitor id.
//
// The contract is best-effort on both sides: implementations swallow storage
// failures (a vault miss degrades to defaults, never to an error page), so
// neither method returns an error.
type PreferenceVault interface {
	Load(ctx context.Context, visitorID string) Preferences
	Save(ctx context.Context, visitorID string, prefs Preferences)
}
