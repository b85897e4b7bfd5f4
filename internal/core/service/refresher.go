package service

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const refreshInterval = 5 * time.Minute

// Refresher re-fetches the athlete, event, and roster collections on a fixed
// interval so the store stays warm between page loads. Fetch failures are
// already absorbed by the catalog's fallback path, so a refresh never needs
// to retry on its own.
type Refresher struct {
	catalog  *CatalogService
	clock    clockwork.Clock
	logger   zerolog.Logger
	interval time.Duration
}

func NewRefresher(catalog *CatalogService, clock clockwork.Clock, logger zerolog.Logger) *Refresher {
	return &Refresher{
		catalog:  catalog,
		clock:    clock,
		logger:   logger,
		interval: refreshInterval,
	}
}

// Run refreshes until ctx is cancelled. The first refresh happens
// immediately so the store is populated before the first request.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if _, err := r.catalog.LoadAthletes(ctx); err != nil {
		r.logger.Debug().Err(err).Msg("background athlete refresh failed")
	}
	if _, err := r.catalog.LoadEvents(ctx); err != nil {
		r.logger.Debug().Err(err).Msg("background event refresh failed")
	}
	if _, err := r.catalog.LoadRosters(ctx); err != nil {
		r.logger.Debug().Err(err).Msg("background roster refresh failed")
	}
}
