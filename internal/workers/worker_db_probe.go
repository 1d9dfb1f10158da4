package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clinic/internal/logger"
)

// dbProbe pings the database every interval and forwards the result to its
// reporters. Only status changes are logged.
type dbProbe struct {
	db        Pinger
	reporters []HealthReporter
	interval  time.Duration

	serving bool
	logger  *logger.Logger
}

func NewDBProbe(db Pinger, interval time.Duration, logger *logger.Logger, reporters ...HealthReporter) Worker {
	return &dbProbe{
		db:        db,
		reporters: reporters,
		interval:  interval,
		serving:   true,
		logger:    logger,
	}
}

func (p *dbProbe) Run(ctx context.Context) {
	go p.loop(ctx)
}

func (p *dbProbe) loop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("db probe stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *dbProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.db.PingContext(pingCtx)
	serving := err == nil

	switch {
	case serving == p.serving:
	case serving:
		p.logger.Info().Msg("database is reachable again")
	default:
		p.logger.Error().Err(err).Msg("database is unreachable")
	}
	p.serving = serving

	for _, r := range p.reporters {
		r.SetServing(serving)
	}
}
