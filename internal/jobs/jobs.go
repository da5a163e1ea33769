package jobs

import (
	"context"
	"time"

	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"
)

const (
	SweepSchedule       = "@every 15m"
	ActiveGaugeSchedule = "@every 5m"
	stagingMaxAge       = time.Hour
	activeGaugeTimeout  = 30 * time.Second
)

// Sweeper removes abandoned upload staging folders.
type Sweeper interface {
	SweepStale(now time.Time, maxAge time.Duration) (int, error)
}

// ActiveCounter counts active subscription mappings per tenant.
type ActiveCounter interface {
	CountActive(ctx context.Context, now time.Time) (map[string]int, error)
}

type Jobs struct {
	sweeper Sweeper
	counter ActiveCounter
	loc     *time.Location
	now     func() time.Time
}

func New(sweeper Sweeper, counter ActiveCounter, loc *time.Location) *Jobs {
	if loc == nil {
		loc = time.UTC
	}
	return &Jobs{
		sweeper: sweeper,
		counter: counter,
		loc:     loc,
		now:     time.Now,
	}
}

// SweepStaging drops staging folders left behind by requests that never
// promoted or rolled back their uploads.
func (j *Jobs) SweepStaging() {
	n, err := j.sweeper.SweepStale(j.now(), stagingMaxAge)
	if err != nil {
		logger.Error("staging sweep failed", "error", err, "removed", n)
		return
	}
	if n > 0 {
		logger.Info("staging sweep finished", "removed", n)
	}
}

func (j *Jobs) RefreshActiveSubscriptions() {
	ctx, cancel := context.WithTimeout(context.Background(), activeGaugeTimeout)
	defer cancel()

	counts, err := j.counter.CountActive(ctx, j.now().In(j.loc))
	if err != nil {
		logger.Error("failed to count active subscriptions", "error", err)
		return
	}
	metrics.SetActiveSubscriptions(counts)
	logger.Debug("active subscriptions gauge refreshed", "tenants", len(counts))
}
