package poller

import (
	"context"
	"time"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/logger"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/notifier"
)

// CampgroundResolver maps a park name to candidate campgrounds. Upstream
// failures are recovered inside the resolver; an empty slice means nothing
// was found this attempt.
type CampgroundResolver interface {
	Resolve(ctx context.Context, parkName string) []campsite.Campground
}

// AvailabilityChecker returns the sites available at a campground on the
// target date. Upstream failures are recovered inside the checker.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, campgroundID string, date time.Time) []campsite.Site
}

// Config holds the parameters of one poll invocation
type Config struct {
	ParkName    string
	Date        time.Time
	Interval    time.Duration
	MaxAttempts int
}

// Engine runs the polling loop. It owns the attempt counter for the
// lifetime of one Poll call; the resolver, checker, and notifier are
// stateless collaborators.
type Engine struct {
	resolver CampgroundResolver
	checker  AvailabilityChecker
	notifier notifier.Notifier // nil when no notification was requested
}

// New creates an Engine. notif may be nil, in which case hits are reported
// only through the returned PollResult.
func New(resolver CampgroundResolver, checker AvailabilityChecker, notif notifier.Notifier) *Engine {
	return &Engine{
		resolver: resolver,
		checker:  checker,
		notifier: notif,
	}
}

// Poll scans the park's campgrounds for availability on cfg.Date, once per
// attempt, until a campground has open sites or cfg.MaxAttempts attempts
// are used up. The first campground with a non-empty site list wins;
// later campgrounds in that attempt are never queried. Between attempts
// the engine waits cfg.Interval, but never after the final attempt.
//
// Poll returns (nil, nil) when all attempts are exhausted without a hit,
// and ctx.Err() if the context is cancelled mid-wait. cfg.MaxAttempts <= 0
// is a degenerate but valid configuration: no query is issued.
func (e *Engine) Poll(ctx context.Context, cfg Config) (*campsite.PollResult, error) {
	logger.Info("Starting polling", logger.Fields{
		"park": cfg.ParkName,
		"date": cfg.Date.Format(campsite.DateFormat),
	})

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		logger.Info("Polling attempt", logger.Fields{
			"attempt":      attempt + 1,
			"max_attempts": cfg.MaxAttempts,
		})
		logger.IncrCounter("poll.attempts")

		if result := e.scan(ctx, cfg); result != nil {
			return result, nil
		}

		// wait only when another attempt will follow
		if attempt+1 < cfg.MaxAttempts {
			logger.Info("No availability found, waiting for next attempt", logger.Fields{
				"interval": cfg.Interval.String(),
			})
			if err := wait(ctx, cfg.Interval); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Maximum polling attempts reached, no availability found", logger.Fields{
		"park":         cfg.ParkName,
		"date":         cfg.Date.Format(campsite.DateFormat),
		"max_attempts": cfg.MaxAttempts,
	})
	return nil, nil
}

// scan runs one attempt: resolve campgrounds and check each in resolver
// order, stopping at the first one with open sites
func (e *Engine) scan(ctx context.Context, cfg Config) *campsite.PollResult {
	campgrounds := e.resolver.Resolve(ctx, cfg.ParkName)

	for _, cg := range campgrounds {
		sites := e.checker.CheckAvailability(ctx, cg.ID, cfg.Date)
		if len(sites) == 0 {
			continue
		}

		logger.Info("Found available sites", logger.Fields{
			"campground": cg.Name,
			"count":      len(sites),
		})

		if e.notifier != nil {
			// delivery failure is a side effect only, the result stands
			e.notifier.Notify(cg.Name, sites, cfg.Date)
		}

		return &campsite.PollResult{
			Campground: cg.Name,
			Date:       cfg.Date.Format(campsite.DateFormat),
			Sites:      sites,
		}
	}

	return nil
}

// wait blocks for d or until ctx is cancelled, whichever comes first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
