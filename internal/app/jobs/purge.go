package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const purgeTimeout = 2 * time.Minute

// Purger deletes events dated before today
type Purger interface {
	PurgePastEvents(ctx context.Context) (int64, error)
}

// PurgeScheduler runs the stale-event purge on a cron schedule, in addition to the purge done on listing
type PurgeScheduler struct {
	cron    *cron.Cron
	purger  Purger
	logger  zerolog.Logger
	enabled bool
}

// NewPurgeScheduler registers the purge job. An empty schedule returns a disabled scheduler.
func NewPurgeScheduler(schedule string, purger Purger, logger zerolog.Logger) (*PurgeScheduler, error) {
	cronLogger := cronLogAdapter{logger: logger}
	s := &PurgeScheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)), cron.WithLogger(cronLogger)),
		purger: purger,
		logger: logger,
	}

	if schedule == "" {
		logger.Info().Msg("Purge schedule empty, background purge disabled")
		return s, nil
	}

	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	s.enabled = true
	return s, nil
}

// Run executes a single purge
func (s *PurgeScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	purged, err := s.purger.PurgePastEvents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Scheduled purge failed")
		return
	}
	s.logger.Debug().Int64("purged", purged).Msg("Scheduled purge finished")
}

// Enabled reports whether a schedule was registered
func (s *PurgeScheduler) Enabled() bool {
	return s.enabled
}

// Start begins running the schedule in the background
func (s *PurgeScheduler) Start() {
	if !s.enabled {
		return
	}
	s.cron.Start()
	s.logger.Info().Msg("Background purge started")
}

// Stop stops the schedule and waits for a running purge to finish or ctx to expire
func (s *PurgeScheduler) Stop(ctx context.Context) {
	if !s.enabled {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn().Msg("Timed out waiting for running purge")
	}
}

// cronLogAdapter sends cron's own logging through zerolog
type cronLogAdapter struct {
	logger zerolog.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
