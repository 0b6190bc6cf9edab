package main

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const streakResetTimeout = time.Minute

// StreakResetter defines the profile operation run by the scheduler
type StreakResetter interface {
	// ResetStaleStreaks sets the streak of every profile inactive for more than one calendar day to 0
	ResetStaleStreaks(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the daily streak rollover on a cron schedule
type Scheduler struct {
	cron     *cron.Cron
	resetter StreakResetter
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler for the given standard cron expression
func NewScheduler(spec string, resetter StreakResetter, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		resetter: resetter,
		logger:   logger,
		now:      time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.resetStreaks); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Time("next_run", s.NextRun()))
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// NextRun returns the time of the next streak rollover, zero before Start
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// resetStreaks is the cron job body
func (s *Scheduler) resetStreaks() {
	ctx, cancel := context.WithTimeout(context.Background(), streakResetTimeout)
	defer cancel()

	reset, err := s.resetter.ResetStaleStreaks(ctx, s.now())
	if err != nil {
		s.logger.Error("Failed to reset stale streaks", zap.Error(err))
		return
	}
	s.logger.Info("Streak rollover finished", zap.Int("reset", reset))
}
