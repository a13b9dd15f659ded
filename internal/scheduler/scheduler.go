// Package scheduler drives the periodic jobs: feed refresh and history
// pruning.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/alts-fund-link/fundlink/internal/feed"
)

// historyRetention bounds how much recorder history is kept.
const historyRetention = 365 * 24 * time.Hour

// Pruner is implemented by recorders that support history pruning.
type Pruner interface {
	Prune(before time.Time) error
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron   *cron.Cron
	Feed   *feed.Service
	Pruner Pruner // may be nil
	Ctx    context.Context
	log    zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *feed.Service, pruner Pruner, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Feed:   svc,
		Pruner: pruner,
		Ctx:    ctx,
		log:    log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the refresh and maintenance tasks.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	// History pruning: daily at 03:30.
	if _, err := s.Cron.AddFunc("0 30 3 * * *", s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger /
// run-on-start).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	s.log.Info().Msg("running feed refresh")
	funds, err := s.Feed.Load(s.Ctx, true)
	if err != nil {
		// Stale cache stays in place; the next tick retries.
		s.log.Error().Err(err).Msg("feed refresh failed")
		return
	}
	s.log.Info().Int("funds", len(funds)).Msg("feed refresh complete")
}

func (s *Scheduler) pruneTask() {
	if s.Pruner == nil {
		return
	}
	cutoff := time.Now().Add(-historyRetention)
	if err := s.Pruner.Prune(cutoff); err != nil {
		s.log.Error().Err(err).Msg("history prune failed")
		return
	}
	s.log.Info().Time("cutoff", cutoff).Msg("history pruned")
}
