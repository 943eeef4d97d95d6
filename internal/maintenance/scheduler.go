// Package maintenance runs periodic engine housekeeping.
package maintenance

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Checkpointer merges pending writes into the main store file.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// Status describes the scheduler state
type Status struct {
	Running        bool       `json:"running"`
	Schedule       string     `json:"schedule,omitempty"`
	LastCheckpoint *time.Time `json:"last_checkpoint,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	NextCheckpoint *time.Time `json:"next_checkpoint,omitempty"`
}

// Scheduler checkpoints the store on a cron schedule
type Scheduler struct {
	store       Checkpointer
	timeout     time.Duration
	cron        *cron.Cron
	cronEntryID cron.EntryID
	schedule    string
	running     bool
	lastRun     *time.Time
	lastErr     error
	mu          sync.RWMutex
}

// NewScheduler creates a scheduler for store. timeout bounds each checkpoint.
func NewScheduler(store Checkpointer, timeout time.Duration) *Scheduler {
	return &Scheduler{
		store:   store,
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Start registers schedule and starts the cron runner. An empty schedule
// leaves the scheduler stopped and reports false.
func (s *Scheduler) Start(schedule string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule == "" {
		return false, nil
	}
	if s.running {
		return true, nil
	}

	id, err := s.cron.AddFunc(schedule, s.scheduledRun)
	if err != nil {
		return false, err
	}

	s.cronEntryID = id
	s.schedule = schedule
	s.cron.Start()
	s.running = true

	log.Info().Str("schedule", schedule).Msg("Checkpoint scheduler started")
	return true, nil
}

// Stop stops the cron runner and waits for an in-flight checkpoint
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cron.Remove(s.cronEntryID)
	s.cronEntryID = 0
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()

	log.Info().Msg("Checkpoint scheduler stopped")
}

// Status returns the current scheduler status
func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		Running:        s.running,
		Schedule:       s.schedule,
		LastCheckpoint: s.lastRun,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}

	if s.cronEntryID != 0 {
		entry := s.cron.Entry(s.cronEntryID)
		if !entry.Next.IsZero() {
			status.NextCheckpoint = &entry.Next
		}
	}

	return status
}

// RunNow checkpoints immediately and records the outcome
func (s *Scheduler) RunNow(ctx context.Context) error {
	start := time.Now()
	err := s.store.Checkpoint(ctx)

	s.mu.Lock()
	s.lastRun = &start
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		return err
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("Checkpoint complete")
	return nil
}

// scheduledRun is called by cron
func (s *Scheduler) scheduledRun() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.RunNow(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduled checkpoint failed")
	}
}
