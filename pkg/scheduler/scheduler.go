// Package scheduler drives auto-persistence and replay consolidation. The
// learning core stays timer-free; this package owns the periodic "snapshot
// now" and batch-replay calls.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

//go:generate moq -out mocks/learner.go -pkg mocks -skip-ensure -fmt goimports . Learner
//go:generate moq -out mocks/model_store.go -pkg mocks -skip-ensure -fmt goimports . ModelStore
//go:generate moq -out mocks/snapshot_recorder.go -pkg mocks -skip-ensure -fmt goimports . SnapshotRecorder

// Learner interface for scheduler operations
type Learner interface {
	ExportModel() *domain.ModelSnapshot
	Replay() int
}

// ModelStore interface for snapshot persistence
type ModelStore interface {
	Save(ctx context.Context, snap *domain.ModelSnapshot) error
}

// SnapshotRecorder tracks when the model was last persisted, nil disables
// tracking
type SnapshotRecorder interface {
	RecordSnapshot(ctx context.Context, at time.Time) error
}

// Scheduler runs periodic model snapshots and replay passes
type Scheduler struct {
	learner        Learner
	store          ModelStore
	recorder       SnapshotRecorder
	interval       time.Duration
	replayInterval time.Duration

	snapshotCh chan struct{}
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	Interval       time.Duration
	ReplayInterval time.Duration
}

// NewScheduler creates a scheduler with defaults for zero intervals
func NewScheduler(learner Learner, store ModelStore, recorder SnapshotRecorder, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.ReplayInterval == 0 {
		cfg.ReplayInterval = 15 * time.Minute
	}
	return &Scheduler{
		learner:        learner,
		store:          store,
		recorder:       recorder,
		interval:       cfg.Interval,
		replayInterval: cfg.ReplayInterval,
		snapshotCh:     make(chan struct{}, 1),
	}
}

// Start begins the periodic workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.snapshotWorker(ctx)

	s.wg.Add(1)
	go s.replayWorker(ctx)

	lgr.Printf("[INFO] scheduler started, snapshot interval %v, replay interval %v", s.interval, s.replayInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Run starts the scheduler and blocks until the context is canceled
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start(ctx)
	<-ctx.Done()
	s.Stop()
	return nil
}

// TriggerSnapshot requests an out-of-band snapshot, coalescing with any
// already pending request
func (s *Scheduler) TriggerSnapshot() {
	select {
	case s.snapshotCh <- struct{}{}:
	default:
	}
}

func (s *Scheduler) snapshotWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// final snapshot on shutdown, best effort
			saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.snapshot(saveCtx); err != nil {
				lgr.Printf("[WARN] final snapshot failed: %v", err)
			}
			cancel()
			return
		case <-ticker.C:
			if err := s.snapshot(ctx); err != nil {
				lgr.Printf("[ERROR] periodic snapshot failed: %v", err)
			}
		case <-s.snapshotCh:
			if err := s.snapshot(ctx); err != nil {
				lgr.Printf("[ERROR] triggered snapshot failed: %v", err)
			}
		}
	}
}

// snapshot exports the model and saves it with retries on transient
// failures, SQLite lock contention mostly
func (s *Scheduler) snapshot(ctx context.Context) error {
	snap := s.learner.ExportModel()

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	if err := retrier.Do(ctx, func() error { return s.store.Save(ctx, snap) }); err != nil {
		return fmt.Errorf("save model snapshot: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordSnapshot(ctx, time.Now()); err != nil {
			lgr.Printf("[WARN] failed to record snapshot time: %v", err)
		}
	}

	lgr.Printf("[DEBUG] model snapshot saved, %d states", len(snap.Model.QTable))
	return nil
}

func (s *Scheduler) replayWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.replayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.learner.Replay(); n > 0 {
				lgr.Printf("[INFO] replay pass applied %d updates", n)
			}
		}
	}
}
