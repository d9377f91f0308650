package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dtroode/habiro-server/internal/logger"
)

const DefaultSchedule = "@every 5m"

// Refreshable is a job that recomputes cached state.
type Refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher runs a Refreshable on a cron schedule. At most one run is in
// flight at a time, including the one triggered by Start.
type Refresher struct {
	cron    *cron.Cron
	job     Refreshable
	timeout time.Duration
	running sync.Mutex
	initial sync.WaitGroup
	logger  *logger.Logger
}

// NewRefresher schedules job. An empty schedule uses DefaultSchedule.
func NewRefresher(job Refreshable, schedule string, loc *time.Location, timeout time.Duration, logger *logger.Logger) (*Refresher, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	r := &Refresher{
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		job:     job,
		timeout: timeout,
		logger:  logger,
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("failed to schedule refresh %q: %w", schedule, err)
	}

	return r, nil
}

func (r *Refresher) run() {
	if !r.running.TryLock() {
		r.logger.Debug("Refresher: previous run still in progress, skipping")
		return
	}
	defer r.running.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.job.Refresh(ctx); err != nil {
		r.logger.Error("Refresher: refresh failed", "error", err)
		return
	}
	r.logger.Debug("Refresher: refresh completed")
}

// Start runs the job once and then on schedule.
func (r *Refresher) Start() {
	r.initial.Add(1)
	go func() {
		defer r.initial.Done()
		r.run()
	}()
	r.cron.Start()
}

// Stop halts the schedule and waits for a running job until ctx is done.
func (r *Refresher) Stop(ctx context.Context) {
	scheduled := r.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-scheduled.Done()
		r.initial.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
