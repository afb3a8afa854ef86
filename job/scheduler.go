package job

import (
	"context"
	"rss-reader/utils/logger"
	"sync"
	"time"
)

// Job is a periodic background task.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs registered jobs until its context is cancelled.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{}
}

func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every job in its own goroutine. A job runs once right away
// and then on each tick of its interval.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}
}

func (s *JobScheduler) runJob(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.executeJob(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, j)
		}
	}
}

func (s *JobScheduler) executeJob(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	ctx = logger.WithOperation(ctx, j.Name)
	jobCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	jobLogger := logger.NewContextLogger(logger.Logger)
	started := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		jobLogger.LogError(ctx, j.Name, err)
		return
	}
	jobLogger.LogDuration(ctx, j.Name, time.Since(started))
}

// Shutdown blocks until all running jobs return.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
