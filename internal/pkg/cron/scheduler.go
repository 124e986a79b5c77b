// Package cron runs in-process background jobs for the attendance service.
// Jobs either tick on a fixed interval or fire once per day at a given local
// hour, which is how the nightly reporting work is scheduled.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one registered background task. Interval jobs run immediately and
// then on every tick; daily jobs wait for the next occurrence of their hour.
type Job struct {
	Name string
	Fn   func(ctx context.Context) error

	interval time.Duration
	hour     int
	daily    bool
}

// Scheduler owns the goroutines behind all registered jobs.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers fn to run on a fixed interval, with an immediate first run.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Fn: fn, interval: interval})
	slog.Info("cron job registered", "name", name, "interval", interval)
}

// AddDailyJob registers fn to run once per day at the given local hour.
func (s *Scheduler) AddDailyJob(name string, hour int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Fn: fn, hour: hour, daily: true})
	slog.Info("cron job registered", "name", name, "daily_at_hour", hour)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.run(job)
	}

	slog.Info("cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	slog.Info("stopping cron scheduler")
	s.cancel()
	s.wg.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) run(job Job) {
	defer s.wg.Done()

	if job.daily {
		s.runDaily(job)
		return
	}

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	s.execute(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.execute(job)
		}
	}
}

func (s *Scheduler) runDaily(job Job) {
	for {
		timer := time.NewTimer(untilNextRun(time.Now(), job.hour))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.execute(job)
		}
	}
}

// untilNextRun returns the wait before the next occurrence of hour in now's
// location. A run scheduled exactly at now still waits a full day, so a job
// never fires twice for the same occurrence.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (s *Scheduler) execute(job Job) {
	start := time.Now()
	slog.Debug("cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce invokes every registered job a single time, regardless of its
// schedule. Used by tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("cron job failed", "name", job.Name, "error", err)
		}
	}
}
