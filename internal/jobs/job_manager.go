package jobs

import (
	"context"
	"fmt"
)

// Job is a background task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []Job
}

// NewJobManager creates a job manager. Jobs start in the given order and stop in reverse.
func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all jobs. When one fails to start, the jobs already
// started are stopped.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops all jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}

// ConsumerJob runs a blocking consumer loop in its own goroutine.
type ConsumerJob struct {
	run    func(ctx context.Context) error
	cancel context.CancelFunc
	done   chan error
}

// NewConsumerJob wraps run, which must return once its context is cancelled.
func NewConsumerJob(run func(ctx context.Context) error) *ConsumerJob {
	return &ConsumerJob{run: run}
}

func (j *ConsumerJob) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan error, 1)
	go func() {
		j.done <- j.run(ctx)
	}()
	return nil
}

func (j *ConsumerJob) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
	j.cancel = nil
}
