package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/calendar-go/cronit/schedule/logger"
)

// Scheduler orchestrates Jobs: it executes each one when its Trigger fires,
// then reschedules it for the Trigger's next fire time.
type Scheduler interface {
	// Start runs the scheduler until Stop is called or ctx is canceled.
	Start(context.Context)

	// IsStarted reports whether Start has been called and Stop has not.
	IsStarted() bool

	// ScheduleJob enqueues job under trigger.
	ScheduleJob(ctx context.Context, job Job, trigger Trigger) error

	// GetJobKeys returns the keys of all scheduled jobs.
	GetJobKeys() []int

	// GetScheduledJob returns the scheduled job with the given key.
	GetScheduledJob(key int) (ScheduledJob, error)

	// DeleteJob removes the job with the given key.
	DeleteJob(ctx context.Context, key int) error

	// Clear removes every scheduled job.
	Clear() error

	// Wait blocks until the scheduler stops and all running jobs return,
	// or ctx expires first.
	Wait(ctx context.Context)

	// Stop shuts the scheduler down.
	Stop()
}

// Options configures a Scheduler's execution behavior.
type Options struct {
	// BlockingExecution, when true, runs each job synchronously on the
	// execution loop goroutine, so no two jobs (of any kind) ever overlap.
	BlockingExecution bool

	// WorkerLimit, when > 0, dispatches jobs to a bounded pool of this
	// many goroutines, managed by an errgroup.Group. Ignored when
	// BlockingExecution is set.
	WorkerLimit int

	// OutdatedThreshold is how late a job's fire time may be (relative to
	// now) before it is skipped as outdated rather than executed.
	OutdatedThreshold time.Duration
}

// NewDefaultOptions returns the default scheduler Options: non-blocking,
// unbounded goroutine dispatch, 100ms outdated threshold.
func NewDefaultOptions() Options {
	return Options{OutdatedThreshold: 100 * time.Millisecond}
}

// stdScheduler is the in-memory Scheduler implementation, grounded on a
// single execution-loop goroutine that wakes via a timer set to the
// queue's earliest fire time.
type stdScheduler struct {
	mu        sync.Mutex
	wg        sync.WaitGroup
	queue     JobQueue
	interrupt chan struct{}
	feeder    chan ScheduledJob
	dispatch  chan ScheduledJob
	cancel    context.CancelFunc
	started   bool
	opts      Options
	log       logger.Logger
}

var _ Scheduler = (*stdScheduler)(nil)

// NewScheduler returns a new Scheduler with the given options. A nil
// logger falls back to logger.Default().
func NewScheduler(opts Options, log logger.Logger) Scheduler {
	if log == nil {
		log = logger.Default()
	}
	return &stdScheduler{
		queue:     newJobQueue(),
		interrupt: make(chan struct{}, 1),
		feeder:    make(chan ScheduledJob),
		dispatch:  make(chan ScheduledJob),
		opts:      opts,
		log:       log,
	}
}

func (s *stdScheduler) ScheduleJob(ctx context.Context, job Job, trigger Trigger) error {
	nextRunTime, ok := trigger.NextFireTime(time.Now())
	if !ok {
		return fmt.Errorf("trigger %s has no fire time", trigger.Description())
	}
	select {
	case s.feeder <- &scheduledJob{job: job, trigger: trigger, priority: nextRunTime}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stdScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.log.Info("scheduler already running")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	go func() { <-ctx.Done(); s.Stop() }()

	s.wg.Add(1)
	go s.runFeedReader(ctx)

	s.wg.Add(1)
	go s.runExecutionLoop(ctx)

	s.startWorkers(ctx)
	s.started = true
}

func (s *stdScheduler) startWorkers(ctx context.Context) {
	if s.opts.WorkerLimit <= 0 {
		return
	}
	s.log.Debug("starting scheduler worker pool", "size", s.opts.WorkerLimit)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.WorkerLimit)
		for {
			select {
			case <-ctx.Done():
				_ = g.Wait()
				return
			case scheduled := <-s.dispatch:
				sj := scheduled
				g.Go(func() error {
					s.runJob(gctx, sj)
					return nil
				})
			}
		}
	}()
}

func (s *stdScheduler) Wait(ctx context.Context) {
	sig := make(chan struct{})
	go func() { defer close(sig); s.wg.Wait() }()
	select {
	case <-ctx.Done():
	case <-sig:
	}
}

func (s *stdScheduler) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *stdScheduler) GetJobKeys() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]int, 0, s.queue.Size())
	for _, sj := range s.queue.ScheduledJobs() {
		keys = append(keys, sj.Job().Key())
	}
	return keys
}

func (s *stdScheduler) GetScheduledJob(key int) (ScheduledJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sj := range s.queue.ScheduledJobs() {
		if sj.Job().Key() == key {
			return sj, nil
		}
	}
	return nil, fmt.Errorf("no job with key %d found", key)
}

func (s *stdScheduler) DeleteJob(ctx context.Context, key int) error {
	s.mu.Lock()
	_, err := s.queue.Remove(key)
	s.mu.Unlock()
	if err == nil {
		s.wakeLoop(ctx)
	}
	return err
}

func (s *stdScheduler) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Clear()
}

func (s *stdScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.log.Info("stopping scheduler")
	s.cancel()
	s.started = false
}

func (s *stdScheduler) wakeLoop(ctx context.Context) {
	select {
	case s.interrupt <- struct{}{}:
	case <-ctx.Done():
	default:
	}
}

func (s *stdScheduler) runFeedReader(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case scheduled := <-s.feeder:
			s.mu.Lock()
			if err := s.queue.Push(scheduled); err != nil {
				s.log.Error("failed to enqueue job", "error", err)
			}
			s.mu.Unlock()
			s.wakeLoop(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *stdScheduler) runExecutionLoop(ctx context.Context) {
	defer s.wg.Done()
	for {
		if s.queueLen() == 0 {
			select {
			case <-s.interrupt:
			case <-ctx.Done():
				return
			}
			continue
		}
		t := time.NewTimer(s.calculateNextTick())
		select {
		case <-t.C:
			s.executeAndReschedule(ctx)
		case <-s.interrupt:
			t.Stop()
		case <-ctx.Done():
			t.Stop()
			return
		}
	}
}

func (s *stdScheduler) queueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Size()
}

func (s *stdScheduler) calculateNextTick() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	head, err := s.queue.Head()
	if err != nil {
		return s.opts.OutdatedThreshold
	}
	d := head.NextRunTime().Sub(time.Now())
	if d < 0 {
		return 0
	}
	return d
}

func (s *stdScheduler) executeAndReschedule(ctx context.Context) {
	s.mu.Lock()
	scheduled, err := s.queue.Pop()
	s.mu.Unlock()
	if err != nil {
		return
	}

	if !scheduled.NextRunTime().After(time.Now()) {
		if s.jobIsUpToDate(scheduled) {
			s.dispatchJob(ctx, scheduled)
		} else {
			s.log.Debug("job skipped as outdated", "job", scheduled.Job().Description())
		}
	}

	s.rescheduleJob(ctx, scheduled)
}

func (s *stdScheduler) dispatchJob(ctx context.Context, scheduled ScheduledJob) {
	switch {
	case s.opts.BlockingExecution:
		s.runJob(ctx, scheduled)
	case s.opts.WorkerLimit > 0:
		select {
		case s.dispatch <- scheduled:
		case <-ctx.Done():
		}
	default:
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runJob(ctx, scheduled)
		}()
	}
}

func (s *stdScheduler) runJob(ctx context.Context, scheduled ScheduledJob) {
	if err := scheduled.Job().Execute(ctx); err != nil {
		s.log.Error("job execution failed", "job", scheduled.Job().Description(), "error", err)
	}
}

func (s *stdScheduler) jobIsUpToDate(scheduled ScheduledJob) bool {
	return scheduled.NextRunTime().After(time.Now().Add(-s.opts.OutdatedThreshold))
}

func (s *stdScheduler) rescheduleJob(ctx context.Context, scheduled ScheduledJob) {
	next, ok := scheduled.Trigger().NextFireTime(scheduled.NextRunTime())
	if !ok {
		s.log.Info("job has no further fire time", "job", scheduled.Job().Description())
		return
	}
	select {
	case s.feeder <- &scheduledJob{job: scheduled.Job(), trigger: scheduled.Trigger(), priority: next}:
	case <-ctx.Done():
	}
}
