package schedule

import "time"

// JobDetailOptions carries additional JobDetail properties describing retry
// and replacement policy. They are stored on the JobDetail only: the
// Scheduler in this package is given a Job and a Trigger and does not read
// them, so it does not retry, replace or suspend jobs.
type JobDetailOptions struct {
	// MaxRetries is the maximum number of retries before a failed execution
	// is abandoned. Default: 0.
	MaxRetries int

	// RetryInterval is the fixed delay between retry attempts.
	// Default: 1 second.
	RetryInterval time.Duration

	// Replace indicates whether scheduling this job should replace an
	// existing scheduled job sharing the same key. Default: false.
	Replace bool

	// Suspended marks the job as paused. Default: false.
	Suspended bool
}

// NewDefaultJobDetailOptions returns the default JobDetailOptions.
func NewDefaultJobDetailOptions() JobDetailOptions {
	return JobDetailOptions{
		MaxRetries:    0,
		RetryInterval: time.Second,
		Replace:       false,
		Suspended:     false,
	}
}

// JobDetail conveys a Job together with its identifying key and options.
type JobDetail struct {
	job  Job
	key  JobKey
	opts JobDetailOptions
}

// NewJobDetail returns a JobDetail with default options.
func NewJobDetail(job Job, key JobKey) *JobDetail {
	return NewJobDetailWithOptions(job, key, NewDefaultJobDetailOptions())
}

// NewJobDetailWithOptions returns a JobDetail configured as specified.
func NewJobDetailWithOptions(job Job, key JobKey, opts JobDetailOptions) *JobDetail {
	return &JobDetail{job: job, key: key, opts: opts}
}

// Job returns the wrapped Job.
func (jd *JobDetail) Job() Job { return jd.job }

// JobKey returns the job's key.
func (jd *JobDetail) JobKey() JobKey { return jd.key }

// Options returns the job's detail options.
func (jd *JobDetail) Options() JobDetailOptions { return jd.opts }
