package schedule

import (
	"context"
	"testing"
	"time"
)

func TestJobDetailDefaultOptions(t *testing.T) {
	job := NewFunctionJob(NewJobKey("detailed"), func(context.Context) (int, error) { return 0, nil })
	jd := NewJobDetail(job, job.key)

	if jd.Job() != job {
		t.Fatalf("Job() returned a different job")
	}
	opts := jd.Options()
	if opts.MaxRetries != 0 || opts.RetryInterval != time.Second || opts.Replace || opts.Suspended {
		t.Fatalf("unexpected default options: %+v", opts)
	}
}

func TestJobDetailWithOptions(t *testing.T) {
	job := NewFunctionJob(NewJobKey("retrying"), func(context.Context) (int, error) { return 0, nil })
	opts := JobDetailOptions{MaxRetries: 3, RetryInterval: 5 * time.Second, Replace: true}
	jd := NewJobDetailWithOptions(job, job.key, opts)

	if jd.Options().MaxRetries != 3 {
		t.Fatalf("MaxRetries = %d, want 3", jd.Options().MaxRetries)
	}
	if jd.JobKey() != job.key {
		t.Fatalf("JobKey() mismatch")
	}
}
