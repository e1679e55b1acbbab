// Package schedule dispatches Jobs against a cronit.Cronit-driven cron
// trigger: a priority queue orders scheduled jobs by next fire time, and a
// Scheduler's execution loop wakes up exactly when the earliest one is due.
package schedule

import (
	"context"
	"fmt"
	"hash/fnv"
)

// JobStatus is a Job's most recent execution outcome.
type JobStatus int8

const (
	// NA is a Job's initial status, before it has ever run.
	NA JobStatus = iota
	// OK indicates the Job completed successfully.
	OK
	// Failed indicates the Job returned an error.
	Failed
)

// Job is executed by a Scheduler when its associated Trigger fires.
type Job interface {
	// Execute runs the job. A non-nil error marks the run Failed but does
	// not remove the job from the scheduler; the trigger still reschedules
	// the next fire time.
	Execute(context.Context) error

	// Description is a human-readable identifier for logging.
	Description() string

	// Key uniquely identifies this job instance within a Scheduler.
	Key() int
}

const defaultGroup = "default"

// JobKey identifies a job by name and group; the pair is unique within a
// Scheduler. Two JobKeys with the same name/group produce the same Key().
type JobKey struct {
	name  string
	group string
}

// NewJobKey returns a JobKey in the default group.
func NewJobKey(name string) JobKey { return JobKey{name: name, group: defaultGroup} }

// NewJobKeyWithGroup returns a JobKey in the given group. An empty group
// falls back to the default group.
func NewJobKeyWithGroup(name, group string) JobKey {
	if group == "" {
		group = defaultGroup
	}
	return JobKey{name: name, group: group}
}

// String renders the key as "group/name".
func (k JobKey) String() string { return fmt.Sprintf("%s/%s", k.group, k.name) }

// Name returns the key's name.
func (k JobKey) Name() string { return k.name }

// Group returns the key's group.
func (k JobKey) Group() string { return k.group }

// hashCode returns a stable integer hash of s, used to derive a Job's Key
// from its JobKey without requiring callers to manage integer identifiers
// themselves.
func hashCode(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32())
}

// Function is an argument-less function returning a result and a possible
// error, the payload a FunctionJob wraps.
type Function[R any] func(context.Context) (R, error)

// FunctionJob adapts an arbitrary Function into a Job, recording the
// result, error, and status of its most recent execution.
type FunctionJob[R any] struct {
	key      JobKey
	desc     string
	function Function[R]

	Result *R
	Error  error
	Status JobStatus
}

var _ Job = (*FunctionJob[struct{}])(nil)

// NewFunctionJob returns a FunctionJob identified by key, wrapping fn.
func NewFunctionJob[R any](key JobKey, fn Function[R]) *FunctionJob[R] {
	return NewFunctionJobWithDesc(key, fmt.Sprintf("FunctionJob:%s", key), fn)
}

// NewFunctionJobWithDesc returns a FunctionJob with an explicit description.
func NewFunctionJobWithDesc[R any](key JobKey, desc string, fn Function[R]) *FunctionJob[R] {
	return &FunctionJob[R]{key: key, desc: desc, function: fn, Status: NA}
}

// Description returns the job's description.
func (f *FunctionJob[R]) Description() string { return f.desc }

// Key returns the hash of the job's JobKey.
func (f *FunctionJob[R]) Key() int { return hashCode(f.key.String()) }

// Execute invokes the wrapped function and records Result/Error/Status.
func (f *FunctionJob[R]) Execute(ctx context.Context) error {
	result, err := f.function(ctx)
	if err != nil {
		f.Status = Failed
		f.Result = nil
		f.Error = err
		return err
	}
	f.Status = OK
	f.Error = nil
	f.Result = &result
	return nil
}
