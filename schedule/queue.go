package schedule

import (
	"container/heap"
	"fmt"
	"time"
)

// ScheduledJob pairs a Job with the Trigger governing it and the time of
// its next run.
type ScheduledJob interface {
	Job() Job
	Trigger() Trigger
	NextRunTime() time.Time
}

type scheduledJob struct {
	job      Job
	trigger  Trigger
	priority time.Time
	index    int // maintained by container/heap
}

func (s *scheduledJob) Job() Job              { return s.job }
func (s *scheduledJob) Trigger() Trigger      { return s.trigger }
func (s *scheduledJob) NextRunTime() time.Time { return s.priority }

// priorityQueue implements heap.Interface over scheduledJob, ordered by
// earliest NextRunTime first.
type priorityQueue []*scheduledJob

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority.Before(pq[j].priority) }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*scheduledJob)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	item.index = -1
	*pq = old[:n-1]
	return item
}

// JobQueue orders ScheduledJobs by next run time. The in-memory
// implementation below is sufficient for a single-process scheduler; a
// distributed deployment would swap this for one backed by shared storage.
type JobQueue interface {
	Push(ScheduledJob) error
	Pop() (ScheduledJob, error)
	Head() (ScheduledJob, error)
	Remove(key int) (ScheduledJob, error)
	ScheduledJobs() []ScheduledJob
	Size() int
	Clear() error
}

type jobQueue struct {
	pq priorityQueue
}

var _ JobQueue = (*jobQueue)(nil)

func newJobQueue() *jobQueue {
	pq := make(priorityQueue, 0)
	heap.Init(&pq)
	return &jobQueue{pq: pq}
}

func (q *jobQueue) Push(sj ScheduledJob) error {
	item := &scheduledJob{job: sj.Job(), trigger: sj.Trigger(), priority: sj.NextRunTime()}
	heap.Push(&q.pq, item)
	return nil
}

func (q *jobQueue) Pop() (ScheduledJob, error) {
	if q.pq.Len() == 0 {
		return nil, fmt.Errorf("job queue is empty")
	}
	return heap.Pop(&q.pq).(*scheduledJob), nil
}

func (q *jobQueue) Head() (ScheduledJob, error) {
	if q.pq.Len() == 0 {
		return nil, fmt.Errorf("job queue is empty")
	}
	return q.pq[0], nil
}

func (q *jobQueue) Remove(key int) (ScheduledJob, error) {
	for i, item := range q.pq {
		if item.job.Key() == key {
			return heap.Remove(&q.pq, i).(*scheduledJob), nil
		}
	}
	return nil, fmt.Errorf("no job with key %d found", key)
}

func (q *jobQueue) ScheduledJobs() []ScheduledJob {
	out := make([]ScheduledJob, len(q.pq))
	for i, item := range q.pq {
		out[i] = item
	}
	return out
}

func (q *jobQueue) Size() int { return q.pq.Len() }

func (q *jobQueue) Clear() error {
	q.pq = q.pq[:0]
	return nil
}
