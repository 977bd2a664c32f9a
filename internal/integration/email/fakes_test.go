package email

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// fakeEmailQueue is an in-memory adapter.EmailQueueRepository.
type fakeEmailQueue struct {
	jobs       map[uuid.UUID]*entity.EmailJob
	failCreate error
	failUpdate error
}

func newFakeEmailQueue() *fakeEmailQueue {
	return &fakeEmailQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	if q.failCreate != nil {
		return q.failCreate
	}
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	pending := make([]*entity.EmailJob, 0, len(q.jobs))
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(time.Now().UTC()) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeEmailQueue) Update(_ context.Context, job *entity.EmailJob) error {
	if q.failUpdate != nil {
		return q.failUpdate
	}
	if _, ok := q.jobs[job.ID]; !ok {
		return errors.New("job not found")
	}
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeEmailQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return job, nil
}

func (q *fakeEmailQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

var _ adapter.EmailQueueRepository = (*fakeEmailQueue)(nil)
