package adapter

import (
	"context"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// EmailQueueRepository is the persistent outbox the worker drains.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error
	// GetPendingJobs returns up to limit due jobs, oldest schedule first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)
	Update(ctx context.Context, job *entity.EmailJob) error
}
