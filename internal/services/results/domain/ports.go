package domain

import (
	"context"

	"github.com/google/uuid"
)

// WriterPort stores results
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []ResultWrite) error
}

// QueryPort reads stored results
type QueryPort interface {
	ListByBatch(ctx context.Context, f Filters, after AfterKey, limit int) (rows []Result, next AfterKey, err error)
	CountByDisposition(ctx context.Context, batchID uuid.UUID) ([]DispositionCount, error)
}
