// Package service provides the results service: Postgres is the system of record and
// ClickHouse, when configured, receives a copy of every write
package service

import (
	"context"

	"bankocr/internal/modkit/repokit"
	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/logger"
	dom "bankocr/internal/services/results/domain"
	"bankocr/internal/services/results/repo"

	"github.com/google/uuid"
)

// Config for the results service
type Config struct {
	HardLimit int
}

// Analytics is the optional append-only copy
type Analytics interface {
	EnsureSchema(ctx context.Context) error
	WriteBatch(ctx context.Context, xs []dom.ResultWrite) error
}

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	CH     Analytics
	Cfg    Config
}

// New constructs a results service; db may be nil, in which case every call
// reports the store as unavailable
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], ch Analytics, cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{DB: db, Binder: binder, CH: ch, Cfg: cfg}
}

// Enabled reports whether a Postgres store is wired
func (s *Service) Enabled() bool { return s != nil && s.DB != nil }

func (s *Service) storage() (repo.Storage, error) {
	if !s.Enabled() {
		return nil, perr.Unavailablef("results store is not configured")
	}
	return repokit.MustBind(s.Binder, s.DB), nil
}

// EnsureSchema applies the Postgres and ClickHouse DDL
func (s *Service) EnsureSchema(ctx context.Context) error {
	st, err := s.storage()
	if err != nil {
		return err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		return perr.FromPostgres(err, "results: ensure schema")
	}
	if s.CH != nil {
		if err := s.CH.EnsureSchema(ctx); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "results: ensure clickhouse schema")
		}
	}
	return nil
}

// WriteBatch implements domain.WriterPort
// the Postgres write is transactional; a failed ClickHouse append is logged and dropped
func (s *Service) WriteBatch(ctx context.Context, xs []dom.ResultWrite) error {
	if len(xs) == 0 {
		return nil
	}
	if !s.Enabled() {
		return perr.Unavailablef("results store is not configured")
	}
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		return repokit.MustBind(s.Binder, q).WriteBatch(ctx, xs)
	})
	if err != nil {
		return perr.FromPostgres(err, "results: write batch")
	}
	if s.CH != nil {
		if err := s.CH.WriteBatch(ctx, xs); err != nil {
			logger.C(ctx).Warn().Err(err).Int("rows", len(xs)).Msg("clickhouse append failed")
		}
	}
	return nil
}

// ListByBatch implements domain.QueryPort
func (s *Service) ListByBatch(
	ctx context.Context,
	f dom.Filters,
	after dom.AfterKey,
	limit int,
) ([]dom.Result, dom.AfterKey, error) {
	if f.BatchID == uuid.Nil {
		return nil, dom.AfterKey{}, perr.WithField(perr.InvalidArgf("batch id is required"), "batch_id")
	}
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	st, err := s.storage()
	if err != nil {
		return nil, dom.AfterKey{}, err
	}
	rows, next, err := st.ListByBatch(ctx, f, after, limit)
	if err != nil {
		return nil, dom.AfterKey{}, perr.FromPostgres(err, "results: list batch")
	}
	return rows, next, nil
}

// CountByDisposition implements domain.QueryPort
func (s *Service) CountByDisposition(ctx context.Context, batchID uuid.UUID) ([]dom.DispositionCount, error) {
	if batchID == uuid.Nil {
		return nil, perr.WithField(perr.InvalidArgf("batch id is required"), "batch_id")
	}
	st, err := s.storage()
	if err != nil {
		return nil, err
	}
	out, err := st.CountByDisposition(ctx, batchID)
	if err != nil {
		return nil, perr.FromPostgres(err, "results: count batch")
	}
	return out, nil
}
