package store

import (
	"context"
	"errors"

	"bankocr/internal/platform/store/ch"
)

// chConn is the part of *ch.CH the adapter needs
type chConn interface {
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}

var _ chConn = (*ch.CH)(nil)

func newCHAdapter(c chConn) Clickhouse { return &clickhouseAdapter{inner: c} }

type clickhouseAdapter struct {
	inner chConn
}

func (a *clickhouseAdapter) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if table == "" {
		return errors.New("store: clickhouse insert needs a table")
	}
	return a.inner.Insert(ctx, table, columns, rows)
}

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

func (a *clickhouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }
