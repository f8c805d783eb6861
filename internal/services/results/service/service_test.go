package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankocr/internal/core/classify"
	"bankocr/internal/core/decoder"
	"bankocr/internal/modkit/repokit"
	perr "bankocr/internal/platform/errors"
	kit "bankocr/internal/platform/testkit"
	dom "bankocr/internal/services/results/domain"
	"bankocr/internal/services/results/repo"
	scan "bankocr/internal/services/scan/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeStorage struct {
	writes   [][]dom.ResultWrite
	limit    int
	schema   int
	err      error
	counts   []dom.DispositionCount
	lastFilt dom.Filters
}

func (f *fakeStorage) EnsureSchema(context.Context) error { f.schema++; return f.err }
func (f *fakeStorage) WriteBatch(_ context.Context, xs []dom.ResultWrite) error {
	f.writes = append(f.writes, xs)
	return f.err
}
func (f *fakeStorage) ListByBatch(_ context.Context, fl dom.Filters, _ dom.AfterKey, limit int) ([]dom.Result, dom.AfterKey, error) {
	f.limit, f.lastFilt = limit, fl
	return []dom.Result{{BatchID: fl.BatchID}}, dom.AfterKey{Position: 0, Set: true}, f.err
}
func (f *fakeStorage) CountByDisposition(context.Context, uuid.UUID) ([]dom.DispositionCount, error) {
	return f.counts, f.err
}

// fakeTx runs fn inline on a nil Queryer; the binder ignores it
type fakeTx struct {
	repokit.Queryer
	txs int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

type fakeCH struct {
	writes int
	err    error
}

func (f *fakeCH) EnsureSchema(context.Context) error { return f.err }
func (f *fakeCH) WriteBatch(context.Context, []dom.ResultWrite) error {
	f.writes++
	return f.err
}

func newSvc(st *fakeStorage, ch Analytics, limit int) (*Service, *fakeTx) {
	tx := &fakeTx{}
	b := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return New(tx, b, ch, Config{HardLimit: limit}), tx
}

func TestWriteBatch_PGThenCH(t *testing.T) {
	st, ch := &fakeStorage{}, &fakeCH{}
	s, tx := newSvc(st, ch, 0)
	if err := s.WriteBatch(context.Background(), []dom.ResultWrite{{Position: 1}}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if tx.txs != 1 || len(st.writes) != 1 || ch.writes != 1 {
		t.Fatalf("tx=%d pg=%d ch=%d", tx.txs, len(st.writes), ch.writes)
	}

	// clickhouse failures do not fail the write
	ch.err = errors.New("ch down")
	if err := s.WriteBatch(context.Background(), []dom.ResultWrite{{Position: 2}}); err != nil {
		t.Fatalf("ch failure leaked: %v", err)
	}

	if err := s.WriteBatch(context.Background(), nil); err != nil || tx.txs != 2 {
		t.Fatalf("empty write should be a no-op")
	}
}

func TestWriteBatch_MapsPostgresErrors(t *testing.T) {
	st := &fakeStorage{err: &pgconn.PgError{Code: "23505", Message: "duplicate"}}
	s, _ := newSvc(st, nil, 0)
	err := s.WriteBatch(context.Background(), []dom.ResultWrite{{}})
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("want duplicate key, got %v (%v)", err, perr.CodeOf(err))
	}
}

func TestUnconfigured(t *testing.T) {
	s := New(nil, repo.NewPG(), nil, Config{})
	if s.Enabled() {
		t.Fatalf("nil db should be disabled")
	}
	ctx := context.Background()
	if err := s.WriteBatch(ctx, []dom.ResultWrite{{}}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := s.ListByBatch(ctx, dom.Filters{BatchID: uuid.New()}, dom.AfterKey{}, 1); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("list: %v", err)
	}
	if err := s.EnsureSchema(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("schema: %v", err)
	}
	var nilSvc *Service
	if nilSvc.Enabled() {
		t.Fatalf("nil service should be disabled")
	}
}

func TestListByBatch_ClampsLimit(t *testing.T) {
	st := &fakeStorage{}
	s, _ := newSvc(st, nil, 50)
	id := uuid.New()
	for _, c := range []struct{ in, want int }{{0, 50}, {-3, 50}, {10, 10}, {51, 50}} {
		if _, _, err := s.ListByBatch(context.Background(), dom.Filters{BatchID: id}, dom.AfterKey{}, c.in); err != nil {
			t.Fatalf("ListByBatch: %v", err)
		}
		if st.limit != c.want {
			t.Fatalf("limit %d -> %d, want %d", c.in, st.limit, c.want)
		}
	}
	_, _, err := s.ListByBatch(context.Background(), dom.Filters{}, dom.AfterKey{}, 1)
	if e, ok := perr.As(err); !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != "batch_id" {
		t.Fatalf("nil batch: %v", err)
	}
}

func TestCountByDisposition(t *testing.T) {
	st := &fakeStorage{counts: []dom.DispositionCount{{Disposition: "clean", Count: 2}}}
	s, _ := newSvc(st, nil, 0)
	got, err := s.CountByDisposition(context.Background(), uuid.New())
	if err != nil || len(got) != 1 {
		t.Fatalf("got %v %v", got, err)
	}
	if _, err := s.CountByDisposition(context.Background(), uuid.Nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("nil batch: %v", err)
	}
}

func TestEnsureSchema(t *testing.T) {
	st, ch := &fakeStorage{}, &fakeCH{err: errors.New("no")}
	s, _ := newSvc(st, ch, 0)
	if err := s.EnsureSchema(context.Background()); !perr.IsCode(err, perr.ErrorCodeDB) || st.schema != 1 {
		t.Fatalf("want ch schema error, got %v", err)
	}
}

func TestSink_ConvertsOutcomes(t *testing.T) {
	kit.Serial(t)
	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	kit.Swap(t, &now, func() time.Time { return at })

	img, _ := decoder.Render("123456788")
	r, err := classify.ClassifyImage(img)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	b := scan.Batch{ID: uuid.New()}
	outs := []scan.Outcome{
		{Index: 0, ImageID: uuid.New(), Result: r},
		{Index: 1, Err: perr.Formatf("bad")},
	}

	st := &fakeStorage{}
	s, _ := newSvc(st, nil, 0)
	if err := Sink(s).Write(context.Background(), b, outs); err != nil {
		t.Fatalf("Sink: %v", err)
	}
	if len(st.writes) != 1 || len(st.writes[0]) != 1 {
		t.Fatalf("writes %+v", st.writes)
	}
	w := st.writes[0][0]
	if w.BatchID != b.ID || w.ImageID != outs[0].ImageID || w.Decoded != "123456788" || w.Account != "123456789" ||
		w.Disposition != "corrected" || len(w.Candidates) != 1 || w.Line != "123456789" || !w.CreatedAt.Equal(at) {
		t.Fatalf("write %+v", w)
	}
}
