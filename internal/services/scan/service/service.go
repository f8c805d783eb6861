// Package service runs scan batches: records fan out over a bounded worker pool and
// come back to the sink in input order
package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"bankocr/internal/core/classify"
	"bankocr/internal/core/decoder"
	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/logger"
	"bankocr/internal/services/scan/domain"
	"bankocr/internal/services/scan/guardrails"

	"github.com/google/uuid"
)

// Config for the scan service
type Config struct {
	Workers   int
	// ChunkSize is how many records are classified before the sink sees them
	ChunkSize int
	Timeouts  guardrails.Timeouts
}

// Service implements domain.RunnerPort and domain.ClassifierPort
type Service struct {
	Cfg Config
}

var (
	newBatchID = uuid.New
	now        = time.Now

	imageNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:bankocr:image"))
)

// New constructs a scan service; non positive settings fall back to 1 worker and 256 records
func New(cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 256
	}
	return &Service{Cfg: cfg}
}

// ImageID is the name based id of an image: equal lines give equal ids across runs
func ImageID(lines []string) uuid.UUID {
	return uuid.NewSHA1(imageNS, []byte(strings.Join(lines, "\n")))
}

func newBatch() domain.Batch { return domain.Batch{ID: newBatchID(), Started: now().UTC()} }

// Run drains src into sink; a malformed record fails alone, a source, sink or
// context error stops the run and returns the partial summary
func (s *Service) Run(ctx context.Context, src domain.SourcePort, sink domain.SinkPort) (domain.Summary, error) {
	b := newBatch()
	ctx, cancel := guardrails.WithRun(ctx, s.Cfg.Timeouts)
	defer cancel()
	ctx = logger.WithBatch(ctx, b.ID.String())
	log := logger.C(ctx).With().Str("component", "scan").Logger()
	sum := domain.Summary{Batch: b, Counts: map[classify.Disposition]int{}}

	chunk := make([]domain.Record, 0, s.Cfg.ChunkSize)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		outs, err := s.classify(ctx, chunk)
		if err != nil {
			return err
		}
		tally(&sum, outs)
		chunk = chunk[:0]
		if sink == nil {
			return nil
		}
		sctx, done := guardrails.ForSink(ctx, s.Cfg.Timeouts)
		defer done()
		return sink.Write(sctx, b, outs)
	}

	var runErr error
	for runErr == nil {
		if err := ctx.Err(); err != nil {
			msg := "scan canceled"
			if errors.Is(err, context.DeadlineExceeded) {
				msg = "scan run budget exceeded"
			}
			runErr = perr.Wrap(err, perr.ErrorCodeCanceled, msg)
			break
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			runErr = flush()
			break
		}
		if err != nil {
			runErr = err
			break
		}
		chunk = append(chunk, rec)
		if len(chunk) == s.Cfg.ChunkSize {
			runErr = flush()
		}
	}
	sum.Elapsed = now().Sub(b.Started)

	evt := log.Info()
	if runErr != nil {
		evt = log.Error().Err(runErr)
	}
	d := evt.Int("records", sum.Records).Int("failed", sum.Failed)
	for disp, n := range sum.Counts {
		d = d.Int(disp.String(), n)
	}
	d.Dur("elapsed", sum.Elapsed).Msg("scan done")
	return sum, runErr
}

// ClassifyAll classifies recs under a fresh batch
func (s *Service) ClassifyAll(ctx context.Context, recs []domain.Record) (domain.Batch, []domain.Outcome, error) {
	b := newBatch()
	outs, err := s.classify(logger.WithBatch(ctx, b.ID.String()), recs)
	return b, outs, err
}

// classify runs recs over the pool; out[i] always belongs to recs[i]
func (s *Service) classify(ctx context.Context, recs []domain.Record) ([]domain.Outcome, error) {
	out := make([]domain.Outcome, len(recs))
	sem := make(chan struct{}, s.Cfg.Workers)
	var wg sync.WaitGroup

	var err error
	for i := range recs {
		if err = ctx.Err(); err != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			out[i] = classifyOne(recs[i])
		}(i)
	}
	wg.Wait()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "scan canceled")
	}
	return out, nil
}

func classifyOne(rec domain.Record) domain.Outcome {
	o := domain.Outcome{Index: rec.Index, Line: rec.Line, ImageID: ImageID(rec.Lines)}
	img, err := decoder.NewImage(rec.Lines)
	if err == nil {
		o.Result, err = classify.ClassifyImage(img)
	}
	if err != nil {
		o.Err = perr.WithOp(err, "scan.record")
	}
	return o
}

func tally(sum *domain.Summary, outs []domain.Outcome) {
	for _, o := range outs {
		sum.Records++
		if !o.OK() {
			sum.Failed++
			continue
		}
		sum.Counts[o.Result.Disposition]++
	}
}

// Tee writes each chunk to every sink in order, stopping at the first failure
func Tee(sinks ...domain.SinkPort) domain.SinkPort {
	return domain.SinkFunc(func(ctx context.Context, b domain.Batch, outs []domain.Outcome) error {
		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.Write(ctx, b, outs); err != nil {
				return err
			}
		}
		return nil
	})
}
