// Package service implements the OCR endpoints over the scan and results modules
package service

import (
	"context"
	"strconv"

	"bankocr/internal/core/checksum"
	"bankocr/internal/core/classify"
	"bankocr/internal/core/glyph"
	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/logger"
	"bankocr/internal/services/api/ocr/domain"
	resdom "bankocr/internal/services/results/domain"
	ressvc "bankocr/internal/services/results/service"
	scandom "bankocr/internal/services/scan/domain"

	"github.com/google/uuid"
)

// Results is the persistence the service needs; Enabled false means no Postgres
type Results interface {
	resdom.WriterPort
	resdom.QueryPort
	Enabled() bool
}

// Config for the OCR service
type Config struct {
	MaxImages int
}

// Service implements the OCR use cases
type Service struct {
	Classifier scandom.ClassifierPort
	Results    Results
	Cfg        Config
}

// New constructs the service; MaxImages defaults to 500
func New(c scandom.ClassifierPort, r Results, cfg Config) *Service {
	if cfg.MaxImages <= 0 {
		cfg.MaxImages = 500
	}
	return &Service{Classifier: c, Results: r, Cfg: cfg}
}

func (s *Service) persistable() bool { return s.Results != nil && s.Results.Enabled() }

// Classify runs every image; malformed images fail alone
func (s *Service) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyOutput, error) {
	if len(in.Images) > s.Cfg.MaxImages {
		return domain.ClassifyOutput{}, perr.WithField(
			perr.TooLargef("%d images in one request, at most %d", len(in.Images), s.Cfg.MaxImages), "images")
	}

	recs := make([]scandom.Record, len(in.Images))
	for i, img := range in.Images {
		recs[i] = scandom.Record{Index: i, Lines: img.Lines}
	}
	b, outs, err := s.Classifier.ClassifyAll(ctx, recs)
	if err != nil {
		return domain.ClassifyOutput{}, err
	}

	out := domain.ClassifyOutput{
		BatchID: b.ID.String(),
		Counts:  map[string]int{},
		Results: make([]domain.ImageResult, len(outs)),
	}
	for i, o := range outs {
		out.Results[i] = toImageResult(o)
		if o.OK() {
			out.Counts[o.Result.Disposition.String()]++
		} else {
			out.Counts["format_error"]++
		}
	}

	if in.Persist && s.persistable() {
		if err := s.Results.WriteBatch(ctx, ressvc.Writes(b, outs)); err != nil {
			return domain.ClassifyOutput{}, err
		}
		out.Persisted = true
	} else if in.Persist {
		logger.C(ctx).Debug().Msg("persist requested without a results store")
	}
	return out, nil
}

func toImageResult(o scandom.Outcome) domain.ImageResult {
	ir := domain.ImageResult{Index: o.Index, ImageID: o.ImageID.String()}
	if !o.OK() {
		w := perr.WireFrom(o.Err)
		ir.Error = &w
		return ir
	}
	r := o.Result
	ir.Decoded = r.Decoded.String()
	ir.Disposition = r.Disposition.String()
	ir.Account = r.Account
	ir.Line = r.Line()
	for _, c := range r.Candidates {
		ir.Candidates = append(ir.Candidates, c.String())
	}
	return ir
}

// Checksum validates a legible account number
func (s *Service) Checksum(_ context.Context, in domain.ChecksumInput) (domain.ChecksumOutput, error) {
	ok, err := checksum.ValidString(in.Account)
	if err != nil {
		return domain.ChecksumOutput{}, err
	}
	return domain.ChecksumOutput{Account: in.Account, Valid: ok}, nil
}

// Glyphs lists the canonical table
func (s *Service) Glyphs() domain.GlyphsOutput {
	out := domain.GlyphsOutput{Glyphs: make([]domain.Glyph, 0, glyph.Digits)}
	for d := range glyph.Digits {
		g, _ := glyph.Canonical(d)
		rows := g.Rows()
		out.Glyphs = append(out.Glyphs, domain.Glyph{Digit: d, Rows: rows[:], Neighbors: len(glyph.Neighbors(d))})
	}
	return out
}

func (s *Service) batchID(raw string) (uuid.UUID, error) {
	if !s.persistable() {
		return uuid.Nil, perr.Unavailablef("results store is not configured")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("batch id %q is not a uuid", raw), "batchID")
	}
	return id, nil
}

// Batch pages through a persisted batch ordered by position; after < 0 starts at the top
func (s *Service) Batch(ctx context.Context, rawID string, disposition string, after, limit int) (domain.BatchPage, error) {
	id, err := s.batchID(rawID)
	if err != nil {
		return domain.BatchPage{}, err
	}
	if disposition != "" {
		if _, ok := classify.ParseDisposition(disposition); !ok {
			return domain.BatchPage{}, perr.WithField(perr.InvalidArgf("unknown disposition %q", disposition), "disposition")
		}
	}
	f := resdom.Filters{BatchID: id, Disposition: disposition}
	key := resdom.AfterKey{Position: after, Set: after >= 0}

	rows, next, err := s.Results.ListByBatch(ctx, f, key, limit)
	if err != nil {
		return domain.BatchPage{}, err
	}
	if len(rows) == 0 && !key.Set && disposition == "" {
		return domain.BatchPage{}, perr.NotFoundf("batch %s not found", id)
	}

	page := domain.BatchPage{BatchID: id.String(), Results: make([]domain.StoredResult, len(rows))}
	for i, r := range rows {
		page.Results[i] = domain.StoredResult{
			Position:    r.Position,
			ImageID:     r.ImageID.String(),
			Decoded:     r.Decoded,
			Disposition: r.Disposition,
			Account:     r.Account,
			Candidates:  r.Candidates,
			Line:        r.Line,
			CreatedAt:   r.CreatedAt,
		}
	}
	if next.Set {
		p := next.Position
		page.Next = &p
	}
	return page, nil
}

// Summary counts a persisted batch
func (s *Service) Summary(ctx context.Context, rawID string) (domain.BatchSummary, error) {
	id, err := s.batchID(rawID)
	if err != nil {
		return domain.BatchSummary{}, err
	}
	counts, err := s.Results.CountByDisposition(ctx, id)
	if err != nil {
		return domain.BatchSummary{}, err
	}
	if len(counts) == 0 {
		return domain.BatchSummary{}, perr.NotFoundf("batch %s not found", id)
	}
	out := domain.BatchSummary{BatchID: id.String(), Counts: make(map[string]int64, len(counts))}
	for _, c := range counts {
		out.Counts[c.Disposition] = c.Count
		out.Total += c.Count
	}
	return out, nil
}

// ParseCursor reads the after query value; empty means the first page
func ParseCursor(raw string) (int, error) {
	if raw == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.InvalidArgf("cursor %q is not a position", raw), "after")
	}
	return n, nil
}
