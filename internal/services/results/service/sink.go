package service

import (
	"context"
	"time"

	"bankocr/internal/core/correct"
	dom "bankocr/internal/services/results/domain"
	scan "bankocr/internal/services/scan/domain"
)

var now = time.Now

// Writes converts the classified outcomes of b; failed records are left out
func Writes(b scan.Batch, outs []scan.Outcome) []dom.ResultWrite {
	at := now().UTC()
	xs := make([]dom.ResultWrite, 0, len(outs))
	for _, o := range outs {
		if !o.OK() {
			continue
		}
		r := o.Result
		xs = append(xs, dom.ResultWrite{
			ImageID:     o.ImageID,
			BatchID:     b.ID,
			Position:    o.Index,
			Decoded:     r.Decoded.String(),
			Account:     r.Account,
			Disposition: r.Disposition.String(),
			Candidates:  correct.Strings(r.Candidates),
			Line:        r.Line(),
			CreatedAt:   at,
		})
	}
	return xs
}

// Sink adapts w to a scan sink
func Sink(w dom.WriterPort) scan.SinkPort {
	return scan.SinkFunc(func(ctx context.Context, b scan.Batch, outs []scan.Outcome) error {
		return w.WriteBatch(ctx, Writes(b, outs))
	})
}
