// Package report writes scan outcomes in the account listing format, one line per image
package report

import (
	"bufio"
	"context"
	"io"

	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/logger"
	"bankocr/internal/services/scan/domain"
)

// Writer implements domain.SinkPort over an io.Writer
// records that failed to parse are logged and produce no line
type Writer struct {
	w       *bufio.Writer
	lines   int
	skipped int
}

// NewWriter buffers w; every Write flushes
func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

// Write emits outs in order
func (w *Writer) Write(ctx context.Context, _ domain.Batch, outs []domain.Outcome) error {
	log := logger.C(ctx)
	for _, o := range outs {
		if !o.OK() {
			w.skipped++
			log.Warn().Err(o.Err).Int("record", o.Index).Int("line", o.Line).Msg("record skipped")
			continue
		}
		if _, err := w.w.WriteString(o.Result.Line()); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write report")
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write report")
		}
		w.lines++
	}
	if err := w.w.Flush(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "flush report")
	}
	return nil
}

// Lines is the number of lines written
func (w *Writer) Lines() int { return w.lines }

// Skipped is the number of failed records left out
func (w *Writer) Skipped() int { return w.skipped }
