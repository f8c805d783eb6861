// Package scanfile reads scanner output files: records of three glyph lines, each
// followed by one blank separator line
package scanfile

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"strings"

	"bankocr/internal/core/normalize"
	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/logger"
	"bankocr/internal/services/scan/domain"
)

const (
	recordLines  = 3
	maxLineBytes = 64 * 1024
)

var gzipMagic = []byte{0x1f, 0x8b}

// Options tunes how forgiving the reader is
type Options struct {
	// PadShortLines right pads the lines of a record to the longest one, rounded up
	// to a whole glyph, undoing editors that strip trailing spaces
	PadShortLines bool
	// FoldWidth maps full width forms such as U+FF3F and U+FF5C, lookalike strokes
	// and invisible format runes onto the glyph alphabet
	FoldWidth bool
	// MaxRecords fails the read past this many records; 0 is unlimited
	MaxRecords int
}

// Strict disables every leniency
func Strict() Options { return Options{} }

// Reader streams records; it implements domain.SourcePort
type Reader struct {
	opt  Options
	gz   *gzip.Reader
	sc   *bufio.Scanner
	err  error
	line int
	recs int
	back []string
}

// NewReader wraps r, decompressing transparently when it starts with the gzip magic
func NewReader(r io.Reader, opt Options) (*Reader, error) {
	br := bufio.NewReader(r)
	rd := &Reader{opt: opt}
	src := io.Reader(br)
	if head, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(head, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeFormat, "bad gzip header")
		}
		rd.gz = gz
		src = gz
	}
	rd.sc = bufio.NewScanner(src)
	rd.sc.Buffer(make([]byte, 4096), maxLineBytes)
	return rd, nil
}

// Records returns how many records were read so far
func (rd *Reader) Records() int { return rd.recs }

// Next returns the next record or io.EOF; any other error is sticky
func (rd *Reader) Next() (domain.Record, error) {
	if rd.err != nil {
		return domain.Record{}, rd.err
	}
	rec, err := rd.next()
	if err != nil {
		rd.err = err
	}
	return rec, err
}

func (rd *Reader) next() (domain.Record, error) {
	start := rd.line + 1
	lines := make([]string, 0, recordLines)
	for len(lines) < recordLines {
		l, ok, err := rd.scan()
		if err != nil {
			return domain.Record{}, err
		}
		if !ok {
			if allBlank(lines) {
				return domain.Record{}, io.EOF
			}
			return domain.Record{}, perr.Formatf("line %d: record has %d of %d lines", start, len(lines), recordLines)
		}
		lines = append(lines, l)
	}
	if allBlank(lines) {
		end, err := rd.restBlank()
		if err != nil {
			return domain.Record{}, err
		}
		if end {
			return domain.Record{}, io.EOF
		}
	}

	sep, ok, err := rd.scan()
	if err != nil {
		return domain.Record{}, err
	}
	if ok && strings.TrimSpace(sep) != "" {
		return domain.Record{}, perr.Formatf("line %d: separator line is not blank", rd.line)
	}

	if rd.opt.MaxRecords > 0 && rd.recs >= rd.opt.MaxRecords {
		return domain.Record{}, perr.TooLargef("input has more than %d records", rd.opt.MaxRecords)
	}
	if rd.opt.PadShortLines {
		pad(lines)
	}
	rec := domain.Record{Index: rd.recs, Line: start, Lines: lines}
	rd.recs++
	return rec, nil
}

// scan returns the next line without its CR, folded when enabled
func (rd *Reader) scan() (string, bool, error) {
	if len(rd.back) > 0 {
		l := rd.back[0]
		rd.back = rd.back[1:]
		rd.line++
		return l, true, nil
	}
	if !rd.sc.Scan() {
		if err := rd.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", false, perr.Formatf("line %d: longer than %d bytes", rd.line+1, maxLineBytes)
			}
			return "", false, perr.Wrap(err, perr.ErrorCodeUnknown, "read scan input")
		}
		return "", false, nil
	}
	rd.line++
	l := strings.TrimSuffix(rd.sc.Text(), "\r")
	if rd.opt.FoldWidth {
		if folded := normalize.Row(l); folded != l {
			logger.Named("scanfile").Debug().Int("line", rd.line).Msg("folded row onto glyph alphabet")
			l = folded
		}
	}
	return l, true, nil
}

// restBlank reports whether only blank lines remain; lines it looks at are pushed back
func (rd *Reader) restBlank() (bool, error) {
	var seen []string
	defer func() {
		rd.back = append(seen, rd.back...)
		rd.line -= len(seen)
	}()
	for {
		l, ok, err := rd.scan()
		if err != nil || !ok {
			return err == nil, err
		}
		seen = append(seen, l)
		if strings.TrimSpace(l) != "" {
			return false, nil
		}
	}
}

// Close releases the gzip stream, if any; the caller owns the underlying reader
func (rd *Reader) Close() error {
	if rd.gz != nil {
		return rd.gz.Close()
	}
	return nil
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func pad(lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	if r := w % 3; r != 0 {
		w += 3 - r
	}
	for i, l := range lines {
		if len(l) < w {
			lines[i] = l + strings.Repeat(" ", w-len(l))
		}
	}
}
