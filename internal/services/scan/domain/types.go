// Package domain defines the scan batch types and ports
package domain

import (
	"time"

	"bankocr/internal/core/classify"

	"github.com/google/uuid"
)

// Record is one raw image as read from a source
type Record struct {
	// Index is the 0-based position in the input
	Index int
	// Line is the 1-based input line the record starts on, 0 when not file backed
	Line  int
	Lines []string
}

// Outcome is the classification of one record; Err is set instead of Result when
// the record is not a well-formed image
type Outcome struct {
	Index   int
	Line    int
	ImageID uuid.UUID
	Result  classify.Result
	Err     error
}

// OK reports whether the record classified
func (o Outcome) OK() bool { return o.Err == nil }

// Batch identifies one run over a source
type Batch struct {
	ID      uuid.UUID
	Started time.Time
}

// Summary tallies a finished run
type Summary struct {
	Batch   Batch
	Records int
	Failed  int
	Counts  map[classify.Disposition]int
	Elapsed time.Duration
}

// Count returns the records that ended with d
func (s Summary) Count(d classify.Disposition) int { return s.Counts[d] }
