// Package domain defines the types and interfaces for persisted OCR results
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResultWrite is one classified image to store
type ResultWrite struct {
	ImageID     uuid.UUID
	BatchID     uuid.UUID
	Position    int // 0-based record index within the batch
	Decoded     string
	Account     string
	Disposition string // clean, corrected, illegible, error or ambiguous
	Candidates  []string
	Line        string
	CreatedAt   time.Time
}

// Result is a stored row as read back
type Result struct {
	ImageID     uuid.UUID
	BatchID     uuid.UUID
	Position    int
	Decoded     string
	Account     string
	Disposition string
	Candidates  []string
	Line        string
	CreatedAt   time.Time
}

// Filters narrow a batch listing
type Filters struct {
	BatchID     uuid.UUID
	Disposition string
}

// AfterKey pages a listing by position; the zero value starts at the top
type AfterKey struct {
	Position int
	Set      bool
}

// DispositionCount is one row of a batch summary
type DispositionCount struct {
	Disposition string
	Count       int64
}
