// Package domain holds the request and response shapes of the OCR endpoints
package domain

import (
	"time"

	perr "bankocr/internal/platform/errors"
)

// ImageInput is one scanned image as three text rows
type ImageInput struct {
	Lines []string `json:"lines" validate:"len=3,dive,glyphrow"`
}

// ClassifyInput is the classify request
type ClassifyInput struct {
	Images  []ImageInput `json:"images"  validate:"required,min=1,dive"`
	Persist bool         `json:"persist" example:"false"`
}

// ImageResult is the classification of one image; Error is set instead when the
// image is malformed
type ImageResult struct {
	Index       int        `json:"index"`
	ImageID     string     `json:"image_id"`
	Decoded     string     `json:"decoded,omitempty"     example:"490067715"`
	Disposition string     `json:"disposition,omitempty" example:"ambiguous"`
	Account     string     `json:"account,omitempty"     example:"490067715"`
	Candidates  []string   `json:"candidates,omitempty"`
	Line        string     `json:"line,omitempty"        example:"490067715 AMB [490067115, 490067719, 490867715]"`
	Error       *perr.Wire `json:"error,omitempty"`
}

// ClassifyOutput is the classify response
type ClassifyOutput struct {
	BatchID   string         `json:"batch_id"`
	Persisted bool           `json:"persisted"`
	Counts    map[string]int `json:"counts"`
	Results   []ImageResult  `json:"results"`
}

// ChecksumInput is the checksum request
type ChecksumInput struct {
	Account string `json:"account" validate:"required,len=9,numeric" example:"123456789"`
}

// ChecksumOutput is the checksum response
type ChecksumOutput struct {
	Account string `json:"account"`
	Valid   bool   `json:"valid"`
}

// Glyph describes one canonical digit
type Glyph struct {
	Digit     int      `json:"digit"`
	Rows      []string `json:"rows"`
	Neighbors int      `json:"neighbors"` // single-cell edits that still read as a legal glyph
}

// GlyphsOutput is the glyph table
type GlyphsOutput struct {
	Glyphs []Glyph `json:"glyphs"`
}

// StoredResult is one persisted row
type StoredResult struct {
	Position    int       `json:"position"`
	ImageID     string    `json:"image_id"`
	Decoded     string    `json:"decoded"`
	Disposition string    `json:"disposition"`
	Account     string    `json:"account"`
	Candidates  []string  `json:"candidates"`
	Line        string    `json:"line"`
	CreatedAt   time.Time `json:"created_at"`
}

// BatchPage is one page of a persisted batch
type BatchPage struct {
	BatchID string         `json:"batch_id"`
	Results []StoredResult `json:"results"`
	// Next is the cursor for the following page, absent on the last one
	Next *int `json:"next,omitempty"`
}

// BatchSummary counts a persisted batch by disposition
type BatchSummary struct {
	BatchID string           `json:"batch_id"`
	Total   int64            `json:"total"`
	Counts  map[string]int64 `json:"counts"`
}
