// Package http provides the OCR endpoints
package http

import (
	stdhttp "net/http"
	"strconv"
	"sync"

	"bankocr/internal/core/glyph"
	"bankocr/internal/modkit/httpkit"
	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/net/http/bind"
	"bankocr/internal/services/api/ocr/domain"
	"bankocr/internal/services/api/ocr/service"
)

var registerTags sync.Once

// glyphRow accepts rows made only of the glyph alphabet
func glyphRow(fl bind.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		if !glyph.Allowed(s[i]) {
			return false
		}
	}
	return true
}

// Register mounts the OCR routes; maxBody bounds the classify request
func Register(r httpkit.Router, s *service.Service, maxBody int64) {
	registerTags.Do(func() {
		if err := bind.RegisterValidation("glyphrow", "{0} may only hold spaces, underscores and pipes", glyphRow); err != nil {
			panic(err)
		}
	})
	h := &handlers{svc: s}

	httpkit.PostLimited[domain.ClassifyInput](r, "/classify", maxBody, h.classify)
	httpkit.Post[domain.ChecksumInput](r, "/checksum", h.checksum)
	httpkit.Get(r, "/glyphs", h.glyphs)
	httpkit.Get(r, "/batches/{batchID}", h.batch)
	httpkit.Get(r, "/batches/{batchID}/summary", h.summary)
}

type handlers struct{ svc *service.Service }

// @Summary Classify scanned account images
// @Tags OCR
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Images"
// @Success 200 {object} domain.ClassifyOutput
// @Router /ocr/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyInput) (any, error) {
	return h.svc.Classify(r.Context(), in)
}

// @Summary Validate an account number checksum
// @Tags OCR
// @Accept json
// @Produce json
// @Param payload body domain.ChecksumInput true "Account"
// @Success 200 {object} domain.ChecksumOutput
// @Router /ocr/checksum [post]
func (h *handlers) checksum(r *stdhttp.Request, in domain.ChecksumInput) (any, error) {
	return h.svc.Checksum(r.Context(), in)
}

// @Summary Canonical glyph table
// @Tags OCR
// @Produce json
// @Success 200 {object} domain.GlyphsOutput
// @Router /ocr/glyphs [get]
func (h *handlers) glyphs(_ *stdhttp.Request) (any, error) {
	return h.svc.Glyphs(), nil
}

// @Summary Page through a persisted batch
// @Tags OCR
// @Produce json
// @Param batchID path string true "Batch id"
// @Param after query int false "Position cursor from the previous page"
// @Param limit query int false "Page size"
// @Param disposition query string false "Only this disposition"
// @Success 200 {object} domain.BatchPage
// @Router /ocr/batches/{batchID} [get]
func (h *handlers) batch(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	after, err := service.ParseCursor(q.Get("after"))
	if err != nil {
		return nil, err
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit %q is not a number", raw), "limit")
		}
	}
	return h.svc.Batch(r.Context(), httpkit.Param(r, "batchID"), q.Get("disposition"), after, limit)
}

// @Summary Disposition counts of a persisted batch
// @Tags OCR
// @Produce json
// @Param batchID path string true "Batch id"
// @Success 200 {object} domain.BatchSummary
// @Router /ocr/batches/{batchID}/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context(), httpkit.Param(r, "batchID"))
}
