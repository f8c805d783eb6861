// Package http serves the liveness, readiness and build endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"bankocr/internal/core/version"
	"bankocr/internal/modkit/httpkit"
)

// Pinger is satisfied by store adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Probe is one readiness check; Target is a Pinger, a func() error self test, or nil
// when the backend is not configured
type Probe struct {
	Name   string
	Target any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      []Probe
	// ProbeTimeout bounds the whole readiness pass, 2s when zero
	ProbeTimeout time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.ProbeTimeout <= 0 {
		d.ProbeTimeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"bankocr-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ReadyCheck is the result of one probe
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := h.deps.Now()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with backend and classifier checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ProbeTimeout)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Probes))}
	for _, p := range h.deps.Probes {
		c := run(ctx, p)
		out.Checks = append(out.Checks, c)
		out.Status = worst(out.Status, c.Status)
	}
	out.Now = h.deps.Now().UTC().Format(time.RFC3339)
	return out, nil
}

func run(ctx stdctx.Context, p Probe) ReadyCheck {
	var err error
	switch t := p.Target.(type) {
	case nil:
		return ReadyCheck{Name: p.Name, Status: "skipped"}
	case Pinger:
		err = t.Ping(ctx)
	case func() error:
		err = t()
	default:
		return ReadyCheck{Name: p.Name, Status: "unknown"}
	}
	if err != nil {
		return ReadyCheck{Name: p.Name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: p.Name, Status: "ok"}
}

// worst folds a check status into the overall one; skipped backends keep the API ready
func worst(overall, status string) string {
	switch {
	case status == "fail":
		return "fail"
	case status == "unknown" && overall == "ok":
		return "degraded"
	}
	return overall
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}
