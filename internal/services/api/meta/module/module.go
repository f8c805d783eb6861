// Package module mounts the meta endpoints under /meta
package module

import (
	"time"

	"bankocr/internal/core/classify"
	"bankocr/internal/core/decoder"
	"bankocr/internal/modkit"
	"bankocr/internal/modkit/httpkit"
	perr "bankocr/internal/platform/errors"
	str "bankocr/internal/platform/strings"

	metahttp "bankocr/internal/services/api/meta/http"
)

// ServiceName is reported by health and version
const ServiceName = "bankocr-api"

// Module implements modkit.Module
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{deps: deps, built: b, startedAt: time.Now()}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
		Probes: []metahttp.Probe{
			{Name: "classifier", Target: SelfTest},
			{Name: "pg", Target: m.deps.PG},
			{Name: "ch", Target: m.deps.CH},
		},
	}
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }

// SelfTest renders and classifies a known good account
func SelfTest() error {
	img, err := decoder.Render("345882865")
	if err != nil {
		return err
	}
	r, err := classify.ClassifyImage(img)
	if err != nil {
		return err
	}
	if r.Disposition != classify.Clean {
		return perr.Newf(perr.ErrorCodeUnknown, "self test read %s", r.Line())
	}
	return nil
}

